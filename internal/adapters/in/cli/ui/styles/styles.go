// Package styles holds the terminal palette and the render helpers shared by
// the infradeploy commands.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette tuned for dark terminals.
var (
	ColorPrimary   = lipgloss.Color("#00ccff")
	ColorSuccess   = lipgloss.Color("#00ff88")
	ColorWarning   = lipgloss.Color("#fbbf24")
	ColorError     = lipgloss.Color("#ff4444")
	ColorText      = lipgloss.Color("#e5e5e5")
	ColorTextMuted = lipgloss.Color("#737373")
	ColorBorder    = lipgloss.Color("#404040")
)

// ASCII status markers; they render in any terminal font.
const (
	IconSuccess = "✓"
	IconError   = "✗"
	IconWarning = "!"
	IconPending = "·"
)

var (
	Title   = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	Heading = lipgloss.NewStyle().Bold(true).Foreground(ColorText)
	Muted   = lipgloss.NewStyle().Foreground(ColorTextMuted)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Warning = lipgloss.NewStyle().Foreground(ColorWarning)
	Error   = lipgloss.NewStyle().Foreground(ColorError)

	TableHeader = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary).Padding(0, 1)
	TableCell   = lipgloss.NewStyle().Foreground(ColorText).Padding(0, 1)
	TableBorder = lipgloss.NewStyle().Foreground(ColorBorder)
)

// RenderSuccess returns a styled success message.
func RenderSuccess(msg string) string {
	return Success.Render(IconSuccess + " " + msg)
}

// RenderError returns a styled error message.
func RenderError(msg string) string {
	return Error.Render(IconError + " " + msg)
}

// RenderWarning returns a styled warning message.
func RenderWarning(msg string) string {
	return Warning.Render(IconWarning + " " + msg)
}

// RenderStatus colors a container or resource state.
func RenderStatus(status string) string {
	switch status {
	case "running", "created", "present", "ok":
		return Success.Render(status)
	case "exited", "missing", "error":
		return Error.Render(status)
	case "paused", "absent":
		return Warning.Render(status)
	default:
		return Muted.Render(status)
	}
}
