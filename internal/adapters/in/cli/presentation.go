package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/infradeploy/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/infradeploy/internal/app"
	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/pkg/bytesize"
)

var cliWriteLine = func(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.TableBorder).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.TableHeader
			}
			return styles.TableCell
		}).
		Headers(headers...).
		Rows(rows...).
		Render()
}

// writeBulk prints one line per resource of a bulk operation.
func writeBulk(w io.Writer, title string, result domain.BulkResult) {
	if len(result) == 0 {
		return
	}
	_ = cliWriteLine(w, styles.Heading.Render(title))
	for _, name := range result.Succeeded() {
		_ = cliWriteLine(w, "  "+styles.RenderSuccess(name))
	}
	for _, name := range result.Failed() {
		_ = cliWriteLine(w, "  "+styles.RenderError(fmt.Sprintf("%s: %v", name, result[name])))
	}
}

func writeReport(w io.Writer, report domain.Report) {
	for _, step := range report.Steps {
		writeBulk(w, report.Workflow+" / "+step.Name, step.Result)
	}
	line := fmt.Sprintf("%s finished in %s", report.Workflow, report.Duration().Round(time.Millisecond))
	if report.Failed() {
		_ = cliWriteLine(w, styles.RenderWarning(line))
		return
	}
	_ = cliWriteLine(w, styles.Muted.Render(line))
}

func writeUp(w io.Writer, result app.UpResult) {
	writeBulk(w, "images", result.Images)
	if result.StateErr != nil {
		_ = cliWriteLine(w, styles.RenderWarning("image list not saved: "+result.StateErr.Error()))
	}
	writeBulk(w, "volumes", result.Volumes)
	writeBulk(w, "containers", result.Containers)
	writeReport(w, result.Infrastructure)
}

func writeDown(w io.Writer, result app.DownResult) {
	writeBulk(w, "adopt", result.Adopt)
	writeReport(w, result.Infrastructure)
	writeBulk(w, "volumes", result.Volumes)
}

func writeStatus(w io.Writer, report app.StatusReport, withStats bool) {
	if failed := report.Adopt.Failed(); len(failed) > 0 {
		for _, name := range failed {
			_ = cliWriteLine(w, styles.RenderWarning(fmt.Sprintf("%s: %v", name, report.Adopt[name])))
		}
	}

	_ = cliWriteLine(w, styles.Title.Render("Images"))
	rows := make([][]string, 0, len(report.Images))
	for _, img := range report.Images {
		state := "absent"
		if img.Present {
			state = "present"
		}
		size := "-"
		if img.Size > 0 {
			size = bytesize.Format(uint64(img.Size))
		}
		rows = append(rows, []string{img.Name, styles.RenderStatus(state), strings.Join(img.Tags, ", "), size})
	}
	_ = cliWriteLine(w, renderTable([]string{"NAME", "STATE", "TAGS", "SIZE"}, rows))

	_ = cliWriteLine(w, styles.Title.Render("Containers"))
	headers := []string{"NAME", "IMAGE", "ID", "STATUS"}
	if withStats {
		headers = append(headers, "CPU", "MEMORY")
	}
	rows = rows[:0]
	for _, c := range report.Containers {
		status := styles.RenderStatus(string(c.Status))
		if c.Problem != nil {
			status = styles.RenderError(c.Problem.Error())
		}
		row := []string{c.Name, c.Image, shortID(c.ID), status}
		if withStats {
			row = append(row, statsColumns(c.Stats)...)
		}
		rows = append(rows, row)
	}
	_ = cliWriteLine(w, renderTable(headers, rows))

	_ = cliWriteLine(w, styles.Title.Render("Networks"))
	rows = rows[:0]
	for _, n := range report.Networks {
		rows = append(rows, []string{n.Name, shortID(n.ID), n.Driver, fmt.Sprint(n.Containers)})
	}
	_ = cliWriteLine(w, renderTable([]string{"NAME", "ID", "DRIVER", "CONTAINERS"}, rows))

	_ = cliWriteLine(w, styles.Title.Render("Volumes"))
	rows = rows[:0]
	for _, v := range report.Volumes {
		state := "missing"
		if v.Exists {
			state = "present"
		}
		rows = append(rows, []string{v.Name, v.Driver, styles.RenderStatus(state), fmt.Sprint(v.Users)})
	}
	_ = cliWriteLine(w, renderTable([]string{"NAME", "DRIVER", "STATE", "USERS"}, rows))
}

func statsColumns(s *domain.ContainerStats) []string {
	if s == nil {
		return []string{"-", "-"}
	}
	return []string{
		fmt.Sprintf("%.1f%%", s.CPUPercent),
		fmt.Sprintf("%s / %s", bytesize.Format(s.MemoryUsage), bytesize.Format(s.MemoryLimit)),
	}
}

func shortID(id string) string {
	if id == "" {
		return "-"
	}
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
