// Package cli implements the command line adapter. Commands load the
// deployment through the app layer and print the per-resource results.
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/infradeploy/internal/app"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// errFailures is returned when a command finished but some resource failed.
// The details have already been printed.
var errFailures = errors.New("one or more operations failed")

type rootOptions struct {
	configPath string
}

// NewRootCmd creates the root command for the infradeploy CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "infradeploy",
		Short: "Stand up and tear down a container deployment",
		Long: `infradeploy creates the networks, volumes, images and containers described
in infradeploy.yaml on a Docker-compatible engine, starts them, and tears them
down again.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(newUpCmd(opts))
	rootCmd.AddCommand(newDownCmd(opts))
	rootCmd.AddCommand(newStatusCmd(opts))
	rootCmd.AddCommand(newRestartCmd(opts))
	rootCmd.AddCommand(newImagesCmd(opts))
	rootCmd.AddCommand(newExecCmd(opts))
	rootCmd.AddCommand(newLogsCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the CLI until completion or until SIGINT/SIGTERM.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// SetVersionInfo sets the version information for the CLI.
func SetVersionInfo(version, commit, date string) {
	if version != "" {
		Version = version
	}
	if commit != "" {
		Commit = commit
	}
	if date != "" {
		BuildDate = date
	}
}

// withApp opens the application for the duration of fn.
func withApp(cmd *cobra.Command, opts *rootOptions, fn func(ctx context.Context, a *app.App) error) error {
	a, ctx, err := app.Open(cmd.Context(), opts.configPath, Version)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("infradeploy %s\n", Version)
			cmd.Printf("Commit: %s\n", Commit)
			cmd.Printf("Build Date: %s\n", BuildDate)
		},
	}
}
