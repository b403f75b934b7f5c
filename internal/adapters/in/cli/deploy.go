package cli

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/bnema/infradeploy/internal/app"
)

func newUpCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create and start the deployment",
		Long: `Build or pull every image, create the volumes and containers, then start
the containers and connect them to their networks. A failing resource never
stops the others; every result is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				result := a.Up(ctx)
				writeUp(cmd.OutOrStdout(), result)
				if result.Err() != nil {
					return errFailures
				}
				return nil
			})
		},
	}
}

// confirm asks a yes/no question on the terminal.
var confirm = func(message string) (bool, error) {
	var ok bool
	prompt := &survey.Confirm{Message: message, Default: false}
	if err := survey.AskOne(prompt, &ok); err != nil {
		return false, err
	}
	return ok, nil
}

var errCancelled = errors.New("operation cancelled by user")

func newDownCmd(opts *rootOptions) *cobra.Command {
	var removeVolumes, yes bool

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Stop and remove the deployment",
		Long: `Stop and remove the containers and networks created by a previous "up".
Volumes are kept unless --volumes is given, and a volume still mounted by a
container is never removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if removeVolumes && !yes {
				ok, err := confirm("Remove the deployment volumes and the data they hold?")
				if err != nil {
					return err
				}
				if !ok {
					return errCancelled
				}
			}
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				result := a.Down(ctx, removeVolumes)
				writeDown(cmd.OutOrStdout(), result)
				if result.Err() != nil {
					return errFailures
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&removeVolumes, "volumes", false, "Also remove unused volumes")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	var withStats bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of every declared resource",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				writeStatus(cmd.OutOrStdout(), a.Status(ctx, withStats), withStats)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&withStats, "stats", false, "Include CPU and memory usage of running containers")
	return cmd
}
