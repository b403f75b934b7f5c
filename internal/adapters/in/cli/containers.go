package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/infradeploy/internal/app"
	"github.com/bnema/infradeploy/internal/domain"
	"github.com/bnema/infradeploy/internal/usecase/containers"
)

// withContainer adopts the deployment and hands fn the named container.
func withContainer(cmd *cobra.Command, opts *rootOptions, name string, fn func(ctx context.Context, c *containers.Container) error) error {
	return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
		a.Adopt(ctx)
		c, ok := a.Containers.Get(name)
		if !ok {
			return fmt.Errorf("container %q is not declared", name)
		}
		return fn(ctx, c)
	})
}

func newExecCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <container> -- <command> [args...]",
		Short: "Run a command inside a deployed container",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, opts, args[0], func(ctx context.Context, c *containers.Container) error {
				res, err := c.Exec(ctx, args[1:])
				if err != nil {
					return err
				}
				_, _ = cmd.OutOrStdout().Write(res.Stdout)
				_, _ = cmd.ErrOrStderr().Write(res.Stderr)
				if res.ExitCode != 0 {
					return fmt.Errorf("command exited with code %d", res.ExitCode)
				}
				return nil
			})
		},
	}
}

func newLogsCmd(opts *rootOptions) *cobra.Command {
	var tail int

	cmd := &cobra.Command{
		Use:   "logs <container>",
		Short: "Print the logs of a deployed container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withContainer(cmd, opts, args[0], func(ctx context.Context, c *containers.Container) error {
				logs, err := c.Logs(ctx, tail)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), logs)
				return err
			})
		},
	}
	cmd.Flags().IntVarP(&tail, "tail", "n", 100, "Number of lines to show from the end (0 for all)")
	return cmd
}

func newRestartCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "restart [container...]",
		Short: "Restart deployed containers, all of them when none is named",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				a.Adopt(ctx)
				var result domain.BulkResult
				if len(args) == 0 {
					result = a.Containers.RestartAll(ctx)
				} else {
					result = restartNamed(ctx, a.Containers, args)
				}
				writeBulk(cmd.OutOrStdout(), "restart", result)
				if !result.AllOK() {
					return errFailures
				}
				return nil
			})
		},
	}
}

func restartNamed(ctx context.Context, m *containers.Manager, names []string) domain.BulkResult {
	result := make(domain.BulkResult, len(names))
	for _, name := range names {
		c, ok := m.Get(name)
		if !ok {
			result[name] = fmt.Errorf("container %q is not declared", name)
			continue
		}
		result[name] = c.Restart(ctx)
	}
	return result
}
