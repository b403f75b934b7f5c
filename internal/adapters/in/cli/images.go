package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/infradeploy/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/infradeploy/internal/app"
	"github.com/bnema/infradeploy/internal/domain"
)

func newImagesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Manage the declared images",
	}

	cmd.AddCommand(newImagesListCmd(opts))
	cmd.AddCommand(newImagesBulkCmd(opts, "pull", "Pull every declared image", func(ctx context.Context, a *app.App) domain.BulkResult {
		return a.Images.PullAll(ctx)
	}))
	cmd.AddCommand(newImagesBulkCmd(opts, "build", "Build every image that has a build context", func(ctx context.Context, a *app.App) domain.BulkResult {
		return a.Images.BuildAll(ctx)
	}))
	cmd.AddCommand(newImagesPushCmd(opts))
	cmd.AddCommand(newImagesSaveCmd(opts))
	cmd.AddCommand(newImagesLoadCmd(opts))

	return cmd
}

func newImagesListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the declared images",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(_ context.Context, a *app.App) error {
				writeImageList(cmd, a.Images.ListAll())
				return nil
			})
		},
	}
}

func newImagesBulkCmd(opts *rootOptions, use, short string, run func(context.Context, *app.App) domain.BulkResult) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				result := run(ctx, a)
				writeBulk(cmd.OutOrStdout(), use, result)
				if !result.AllOK() {
					return errFailures
				}
				return nil
			})
		},
	}
}

func newImagesPushCmd(opts *rootOptions) *cobra.Command {
	var registry string

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Build or pull, tag and push every declared image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				result := a.Publish(ctx, registry)
				w := cmd.OutOrStdout()
				writeBulk(w, "images", result.Images)
				writeBulk(w, "tag", result.Tags)
				writeBulk(w, "push", result.Push)
				if result.Err() != nil {
					return errFailures
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&registry, "registry", "r", "", "Target registry (defaults to images.default_registry)")
	return cmd
}

func newImagesSaveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "save [path]",
		Short: "Save the declared image names to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				path := statePath(a, args)
				if err := a.Images.SaveState(ctx, path); err != nil {
					return err
				}
				return cliWriteLine(cmd.OutOrStdout(), styles.RenderSuccess(fmt.Sprintf("%d image names saved to %s", len(a.Images.Names()), path)))
			})
		},
	}
}

func newImagesLoadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "load [path]",
		Short: "Register the image names saved in a file and list them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app.App) error {
				if err := a.Images.LoadState(ctx, statePath(a, args)); err != nil {
					return err
				}
				writeImageList(cmd, a.Images.ListAll())
				return nil
			})
		},
	}
}

func statePath(a *app.App, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return a.Config().State.ImagesFile
}

func writeImageList(cmd *cobra.Command, list []domain.ImageStatus) {
	w := cmd.OutOrStdout()
	if len(list) == 0 {
		_ = cliWriteLine(w, styles.Muted.Render("no images declared"))
		return
	}
	rows := make([][]string, 0, len(list))
	for _, img := range list {
		source := "pull"
		if img.BuildPath != "" {
			source = "build " + img.BuildPath
		}
		rows = append(rows, []string{img.Name, source, imageState(img.State), strings.Join(img.Tags, ", ")})
	}
	_ = cliWriteLine(w, renderTable([]string{"NAME", "SOURCE", "STATE", "TAGS"}, rows))
}

func imageState(s domain.ImageState) string {
	var flags []string
	if s.Pulled {
		flags = append(flags, "pulled")
	}
	if s.Built {
		flags = append(flags, "built")
	}
	if s.Tagged {
		flags = append(flags, "tagged")
	}
	if len(flags) == 0 {
		return styles.Muted.Render("-")
	}
	return strings.Join(flags, ",")
}
