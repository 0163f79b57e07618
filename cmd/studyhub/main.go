package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"studyhub/internal/bootstrap"
	"studyhub/internal/platform/config"
	apperrors "studyhub/internal/platform/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir    string
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "studyhub",
		Short:         "IPMAT preparation tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data", "", "data directory (default $STUDYHUB_DATA_DIR or ~/.studyhub)")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <data>/studyhub.yaml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "mirror logs to stderr")

	root.AddCommand(newEnterCmd(opts), newWhoamiCmd(opts), newLogoutCmd(opts))
	root.AddCommand(newDashboardCmd(opts))
	root.AddCommand(newProgressCmd(opts))
	root.AddCommand(newScoresCmd(opts))
	root.AddCommand(newGoalsCmd(opts))
	root.AddCommand(newLogCmd(opts))
	root.AddCommand(newVocabCmd(opts))
	root.AddCommand(newVaultCmd(opts))
	root.AddCommand(newRemindCmd(opts))
	root.AddCommand(newExportCmd(opts), newImportCmd(opts))
	root.AddCommand(newTUICmd(opts))
	return root
}

func loadApp(opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := config.Load(config.Options{DataDir: opts.dataDir, FilePath: opts.configPath})
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, opts.verbose)
}

// withUser runs fn against a loaded app once a session exists. Feature
// commands are closed to anonymous use.
func withUser(opts *rootOptions, fn func(ctx context.Context, app *bootstrap.App) error) error {
	app, err := loadApp(opts)
	if err != nil {
		return err
	}
	defer app.Close()
	ctx := context.Background()
	if _, err := app.SessionCLI.Current(ctx); err != nil {
		if errors.Is(err, apperrors.ErrNoActiveUser) {
			return fmt.Errorf("%w: run `studyhub enter <name>` first", err)
		}
		return err
	}
	return fn(ctx, app)
}

func newEnterCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "enter <name>",
		Short: "Start a session under a display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.SessionCLI.Enter(context.Background(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !out.Entered {
				return fmt.Errorf("name is required")
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "welcome, %s\n", out.User.Name)
			return nil
		},
	}
}

func newWhoamiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			user, err := app.SessionCLI.Current(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (since %s)\n", user.Name, user.CreatedAt.Format("2006-01-02"))
			return nil
		},
	}
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			if err := app.SessionCLI.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withUser(opts, func(_ context.Context, app *bootstrap.App) error {
				return bootstrap.RunTUI(app)
			})
		},
	}
}
