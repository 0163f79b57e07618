package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"studyhub/internal/bootstrap"
	reminderdto "studyhub/internal/modules/reminder/dto"
)

func newRemindCmd(opts *rootOptions) *cobra.Command {
	var at, every string
	remind := &cobra.Command{
		Use:   "remind",
		Short: "Print a study digest on a schedule until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				if at == "" {
					at = app.Config.ReminderAt
				}
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
				w := cmd.OutOrStdout()
				if every != "" {
					_, _ = fmt.Fprintf(w, "reminding every %s, ctrl-c to stop\n", every)
				} else {
					_, _ = fmt.Fprintf(w, "reminding daily at %s, ctrl-c to stop\n", at)
				}
				return app.Reminder.Run(ctx, reminderdto.ScheduleInput{At: at, Every: every}, func(d reminderdto.DigestOutput) {
					_, _ = fmt.Fprintf(w, "\n%s\n", strings.Join(d.Lines, "\n"))
				})
			})
		},
	}
	remind.Flags().StringVar(&at, "at", "", "daily time HH:MM (default from config)")
	remind.Flags().StringVar(&every, "every", "", "repeat interval instead, e.g. 45m")
	return remind
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string
	export := &cobra.Command{
		Use:   "export",
		Short: "Dump all stored collections as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			dump, err := app.Export(context.Background())
			if err != nil {
				return err
			}
			raw, err := json.MarshalIndent(dump, "", "  ")
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			if out == "" || out == "-" {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			}
			if err := os.WriteFile(out, append(raw, '\n'), 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d collections to %s\n", len(dump), out)
			return nil
		},
	}
	export.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return export
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Load collections from an export or browser local-storage dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import: %w", err)
			}
			dump := map[string]json.RawMessage{}
			if err := json.Unmarshal(raw, &dump); err != nil {
				return fmt.Errorf("decode import: %w", err)
			}
			app, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer app.Close()
			keys, err := app.Import(context.Background(), dump)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", strings.Join(keys, ", "))
			return nil
		},
	}
}
