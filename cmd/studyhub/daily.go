package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studyhub/internal/bootstrap"
)

func newGoalsCmd(opts *rootOptions) *cobra.Command {
	goals := &cobra.Command{Use: "goals", Short: "Today's goals"}

	goals.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List today's goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				today, err := app.GoalsCLI.Today(ctx)
				if err != nil {
					return err
				}
				if today.Total == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals for today")
					return nil
				}
				for _, g := range today.Goals {
					mark := " "
					if g.Completed {
						mark = "x"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\t%s\n", mark, g.ID, g.Text)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d/%d done\n", today.Done, today.Total)
				return nil
			})
		},
	})

	goals.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a goal for today",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalsCLI.Add(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				if !out.Added {
					return fmt.Errorf("goal text is required")
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s\n", out.Goal.ID)
				return nil
			})
		},
	})

	goals.AddCommand(&cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a goal between done and pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.GoalsCLI.Toggle(ctx, args[0])
				if err != nil {
					return err
				}
				if !out.Found {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no goal %s today\n", args[0])
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s completed=%t\n", out.Goal.Text, out.Goal.Completed)
				return nil
			})
		},
	})

	goals.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of today's goals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				removed, err := app.GoalsCLI.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted=%t\n", removed)
				return nil
			})
		},
	})
	return goals
}

func newLogCmd(opts *rootOptions) *cobra.Command {
	log := &cobra.Command{Use: "log", Short: "Daily study log"}

	var showDate string
	show := &cobra.Command{
		Use:   "show",
		Short: "Show the log for a day",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				day, err := app.JournalCLI.Day(ctx, showDate)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%s\tprev=%s", day.Log.Date, day.Previous)
				if day.HasNext {
					_, _ = fmt.Fprintf(w, "\tnext=%s", day.Next)
				}
				_, _ = fmt.Fprintln(w)
				if !day.Found {
					_, _ = fmt.Fprintln(w, "nothing logged")
					return nil
				}
				_, _ = fmt.Fprintf(w, "studied %dh %dm\n\n%s\n", day.Log.StudyHours, day.Log.StudyMinutes, day.Log.Content)
				return nil
			})
		},
	}
	show.Flags().StringVar(&showDate, "date", "", "day YYYY-MM-DD (default today)")

	var saveDate, content, hours, minutes string
	save := &cobra.Command{
		Use:   "save --content <text> --hours <h> --minutes <m>",
		Short: "Write the log for a day, replacing any earlier entry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.JournalCLI.Save(ctx, saveDate, content, hours, minutes)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "saved %s: %dh %dm\n", out.Date, out.StudyHours, out.StudyMinutes)
				return nil
			})
		},
	}
	save.Flags().StringVar(&saveDate, "date", "", "day YYYY-MM-DD (default today)")
	save.Flags().StringVar(&content, "content", "", "what you studied")
	save.Flags().StringVar(&hours, "hours", "0", "hours studied")
	save.Flags().StringVar(&minutes, "minutes", "0", "minutes studied")

	week := &cobra.Command{
		Use:   "week",
		Short: "Study time over the last seven days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.JournalCLI.Week(ctx)
				if err != nil {
					return err
				}
				for _, d := range out.Days {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %3dm  %s\n", d.Date, d.Minutes, strings.Repeat("#", d.Minutes/15))
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "total %dh %02dm over %d days\n", out.TotalMinutes/60, out.TotalMinutes%60, out.DaysLogged)
				return nil
			})
		},
	}

	export := &cobra.Command{
		Use:   "export",
		Short: "Write every log as a markdown note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.JournalCLI.Export(ctx)
				if err != nil {
					return err
				}
				for _, p := range out.Written {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d written, %d unchanged\n", len(out.Written), out.Unchanged)
				return nil
			})
		},
	}

	log.AddCommand(show, save, week, export)
	return log
}
