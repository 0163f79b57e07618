package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"studyhub/internal/bootstrap"
	scoresdto "studyhub/internal/modules/scores/dto"
)

func newDashboardCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show countdown and study summary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.DashboardCLI.Summary(ctx)
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "Welcome back, %s\n", s.Greeting)
				_, _ = fmt.Fprintf(w, "exam in %d days (%dd %02dh %02dm %02ds)\n", s.DaysUntilExam, s.Countdown.Days, s.Countdown.Hours, s.Countdown.Minutes, s.Countdown.Seconds)
				_, _ = fmt.Fprintf(w, "syllabus: %d%% overall, quants %d%%, verbal %d%% (%d/%d topics)\n", s.ProgressOverall, s.ProgressQuants, s.ProgressVerbal, s.TopicsDone, s.TopicsTotal)
				_, _ = fmt.Fprintf(w, "goals today: %d/%d\n", s.GoalsDone, s.GoalsTotal)
				latest := "-"
				if s.LatestScore != nil {
					latest = fmt.Sprint(*s.LatestScore)
				}
				_, _ = fmt.Fprintf(w, "mocks: %d taken, latest %s, best %d, average %d\n", s.MockCount, latest, s.BestScore, s.AverageScore)
				_, _ = fmt.Fprintf(w, "studied today: %dh %02dm\n", s.StudyMinutesToday/60, s.StudyMinutesToday%60)
				return nil
			})
		},
	}
}

func newProgressCmd(opts *rootOptions) *cobra.Command {
	progress := &cobra.Command{Use: "progress", Short: "Syllabus checklist"}

	var category, unit string
	list := &cobra.Command{
		Use:   "list",
		Short: "List checklist topics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				items, err := app.ProgressCLI.List(ctx, category, unit)
				if err != nil {
					return err
				}
				for _, it := range items {
					mark := " "
					if it.Completed {
						mark = "x"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\t%s\t%s\n", mark, it.ID, it.Label, it.Unit)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&category, "category", "", "quants|verbal")
	list.Flags().StringVar(&unit, "unit", "", "unit tag, e.g. algebra")

	toggle := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a topic between done and pending",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ProgressCLI.Toggle(ctx, args[0])
				if err != nil {
					return err
				}
				if !out.Found {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no topic %s\n", args[0])
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s completed=%t\n", out.Item.Label, out.Item.Completed)
				return nil
			})
		},
	}

	units := &cobra.Command{
		Use:   "units",
		Short: "Show completion per unit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.ProgressCLI.Summary(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "overall %d%%\tquants %d%%\tverbal %d%%\n", s.Overall, s.Quants, s.Verbal)
				for _, u := range s.Units {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%-14s %3d%%  %d/%d\n", u.Unit, u.Percent, u.Done, u.Total)
				}
				return nil
			})
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default checklist",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.ProgressCLI.Reset(ctx); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "checklist reset")
				return nil
			})
		},
	}

	progress.AddCommand(list, toggle, units, reset)
	return progress
}

func newScoresCmd(opts *rootOptions) *cobra.Command {
	scores := &cobra.Command{Use: "scores", Short: "Mock test scores"}

	var in scoresdto.AddInput
	add := &cobra.Command{
		Use:   "add --name <mock> --exam INDORE|ROHTAK|JIPMAT --date YYYY-MM-DD",
		Short: "Record a mock score",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.ScoresCLI.Add(ctx, in)
				if err != nil {
					return err
				}
				if !out.Added {
					return fmt.Errorf("--name and --date are required")
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s: %s total=%d\n", out.Score.ID, out.Score.MockName, out.Score.TotalScore)
				return nil
			})
		},
	}
	add.Flags().StringVar(&in.MockName, "name", "", "mock test name")
	add.Flags().StringVar(&in.ExamType, "exam", "INDORE", "INDORE|ROHTAK|JIPMAT")
	add.Flags().StringVar(&in.Date, "date", "", "test date YYYY-MM-DD")
	add.Flags().StringVar(&in.SA, "sa", "", "short-answer marks (INDORE)")
	add.Flags().StringVar(&in.MCQ, "mcq", "", "multiple-choice marks (INDORE)")
	add.Flags().StringVar(&in.QA, "qa", "", "quantitative marks (ROHTAK, JIPMAT)")
	add.Flags().StringVar(&in.VA, "va", "", "verbal marks")
	add.Flags().StringVar(&in.LR, "lr", "", "logical reasoning marks (ROHTAK)")

	var field, direction string
	list := &cobra.Command{
		Use:   "list",
		Short: "List recorded scores",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.ScoresCLI.List(ctx, field, direction)
				if err != nil {
					return err
				}
				if len(rows) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no scores")
					return nil
				}
				for _, s := range rows {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\t%d\n", s.ID, s.Date, s.ExamType, s.MockName, formatSections(s.Sections), s.TotalScore)
				}
				return nil
			})
		},
	}
	list.Flags().StringVar(&field, "sort", "date", "date|totalScore")
	list.Flags().StringVar(&direction, "dir", "desc", "asc|desc")

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				removed, err := app.ScoresCLI.Delete(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted=%t\n", removed)
				return nil
			})
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Average and best totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.ScoresCLI.Stats(ctx)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "all\tcount=%d\taverage=%d\tbest=%d\n", s.Count, s.Average, s.Best)
				for _, e := range s.ByExam {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\tcount=%d\taverage=%d\tbest=%d\n", e.ExamType, e.Count, e.Average, e.Best)
				}
				return nil
			})
		},
	}

	scores.AddCommand(add, list, del, stats)
	return scores
}

func formatSections(sections map[string]int) string {
	keys := make([]string, 0, len(sections))
	for k := range sections {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, sections[k]))
	}
	return strings.Join(parts, " ")
}
