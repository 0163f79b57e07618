package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studyhub/internal/bootstrap"
	vocabdto "studyhub/internal/modules/vocab/dto"
	apperrors "studyhub/internal/platform/errors"
)

func newVocabCmd(opts *rootOptions) *cobra.Command {
	vocab := &cobra.Command{Use: "vocab", Short: "Vocabulary hub"}

	var category, query string
	list := &cobra.Command{
		Use:   "list",
		Short: "List built-in and saved words",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.VocabCLI.List(ctx, category, query)
				if err != nil {
					return err
				}
				printRows(cmd, out)
				return nil
			})
		},
	}
	list.Flags().StringVar(&category, "category", "", "idioms|phrasal|daily")
	list.Flags().StringVar(&query, "query", "", "filter by term or meaning")

	search := &cobra.Command{
		Use:   "search <query>",
		Short: "Search terms and meanings",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.VocabCLI.List(ctx, "", strings.Join(args, " "))
				if err != nil {
					return err
				}
				printRows(cmd, out)
				return nil
			})
		},
	}

	var in vocabdto.AddInput
	var lookup bool
	add := &cobra.Command{
		Use:   "add --term <term> [--meaning <text>]",
		Short: "Save a word",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				if lookup && strings.TrimSpace(in.Meaning) == "" {
					def, err := app.VocabCLI.Lookup(ctx, in.Term)
					switch {
					case err == nil:
						in.Meaning = def.Definition
						if in.Example == "" {
							in.Example = def.Example
						}
					case errors.Is(err, apperrors.ErrLookupNotFound), errors.Is(err, apperrors.ErrLookupUnavailable):
						_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "lookup skipped: %v\n", err)
					default:
						return err
					}
				}
				out, err := app.VocabCLI.Add(ctx, in)
				if err != nil {
					return err
				}
				if !out.Added {
					return fmt.Errorf("--term and --meaning are required")
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s: %s\n", out.Row.ID, out.Row.Term)
				return nil
			})
		},
	}
	add.Flags().StringVar(&in.Term, "term", "", "word or phrase")
	add.Flags().StringVar(&in.Meaning, "meaning", "", "meaning")
	add.Flags().StringVar(&in.Example, "example", "", "example sentence")
	add.Flags().StringVar(&in.Origin, "origin", "", "etymology")
	add.Flags().StringVar(&in.Category, "category", "daily", "idioms|phrasal|daily")
	add.Flags().BoolVar(&lookup, "lookup", false, "fill a missing meaning from the online dictionary")

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a saved word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				removed, err := app.VocabCLI.Remove(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed=%t\n", removed)
				return nil
			})
		},
	}

	lookupCmd := &cobra.Command{
		Use:   "lookup <term>",
		Short: "Look a term up in the online dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				def, err := app.VocabCLI.Lookup(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", def.Term, def.Definition)
				if def.Example != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  e.g. %s\n", def.Example)
				}
				return nil
			})
		},
	}

	vocab.AddCommand(list, search, add, remove, lookupCmd)
	return vocab
}

func printRows(cmd *cobra.Command, out vocabdto.ListOutput) {
	if len(out.Rows) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no words")
		return
	}
	for _, r := range out.Rows {
		id := "builtin"
		if r.UserAdded {
			id = r.ID
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", r.Category, id, r.Term, r.Meaning)
	}
}

func newVaultCmd(opts *rootOptions) *cobra.Command {
	vault := &cobra.Command{Use: "vault", Short: "Formula reference"}

	vault.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Search formulas by name, expression or subtopic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.VaultCLI.Search(ctx, strings.Join(args, " "))
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				for _, c := range out.Categories {
					_, _ = fmt.Fprintf(w, "%s\n", c.Title)
					for _, s := range c.Subtopics {
						_, _ = fmt.Fprintf(w, "  %s\n", s.Name)
						for _, f := range s.Formulas {
							_, _ = fmt.Fprintf(w, "    %s: %s\n", f.Name, f.Latex)
						}
					}
				}
				_, _ = fmt.Fprintf(w, "%d of %d formulas\n", out.Matches, out.Total)
				return nil
			})
		},
	})

	vault.AddCommand(&cobra.Command{
		Use:   "topics",
		Short: "List formula topics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				topics, err := app.VaultCLI.Topics(ctx)
				if err != nil {
					return err
				}
				for _, t := range topics {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\n", t.ID, t.CategoryTitle, t.Name, t.Count)
				}
				return nil
			})
		},
	})

	vault.AddCommand(&cobra.Command{
		Use:   "show <topic-id>",
		Short: "Show every formula of a topic or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withUser(opts, func(ctx context.Context, app *bootstrap.App) error {
				out, err := app.VaultCLI.Show(ctx, args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "%s / %s\n", out.Topic.CategoryTitle, out.Topic.Name)
				for _, f := range out.Formulas {
					_, _ = fmt.Fprintf(w, "  %s: %s\n", f.Name, f.Latex)
					if f.Description != "" {
						_, _ = fmt.Fprintf(w, "    %s\n", f.Description)
					}
				}
				return nil
			})
		},
	})
	return vault
}
