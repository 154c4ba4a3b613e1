package main

import (
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/megamek/mulkit/internal/catalog"
	"github.com/megamek/mulkit/internal/config"
	"github.com/megamek/mulkit/internal/parser"
	"github.com/megamek/mulkit/internal/report"
	"github.com/megamek/mulkit/internal/writer"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. The returned func releases what the
// command opened and must run after Execute, whatever its outcome.
func newRootCmd() (*cobra.Command, func()) {
	var configDir string
	var a *app

	root := &cobra.Command{
		Use:          ProgramName,
		Short:        "Read, summarize and rewrite MegaMek unit lists",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			a, err = newApp(configDir)
			return err
		},
	}
	root.PersistentFlags().StringVar(&configDir, "config", ".", "directory containing "+config.FileName)

	appOf := func() *app { return a }
	root.AddCommand(
		newParseCmd(appOf),
		newRewriteCmd(appOf),
		newCatalogCmd(appOf),
		newHistoryCmd(appOf),
	)
	return root, func() {
		if a != nil {
			a.Close()
			a = nil
		}
	}
}

func newParseCmd(appOf func() *app) *cobra.Command {
	var export bool
	var workers int

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse unit lists and print a summary and the warnings of each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("export") {
				export = config.GetBool("parse.export")
			}
			if !cmd.Flags().Changed("workers") {
				workers = config.GetInt("parse.workers")
			}
			if workers <= 0 {
				workers = runtime.NumCPU()
			}

			a := appOf()
			outcomes, err := a.parseFiles(cmd.Context(), args, workers)
			if err != nil {
				return err
			}

			failed := 0
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", o.Path, o.Err)
					continue
				}
				printSummary(cmd.OutOrStdout(), o.Path, o.Result)

				if export {
					path, err := report.Export(config.GetExportConfig(), report.Build(o.Path, o.Result, time.Now()))
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "report: %s\n", path)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be parsed", failed, len(outcomes))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&export, "export", false, "write a JSON report to export.outputDir (default parse.export)")
	cmd.Flags().IntVar(&workers, "workers", 0, "files parsed at once (default parse.workers, 0 for one per CPU)")
	return cmd
}

func newRewriteCmd(appOf func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rewrite <in> <out>",
		Short: "Parse a unit list and write it back out",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appOf()
			res, err := a.parse(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			r := writer.RecordOf(res)
			if isRecord(r) {
				err = writer.SaveRecordFile(args[1], r)
			} else {
				err = writer.SaveFile(args[1], res.Units())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d entities to %s (%d warnings)\n",
				len(res.Units()), args[1], res.WarningCount())
			return nil
		},
	}
}

// isRecord reports whether r has anything besides the generic unit list.
func isRecord(r writer.Record) bool {
	return len(r.Survivors)+len(r.Salvage)+len(r.Devastated)+len(r.Kills)+len(r.Pilots) > 0
}

func newCatalogCmd(appOf func() *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage stored unit templates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "import <templates.json>",
		Short: "Store the templates of a JSON catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appOf()
			templates, err := catalog.ReadTemplates(args[0])
			if err != nil {
				return err
			}

			valid := make([]*catalog.Template, 0, len(templates))
			for _, t := range templates {
				if _, err := t.Build(); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "skipping %s: %v\n", t.Name(), err)
					continue
				}
				valid = append(valid, t)
			}
			if err := a.backend.PutTemplates(valid); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d templates\n", len(valid), len(templates))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored unit templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := appOf().backend.ListTemplates()
			if err != nil {
				return err
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	})

	return cmd
}

func newHistoryCmd(appOf func() *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded parse runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := appOf().backend.ParseRuns(limit)
			if err != nil {
				return err
			}
			for _, r := range runs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  entities=%d warnings=%d\n",
					r.CreatedAt.Format(time.RFC3339), r.Source, r.Entities, r.Warnings)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to show, 0 for all")
	return cmd
}

func printSummary(w io.Writer, source string, res *parser.Result) {
	fmt.Fprintf(w, "%s (version %s)\n", source, res.Version)
	fmt.Fprintf(w, "  units: %d  survivors: %d  salvage: %d  devastated: %d\n",
		len(res.Units()), len(res.Survivors()), len(res.Salvage()), len(res.Devastated()))
	for _, e := range res.Entities() {
		u := e.Base()
		fmt.Fprintf(w, "  - %s [%s]\n", u.DisplayName(), e.Kind())
	}
	if n := len(res.KilledIDs()); n > 0 {
		fmt.Fprintf(w, "  kills: %d\n", n)
	}
	if n := len(res.Pilots()); n > 0 {
		fmt.Fprintf(w, "  pilots: %d\n", n)
	}
	if res.HasWarnings() {
		fmt.Fprintf(w, "warnings (%d):\n%s", res.WarningCount(), res.Warnings())
	}
}
