package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

type opts struct {
	table   bool
	limit   int
	verbose bool
}

func rootCmd() *cobra.Command {
	var o opts
	cmd := &cobra.Command{
		Use:           "diffapply <file.yaml>",
		Short:         "apply added and removed ids to a base list",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(newLogger(o.verbose))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := run(args[0], o, cmd.OutOrStdout()); err != nil {
				slog.Error("diffapply failed", tint.Err(err))
				return err
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&o.table, "table", "t", false, "print a table with position and source")
	cmd.Flags().IntVarP(&o.limit, "limit", "n", 0, "number of ids to print (0 = all)")
	cmd.Flags().BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func run(path string, o opts, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	doc, err := decodeDocument(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("document loaded", "path", path,
		"base", len(doc.Base), "added", len(doc.Added), "removed", len(doc.Removed))

	rows, err := apply(doc, o.limit)
	if err != nil {
		return err
	}
	slog.Debug("diff applied", "rows", len(rows))

	if o.table {
		renderTable(rows, out)
		return nil
	}
	for _, r := range rows {
		fmt.Fprintln(out, r.id)
	}
	return nil
}

func renderTable(rows []row, out io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.AppendHeader(table.Row{"#", "ID", "Source"})
	tw.AppendSeparator()
	for i, r := range rows {
		source := "base"
		if r.added {
			source = "added"
		}
		tw.AppendRow(table.Row{i + 1, r.id, source})
	}
	tw.Render()
}
