package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"lineage/internal/render"
	"lineage/internal/trail"
)

var (
	showPattern string
	showLines   string
	showWhere   string
	showOutput  string
)

var showCmd = &cobra.Command{
	Use:   "show [file]",
	Short: "Print matched lines with their dotted ancestor chain",
	Long: `Print every selected line prefixed with its line number and the dotted
chain of ancestor keys leading to it:

    42: http.server.location: proxy_pass http://backend;

Reads the named file, - or nothing for stdin, and .gz files transparently.
All filters are combined; a line must pass every one given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := trail.NewFilter(showPattern, showLines, showWhere)
		if err != nil {
			return err
		}

		format := cfg.Output
		if cmd.Flags().Changed("output") {
			format = showOutput
		}
		if format != "text" && format != "json" && format != "yaml" {
			return fmt.Errorf("invalid output format %q (want text, json or yaml)", format)
		}

		table, err := loadTable(args)
		if err != nil {
			return err
		}
		matches, err := filter.Apply(table)
		if err != nil {
			return err
		}
		slog.Debug("filter applied", "lines", table.Len(), "matches", len(matches))

		out := cmd.OutOrStdout()
		switch format {
		case "json":
			return render.EncodeJSON(out, table, matches)
		case "yaml":
			return render.EncodeYAML(out, table, matches)
		}

		render.Inline{Styles: newStyles(out)}.Render(out, table, matches)
		return nil
	},
}

func init() {
	showCmd.Flags().StringVarP(&showPattern, "pattern", "e", "", "Only lines matching this regular expression")
	showCmd.Flags().StringVarP(&showLines, "lines", "l", "", "Only these 1-based lines (e.g. 3,10-20)")
	showCmd.Flags().StringVarP(&showWhere, "where", "w", "", "Only lines where this JavaScript expression is true (e.g. 'depth > 2')")
	showCmd.Flags().StringVarP(&showOutput, "output", "o", "text", "Output format (text, json, yaml)")

	rootCmd.AddCommand(showCmd)
}
