package cmd

import (
	"github.com/spf13/cobra"

	"lineage/internal/render"
	"lineage/internal/trail"
)

var (
	contextPattern string
	contextLines   string
	contextWhere   string
	contextNumbers bool
)

var contextCmd = &cobra.Command{
	Use:   "context [file]",
	Short: "Print matched lines below their ancestor lines",
	Long: `Print every selected line in its original form, preceded by the ancestor
lines that lead to it. Each ancestor is printed once, before the first
match that needs it, so overlapping matches share their common context:

    http {
        server {
            listen 443;
            location / {
                proxy_pass http://backend;

Reads the named file, - or nothing for stdin, and .gz files transparently.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := trail.NewFilter(contextPattern, contextLines, contextWhere)
		if err != nil {
			return err
		}

		numbers := cfg.LineNumbers
		if cmd.Flags().Changed("line-numbers") {
			numbers = contextNumbers
		}

		table, err := loadTable(args)
		if err != nil {
			return err
		}
		matches, err := filter.Apply(table)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		render.Context{Styles: newStyles(out), LineNumbers: numbers}.Render(out, table, matches)
		return nil
	},
}

func init() {
	contextCmd.Flags().StringVarP(&contextPattern, "pattern", "e", "", "Only lines matching this regular expression")
	contextCmd.Flags().StringVarP(&contextLines, "lines", "l", "", "Only these 1-based lines (e.g. 3,10-20)")
	contextCmd.Flags().StringVarP(&contextWhere, "where", "w", "", "Only lines where this JavaScript expression is true (e.g. 'depth > 2')")
	contextCmd.Flags().BoolVarP(&contextNumbers, "line-numbers", "n", false, "Prefix every printed line with its line number")

	rootCmd.AddCommand(contextCmd)
}
