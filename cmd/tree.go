package cmd

import (
	"github.com/spf13/cobra"

	"lineage/internal/render"
	"lineage/internal/trail"
)

var treeKeys bool

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print the key structure as an indented outline",
	Long: `Print the keys of the input as a two-space indented outline, each key
followed by its source line number. Lines that introduce no key (blank
lines, bare values) do not appear.

Reads the named file, - or nothing for stdin, and .gz files transparently.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadTable(args)
		if err != nil {
			return err
		}
		forest := trail.BuildForest(table)

		out := cmd.OutOrStdout()
		render.Tree{Styles: newStyles(out), KeysOnly: treeKeys}.Render(out, forest)
		return nil
	},
}

func init() {
	treeCmd.Flags().BoolVar(&treeKeys, "keys", false, "Print keys only, without line numbers")

	rootCmd.AddCommand(treeCmd)
}
