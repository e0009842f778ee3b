package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"lineage/internal/trail"
	"lineage/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse <file>",
	Short: "Browse the key structure interactively",
	Long: `Open the input's key structure in an interactive browser: move with j/k,
fold with h/l, filter with /, yank the selected dotted path with y.

browse takes over the terminal, so it needs a file argument and an
interactive terminal; it does not read stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "-" {
			return fmt.Errorf("browse needs a file, not stdin")
		}
		f, ok := cmd.OutOrStdout().(*os.File)
		if !ok || !isatty.IsTerminal(f.Fd()) {
			return fmt.Errorf("browse needs an interactive terminal")
		}

		table, err := loadTable(args)
		if err != nil {
			return err
		}
		return tui.Run(filepath.Base(args[0]), trail.BuildForest(table))
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
