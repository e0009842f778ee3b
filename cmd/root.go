package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"lineage/internal/config"
	"lineage/internal/input"
	"lineage/internal/render"
	"lineage/internal/trail"
	"lineage/internal/version"
)

var (
	cfgFile   string
	colorMode string
	verbose   bool

	cfg   = config.Default()
	color = render.ColorAuto
)

var rootCmd = &cobra.Command{
	Use:   "lineage",
	Short: "Show the indentation lineage of every line",
	Long: `lineage rebuilds, for every line of an indented text file, the path of
ancestor keys leading to it: the chain of less-indented lines above it.
It works on anything whose structure is expressed through indentation -
YAML, nginx or CoreDNS configs, Python sources, outline notes.

Matched lines can be printed inline with their dotted chain (show), below
their ancestor lines (context), as an outline (tree), or browsed
interactively (browse).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		if cmd.Flags().Changed("color") {
			cfg.Color = colorMode
		}
		mode, err := render.ParseColorMode(cfg.Color)
		if err != nil {
			return err
		}
		color = mode
		setupLogging(verbose)
		return nil
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("lineage %s\n", version.String()))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default .lineage.yaml in . or $HOME)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "auto", "Colorize output (auto, always, never)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// source returns the input path from positional args, "" meaning stdin.
func source(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// loadTable reads the input named by args and builds its path table.
func loadTable(args []string) (*trail.Table, error) {
	lines, err := input.Read(source(args))
	if err != nil {
		return nil, err
	}
	slog.Debug("input read", "lines", len(lines))
	return trail.NewTable(lines), nil
}

// newStyles resolves the validated color mode against w.
func newStyles(w io.Writer) render.Styles {
	return render.NewStyles(color.Enabled(w))
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
