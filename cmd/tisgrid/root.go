package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/tisgrid/config"
	"github.com/ezrec/tisgrid/debugger"
	"github.com/ezrec/tisgrid/translate"
)

var (
	configPath string
	verbose    bool
	lang       string
)

var rootCmd = &cobra.Command{
	Use:   "tisgrid [node0.tis node1.tis node2.tis node3.tis]",
	Short: "Single step a 2x2 grid of accumulator nodes",
	Long: `tisgrid loads one program per node, draws the grid, and steps every
node once each time a line is entered. A line containing 'q' quits
after its step.

Programs come from four assembly files, a YAML config (--config), or
the built-in demonstration programs.`,
	Args:          cobra.RangeArgs(0, 4),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDebugger,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML grid configuration")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
	rootCmd.PersistentFlags().StringVar(&lang, "lang", "", "Message language, overriding the host locale")

	rootCmd.AddCommand(listCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig selects the configuration from the flags and arguments.
func loadConfig(args []string) (cfg *config.Config, err error) {
	switch {
	case len(args) > 0:
		cfg, err = config.FromFiles(args...)
	case configPath != "":
		cfg, err = config.Load(configPath)
	default:
		def := config.Default()
		cfg = &def
	}
	if err != nil {
		return
	}

	if verbose {
		cfg.Verbose = true
	}
	if lang != "" {
		cfg.Language = lang
	}
	if cfg.Language != "" {
		translate.Use(cfg.Language)
	}

	return
}

func runDebugger(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	g, err := cfg.Grid()
	if err != nil {
		return err
	}

	dbg := &debugger.Debugger{
		Verbose: cfg.Verbose,
		Grid:    g,
		Input:   os.Stdin,
		Output:  cmd.OutOrStdout(),
	}

	return dbg.Run()
}
