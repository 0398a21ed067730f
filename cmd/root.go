package cmd

import (
	"fmt"
	"os"

	cfgpkg "github.com/dxftools/dxftab/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "dxftab",
	Short: "dxftab: tabulate DXF text labels into CSV",
	Long:  `dxftab clusters the text labels of DXF drawings into rows (by Y position) and columns (by X ranges) and emits the result as a CSV table.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.dxftab/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: allow running commands that don't need config
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// ensureConfig lazily loads config for commands invoked outside Execute()
// (tests drive rootCmd directly, skipping cobra.OnInitialize).
func ensureConfig() *cfgpkg.Global {
	if cfg == nil {
		if c, err := cfgpkg.Load(cfgFile); err == nil {
			cfg = c
		}
	}
	if cfg == nil {
		return &cfgpkg.Global{Color: -1}
	}
	return cfg
}

func debugf(format string, args ...any) {
	if debug {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
