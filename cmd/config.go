package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/dxftools/dxftab/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set dxftab configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := ensureConfig()
		if c.Step > 0 {
			fmt.Printf("step: %v\n", c.Step)
		}
		if c.Layer != "" {
			fmt.Printf("layer: %s\n", c.Layer)
		}
		if c.Color >= 0 {
			fmt.Printf("color: %d\n", c.Color)
		}
		fmt.Printf("layouts_file: %s\n", c.LayoutsFile)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "step":
			s, err := strconv.ParseFloat(val, 64)
			if err != nil || s < 0 {
				return fmt.Errorf("invalid step: %s (want a positive number, or 0 to clear)", val)
			}
			cfg.Step = s
		case "layer":
			cfg.Layer = val
		case "color":
			n, err := strconv.Atoi(val)
			if err != nil || n < -1 || n > 256 {
				return fmt.Errorf("invalid color: %s (ACI is 0-256, -1 clears)", val)
			}
			cfg.Color = n
		case "layouts_file":
			cfg.LayoutsFile = val
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
