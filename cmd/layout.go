package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	layoutpkg "github.com/dxftools/dxftab/internal/layout"
	"github.com/spf13/cobra"
)

var (
	loCols        []string
	loStep        float64
	loDescription string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Manage saved column layouts",
}

var layoutSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save or update a named column layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if loStep < 0 {
			return fmt.Errorf("--step must be positive, got %v", loStep)
		}
		l := layoutpkg.Layout{
			Name:        args[0],
			Description: loDescription,
			Columns:     loCols,
			Step:        loStep,
		}
		if err := layoutsStore().Put(l); err != nil {
			return err
		}
		fmt.Printf("✓ Saved layout %q (%d columns)\n", l.Name, len(l.Columns))
		return nil
	},
}

var layoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved column layouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ls, err := layoutsStore().Load()
		if err != nil {
			return err
		}
		if len(ls) == 0 {
			fmt.Println("No layouts saved")
			return nil
		}
		for _, l := range ls {
			fmt.Printf("%s  [%s]\n", l.Name, l.ID)
			if l.Description != "" {
				fmt.Printf("  %s\n", l.Description)
			}
			fmt.Printf("  columns: %s\n", strings.Join(l.Columns, "; "))
			if l.Step > 0 {
				fmt.Printf("  step: %v\n", l.Step)
			}
		}
		return nil
	},
}

var layoutDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved column layout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := layoutsStore().Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("✓ Deleted layout %q\n", args[0])
		return nil
	},
}

func layoutsStore() *layoutpkg.Store {
	path := ensureConfig().LayoutsFile
	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, ".dxftab", "layouts.yaml")
		} else {
			path = "layouts.yaml"
		}
	}
	return layoutpkg.NewStore(path)
}

func init() {
	layoutSaveCmd.Flags().StringArrayVar(&loCols, "col", nil, "column as name,boundary[,boundary] (repeatable)")
	layoutSaveCmd.Flags().Float64Var(&loStep, "step", 0, "default quantization step for this layout")
	layoutSaveCmd.Flags().StringVarP(&loDescription, "description", "d", "", "layout description")
	layoutCmd.AddCommand(layoutSaveCmd)
	layoutCmd.AddCommand(layoutListCmd)
	layoutCmd.AddCommand(layoutDeleteCmd)
	rootCmd.AddCommand(layoutCmd)
}
