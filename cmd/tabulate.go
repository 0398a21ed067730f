package cmd

import (
	"fmt"
	"os"

	"github.com/dxftools/dxftab/internal/csvout"
	"github.com/dxftools/dxftab/internal/dxf"
	"github.com/dxftools/dxftab/internal/table"
	"github.com/dxftools/dxftab/internal/utils"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	tabCols   []string
	tabStep   float64
	tabXMin   float64
	tabXMax   float64
	tabYMin   float64
	tabYMax   float64
	tabColor  int
	tabLayer  string
	tabLayout string
	tabOut    string
)

var tabulateCmd = &cobra.Command{
	Use:   "tabulate <files...>",
	Short: "Cluster the text labels of one or more DXF files into a CSV table",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Validate configuration fully before touching any file.
		opts, err := buildOptions(cmd)
		if err != nil {
			return err
		}

		files := utils.ExpandGlobs(args)
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}

		runID := uuid.NewString()
		debugf("run %s: %d file(s)\n", runID, len(files))

		// A decode failure aborts the whole run; a CSV silently missing one
		// file's rows would be worse than an error.
		var labels []dxf.Label
		for _, f := range files {
			ls, err := dxf.Load(f)
			if err != nil {
				return err
			}
			debugf("run %s: %s: %d label(s)\n", runID, f, len(ls))
			labels = append(labels, ls...)
		}

		t := table.Build(labels, opts)
		debugf("run %s: %d column(s), %d row(s)\n", runID, len(t.Header)-2, len(t.Rows))

		out, err := csvout.Render(t)
		if err != nil {
			return err
		}
		if tabOut != "" {
			if err := utils.SafeWriteFile(tabOut, out); err != nil {
				return err
			}
			debugf("run %s: wrote %s\n", runID, tabOut)
			return nil
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

// buildOptions merges flags, the optional saved layout, and config defaults
// into run options. Precedence: flags > layout > config.
func buildOptions(cmd *cobra.Command) (table.Options, error) {
	var opts table.Options
	c := ensureConfig()
	f := cmd.Flags()

	colSpecs := tabCols
	layoutStep := 0.0
	if tabLayout != "" {
		l, err := layoutsStore().Get(tabLayout)
		if err != nil {
			return opts, err
		}
		if len(colSpecs) == 0 {
			colSpecs = l.Columns
		}
		layoutStep = l.Step
	}
	cols, err := table.ParseColumnSpecs(colSpecs)
	if err != nil {
		return opts, err
	}
	opts.Columns = cols

	switch {
	case f.Changed("step"):
		if tabStep <= 0 {
			return opts, fmt.Errorf("--step must be positive, got %v", tabStep)
		}
		opts.Step = &tabStep
	case layoutStep > 0:
		opts.Step = &layoutStep
	case c.Step > 0:
		opts.Step = &c.Step
	}

	if f.Changed("xmin") {
		opts.Filters.XMin = &tabXMin
	}
	if f.Changed("xmax") {
		opts.Filters.XMax = &tabXMax
	}
	if f.Changed("ymin") {
		opts.Filters.YMin = &tabYMin
	}
	if f.Changed("ymax") {
		opts.Filters.YMax = &tabYMax
	}

	colorVal := c.Color
	if f.Changed("color") {
		colorVal = tabColor
	}
	if colorVal >= 0 {
		if colorVal > 256 {
			return opts, fmt.Errorf("color index out of range: %d (ACI is 0-256)", colorVal)
		}
		ci := int16(colorVal)
		opts.Filters.Color = &ci
	}

	layerVal := c.Layer
	if f.Changed("layer") {
		layerVal = tabLayer
	}
	if layerVal != "" {
		opts.Filters.Layer = &layerVal
	}
	return opts, nil
}

func init() {
	tabulateCmd.Flags().StringArrayVar(&tabCols, "col", nil, "explicit column as name,boundary[,boundary] (repeatable; single boundary means an exact x)")
	tabulateCmd.Flags().Float64Var(&tabStep, "step", 0, "quantization step; coordinates are truncated toward zero to multiples of it")
	tabulateCmd.Flags().Float64Var(&tabXMin, "xmin", 0, "keep labels with x >= this")
	tabulateCmd.Flags().Float64Var(&tabXMax, "xmax", 0, "keep labels with x <= this")
	tabulateCmd.Flags().Float64Var(&tabYMin, "ymin", 0, "keep labels with y >= this")
	tabulateCmd.Flags().Float64Var(&tabYMax, "ymax", 0, "keep labels with y <= this")
	tabulateCmd.Flags().IntVar(&tabColor, "color", -1, "keep labels with this ACI color index")
	tabulateCmd.Flags().StringVar(&tabLayer, "layer", "", "keep labels on this layer (exact, case-sensitive)")
	tabulateCmd.Flags().StringVar(&tabLayout, "layout", "", "use the columns/step of a saved layout")
	tabulateCmd.Flags().StringVar(&tabOut, "out", "", "write CSV to this file instead of stdout")
	rootCmd.AddCommand(tabulateCmd)
}
