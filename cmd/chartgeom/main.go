// seehuhn.de/go/chart - geometry for chart rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command chartgeom computes chart geometry and writes it to PDF, PNG or
// JSON files.
//
// The "plot" command reads data columns from an xlsx worksheet, the
// "render" command writes the built-in scenarios of package chartcases.
package main

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/chartcases"
)

var (
	verbose bool

	kindName   string
	sheetName  string
	width      int
	height     int
	outPath    string
	configPath string
	logX       bool
	logY       bool
	transposed bool

	outDir string
	format string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chartgeom",
		Short: "Compute chart geometry",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug messages")

	plotCmd := &cobra.Command{
		Use:   "plot [input.xlsx]",
		Short: "Plot the columns of a worksheet",
		Long: `Plot reads the first column of a worksheet as X values and all further
columns as data series.  The first row holds the column names.`,
		Args: cobra.ExactArgs(1),
		RunE: runPlot,
	}
	plotCmd.Flags().StringVarP(&kindName, "kind", "k", "line", "chart kind")
	plotCmd.Flags().StringVar(&sheetName, "sheet", "", "worksheet name (default: first sheet)")
	plotCmd.Flags().IntVar(&width, "width", 400, "page width in pixels")
	plotCmd.Flags().IntVar(&height, "height", 300, "page height in pixels")
	plotCmd.Flags().StringVarP(&outPath, "out", "o", "chart.pdf", "output file (.pdf, .png or .json)")
	plotCmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML series configuration")
	plotCmd.Flags().BoolVar(&logX, "log-x", false, "logarithmic X axis")
	plotCmd.Flags().BoolVar(&logY, "log-y", false, "logarithmic Y axis")
	plotCmd.Flags().BoolVar(&transposed, "transposed", false, "swap the horizontal and vertical directions")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in scenarios and chart kinds",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	renderCmd := &cobra.Command{
		Use:   "render [scenario...]",
		Short: "Write built-in scenarios to files",
		Long: `Render writes the named scenarios, or all scenarios if no name is given,
to the output directory.  Scenario names are printed by the list command.`,
		RunE: runRender,
	}
	renderCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	renderCmd.Flags().StringVarP(&format, "format", "f", "pdf", "output format: pdf, png or json")

	rootCmd.AddCommand(plotCmd, listCmd, renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	chart.SetLogger(logger)
}

func runPlot(cmd *cobra.Command, args []string) error {
	kind, err := chart.ParseKind(kindName)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("reading configuration: %w", err)
	}
	if transposed {
		cfg.Series.IsTransposed = true
	}

	t, err := loadTable(args[0], sheetName)
	if err != nil {
		return fmt.Errorf("reading data: %w", err)
	}
	slog.Debug("table loaded", "sheet", t.Sheet, "rows", len(t.X), "series", t.Names)

	values, err := makeValues(kind, t, cfg)
	if err != nil {
		return err
	}
	opt := layoutOptions{
		Width:      width,
		Height:     height,
		LogX:       logX,
		LogY:       logY,
		Transposed: cfg.Series.IsTransposed,
	}
	geoms, err := layout(kind, values, &cfg.Series, opt)
	if err != nil {
		return err
	}
	if err := writeOutput(outPath, kind, width, height, geoms); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	slog.Info("chart written", "file", outPath, "kind", kind, "segments", len(geoms))
	return nil
}

// scenarios returns all built-in scenarios, keyed by their full name.
func scenarios() map[string]*chartcases.TestCase {
	res := make(map[string]*chartcases.TestCase)
	for category, cases := range chartcases.All {
		for i := range cases {
			res[category+"_"+cases[i].Name] = &cases[i]
		}
	}
	return res
}

func runList(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "scenarios:")
	all := scenarios()
	for _, name := range slices.Sorted(maps.Keys(all)) {
		fmt.Fprintf(w, "  %-36s %s\n", name, all[name].Kind)
	}
	fmt.Fprintln(w, "chart kinds:")
	for _, k := range chart.Kinds() {
		fmt.Fprintf(w, "  %s\n", k)
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	all := scenarios()
	names := args
	if len(names) == 0 {
		names = slices.Sorted(maps.Keys(all))
	}
	switch format {
	case "pdf", "png", "json":
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}

	for _, name := range names {
		tc, ok := all[name]
		if !ok {
			return fmt.Errorf("unknown scenario %q", name)
		}
		fileName := filepath.Join(outDir, name+"."+format)
		if err := writeOutput(fileName, tc.Kind, tc.Width, tc.Height, tc.Build()); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		slog.Debug("scenario written", "file", fileName)
	}
	slog.Info("scenarios written", "count", len(names), "dir", outDir)
	return nil
}
