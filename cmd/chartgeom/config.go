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

package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/series"
)

// plotConfig holds the settings of the plot command which can be read from
// a TOML file.
type plotConfig struct {
	Series chart.SeriesConfig `toml:"series"`

	Spline    series.SplineType     `toml:"spline"`
	Quartiles series.QuartileMethod `toml:"quartiles"`
	Pyramid   series.PyramidMode    `toml:"pyramid"`

	// GapRatio is the fraction of the funnel or pyramid height left empty
	// between slices.
	GapRatio float64 `toml:"gap-ratio"`

	// BarWidth is the width of columns and candles, in X units.
	BarWidth float64 `toml:"bar-width"`

	// Percent stacks the series to 100%.
	Percent bool `toml:"percent"`

	Trend     trendConfig    `toml:"trend"`
	ErrorBars errorBarConfig `toml:"error-bars"`
}

type trendConfig struct {
	Type     series.TrendType `toml:"type"`
	Order    int              `toml:"order"`
	Period   int              `toml:"period"`
	Forward  float64          `toml:"forward"`
	Backward float64          `toml:"backward"`
}

type errorBarConfig struct {
	Type       series.ErrorBarType `toml:"type"`
	Horizontal float64             `toml:"horizontal"`
	Vertical   float64             `toml:"vertical"`
}

func defaultPlotConfig() *plotConfig {
	return &plotConfig{
		Series:    *chart.DefaultConfig(),
		Spline:    series.Natural,
		Quartiles: series.Exclusive,
		BarWidth:  0.8,
		Trend: trendConfig{
			Type:   series.LinearTrend,
			Order:  2,
			Period: 2,
		},
		ErrorBars: errorBarConfig{
			Type:     series.StandardError,
			Vertical: 1,
		},
	}
}

// loadConfig reads a TOML configuration file.  Settings missing from the
// file keep their default values.  Unknown keys are an error.
func loadConfig(fileName string) (*plotConfig, error) {
	cfg := defaultPlotConfig()
	if fileName == "" {
		return cfg, nil
	}

	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := toml.NewDecoder(f).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return cfg, nil
}
