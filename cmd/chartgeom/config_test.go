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
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/series"
)

func TestLoadConfig(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "plot.toml")
	data := `
spline = "monotonic"
quartiles = "inclusive"
bar-width = 0.5

[series]
closed = false
step = "mid"

[series.funnel]
mode = "value-is-width"

[trend]
type = "polynomial"
order = 3
`
	if err := os.WriteFile(fileName, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(fileName)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Spline != series.Monotonic || cfg.Quartiles != series.Inclusive {
		t.Errorf("spline %s, quartiles %s", cfg.Spline, cfg.Quartiles)
	}
	if cfg.BarWidth != 0.5 {
		t.Errorf("bar width %g", cfg.BarWidth)
	}
	if cfg.Series.IsClosed || cfg.Series.Step != chart.StepMid {
		t.Errorf("series settings not applied: %+v", cfg.Series)
	}
	if cfg.Series.Funnel.Mode != chart.ValueIsWidth {
		t.Errorf("funnel mode %s", cfg.Series.Funnel.Mode)
	}
	if cfg.Trend.Type != series.PolynomialTrend || cfg.Trend.Order != 3 {
		t.Errorf("trend %+v", cfg.Trend)
	}

	// settings missing from the file keep their defaults
	def := chart.DefaultConfig()
	if cfg.Series.Marker != def.Marker || cfg.Series.OutlierRadius != def.OutlierRadius {
		t.Error("defaults were overwritten")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"unknown key", `colour = "red"`},
		{"bad enum", `spline = "bezier"`},
		{"bad syntax", `spline = `},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			fileName := filepath.Join(t.TempDir(), "plot.toml")
			if err := os.WriteFile(fileName, []byte(c.data), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := loadConfig(fileName); err == nil {
				t.Error("invalid configuration accepted")
			}
		})
	}
}
