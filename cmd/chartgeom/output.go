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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/chart"
	"seehuhn.de/go/chart/paint"
)

// layoutOptions describe the page and the axis scaling.
type layoutOptions struct {
	Width, Height int
	LogX, LogY    bool
	Transposed    bool
}

// margin is the distance between the page edge and the viewport, in
// pixels.
const margin = 10

func (o layoutOptions) viewport() rect.Rect {
	return rect.Rect{
		LLx: margin,
		LLy: margin,
		URx: float64(o.Width) - margin,
		URy: float64(o.Height) - margin,
	}
}

// writeOutput writes the geometry of segments of kind k to fileName.  The
// format is chosen by the file name extension: ".pdf", ".png" or ".json".
func writeOutput(fileName string, k chart.Kind, width, height int, geoms []chart.Geometry) error {
	st := paint.StyleFor(k)
	layers := make([]paint.Layer, len(geoms))
	for i, g := range geoms {
		layers[i] = paint.Layer{Geometry: g, Style: st}
	}

	switch ext := strings.ToLower(filepath.Ext(fileName)); ext {
	case ".pdf":
		return paint.WritePDF(fileName, float64(width), float64(height), layers...)

	case ".png":
		f, err := os.Create(fileName)
		if err != nil {
			return err
		}
		err = paint.WritePNG(f, width, height, layers...)
		if err != nil {
			f.Close()
			return err
		}
		return f.Close()

	case ".json":
		out := make([]paint.JSONGeometry, len(geoms))
		for i, g := range geoms {
			out[i] = paint.ToJSON(g)
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(fileName, append(data, '\n'), 0644)

	default:
		return fmt.Errorf("%s: unsupported output format %q", fileName, ext)
	}
}
