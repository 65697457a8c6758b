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

// Command genpdf writes every scenario to a PDF file and renders it to PNG
// using Ghostscript, for visual inspection of the chart geometry.
// Next to each Ghostscript rendering, a preview rasterised by package paint
// is written, so that the two can be compared.
//
// genpdf only has two switches and uses package flag; the user-facing
// command line lives in cmd/chartgeom.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/chart/chartcases"
	"seehuhn.de/go/chart/paint"
)

func main() {
	outDir := flag.String("o", "testdata/reference", "output directory")
	noGS := flag.Bool("no-gs", false, "skip the Ghostscript rendering step")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(chartcases.All)) {
		for _, tc := range chartcases.All[category] {
			name := category + "_" + tc.Name
			base := filepath.Join(*outDir, name)

			if err := generate(&tc, base, !*noGS); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc *chartcases.TestCase, base string, gs bool) error {
	ls := layers(tc)

	pdfPath := base + ".pdf"
	err := paint.WritePDF(pdfPath, float64(tc.Width), float64(tc.Height), ls...)
	if err != nil {
		return err
	}
	if gs {
		if err := renderPNG(pdfPath, base+".png"); err != nil {
			return err
		}
	}

	f, err := os.Create(base + "_preview.png")
	if err != nil {
		return err
	}
	err = paint.WritePNG(f, tc.Width, tc.Height, ls...)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// layers paints every segment of the scenario in the style for its kind.
func layers(tc *chartcases.TestCase) []paint.Layer {
	var res []paint.Layer
	st := paint.StyleFor(tc.Kind)
	for _, g := range tc.Build() {
		res = append(res, paint.Layer{Geometry: g, Style: st})
	}
	return res
}

func renderPNG(pdfPath, pngPath string) error {
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
