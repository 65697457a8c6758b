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
	"errors"
	"math"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves the given rows to a new xlsx file on Sheet1.
func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		for j, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatal(err)
			}
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}

	fileName := filepath.Join(t.TempDir(), "data.xlsx")
	if err := f.SaveAs(fileName); err != nil {
		t.Fatalf("saving workbook: %v", err)
	}
	return fileName
}

func TestLoadTable(t *testing.T) {
	fileName := writeWorkbook(t, [][]any{
		{"month", "north", nil},
		{1, 4.5, 3},
		{2, nil, 2},
		{nil, 7, 7},
		{3, 6, nil},
	})

	got, err := loadTable(fileName, "")
	if err != nil {
		t.Fatal(err)
	}
	nan := math.NaN()
	want := &Table{
		Sheet: "Sheet1",
		Names: []string{"north", "C"},
		X:     []float64{1, 2, 3},
		Y: [][]float64{
			{4.5, nan, 6},
			{3, 2, nan},
		},
	}
	if d := cmp.Diff(want, got, cmpopts.EquateNaNs()); d != "" {
		t.Errorf("table mismatch (-want +got):\n%s", d)
	}
}

func TestLoadTableErrors(t *testing.T) {
	cases := []struct {
		name   string
		rows   [][]any
		column string
		target error
	}{
		{"no columns", [][]any{{"x"}, {1}}, "", ErrNoColumns},
		{"text in data", [][]any{{"x", "y"}, {1, "high"}}, "y", strconv.ErrSyntax},
		{"text in x", [][]any{{"x", "y"}, {"one", 1}}, "x", strconv.ErrSyntax},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := loadTable(writeWorkbook(t, c.rows), "Sheet1")
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("got error %v, want a LoadError", err)
			}
			if loadErr.Column != c.column {
				t.Errorf("column %q, want %q", loadErr.Column, c.column)
			}
			if !errors.Is(err, c.target) {
				t.Errorf("error %v does not wrap %v", err, c.target)
			}
		})
	}

	if _, err := loadTable(filepath.Join(t.TempDir(), "missing.xlsx"), ""); err == nil {
		t.Error("missing file accepted")
	}
}
