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
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoColumns indicates a worksheet without any Y columns.
var ErrNoColumns = errors.New("no data columns")

// LoadError represents an error while reading a worksheet.
type LoadError struct {
	Sheet  string
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("sheet %q: %v", e.Sheet, e.Err)
	}
	return fmt.Sprintf("sheet %q, column %q: %v", e.Sheet, e.Column, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Table holds the numeric columns of a worksheet.
//
// The first row of the sheet holds the column names.  The first column
// gives the X values, all further columns are Y series.  Empty cells are
// read as NaN, which the chart kinds treat as empty points.
type Table struct {
	Sheet string
	Names []string // one name per Y column
	X     []float64
	Y     [][]float64
}

// loadTable reads a worksheet from an xlsx file.  If sheet is empty, the
// first sheet of the workbook is used.
func loadTable(fileName, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s: workbook has no sheets", fileName)
		}
		sheet = sheets[0]
	}
	return readTable(f, sheet)
}

func readTable(f *excelize.File, sheet string) (*Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, &LoadError{Sheet: sheet, Err: err}
	}
	// Trailing empty cells are not returned, so rows may differ in length.
	cols := 0
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if cols < 2 {
		return nil, &LoadError{Sheet: sheet, Err: ErrNoColumns}
	}

	header := rows[0]
	t := &Table{
		Sheet: sheet,
		Names: make([]string, cols-1),
		Y:     make([][]float64, cols-1),
	}
	for j := range t.Names {
		t.Names[j] = columnName(header, j+1)
	}

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		x, err := parseCell(row[0], 1, rowNum)
		if err != nil {
			return nil, &LoadError{Sheet: sheet, Column: columnName(header, 0), Err: err}
		}
		t.X = append(t.X, x)

		for j := range t.Y {
			y := math.NaN()
			if j+1 < len(row) {
				y, err = parseCell(row[j+1], j+2, rowNum)
				if err != nil {
					return nil, &LoadError{Sheet: sheet, Column: t.Names[j], Err: err}
				}
			}
			t.Y[j] = append(t.Y[j], y)
		}
	}
	return t, nil
}

// parseCell converts a cell value to a number.  Empty cells give NaN.
func parseCell(s string, col, row int) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		return 0, fmt.Errorf("cell %s: %w", cell, err)
	}
	return v, nil
}

// columnName returns the header of column j (0-based), falling back to the
// column letter.
func columnName(header []string, j int) string {
	if j < len(header) {
		if name := strings.TrimSpace(header[j]); name != "" {
			return name
		}
	}
	name, _ := excelize.ColumnNumberToName(j + 1)
	return name
}
