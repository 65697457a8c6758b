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

package series

import "fmt"

func parseName(what string, names []string, text []byte) (int, error) {
	for i, n := range names {
		if n == string(text) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", what, text)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *SplineType) UnmarshalText(text []byte) error {
	v, err := ParseSplineType(string(text))
	*t = v
	return err
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *TrendType) UnmarshalText(text []byte) error {
	v, err := ParseTrendType(string(text))
	*t = v
	return err
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *QuartileMethod) UnmarshalText(text []byte) error {
	v, err := parseName("quartile method", quartileMethodNames, text)
	*m = QuartileMethod(v)
	return err
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (t *ErrorBarType) UnmarshalText(text []byte) error {
	v, err := parseName("error bar type", errorBarTypeNames, text)
	*t = ErrorBarType(v)
	return err
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *PyramidMode) UnmarshalText(text []byte) error {
	v, err := parseName("pyramid mode", []string{Linear.String(), Surface.String()}, text)
	*m = PyramidMode(v)
	return err
}
