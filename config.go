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

package chart

import (
	"fmt"
)

// SeriesConfig holds the per-series settings read by the geometry builders.
// The builders never modify a SeriesConfig.
type SeriesConfig struct {
	// IsClosed selects whether the stroke of area-like kinds follows the
	// closed fill contour.  If false, only the data curve is stroked and
	// the stroke restarts after every empty point.
	IsClosed bool `toml:"closed"`

	// ShowEmptyPoints keeps segments which lie outside the visible window,
	// and draws line gaps along the baseline instead of breaking the line.
	ShowEmptyPoints bool `toml:"show-empty-points"`

	// IsTransposed swaps the roles of the horizontal and vertical screen
	// directions for bar-like kinds and error-bar caps.  It must agree with
	// the transformer.
	IsTransposed bool `toml:"transposed"`

	// SegmentSpacing is the fraction of the category width which is left
	// empty around bar-like shapes.  Values outside (0, 1] disable spacing.
	SegmentSpacing float64 `toml:"segment-spacing"`

	// Step selects where the riser of step kinds is placed.
	Step StepMode `toml:"step"`

	Bubble   BubbleConfig   `toml:"bubble"`
	Marker   MarkerConfig   `toml:"marker"`
	ErrorBar ErrorBarConfig `toml:"error-bar"`
	Funnel   FunnelConfig   `toml:"funnel"`

	// WhiskerWidth is the width of the box-plot whisker caps, as a fraction
	// of the box width.
	WhiskerWidth float64 `toml:"whisker-width"`

	// ShowMean adds a cross at the average of a box plot.
	ShowMean bool `toml:"show-mean"`

	// OutlierRadius is the radius of box-plot outlier circles, in pixels.
	OutlierRadius float64 `toml:"outlier-radius"`
}

// BubbleConfig maps bubble sizes to screen radii.
// A bubble of size s has radius MinRadius + (MaxRadius-MinRadius)·s/MaxSize.
type BubbleConfig struct {
	MinRadius float64 `toml:"min-radius"`
	MaxRadius float64 `toml:"max-radius"`

	// MaxSize is the largest size in the series.  If MaxSize is not
	// positive, all bubbles are drawn with MinRadius.
	MaxSize float64 `toml:"max-size"`
}

// MarkerConfig gives the size of scatter markers in pixels.
type MarkerConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// ErrorBarConfig controls which parts of an error bar are drawn.
type ErrorBarConfig struct {
	Mode          ErrorBarMode      `toml:"mode"`
	Direction     ErrorBarDirection `toml:"direction"`
	HorizontalCap CapConfig         `toml:"horizontal-cap"`
	VerticalCap   CapConfig         `toml:"vertical-cap"`
}

// CapConfig describes the caps at the ends of an error-bar whisker.
type CapConfig struct {
	Visible bool    `toml:"visible"`
	Length  float64 `toml:"length"` // in pixels
}

// FunnelConfig controls the funnel and pyramid builders.
type FunnelConfig struct {
	// MinWidth is the minimum width of a funnel, in pixels.
	MinWidth float64 `toml:"min-width"`

	// ExplodeOffset is the horizontal offset of exploded slices, in pixels.
	ExplodeOffset float64 `toml:"explode-offset"`

	Mode FunnelMode `toml:"mode"`
}

// DefaultConfig returns the default series configuration.
func DefaultConfig() *SeriesConfig {
	return &SeriesConfig{
		IsClosed: true,
		Step:     StepPost,
		Bubble: BubbleConfig{
			MinRadius: 10,
			MaxRadius: 30,
		},
		Marker: MarkerConfig{
			Width:  10,
			Height: 10,
		},
		ErrorBar: ErrorBarConfig{
			Mode:          ErrorBarBoth,
			Direction:     DirectionBoth,
			HorizontalCap: CapConfig{Visible: true, Length: 10},
			VerticalCap:   CapConfig{Visible: true, Length: 10},
		},
		Funnel: FunnelConfig{
			MinWidth:      40,
			ExplodeOffset: 40,
			Mode:          ValueIsHeight,
		},
		WhiskerWidth:  1,
		ShowMean:      true,
		OutlierRadius: 3,
	}
}

// StepMode selects the placement of the vertical riser between two points
// of a step kind.
type StepMode int

const (
	// StepPost holds each value until the X position of the next point.
	StepPost StepMode = iota

	// StepPre moves to the next value at the X position of the current
	// point.
	StepPre

	// StepMid changes value half-way between two points.
	StepMid
)

// ErrorBarMode selects the whiskers of an error bar.
type ErrorBarMode int

const (
	ErrorBarBoth ErrorBarMode = iota
	ErrorBarHorizontal
	ErrorBarVertical
)

func (m ErrorBarMode) horizontal() bool { return m != ErrorBarVertical }
func (m ErrorBarMode) vertical() bool   { return m != ErrorBarHorizontal }

// ErrorBarDirection selects which side of the data point the whiskers
// extend to.
type ErrorBarDirection int

const (
	DirectionBoth ErrorBarDirection = iota
	DirectionPlus
	DirectionMinus
)

func (d ErrorBarDirection) plus() bool  { return d != DirectionMinus }
func (d ErrorBarDirection) minus() bool { return d != DirectionPlus }

// FunnelMode selects how slice values are mapped to the funnel shape.
type FunnelMode int

const (
	// ValueIsHeight gives each slice a height proportional to its value.
	// The funnel narrows linearly and is cut off at the minimum width.
	ValueIsHeight FunnelMode = iota

	// ValueIsWidth gives each slice a width proportional to its value.
	ValueIsWidth
)

var (
	stepNames      = []string{"post", "pre", "mid"}
	modeNames      = []string{"both", "horizontal", "vertical"}
	directionNames = []string{"both", "plus", "minus"}
	funnelNames    = []string{"value-is-height", "value-is-width"}
)

func enumString(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%d", v)
	}
	return names[v]
}

func enumParse(what string, names []string, text []byte) (int, error) {
	for i, n := range names {
		if n == string(text) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("invalid %s %q", what, text)
}

func (m StepMode) String() string          { return enumString(stepNames, int(m)) }
func (m ErrorBarMode) String() string      { return enumString(modeNames, int(m)) }
func (d ErrorBarDirection) String() string { return enumString(directionNames, int(d)) }
func (m FunnelMode) String() string        { return enumString(funnelNames, int(m)) }

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m StepMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *StepMode) UnmarshalText(text []byte) error {
	v, err := enumParse("step mode", stepNames, text)
	*m = StepMode(v)
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m ErrorBarMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *ErrorBarMode) UnmarshalText(text []byte) error {
	v, err := enumParse("error bar mode", modeNames, text)
	*m = ErrorBarMode(v)
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (d ErrorBarDirection) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (d *ErrorBarDirection) UnmarshalText(text []byte) error {
	v, err := enumParse("error bar direction", directionNames, text)
	*d = ErrorBarDirection(v)
	return err
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (m FunnelMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (m *FunnelMode) UnmarshalText(text []byte) error {
	v, err := enumParse("funnel mode", funnelNames, text)
	*m = FunnelMode(v)
	return err
}
