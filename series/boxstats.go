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

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"seehuhn.de/go/chart"
)

// QuartileMethod selects how the quartiles of a box plot are computed.
type QuartileMethod int

const (
	// Exclusive interpolates at rank p·(n+1).
	Exclusive QuartileMethod = iota

	// Inclusive interpolates at rank p·(n-1)+1, including the median.
	Inclusive

	// Normal uses the medians of the lower and upper half of the data.
	// For an odd number of values, the median belongs to neither half.
	Normal
)

var quartileMethodNames = []string{"exclusive", "inclusive", "normal"}

func (m QuartileMethod) String() string {
	if m < 0 || int(m) >= len(quartileMethodNames) {
		return fmt.Sprintf("QuartileMethod(%d)", int(m))
	}
	return quartileMethodNames[m]
}

// whiskerFactor scales the inter-quartile range to give the whisker limits.
const whiskerFactor = 1.5

// BoxStats computes the box-and-whisker statistics of data.
//
// The whiskers extend to the most extreme values within 1.5 inter-quartile
// ranges of the box; values beyond are returned as outliers.  NaN and
// infinite values are ignored.  The X extent (Left and Right) of the result
// is left for the caller to fill in.
func BoxStats(data []float64, method QuartileMethod) (chart.BoxWhisker, error) {
	xs := present(data)
	if len(xs) == 0 {
		return chart.BoxWhisker{}, ErrNoData
	}
	slices.Sort(xs)

	var q1, q3 float64
	switch method {
	case Exclusive:
		q1, q3 = rankQuantile(xs, 0.25, true), rankQuantile(xs, 0.75, true)
	case Inclusive:
		q1, q3 = rankQuantile(xs, 0.25, false), rankQuantile(xs, 0.75, false)
	case Normal:
		n := len(xs)
		q1 = median(xs[:n/2])
		q3 = median(xs[(n+1)/2:])
		if n == 1 {
			q1, q3 = xs[0], xs[0]
		}
	default:
		return chart.BoxWhisker{}, fmt.Errorf("invalid quartile method %d", int(method))
	}

	iqr := q3 - q1
	lo, hi := q1-whiskerFactor*iqr, q3+whiskerFactor*iqr
	res := chart.BoxWhisker{
		LowerQuartile: q1,
		Median:        median(xs),
		UpperQuartile: q3,
		Average:       stat.Mean(xs, nil),
		Minimum:       math.Inf(1),
		Maximum:       math.Inf(-1),
	}
	for _, x := range xs {
		if x < lo || x > hi {
			res.Outliers = append(res.Outliers, x)
			continue
		}
		res.Minimum = min(res.Minimum, x)
		res.Maximum = max(res.Maximum, x)
	}
	return res, nil
}

// rankQuantile interpolates the sorted values xs at the rank belonging to
// the probability p.  Ranks outside the data are clamped.
func rankQuantile(xs []float64, p float64, exclusive bool) float64 {
	n := len(xs)
	var rank float64 // 0-based
	if exclusive {
		rank = p*float64(n+1) - 1
	} else {
		rank = p * float64(n-1)
	}
	if rank <= 0 {
		return xs[0]
	}
	if rank >= float64(n-1) {
		return xs[n-1]
	}
	i := int(rank)
	frac := rank - float64(i)
	return xs[i] + frac*(xs[i+1]-xs[i])
}

// median returns the median of the sorted values xs.
func median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	if n%2 == 1 {
		return xs[n/2]
	}
	return (xs[n/2-1] + xs[n/2]) / 2
}
