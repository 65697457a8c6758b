// Command export writes the scenario geometry to JSON, for comparison with
// other chart renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/chart/chartcases"
	"seehuhn.de/go/chart/paint"
)

type jsonScenario struct {
	Name       string               `json:"name"`
	Kind       string               `json:"kind"`
	Width      int                  `json:"width"`
	Height     int                  `json:"height"`
	Transposed bool                 `json:"transposed,omitempty"`
	Polar      bool                 `json:"polar,omitempty"`
	Segments   []paint.JSONGeometry `json:"segments"`
}

func main() {
	var out struct {
		Scenarios []jsonScenario `json:"scenarios"`
	}

	for _, category := range slices.Sorted(maps.Keys(chartcases.All)) {
		for _, tc := range chartcases.All[category] {
			out.Scenarios = append(out.Scenarios, toJSON(category, &tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/scenarios.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

func toJSON(category string, tc *chartcases.TestCase) jsonScenario {
	js := jsonScenario{
		Name:       category + "_" + tc.Name,
		Kind:       tc.Kind.String(),
		Width:      tc.Width,
		Height:     tc.Height,
		Transposed: tc.Transposed,
		Polar:      tc.Polar,
	}
	for _, g := range tc.Build() {
		js.Segments = append(js.Segments, paint.ToJSON(g))
	}
	return js
}
