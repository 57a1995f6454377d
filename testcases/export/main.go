// Command export writes test case definitions to JSON for external tools.
// Run from the sdfcanvas module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/sdfcanvas/scene"
	"seehuhn.de/go/sdfcanvas/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, jsonTestCase{
				Name:  category + "_" + tc.Name,
				File:  scene.New(tc.Width, tc.Height, tc.Background, tc.Shapes),
				World: tc.WorldToDevice(),
			})
		}
	}

	f, err := os.Create("testdata/testcases.json")
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

type jsonTestCase struct {
	Name string `json:"name"`
	*scene.File

	// World is the world-to-pixel matrix [a b c d e f].
	World [6]float64 `json:"world_to_device"`
}
