package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/IotA-asce/TSP-visualization/geom"
)

// loadPoints reads a JSON point file: either a bare [[x,y],…] array or an
// object with a "points" key, matching the visualizer's save format.
func loadPoints(path string) ([]geom.Vec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read points file: %w", err)
	}

	return parsePoints(data)
}

// parsePoints decodes both accepted shapes.
func parsePoints(data []byte) ([]geom.Vec, error) {
	var wrapper struct {
		Points [][]float64 `json:"points"`
	}
	if err := json.Unmarshal(data, &wrapper); err == nil && wrapper.Points != nil {
		return toVecs(wrapper.Points)
	}

	var raw [][]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(`points file: expected [[x,y],…] or {"points": [[x,y],…]}: %w`, err)
	}

	return toVecs(raw)
}

func toVecs(raw [][]float64) ([]geom.Vec, error) {
	pts := make([]geom.Vec, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, fmt.Errorf("points file: entry %d has %d coordinates, want 2", i, len(p))
		}
		pts[i] = geom.V(p[0], p[1])
	}

	return pts, nil
}
