package cluster

import (
	"encoding/json"
	"fmt"
	"math"

	"venue-recommender/internal/models"
)

// Model is a fitted k-means model. Fitting happens offline; at runtime the
// model only assigns a coordinate to the cluster with the nearest centroid.
// Immutable once unmarshalled.
type Model struct {
	Algorithm string       `json:"algorithm"`
	K         int          `json:"k"`
	Centroids [][2]float64 `json:"centroids"` // each centroid is (longitude, latitude)
}

// Unmarshal decodes a serialized model blob as stored in the cluster_models table.
func Unmarshal(blob []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(blob, &m); err != nil {
		return nil, fmt.Errorf("cluster: failed to decode model: %w", err)
	}
	if len(m.Centroids) == 0 {
		return nil, fmt.Errorf("cluster: model has no centroids: %w", models.ErrModelUnavailable)
	}
	return &m, nil
}

// Classify assigns a coordinate to the cluster with the nearest centroid by
// squared Euclidean distance in degree space. Coordinates are never rejected:
// a point far outside the fitted region still maps to its nearest cluster.
func (m *Model) Classify(lon, lat float64) (int, error) {
	if m == nil || len(m.Centroids) == 0 {
		return 0, models.ErrModelUnavailable
	}

	best := 0
	bestDist := math.Inf(1)
	for i, c := range m.Centroids {
		dLon := lon - c[0]
		dLat := lat - c[1]
		dist := dLon*dLon + dLat*dLat
		if dist < bestDist {
			best = i
			bestDist = dist
		}
	}

	return best, nil
}
