package cluster

import (
	"testing"

	"venue-recommender/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name        string
		blob        string
		expectedK   int
		expectError bool
	}{
		{
			name:        "valid model",
			blob:        `{"algorithm":"k-means","k":2,"centroids":[[-74.0,40.7],[-73.9,40.8]]}`,
			expectedK:   2,
			expectError: false,
		},
		{
			name:        "empty centroids",
			blob:        `{"algorithm":"k-means","k":0,"centroids":[]}`,
			expectError: true,
		},
		{
			name:        "malformed json",
			blob:        `{"centroids":`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Unmarshal([]byte(tt.blob))

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expectedK, len(m.Centroids))
			}
		})
	}
}

func TestModel_Classify(t *testing.T) {
	m := &Model{
		Algorithm: "k-means",
		K:         3,
		Centroids: [][2]float64{
			{-74.01, 40.70}, // lower Manhattan
			{-73.97, 40.78}, // upper east side
			{-73.99, 40.73}, // village
		},
	}

	tests := []struct {
		name     string
		lon      float64
		lat      float64
		expected int
	}{
		{
			name:     "point on a centroid",
			lon:      -74.01,
			lat:      40.70,
			expected: 0,
		},
		{
			name:     "point near second centroid",
			lon:      -73.968,
			lat:      40.781,
			expected: 1,
		},
		{
			name:     "far outside the fitted region still assigns nearest",
			lon:      -74.97,
			lat:      41.51,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Classify(tt.lon, tt.lat)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestModel_Classify_Unavailable(t *testing.T) {
	var m *Model
	_, err := m.Classify(-74.01, 40.70)
	assert.ErrorIs(t, err, models.ErrModelUnavailable)

	empty := &Model{}
	_, err = empty.Classify(-74.01, 40.70)
	assert.ErrorIs(t, err, models.ErrModelUnavailable)
}
