package models

import "errors"

// Shared sentinel errors checked with errors.Is across layers.
var (
	// ErrModelUnavailable means the clustering model has not been loaded.
	ErrModelUnavailable = errors.New("clustering model unavailable")

	// ErrVenueNotFound means no venue row exists for a cluster.
	ErrVenueNotFound = errors.New("no venue found for cluster")

	// ErrUnsupportedFormat means the caller requested an unknown render format.
	ErrUnsupportedFormat = errors.New("unsupported render format")
)
