package models

// Venue represents the top-ranked tourist venue of a geographic cluster, carrying its coordinates, popularity and an optionally cached encyclopedia link.
type Venue struct {
	ClusterID    int     `json:"cluster_id"`
	VisitCount   int     `json:"visit_count"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Name         string  `json:"name"`
	ExternalLink string  `json:"external_link"`
}
