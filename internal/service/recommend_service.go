package service

import (
	"context"
	"fmt"

	"venue-recommender/internal/models"

	"github.com/rs/zerolog/log"
)

// RecommendService contains the core business logic for venue recommendation
type RecommendService struct {
	classifier Classifier
	repo       VenueRepository
	searcher   PageSearcher
}

// Classifier assigns a coordinate to a cluster. The model behind it is
// fitted offline and opaque here.
type Classifier interface {
	Classify(lon, lat float64) (int, error)
}

// Repository interface for dependency injection
type VenueRepository interface {
	TopVenues(ctx context.Context, clusterID int, limit int) ([]models.Venue, error)
	SetVenueLink(ctx context.Context, clusterID int, link string) error
}

// PageSearcher finds the canonical encyclopedia page for a free-text query.
type PageSearcher interface {
	FindPage(ctx context.Context, query string) (string, error)
}

// NewRecommendService creates a new recommend service
func NewRecommendService(classifier Classifier, repo VenueRepository, searcher PageSearcher) *RecommendService {
	return &RecommendService{classifier: classifier, repo: repo, searcher: searcher}
}

// Recommend maps a coordinate to its cluster's top venue and lazily fills in
// the venue's encyclopedia link.
func (s *RecommendService) Recommend(ctx context.Context, lon, lat float64) (*models.Venue, error) {
	clusterID, err := s.classifier.Classify(lon, lat)
	if err != nil {
		return nil, fmt.Errorf("service: failed to classify coordinate: %w", err)
	}

	venues, err := s.repo.TopVenues(ctx, clusterID, 1)
	if err != nil {
		return nil, fmt.Errorf("service: failed to look up venues: %w", err)
	}
	if len(venues) == 0 {
		return nil, fmt.Errorf("service: cluster %d: %w", clusterID, models.ErrVenueNotFound)
	}

	venue := venues[0]
	s.ensureLink(ctx, &venue)

	return &venue, nil
}

// ensureLink fills the venue's external link if it is missing and writes the
// value back to the store so later lookups skip the external call. Lookup or
// write-back failures leave the link empty and never fail the request.
// Concurrent first-requests for a cluster may duplicate the external call
// and the write; the write converges so this is tolerated.
func (s *RecommendService) ensureLink(ctx context.Context, venue *models.Venue) {
	if venue.ExternalLink != "" {
		return
	}

	link, err := s.searcher.FindPage(ctx, venue.Name)
	if err != nil {
		log.Warn().Err(err).Str("venue", venue.Name).Msg("external page lookup failed, serving without link")
		return
	}

	venue.ExternalLink = link

	if err := s.repo.SetVenueLink(ctx, venue.ClusterID, link); err != nil {
		log.Warn().Err(err).Int("cluster_id", venue.ClusterID).Msg("failed to cache venue link")
	}
}
