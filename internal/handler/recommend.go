package handler

import (
	"context"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"venue-recommender/internal/models"
	"venue-recommender/internal/render"

	"github.com/gin-gonic/gin"
)

// RecommendHandler handles venue recommendation requests
type RecommendHandler struct {
	service RecommendService
}

// Service interface for dependency injection
type RecommendService interface {
	Recommend(ctx context.Context, lon, lat float64) (*models.Venue, error)
}

// NewRecommendHandler creates a new recommend handler
func NewRecommendHandler(svc RecommendService) *RecommendHandler {
	return &RecommendHandler{service: svc}
}

// Recommend handles GET /venues/recommender/:coords requests
//
//	@Summary		Recommend the top venue near a coordinate
//	@Description	Classifies the coordinate into a cluster and returns the cluster's most visited venue, enriched with an encyclopedia link.
//	@Tags			venues
//	@Produce		json
//	@Produce		html
//	@Param			coords	path	string	true	"coordinate as longitude,latitude"	example(-74.01,40.70)
//	@Param			format	query	string	false	"output format"	Enums(structured, narrative)	default(structured)
//	@Success		200	{object}	models.Venue
//	@Failure		400	{object}	map[string]string
//	@Failure		404	{object}	map[string]string
//	@Failure		503	{object}	map[string]string
//	@Router			/venues/recommender/{coords} [get]
func (h *RecommendHandler) Recommend(c *gin.Context) {
	lon, lat, ok := parseCoords(c.Param("coords"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinate, expected 'longitude,latitude'"})
		return
	}

	format := c.DefaultQuery("format", render.FormatStructured)

	venue, err := h.service.Recommend(c.Request.Context(), lon, lat)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrVenueNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no venue found for the specified coordinates"})
		case errors.Is(err, models.ErrModelUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "clustering model unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	body, contentType, err := render.Render(*venue, format)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format '" + format + "'"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Data(http.StatusOK, contentType, []byte(body))
}

// parseCoords splits a "longitude,latitude" path segment into floats.
func parseCoords(raw string) (lon, lat float64, ok bool) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false
	}

	lat, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, false
	}

	if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return 0, 0, false
	}

	return lon, lat, true
}
