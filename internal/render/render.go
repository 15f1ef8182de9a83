package render

import (
	"encoding/json"
	"fmt"
	"html"

	"venue-recommender/internal/models"
)

// Supported output formats.
const (
	FormatStructured = "structured"
	FormatNarrative  = "narrative"
)

// Content types matching each format's body.
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
)

// Render serializes a venue in the requested format and returns the body
// with its content type.
//
// "structured" is the venue as a flat JSON object, field names as in the
// data model. "narrative" is one fixed sentence with the venue name either
// plain or anchor-wrapped when a link is cached. There is deliberately no
// template engine behind this.
func Render(venue models.Venue, format string) (string, string, error) {
	switch format {
	case FormatStructured:
		body, err := json.Marshal(venue)
		if err != nil {
			return "", "", fmt.Errorf("render: failed to marshal venue: %w", err)
		}
		return string(body), ContentTypeJSON, nil

	case FormatNarrative:
		name := html.EscapeString(venue.Name)
		if venue.ExternalLink != "" {
			name = fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(venue.ExternalLink), name)
		}
		return fmt.Sprintf("What about visiting the %s?", name), ContentTypeHTML, nil

	default:
		return "", "", fmt.Errorf("render: %q: %w", format, models.ErrUnsupportedFormat)
	}
}
