// README: Trip request and recommendation context types.
package planner

import (
	"errors"
	"strings"

	"yatra/internal/knowledge"
)

// ErrBadRequest flags invalid trip parameters.
var ErrBadRequest = errors.New("invalid trip parameters")

// Trip length bounds, inclusive.
const (
	MinTripDays = 1
	MaxTripDays = 30
)

// TripRequest carries the caller-supplied parameters for one recommendation
// cycle. Requests are transient; nothing here is persisted.
type TripRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	TripDays    int    `json:"trip_days"`
	// StartDate is a pre-formatted date string (e.g. "December 25, 2026");
	// it is interpolated into the prompt, never parsed.
	StartDate string `json:"start_date"`
}

// Validate returns ErrBadRequest when the origin or destination is blank or
// the trip length is outside [MinTripDays, MaxTripDays].
func (r TripRequest) Validate() error {
	if strings.TrimSpace(r.Origin) == "" || strings.TrimSpace(r.Destination) == "" {
		return ErrBadRequest
	}
	if r.TripDays < MinTripDays || r.TripDays > MaxTripDays {
		return ErrBadRequest
	}
	return nil
}

// RecommendationContext bundles everything the prompt template needs. The two
// hotel-area lists come from independent tables and are surfaced separately
// rather than merged, so their provenance is preserved.
type RecommendationContext struct {
	TransportExcerpts       []string           `json:"transport_excerpts"`
	LocalTransportExcerpts  []string           `json:"local_transport_excerpts"`
	DistanceCategory        knowledge.Category `json:"distance_category"`
	TransportAdvice         []string           `json:"transport_advice"`
	CuratedHotelAreas       []string           `json:"curated_hotel_areas"`
	KnowledgeBaseHotelAreas []string           `json:"knowledge_base_hotel_areas"`
}
