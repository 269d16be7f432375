// README: Itinerary planning endpoints.
package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"yatra/internal/planner"
)

// generateTimeout bounds the single blocking LLM call. There is no retry
// behind it.
const generateTimeout = 60 * time.Second

type PlannerHandler struct {
	planner *planner.Service
	cache   *planner.Store
}

// NewPlannerHandler wires the handler. cache may be nil, which disables the
// itinerary cache.
func NewPlannerHandler(svc *planner.Service, cache *planner.Store) *PlannerHandler {
	return &PlannerHandler{planner: svc, cache: cache}
}

type itineraryResponse struct {
	Itinerary string `json:"itinerary"`
	Cached    bool   `json:"cached,omitempty"`
}

// Recommendations handles GET /api/recommendations. It returns the
// structured context bundle without calling the LLM.
func (h *PlannerHandler) Recommendations(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("trip_days", "1"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip_days")
		return
	}

	req := planner.TripRequest{
		Origin:      strings.TrimSpace(c.Query("origin")),
		Destination: strings.TrimSpace(c.Query("destination")),
		TripDays:    days,
		StartDate:   strings.TrimSpace(c.Query("start_date")),
	}
	if err := req.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(c, http.StatusOK, h.planner.Recommend(req))
}

// GenerateItinerary handles POST /api/itineraries: cache lookup, one LLM
// call, markdown cleanup, cache fill.
func (h *PlannerHandler) GenerateItinerary(c *gin.Context) {
	var req planner.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)
	if err := req.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	if cached, err := h.cache.GetItinerary(c.Request.Context(), req); err != nil {
		log.Printf("itinerary cache read: %v", err)
	} else if cached != "" {
		writeJSON(c, http.StatusOK, itineraryResponse{Itinerary: cached, Cached: true})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), generateTimeout)
	defer cancel()

	text, err := h.planner.GenerateItinerary(ctx, req)
	if err != nil {
		log.Printf("generate itinerary %s -> %s: %v", req.Origin, req.Destination, err)
		writePlannerError(c, err)
		return
	}

	text = planner.CleanMarkdown(text)
	if err := h.cache.PutItinerary(c.Request.Context(), req, text); err != nil {
		log.Printf("itinerary cache write: %v", err)
	}

	writeJSON(c, http.StatusOK, itineraryResponse{Itinerary: text})
}
