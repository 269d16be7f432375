// README: Recommendation engine; retrieval, heuristics and LLM prompt assembly.
package planner

import (
	"context"
	"fmt"

	"yatra/internal/ai"
	"yatra/internal/knowledge"
	"yatra/internal/retrieval"
)

// searchTopK is how many knowledge statements each retrieval query may
// contribute to the prompt.
const searchTopK = 3

// Service is the recommendation engine. It combines the lexical index, the
// distance and hotel heuristics and the LLM collaborator. All of its state is
// read-only after construction, so one Service serves concurrent requests.
type Service struct {
	index *retrieval.Index
	llm   ai.Provider
}

// NewService wires the engine. The index must be built from the knowledge
// corpus before the service is constructed.
func NewService(index *retrieval.Index, llm ai.Provider) *Service {
	return &Service{index: index, llm: llm}
}

// Recommend assembles the structured context for one trip: two retrieval
// excerpts, the distance category with its transport advice, and both
// hotel-area sources. It is a pure function of the immutable tables and the
// request.
func (s *Service) Recommend(req TripRequest) RecommendationContext {
	category := knowledge.ClassifyDistance(req.Origin, req.Destination)

	transportQuery := fmt.Sprintf("best transportation from %s to %s", req.Origin, req.Destination)
	localQuery := fmt.Sprintf("local transportation in %s", req.Destination)

	return RecommendationContext{
		TransportExcerpts:       s.index.Search(transportQuery, searchTopK),
		LocalTransportExcerpts:  s.index.Search(localQuery, searchTopK),
		DistanceCategory:        category,
		TransportAdvice:         knowledge.AdviseTransport(category),
		CuratedHotelAreas:       knowledge.CuratedHotelAreas.Areas(req.Destination),
		KnowledgeBaseHotelAreas: knowledge.KnowledgeBaseHotelAreas.Areas(req.Destination),
	}
}

// GenerateItinerary builds the prompt from the recommendation context and
// hands it to the LLM collaborator. The prose comes back untouched: cleanup
// is the delivery layer's business. There is no retry and no canned fallback
// itinerary; a failed call propagates with its classified kind.
func (s *Service) GenerateItinerary(ctx context.Context, req TripRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	prompt := buildPrompt(req, s.Recommend(req))

	text, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate itinerary: %w", err)
	}
	return text, nil
}
