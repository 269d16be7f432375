package planner

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"yatra/internal/ai"
	"yatra/internal/knowledge"
	"yatra/internal/retrieval"
)

// stubProvider is a test double for ai.Provider. It records the last prompt
// and returns a canned reply or error.
type stubProvider struct {
	reply  string
	err    error
	prompt string
	calls  int
}

func (s *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func buildTestService(t *testing.T, llm ai.Provider) *Service {
	t.Helper()
	index, err := retrieval.NewIndex(knowledge.Corpus)
	if err != nil {
		t.Fatalf("NewIndex() error = %v", err)
	}
	return NewService(index, llm)
}

func TestRecommend_ContextComplete(t *testing.T) {
	svc := buildTestService(t, &stubProvider{})

	rc := svc.Recommend(TripRequest{Origin: "Delhi", Destination: "Goa", TripDays: 5, StartDate: "December 25, 2026"})

	if len(rc.TransportExcerpts) == 0 {
		t.Error("TransportExcerpts must never be empty")
	}
	if len(rc.LocalTransportExcerpts) == 0 {
		t.Error("LocalTransportExcerpts must never be empty")
	}
	if rc.DistanceCategory != knowledge.DistanceMedium {
		t.Errorf("DistanceCategory = %q, want medium", rc.DistanceCategory)
	}
	if len(rc.TransportAdvice) == 0 {
		t.Error("TransportAdvice must not be empty")
	}
	if len(rc.CuratedHotelAreas) == 0 || !strings.HasPrefix(rc.CuratedHotelAreas[0], "North Goa") {
		t.Errorf("CuratedHotelAreas = %v, want goa curated list", rc.CuratedHotelAreas)
	}
	if len(rc.KnowledgeBaseHotelAreas) == 0 {
		t.Error("KnowledgeBaseHotelAreas must not be empty")
	}
	if reflect.DeepEqual(rc.CuratedHotelAreas, rc.KnowledgeBaseHotelAreas) {
		t.Error("hotel-area sources should stay independent, not merged or equal")
	}
}

func TestRecommend_UnknownDestinationUsesFallbacks(t *testing.T) {
	svc := buildTestService(t, &stubProvider{})

	rc := svc.Recommend(TripRequest{Origin: "Timbuktu", Destination: "Atlantis", TripDays: 3})

	if rc.DistanceCategory != knowledge.DistanceShort {
		t.Errorf("DistanceCategory = %q, want short default", rc.DistanceCategory)
	}
	if len(rc.CuratedHotelAreas) == 0 || len(rc.KnowledgeBaseHotelAreas) == 0 {
		t.Error("fallback hotel lists must be non-empty")
	}
	if len(rc.TransportExcerpts) == 0 {
		t.Error("retrieval fallback must keep excerpts non-empty")
	}
}

func TestRecommend_Deterministic(t *testing.T) {
	svc := buildTestService(t, &stubProvider{})
	req := TripRequest{Origin: "Mumbai", Destination: "Goa", TripDays: 4, StartDate: "March 01, 2026"}

	first := svc.Recommend(req)
	for i := 0; i < 5; i++ {
		if again := svc.Recommend(req); !reflect.DeepEqual(first, again) {
			t.Fatalf("Recommend() not deterministic")
		}
	}
}

func TestGenerateItinerary_PromptCarriesContext(t *testing.T) {
	stub := &stubProvider{reply: "itinerary text"}
	svc := buildTestService(t, stub)

	req := TripRequest{Origin: "Delhi", Destination: "Goa", TripDays: 5, StartDate: "December 25, 2026"}
	got, err := svc.GenerateItinerary(context.Background(), req)
	if err != nil {
		t.Fatalf("GenerateItinerary() error = %v", err)
	}
	if got != "itinerary text" {
		t.Errorf("GenerateItinerary() = %q, want stub reply", got)
	}

	for _, want := range []string{
		"5-day travel itinerary from Delhi to Goa",
		"Start Date: December 25, 2026",
		"TRANSPORTATION ANALYSIS:",
		"ACCOMMODATION STRATEGY:",
		"Additional Insights:",
		"Knowledge Base Recommendations:",
		"North Goa: Baga, Calangute, Candolim - beaches, nightlife, water sports",
	} {
		if !strings.Contains(stub.prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestGenerateItinerary_ReturnsProseUntouched(t *testing.T) {
	stub := &stubProvider{reply: "**DAY 1** visit *old town* ## notes"}
	svc := buildTestService(t, stub)

	got, err := svc.GenerateItinerary(context.Background(), TripRequest{Origin: "Delhi", Destination: "Goa", TripDays: 2})
	if err != nil {
		t.Fatalf("GenerateItinerary() error = %v", err)
	}
	if got != stub.reply {
		t.Errorf("engine must not rewrite LLM prose: got %q", got)
	}
}

func TestGenerateItinerary_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		req  TripRequest
	}{
		{name: "missing origin", req: TripRequest{Destination: "Goa", TripDays: 5}},
		{name: "missing destination", req: TripRequest{Origin: "Delhi", TripDays: 5}},
		{name: "zero days", req: TripRequest{Origin: "Delhi", Destination: "Goa", TripDays: 0}},
		{name: "too many days", req: TripRequest{Origin: "Delhi", Destination: "Goa", TripDays: 31}},
	}

	stub := &stubProvider{reply: "never"}
	svc := buildTestService(t, stub)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GenerateItinerary(context.Background(), tt.req)
			if !errors.Is(err, ErrBadRequest) {
				t.Errorf("error = %v, want ErrBadRequest", err)
			}
		})
	}
	if stub.calls != 0 {
		t.Errorf("LLM called %d times for invalid requests, want 0", stub.calls)
	}
}

func TestGenerateItinerary_PropagatesClassifiedFailure(t *testing.T) {
	cause := &ai.GenerationError{Kind: ai.FailureQuota, Err: errors.New("quota exceeded")}
	svc := buildTestService(t, &stubProvider{err: cause})

	_, err := svc.GenerateItinerary(context.Background(), TripRequest{Origin: "Delhi", Destination: "Goa", TripDays: 5})
	if err == nil {
		t.Fatal("expected error")
	}

	var genErr *ai.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("error %v does not carry *ai.GenerationError", err)
	}
	if genErr.Kind != ai.FailureQuota {
		t.Errorf("Kind = %v, want FailureQuota", genErr.Kind)
	}
}
