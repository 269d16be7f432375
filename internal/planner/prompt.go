// README: Prompt template for the itinerary LLM call.
package planner

import (
	"fmt"
	"strings"
)

// buildPrompt interpolates the trip parameters and the recommendation context
// into the fixed itinerary prompt. The template pins down the response
// structure; the retrieval excerpts and heuristics feed its analysis blocks.
func buildPrompt(req TripRequest, rc RecommendationContext) string {
	combinedTransport := strings.Join(rc.TransportExcerpts, "\n") +
		"\n\nAdditional Insights:\n" + strings.Join(rc.TransportAdvice, "\n")

	combinedHotels := bulletList(rc.CuratedHotelAreas) +
		"\n\nKnowledge Base Recommendations:\n" + bulletList(rc.KnowledgeBaseHotelAreas)

	return fmt.Sprintf(`Generate a detailed %d-day travel itinerary from %s to %s.

TRIP OVERVIEW:
- From: %s
- To: %s
- Duration: %d days
- Start Date: %s

TRANSPORTATION ANALYSIS:
%s

ACCOMMODATION STRATEGY:
%s

Local Transportation:
%s

Please provide the itinerary in this comprehensive format:

===== TRAVEL ITINERARY =====

TRIP OVERVIEW
- Starting Point: %s
- Destination: %s
- Duration: %d days
- Travel Period: %s

TRANSPORTATION GUIDE
[Provide specific transportation options based on the analysis above]

ACCOMMODATION STRATEGY
[Recommend where to stay with specific area details]

Local Transportation:
[Recommended transportation methods within the destination]

DAILY ITINERARY
Day 1: Arrival and Initial Exploration
- Morning: [Specific activities]
- Afternoon: [Specific activities]
- Evening: [Specific activities]

Day 2 to Day %d: Main Sightseeing
[Detailed daily plans with specific attractions, restaurants, and timing]

Day %d: Departure
- Morning: [Final activities]
- Afternoon: [Departure preparations]

TRAVEL TIPS
- Budget Planning: [Cost estimates and money-saving tips and provide Total cost]
- Local Customs & Etiquette: [Important cultural notes]
- Safety Advice: [Safety precautions and emergency contacts]
- Packing Guide: [Seasonal packing recommendations]
- Booking Tips: [When and how to book transportation and accommodation]

===== ITINERARY END =====

Make it practical, specific to Indian travel context, and include actual sightseeing spots, restaurants, and activities.
Provide specific recommendations for transportation booking websites, hotel booking platforms, and local apps.
`,
		req.TripDays, req.Origin, req.Destination,
		req.Origin, req.Destination, req.TripDays, req.StartDate,
		combinedTransport,
		combinedHotels,
		strings.Join(rc.LocalTransportExcerpts, "\n"),
		req.Origin, req.Destination, req.TripDays, req.StartDate,
		req.TripDays-1, req.TripDays,
	)
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "- " + item
	}
	return strings.Join(lines, "\n")
}
