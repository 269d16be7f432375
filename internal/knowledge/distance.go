// README: Coarse distance classification between city pairs.
package knowledge

import "strings"

// Category is the coarse travel-distance label that drives transport advice.
type Category string

const (
	DistanceShort  Category = "short"
	DistanceMedium Category = "medium"
	DistanceLong   Category = "long"
)

// longHaulPairs holds known long-distance city pairs. Keys come from pairKey,
// so (A,B) and (B,A) resolve to the same entry.
var longHaulPairs = buildPairSet([][2]string{
	{"delhi", "mumbai"},
	{"delhi", "chennai"},
	{"delhi", "bangalore"},
	{"delhi", "kolkata"},
	{"delhi", "hyderabad"},
	{"mumbai", "chennai"},
	{"mumbai", "kolkata"},
})

// hubCities and mediumLeisureSpots drive the medium-distance heuristic:
// a trip between a major hub and a nearby leisure destination is "medium".
var (
	hubCities          = []string{"mumbai", "delhi"}
	mediumLeisureSpots = []string{"goa", "pune", "jaipur"}
)

// ClassifyDistance labels the trip between origin and destination. Rules are
// evaluated in order, first match wins:
//
//  1. same city (after lowercasing) -> short
//  2. pair listed in longHaulPairs -> long
//  3. hub city on one side, leisure destination substring on the other -> medium
//  4. otherwise -> short
//
// The final default under-classifies genuinely long trips between cities the
// tables do not know about. That limitation is kept as-is: widening the rules
// would change the recommendations users already see.
func ClassifyDistance(origin, destination string) Category {
	from := strings.ToLower(origin)
	to := strings.ToLower(destination)

	if from == to {
		return DistanceShort
	}
	if _, ok := longHaulPairs[pairKey(from, to)]; ok {
		return DistanceLong
	}
	if mediumTrip(from, to) || mediumTrip(to, from) {
		return DistanceMedium
	}
	return DistanceShort
}

// mediumTrip reports whether from mentions a hub city and to mentions one of
// the medium-distance leisure destinations. ClassifyDistance checks both
// directions so the result stays symmetric.
func mediumTrip(from, to string) bool {
	for _, hub := range hubCities {
		if !strings.Contains(from, hub) {
			continue
		}
		for _, spot := range mediumLeisureSpots {
			if strings.Contains(to, spot) {
				return true
			}
		}
	}
	return false
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

func buildPairSet(pairs [][2]string) map[string]struct{} {
	set := make(map[string]struct{}, len(pairs))
	for _, p := range pairs {
		set[pairKey(p[0], p[1])] = struct{}{}
	}
	return set
}
