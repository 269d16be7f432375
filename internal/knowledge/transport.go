// README: Canned transport advice per distance category.
package knowledge

// localTransportAdvice closes every advice list regardless of category.
var localTransportAdvice = []string{
	"LOCAL TRANSPORT:",
	"   - Metro: Available in major cities",
	"   - Taxis: Ola, Uber for convenience",
	"   - Auto-rickshaws: For short distances",
}

// AdviseTransport maps a distance category to its fixed, ordered advice
// lines. Unknown categories fall through to the short-distance branch.
func AdviseTransport(category Category) []string {
	var advice []string
	switch category {
	case DistanceLong:
		advice = []string{
			"FLIGHTS: Best option for quick travel",
			"   - Check: IndiGo, Air India, SpiceJet",
			"   - Book in advance for better prices",
			"TRAINS: Comfortable alternative",
			"   - Premium: Rajdhani Express",
			"   - Day journey: Shatabdi Express",
		}
	case DistanceMedium:
		advice = []string{
			"TRAINS: Recommended for comfort and scenery",
			"BUSES: Economical option, overnight journeys available",
		}
	default:
		advice = []string{
			"ROAD: Car rental or taxi recommended",
			"BUS: Frequent services available",
		}
	}
	return append(advice, localTransportAdvice...)
}
