// README: Static travel knowledge corpus used by the retrieval index.
package knowledge

// Corpus is the fixed set of travel knowledge statements the retrieval index
// is built from. Statement order matters: it is the tie-break order when two
// statements score equally against a query.
var Corpus = []string{
	"Flights are best for long distances and international travel",
	"Trains are comfortable for medium distances and scenic routes",
	"Buses are economical for short to medium distances",
	"Car rentals provide flexibility for local travel",
	"Metro systems are efficient in major cities for local transportation",
	"Taxis and ride-sharing are convenient for point-to-point travel",
	"Domestic flights in India: IndiGo, Air India, SpiceJet for quick travel between cities",
	"Indian Railways: Rajdhani Express for premium travel, Shatabdi for day journeys",
	"Local transport in metro cities: Delhi Metro, Mumbai Local trains, Bangalore BMTC buses",
	"Best areas to stay are usually city centers or near major attractions for convenience",
}
