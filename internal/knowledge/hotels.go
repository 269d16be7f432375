// README: Hotel area lookup tables keyed by city substring.
package knowledge

import "strings"

// AreaTable maps lowercase city keys to ordered lodging-area lists. Entries
// live in a slice rather than a map so lookup walks them in declared order;
// when two keys would both match a destination, the earlier entry wins. Keep
// that order stable: reordering entries changes results for overlapping keys.
type AreaTable struct {
	entries  []areaEntry
	fallback []string
}

type areaEntry struct {
	key   string
	areas []string
}

// Areas returns the area list for the first key contained in the destination
// (case-insensitive substring match), or the table's fallback list when no
// key matches. It never returns an empty list.
func (t *AreaTable) Areas(destination string) []string {
	dest := strings.ToLower(destination)
	for _, e := range t.entries {
		if strings.Contains(dest, e.key) {
			return e.areas
		}
	}
	return t.fallback
}

// CuratedHotelAreas carries the richer, curated area descriptions per city.
var CuratedHotelAreas = &AreaTable{
	entries: []areaEntry{
		{key: "delhi", areas: []string{
			"Connaught Place: Central location, excellent metro connectivity, business hotels",
			"Aerocity: Near airport, luxury hotels like JW Marriott, Holiday Inn",
			"Paharganj: Budget area near New Delhi Railway Station, backpacker hostels",
			"South Delhi: Hauz Khas, Greater Kailash - upscale residential areas",
			"Karol Bagh: Mid-range hotels, shopping area, good connectivity",
		}},
		{key: "mumbai", areas: []string{
			"South Mumbai: Marine Drive, Colaba, Nariman Point - premium locations near attractions",
			"Bandra: Suburban area with good connectivity, restaurants, and nightlife",
			"Andheri: Near airport, business hotels, good metro connectivity",
			"Juhu: Beach area, luxury resorts, family-friendly",
			"Powai: Lake area, business hotels, peaceful location",
		}},
		{key: "goa", areas: []string{
			"North Goa: Baga, Calangute, Candolim - beaches, nightlife, water sports",
			"South Goa: Palolem, Agonda, Colva - peaceful beaches, luxury resorts",
			"Panaji: Capital city, central location, heritage areas",
			"Old Goa: Heritage area, near churches and historical sites",
		}},
		{key: "bangalore", areas: []string{
			"MG Road: Central business district, luxury hotels, shopping",
			"Indiranagar: Trendy area with restaurants, pubs, and boutiques",
			"Whitefield: IT corridor, business hotels, good metro connectivity",
			"Koramangala: Residential area with good restaurants and connectivity",
		}},
		{key: "jaipur", areas: []string{
			"MI Road: Main street, central location, heritage hotels",
			"Bani Park: Peaceful area, heritage havelis converted to hotels",
			"Malviya Nagar: Modern area, good restaurants and shopping",
			"Amer Road: Near Amber Fort, luxury resorts",
		}},
		{key: "kerala", areas: []string{
			"Kochi: Fort Kochi heritage area, marine drive, city center",
			"Munnar: Hill station, tea garden resorts, central location",
			"Alleppey: Houseboat stays, beach area, canal side resorts",
			"Kovalam: Beach resorts, lighthouse area, cliff hotels",
		}},
	},
	fallback: []string{
		"City center area recommended for better connectivity to attractions",
	},
}

// KnowledgeBaseHotelAreas is the second, independent area source. It is
// surfaced alongside CuratedHotelAreas without merging so callers can tell
// the two apart.
var KnowledgeBaseHotelAreas = &AreaTable{
	entries: []areaEntry{
		{key: "delhi", areas: []string{
			"Connaught Place: Central location, metro connectivity, business hotels",
			"Aerocity: Near airport, luxury hotels (JW Marriott, Holiday Inn)",
			"Paharganj: Budget area near railway station, hostels",
			"South Delhi: Hauz Khas, GK - upscale residential areas",
		}},
		{key: "mumbai", areas: []string{
			"South Mumbai: Marine Drive, Colaba - premium locations near attractions",
			"Bandra: Suburban with good connectivity, restaurants, nightlife",
			"Andheri: Near airport, business hotels, metro connectivity",
		}},
		{key: "goa", areas: []string{
			"North Goa: Baga, Calangute - beaches, nightlife, water sports",
			"South Goa: Palolem, Agonda - peaceful beaches, luxury resorts",
			"Panaji: Capital city, central location, heritage areas",
		}},
		{key: "bangalore", areas: []string{
			"MG Road: Central business district, luxury hotels, shopping",
			"Indiranagar: Trendy area with restaurants, pubs, boutiques",
			"Whitefield: IT corridor, business hotels",
		}},
		{key: "jaipur", areas: []string{
			"MI Road: Main street, central location, heritage hotels",
			"Bani Park: Peaceful area, heritage havelis converted to hotels",
		}},
		{key: "kerala", areas: []string{
			"Kochi: Fort Kochi heritage area, marine drive",
			"Munnar: Hill station, tea garden resorts",
			"Alleppey: Houseboat stays, beach area",
		}},
	},
	fallback: []string{
		"City center area recommended for better connectivity",
		"Near major transportation hubs for convenience",
		"Tourist areas for easier access to attractions",
	},
}
