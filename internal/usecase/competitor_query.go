package usecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultSearchLocation is used when neither a location nor an address is known
const defaultSearchLocation = "near me"

// competitorCategory maps business-name keywords to a category search phrase
type competitorCategory struct {
	keywords []string
	terms    string
}

// competitorCategories is checked in order; the first matching row wins
var competitorCategories = []competitorCategory{
	{keywords: []string{"starbucks", "coffee", "cafe"}, terms: "coffee shops cafes"},
	{keywords: []string{"automotriz", "auto", "car", "mechanic"}, terms: "auto shops car repair mechanics"},
	{keywords: []string{"salon", "salón", "hair", "beauty", "barber"}, terms: "hair salons beauty salons barber shops"},
	{keywords: []string{"pizza"}, terms: "pizza restaurants"},
	{keywords: []string{"restaurant", "food"}, terms: "restaurants"},
	{keywords: []string{"gym", "fitness"}, terms: "gyms fitness centers"},
	{keywords: []string{"hotel", "motel"}, terms: "hotels motels"},
	{keywords: []string{"bar", "pub"}, terms: "bars pubs"},
}

// BuildCompetitorQuery derives a "similar businesses nearby" query from the
// business name, the requested location and the resolved business address.
func BuildCompetitorQuery(name, location, fallbackAddress string) string {
	searchLocation := resolveSearchLocation(location, fallbackAddress)
	lowerName := cases.Lower(language.Und).String(name)

	for _, category := range competitorCategories {
		for _, kw := range category.keywords {
			if strings.Contains(lowerName, kw) {
				return category.terms + " " + searchLocation
			}
		}
	}

	firstWord := strings.Split(name, " ")[0]
	return firstWord + " " + searchLocation
}

// resolveSearchLocation picks the explicit location, else the locality inferred
// from the address (second-to-last comma segment), else the whole address,
// else "near me".
func resolveSearchLocation(location, address string) string {
	if location != "" {
		return location
	}

	if address != "" {
		parts := strings.Split(address, ",")
		if len(parts) > 1 {
			if locality := strings.TrimSpace(parts[len(parts)-2]); locality != "" {
				return locality
			}
		}
		return address
	}

	return defaultSearchLocation
}
