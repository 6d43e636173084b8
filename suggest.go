package searchiq

import (
	"fmt"
	"strings"
)

// SuggestionType says what a smart suggestion points at.
type SuggestionType string

const (
	// SuggestionInfo points to informational content.
	SuggestionInfo SuggestionType = "info"
	// SuggestionCategory points to a category collection.
	SuggestionCategory SuggestionType = "category"
	// SuggestionBrand points to a brand collection.
	SuggestionBrand SuggestionType = "brand"
)

// Suggestion is a follow-up the UI can offer next to search results.
// Action is a relative storefront path built deterministically from the
// detected value.
type Suggestion struct {
	Type   SuggestionType `json:"type"`
	Text   string         `json:"text"`
	Action string         `json:"action"`
}

// SmartSuggestions derives follow-up suggestions from a query analysis, in
// a fixed order: a guide pointer for questions, floor-care products for
// problems, the room collection for a detected room, then one brand
// collection per detected brand.
func SmartSuggestions(query string, analysis QueryAnalysis) []Suggestion {
	suggestions := []Suggestion{}

	if analysis.IsQuestion {
		suggestions = append(suggestions, Suggestion{
			Type:   SuggestionInfo,
			Text:   "Looking for how-to guides? Check our learning center",
			Action: "/pages/learning-center",
		})
	}

	if analysis.IsProblem {
		suggestions = append(suggestions, Suggestion{
			Type:   SuggestionCategory,
			Text:   "Browse all floor care products",
			Action: "/collections/floor-care",
		})
	}

	if analysis.Room != "" {
		suggestions = append(suggestions, Suggestion{
			Type:   SuggestionCategory,
			Text:   fmt.Sprintf("See all %s flooring options", analysis.Room),
			Action: fmt.Sprintf("/collections/%s-flooring", analysis.Room),
		})
	}

	for _, brand := range analysis.Brands {
		slug := spaceRunRe.ReplaceAllString(strings.ToLower(brand), "-")
		suggestions = append(suggestions, Suggestion{
			Type:   SuggestionBrand,
			Text:   fmt.Sprintf("View all %s products", brand),
			Action: "/collections/vendor-" + slug,
		})
	}

	return suggestions
}
