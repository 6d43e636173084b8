package domain

import "github.com/floorwise/searchiq"

// SearchResult is the ranked outcome of a storefront search. It is
// JSON-serializable so results can be cached as-is.
type SearchResult struct {
	Query       searchiq.QueryAnalysis   `json:"query"`
	Products    []searchiq.ScoredProduct `json:"products"`
	Suggestions []searchiq.Suggestion    `json:"suggestions"`
	Variations  []string                 `json:"variations"`
}

// CollectionMatch pairs a resolved collection with how it was found.
type CollectionMatch struct {
	Collection Collection
	MatchType  searchiq.MatchType
	Confidence float64
}
