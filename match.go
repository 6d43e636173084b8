package searchiq

import "strings"

// Collection is an existing storefront collection, identified by its
// URL-safe handle.
type Collection struct {
	Handle string `json:"handle"`
	Title  string `json:"title"`
}

// MatchType says how a query matched an existing collection.
type MatchType string

const (
	// MatchExact means the query's handle equals the collection handle.
	MatchExact MatchType = "exact"
	// MatchSimilar means the collection handle is at least 80% similar to
	// the normalized query.
	MatchSimilar MatchType = "similar"
	// MatchTitle means the collection title normalizes to the same form as
	// the query.
	MatchTitle MatchType = "title"
)

// MatchResult is a matched collection with the match kind and confidence.
type MatchResult struct {
	Collection Collection `json:"collection"`
	MatchType  MatchType  `json:"match_type"`
	Confidence float64    `json:"confidence"`
}

// FindMatchingCollection returns the existing collection this query should
// reuse instead of creating a new one, or nil when none matches.
//
// An exact handle match anywhere in the list wins at confidence 1.0.
// Otherwise collections are scanned in input order and the first one whose
// handle (hyphens read as spaces) is at least 80% similar to the normalized
// query, or whose title normalizes to the same form, wins. Scanning stops
// at the first hit.
func FindMatchingCollection(query string, collections []Collection, locale string) *MatchResult {
	normalized := Normalize(query, locale)

	for _, c := range collections {
		if c.Handle == normalized.Handle {
			return &MatchResult{Collection: c, MatchType: MatchExact, Confidence: 1.0}
		}
	}

	for _, c := range collections {
		similarity := Similarity(normalized.Normalized, strings.ReplaceAll(c.Handle, "-", " "))
		if similarity >= duplicateSimilarity {
			return &MatchResult{Collection: c, MatchType: MatchSimilar, Confidence: similarity}
		}

		if Normalize(c.Title, locale).Normalized == normalized.Normalized {
			return &MatchResult{Collection: c, MatchType: MatchTitle, Confidence: 1.0}
		}
	}

	return nil
}
