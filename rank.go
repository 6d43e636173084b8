package searchiq

import (
	"sort"
	"strings"
)

// Product is a candidate record from the storefront catalog. The ranking
// engine only reads these fields; it never mutates them.
type Product struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Vendor      string   `json:"vendor"`
	ProductType string   `json:"product_type"`
	// Price is in minor currency units (cents).
	Price     int64    `json:"price"`
	Available bool     `json:"available"`
	Tags      []string `json:"tags"`
	URL       string   `json:"url"`
	Image     string   `json:"image"`
}

// ScoredProduct is a Product annotated with its relevance score.
type ScoredProduct struct {
	Product
	RelevanceScore int `json:"relevance_score"`
}

// Relevance score contributions. Each applies independently when its
// condition holds; none excludes another.
const (
	scoreTitleMatch     = 100 // title contains the raw query
	scoreSynonymMatch   = 80  // title contains an expanded synonym
	scoreBrandMatch     = 60  // vendor matches a detected brand
	scoreTagMatch       = 50  // a tag contains a detected characteristic
	scoreRoomMatch      = 40  // a tag contains the detected room
	scorePriceMatch     = 30  // price falls inside the detected range
	scoreAvailable      = 20
	scoreNewProduct     = 10
)

// RankResults scores candidate products against a query and its analysis
// and returns them ordered by descending relevance. The sort is stable:
// equal scores keep the input order. Input records are copied, not
// modified.
func RankResults(products []Product, query string, analysis QueryAnalysis) []ScoredProduct {
	scored := make([]ScoredProduct, len(products))
	for i, p := range products {
		scored[i] = ScoredProduct{Product: p, RelevanceScore: relevanceScore(p, query, analysis)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].RelevanceScore > scored[j].RelevanceScore
	})
	return scored
}

func relevanceScore(p Product, query string, analysis QueryAnalysis) int {
	score := 0
	title := strings.ToLower(p.Title)

	if strings.Contains(title, strings.ToLower(query)) {
		score += scoreTitleMatch
	}

	for _, syn := range analysis.Synonyms {
		if strings.Contains(title, strings.ToLower(syn)) {
			score += scoreSynonymMatch
			break
		}
	}

	vendor := strings.ToLower(p.Vendor)
	for _, brand := range analysis.Brands {
		if strings.Contains(vendor, strings.ToLower(brand)) {
			score += scoreBrandMatch
			break
		}
	}

	if tagsContainAny(p.Tags, analysis.Characteristics) {
		score += scoreTagMatch
	}

	if analysis.Room != "" && tagsContainAny(p.Tags, []string{analysis.Room}) {
		score += scoreRoomMatch
	}

	if analysis.PriceRange != nil && analysis.PriceRange.Contains(float64(p.Price)/100) {
		score += scorePriceMatch
	}

	if p.Available {
		score += scoreAvailable
	}

	for _, tag := range p.Tags {
		if strings.EqualFold(tag, "new") {
			score += scoreNewProduct
			break
		}
	}

	return score
}

// tagsContainAny reports whether any tag contains any of the terms,
// case-insensitively.
func tagsContainAny(tags, terms []string) bool {
	for _, term := range terms {
		lowered := strings.ToLower(term)
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), lowered) {
				return true
			}
		}
	}
	return false
}
