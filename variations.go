package searchiq

import (
	"regexp"
	"strings"
)

// minVariationLength filters out degenerate one-character variations.
const minVariationLength = 2

// priceMentionRe matches price-like substrings ("€50", "20 to 80") so a
// variation without the price constraint can be searched too.
var priceMentionRe = regexp.MustCompile(`(?i)€?\s*\d+(?:\s*(?:to|-|tot)\s*€?\s*\d+)?`)

// QueryVariations expands a raw query into the set of equivalent search
// strings to try against the catalog: the query itself, its loose
// normalization, every expanded synonym, the query with price mentions
// stripped, each detected brand and color, and the detected room with its
// "<room> flooring" form. Duplicates are removed; order is first-insertion
// order; variations shorter than two characters are dropped.
func QueryVariations(query string) []string {
	analysis := AnalyzeQuery(query)

	variations := []string{}
	seen := map[string]bool{}
	add := func(v string) {
		if !seen[v] {
			seen[v] = true
			variations = append(variations, v)
		}
	}

	add(query)
	add(analysis.Normalized)

	for _, syn := range analysis.Synonyms {
		if syn != query && len(syn) >= minVariationLength {
			add(syn)
		}
	}

	withoutPrice := strings.TrimSpace(priceMentionRe.ReplaceAllString(query, ""))
	if withoutPrice != query && len(withoutPrice) >= minVariationLength {
		add(withoutPrice)
	}

	for _, brand := range analysis.Brands {
		add(brand)
	}
	for _, color := range analysis.Colors {
		add(color)
	}

	if analysis.Room != "" {
		add(analysis.Room)
		add(analysis.Room + " flooring")
	}

	kept := variations[:0]
	for _, v := range variations {
		if len(v) >= minVariationLength {
			kept = append(kept, v)
		}
	}
	return kept
}

// RelatedProductQueries derives up to three search terms related to a
// product from its type, vendor, characteristic tags, and title colors.
// Used to build "related products" rails without a recommendation backend.
func RelatedProductQueries(p Product) []string {
	queries := []string{}
	seen := map[string]bool{}
	add := func(q string) {
		if q != "" && !seen[q] {
			seen[q] = true
			queries = append(queries, q)
		}
	}

	if p.ProductType != "" {
		add(p.ProductType)
		for _, syn := range expansionByBase[strings.ToLower(p.ProductType)] {
			add(syn)
		}
	}

	add(p.Vendor)

	for _, raw := range p.Tags {
		tag := ParseTag(raw)
		for _, c := range usageCharacteristics {
			if groupOverlaps(tag.Value, c) {
				add(c.base)
			}
		}
	}

	for _, word := range strings.Fields(strings.ToLower(p.Title)) {
		for _, c := range relatedColorVariants {
			if wordMatchesColor(word, c) {
				add(c.base)
			}
		}
	}

	const maxRelated = 3
	if len(queries) > maxRelated {
		queries = queries[:maxRelated]
	}
	return queries
}

// wordMatchesColor matches a title word against a color: exact canonical
// name, or containing one of the regional variants.
func wordMatchesColor(word string, c termGroup) bool {
	if word == c.base {
		return true
	}
	for _, v := range c.synonyms {
		if strings.Contains(word, v) {
			return true
		}
	}
	return false
}
