package searchiq

import (
	"regexp"
	"strconv"
	"strings"
)

// questionPatterns pair an intent with its question-form pattern. The list
// is ordered; the first pattern to match the query decides the intent, so
// the order is part of the contract.
var questionPatterns = []struct {
	intent  Intent
	pattern *regexp.Regexp
}{
	{IntentHow, regexp.MustCompile(`(?i)^(how|hoe|wie)\s+(to|can|do|te)\s+`)},
	{IntentWhat, regexp.MustCompile(`(?i)^(what|wat|welke|welches?)\s+`)},
	{IntentWhich, regexp.MustCompile(`(?i)^(which|welke|welches?)\s+`)},
	{IntentWhere, regexp.MustCompile(`(?i)^(where|waar|wo)\s+`)},
	{IntentWhen, regexp.MustCompile(`(?i)^(when|wanneer|wann)\s+`)},
	{IntentWhy, regexp.MustCompile(`(?i)^(why|waarom|warum)\s+`)},
	{IntentBest, regexp.MustCompile(`(?i)\b(best|beste|besten?)\b`)},
	{IntentCheap, regexp.MustCompile(`(?i)\b(cheap|goedkoop|billig|affordable|budget)\b`)},
	{IntentRecommend, regexp.MustCompile(`(?i)\b(recommend|aanbevelen|empfehlen|suggestion)\b`)},
}

var (
	comparisonRe = regexp.MustCompile(`\bvs\b|\bversus\b|\bor\b|\bof\b`)
	purchaseRe   = regexp.MustCompile(`\bbuy\b|\bkoop\b|\bkaufen\b|\bpurchase\b`)

	// looseNonWordRe keeps currency symbols, unlike the normalizer's
	// cleanup, so price expressions survive analysis.
	looseNonWordRe = regexp.MustCompile(`[^\w\s€$-]`)
)

// AnalyzeQuery reads intent, synonym expansions, room, characteristics,
// brands, colors, and price constraints out of a raw query. It is pure and
// never fails; an empty query produces an empty analysis with
// IntentSearch.
func AnalyzeQuery(query string) QueryAnalysis {
	return QueryAnalysis{
		Original:        query,
		Normalized:      looseNormalize(query),
		Intent:          DetectIntent(query),
		Synonyms:        ExpandSynonyms(query),
		Room:            DetectRoom(query),
		Characteristics: DetectCharacteristics(query),
		IsQuestion:      IsQuestion(query),
		IsProblem:       IsProblem(query),
		Brands:          DetectBrands(query),
		Colors:          DetectColors(query),
		PriceRange:      ExtractPriceRange(query),
	}
}

// looseNormalize lowercases, trims, and strips punctuation while keeping
// hyphens and currency symbols.
func looseNormalize(query string) string {
	s := strings.ToLower(strings.TrimSpace(query))
	s = looseNonWordRe.ReplaceAllString(s, " ")
	s = spaceRunRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// DetectIntent classifies a query. Question patterns are tried first in
// order, then problem keywords, then comparison and purchase signals;
// IntentSearch is the fallback.
func DetectIntent(query string) Intent {
	normalized := looseNormalize(query)

	for _, qp := range questionPatterns {
		if qp.pattern.MatchString(normalized) {
			return qp.intent
		}
	}

	if IsProblem(normalized) {
		return IntentProblemSolving
	}
	if comparisonRe.MatchString(normalized) {
		return IntentComparison
	}
	if purchaseRe.MatchString(normalized) {
		return IntentPurchase
	}
	return IntentSearch
}

// IsQuestion reports whether the raw query reads as a question: any
// question pattern matches, or it contains a question mark.
func IsQuestion(query string) bool {
	for _, qp := range questionPatterns {
		if qp.pattern.MatchString(query) {
			return true
		}
	}
	return strings.Contains(query, "?")
}

// IsProblem reports whether the query contains problem, repair, or
// maintenance vocabulary.
func IsProblem(query string) bool {
	normalized := looseNormalize(query)
	for _, kw := range problemKeywords {
		if strings.Contains(normalized, kw) {
			return true
		}
	}
	return false
}

// ExpandSynonyms expands a query into the set of equivalent search terms:
// the normalized query plus every term of any expansion group the query
// textually overlaps with. Matching is substring-contains, not whole-word.
// Order is first-insertion order.
func ExpandSynonyms(query string) []string {
	normalized := looseNormalize(query)

	expanded := []string{normalized}
	seen := map[string]bool{normalized: true}
	add := func(term string) {
		if !seen[term] {
			seen[term] = true
			expanded = append(expanded, term)
		}
	}

	for _, g := range expansionGroups {
		if !groupOverlaps(normalized, g) {
			continue
		}
		add(g.base)
		for _, syn := range g.synonyms {
			add(syn)
		}
	}

	return expanded
}

func groupOverlaps(normalized string, g termGroup) bool {
	if strings.Contains(normalized, g.base) {
		return true
	}
	for _, syn := range g.synonyms {
		if strings.Contains(normalized, syn) {
			return true
		}
	}
	return false
}

// DetectRoom returns the first room type whose name or keywords appear in
// the query, or "" when none does.
func DetectRoom(query string) string {
	normalized := looseNormalize(query)
	for _, room := range roomTypes {
		if groupOverlaps(normalized, room) {
			return room.base
		}
	}
	return ""
}

// DetectCharacteristics returns every usage characteristic whose name or
// keywords appear in the query, in table order.
func DetectCharacteristics(query string) []string {
	normalized := looseNormalize(query)
	characteristics := []string{}
	for _, c := range usageCharacteristics {
		if groupOverlaps(normalized, c) {
			characteristics = append(characteristics, c.base)
		}
	}
	return characteristics
}

// DetectBrands returns every known brand mentioned in the query, in table
// order.
func DetectBrands(query string) []string {
	normalized := looseNormalize(query)
	brands := []string{}
	for _, brand := range knownBrands {
		if strings.Contains(normalized, brand) {
			brands = append(brands, brand)
		}
	}
	return brands
}

// DetectColors returns every color or finish mentioned in the query, by
// canonical name or regional spelling, in table order.
func DetectColors(query string) []string {
	normalized := looseNormalize(query)
	colors := []string{}
	for _, c := range colorVariants {
		if groupOverlaps(normalized, c) {
			colors = append(colors, c.base)
		}
	}
	return colors
}

// Price expressions, tried in order: first match wins.
var pricePatterns = []struct {
	kind string
	re   *regexp.Regexp
}{
	{"max", regexp.MustCompile(`(?i)(?:under|below|less than|max|maximum)\s*€?\s*(\d+)`)},
	{"range", regexp.MustCompile(`(?i)€?\s*(\d+)\s*(?:to|-|tot)\s*€?\s*(\d+)`)},
	{"min", regexp.MustCompile(`(?i)(?:over|above|more than|min|minimum)\s*€?\s*(\d+)`)},
}

// ExtractPriceRange pulls a price constraint out of a query: "under €50"
// gives {Max: 50}, "20 to 80" gives {Min: 20, Max: 80}, "over 100" gives
// {Min: 100}. Returns nil when no pattern matches.
func ExtractPriceRange(query string) *PriceRange {
	for _, pp := range pricePatterns {
		m := pp.re.FindStringSubmatch(query)
		if m == nil {
			continue
		}
		switch pp.kind {
		case "max":
			return &PriceRange{Max: atoiPtr(m[1])}
		case "range":
			return &PriceRange{Min: atoiPtr(m[1]), Max: atoiPtr(m[2])}
		default:
			return &PriceRange{Min: atoiPtr(m[1])}
		}
	}
	return nil
}

func atoiPtr(s string) *int {
	n, _ := strconv.Atoi(s)
	return &n
}
