package searchiq

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// HandleMaxLength is the maximum length of a generated collection handle.
const HandleMaxLength = 50

// CollectionThreshold is the minimum quality score for a query to qualify
// as a collection candidate.
const CollectionThreshold = 0.5

// NormalizedQuery is the canonical, deduplicated view of a raw search query.
// Normalized and Handle are deterministic functions of (Original, locale).
type NormalizedQuery struct {
	// Original is the raw input string, untouched.
	Original string `json:"original"`
	// Normalized is the lowercased, punctuation-stripped, stop-word-filtered,
	// synonym-canonicalized, word-order-independent form.
	Normalized string `json:"normalized"`
	// Handle is a URL-safe slug derived from Normalized, usable as a stable
	// collection key.
	Handle string `json:"handle"`
	// QualityScore grades the query in [0, 1].
	QualityScore float64 `json:"quality_score"`
	// IsSpam reports whether the original query matches a spam signature.
	IsSpam bool `json:"is_spam"`
	// ShouldCreateCollection is true iff QualityScore >= CollectionThreshold
	// and the query is not spam.
	ShouldCreateCollection bool `json:"should_create_collection"`
	// Reason is an advisory classification label, not used computationally.
	Reason string `json:"reason"`
}

var (
	nonWordRe   = regexp.MustCompile(`[^\w\s-]`)
	spaceRunRe  = regexp.MustCompile(`\s+`)
	nonHandleRe = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRunRe = regexp.MustCompile(`-+`)
)

// Normalize turns a raw query into its canonical form, URL-safe handle,
// quality score, and spam verdict. The locale ("nl-NL", "en", ...) selects
// the stop-word table by its leading two-letter language code; unknown
// languages fall back to English.
func Normalize(query, locale string) NormalizedQuery {
	lang, _, _ := strings.Cut(locale, "-")

	normalized := cleanup(query)
	normalized = removeStopWords(normalized, lang)
	normalized = canonicalizeSynonyms(normalized)

	// Word order must not matter: "wood waterproof" and "waterproof wood"
	// normalize identically.
	words := strings.Split(normalized, " ")
	sort.Strings(words)
	normalized = strings.Join(words, " ")

	score := qualityScore(query, normalized)
	spam := IsSpam(query)

	return NormalizedQuery{
		Original:               query,
		Normalized:             normalized,
		Handle:                 HandleFor(normalized),
		QualityScore:           score,
		IsSpam:                 spam,
		ShouldCreateCollection: score >= CollectionThreshold && !spam,
		Reason:                 recommendationReason(score, spam),
	}
}

// cleanup lowercases, trims, strips everything but word characters,
// whitespace, and hyphens, and collapses whitespace runs. Boundary
// punctuation leaves a boundary space behind, so the later split sees an
// empty token there; that token counts as a word and stays part of the
// normalized form.
func cleanup(query string) string {
	s := strings.ToLower(strings.TrimSpace(query))
	s = nonWordRe.ReplaceAllString(s, " ")
	return spaceRunRe.ReplaceAllString(s, " ")
}

func removeStopWords(normalized, lang string) string {
	set := stopWordSet(lang)
	words := strings.Split(normalized, " ")
	kept := words[:0]
	for _, w := range words {
		if !set[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// HandleFor derives a URL-safe slug from a normalized query: whitespace runs
// become single hyphens, everything outside [a-z0-9-] is dropped, hyphen
// runs collapse, leading/trailing hyphens are trimmed, and the result is
// truncated to HandleMaxLength.
func HandleFor(normalized string) string {
	h := strings.ToLower(normalized)
	h = spaceRunRe.ReplaceAllString(h, "-")
	h = nonHandleRe.ReplaceAllString(h, "")
	h = hyphenRunRe.ReplaceAllString(h, "-")
	h = strings.Trim(h, "-")
	if len(h) > HandleMaxLength {
		h = h[:HandleMaxLength]
	}
	return h
}

// productTerms raise the quality score: queries naming a concrete product
// category are good collection candidates.
var productTerms = []string{"waterproof", "vinyl", "laminate", "wood", "kitchen", "bathroom", "floor", "tile"}

// genericTerms lower the quality score: queries this vague make useless
// collections.
var genericTerms = []string{"product", "item", "thing", "stuff"}

// specificAttributes mark a query as specific enough (color, feature, size,
// or room) to deserve a small quality bump.
var specificAttributes = []string{
	"black", "white", "grey", "gray", "brown", "beige", "oak", "walnut",
	"waterproof", "scratch-resistant", "pet-friendly", "eco-friendly",
	"large", "small", "wide", "narrow",
	"kitchen", "bathroom", "living", "bedroom",
}

// qualityScore grades a query in [0, 1]. All adjustments are additive and
// order-independent; the weights are fixed contract values. Clamping
// happens only at the end.
func qualityScore(original, normalized string) float64 {
	score := 0.5

	// Sweet spot: 2-4 words.
	wordCount := len(strings.Split(normalized, " "))
	switch {
	case wordCount >= 2 && wordCount <= 4:
		score += 0.2
	case wordCount == 1 || wordCount > 6:
		score -= 0.2
	}

	// Sweet spot: 10-30 characters.
	length := utf8.RuneCountInString(original)
	switch {
	case length >= 10 && length <= 30:
		score += 0.1
	case length < 5 || length > 50:
		score -= 0.2
	}

	if containsAny(normalized, productTerms) {
		score += 0.2
	}
	if containsAny(normalized, genericTerms) {
		score -= 0.3
	}
	if containsAny(normalized, specificAttributes) {
		score += 0.1
	}

	return clamp01(score)
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// spamChecks are the spam signatures, evaluated in order against the raw
// query. Any hit marks the query as spam.
var spamChecks = []func(string) bool{
	matchFunc(`(?i)^test$`),
	matchFunc(`(?i)^asdf`),
	matchFunc(`(?i)^qwerty`),
	matchFunc(`^\d+$`),          // only digits
	matchFunc(`(?i)^[a-z]{1,2}$`), // one or two letters
	hasRepeatedRun,              // a character repeated 5+ times
	matchFunc(`(?i)^[^a-z0-9\s]{3,}`), // starts with 3+ special characters
}

func matchFunc(pattern string) func(string) bool {
	re := regexp.MustCompile(pattern)
	return re.MatchString
}

// hasRepeatedRun reports whether any rune repeats 5 or more times
// consecutively.
func hasRepeatedRun(s string) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == prev {
			run++
			if run >= 5 {
				return true
			}
			continue
		}
		prev = r
		run = 1
	}
	return false
}

// IsSpam reports whether the raw, pre-cleanup query matches any spam
// signature.
func IsSpam(query string) bool {
	for _, check := range spamChecks {
		if check(query) {
			return true
		}
	}
	return false
}

func recommendationReason(score float64, spam bool) string {
	switch {
	case spam:
		return "Query appears to be spam"
	case score >= 0.7:
		return "High-quality search query, excellent collection candidate"
	case score >= 0.5:
		return "Good search query, suitable for collection"
	case score >= 0.3:
		return "Low-quality query, consider improving search terms"
	default:
		return "Poor query quality, not suitable for collection"
	}
}

// AreDuplicates reports whether two queries would collide as collections:
// their normalized forms are equal, their handles are equal, or their
// normalized forms are at least 80% similar.
func AreDuplicates(a, b, locale string) bool {
	na := Normalize(a, locale)
	nb := Normalize(b, locale)

	if na.Normalized == nb.Normalized {
		return true
	}
	if na.Handle == nb.Handle {
		return true
	}
	return Similarity(na.Normalized, nb.Normalized) >= duplicateSimilarity
}

// duplicateSimilarity is the ratio above which two normalized queries are
// considered the same collection.
const duplicateSimilarity = 0.8
