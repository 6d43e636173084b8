package searchiq

// Intent is a coarse classification of what the user is trying to
// accomplish with a query.
type Intent string

// Intent values, from question forms through purchase signals down to the
// plain-search fallback.
const (
	IntentHow            Intent = "how"
	IntentWhat           Intent = "what"
	IntentWhich          Intent = "which"
	IntentWhere          Intent = "where"
	IntentWhen           Intent = "when"
	IntentWhy            Intent = "why"
	IntentBest           Intent = "best"
	IntentCheap          Intent = "cheap"
	IntentRecommend      Intent = "recommend"
	IntentProblemSolving Intent = "problem-solving"
	IntentComparison     Intent = "comparison"
	IntentPurchase       Intent = "purchase"
	IntentSearch         Intent = "search"
)

// PriceRange is a price constraint extracted from a query, in major
// currency units. A nil bound is unbounded on that side.
type PriceRange struct {
	Min *int `json:"min,omitempty"`
	Max *int `json:"max,omitempty"`
}

// Contains reports whether a price in major currency units satisfies the
// range.
func (p *PriceRange) Contains(price float64) bool {
	if p == nil {
		return true
	}
	if p.Min != nil && price < float64(*p.Min) {
		return false
	}
	if p.Max != nil && price > float64(*p.Max) {
		return false
	}
	return true
}

// QueryAnalysis is everything the intelligence tables can read out of a raw
// query. All slice fields are in table declaration order; Room is empty and
// PriceRange nil when nothing was detected.
type QueryAnalysis struct {
	Original        string      `json:"original"`
	Normalized      string      `json:"normalized"`
	Intent          Intent      `json:"intent"`
	Synonyms        []string    `json:"synonyms"`
	Room            string      `json:"room,omitempty"`
	Characteristics []string    `json:"characteristics"`
	IsQuestion      bool        `json:"is_question"`
	IsProblem       bool        `json:"is_problem"`
	Brands          []string    `json:"brands"`
	Colors          []string    `json:"colors"`
	PriceRange      *PriceRange `json:"price_range,omitempty"`
}
