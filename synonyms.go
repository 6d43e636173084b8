package searchiq

import (
	"regexp"
	"strings"
)

// synonymGroups lists interchangeable terms across languages. The first
// member of each group is its canonical form; canonicalization replaces any
// whole-word occurrence of a member with it. Groups are applied in
// declaration order, so overlapping membership resolves deterministically.
var synonymGroups = [][]string{
	{"waterproof", "waterresistant", "water-resistant", "water-proof"},
	{"flooring", "floor", "floors", "vloer", "vloeren", "boden", "böden", "sol", "pavimento", "gulv"},
	{"vinyl", "pvc", "lvt", "luxury-vinyl"},
	{"laminate", "laminaat", "laminat"},
	{"wood", "wooden", "timber", "hout", "houten", "holz", "bois", "madera", "legno", "madeira"},
	{"kitchen", "keuken", "küche", "cuisine", "cocina", "cucina", "cozinha", "køkken"},
	{"bathroom", "badkamer", "badezimmer", "salle-de-bain", "baño", "bagno", "casa-de-banho", "badeværelse"},
}

// synonymPatterns holds one compiled whole-word alternation per group,
// in group order.
var synonymPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(synonymGroups))
	for i, group := range synonymGroups {
		quoted := make([]string, len(group))
		for j, term := range group {
			quoted[j] = regexp.QuoteMeta(term)
		}
		patterns[i] = regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	}
	return patterns
}()

// canonicalizeSynonyms rewrites every whole-word synonym occurrence to the
// canonical form of its group.
func canonicalizeSynonyms(text string) string {
	for i, pattern := range synonymPatterns {
		text = pattern.ReplaceAllString(text, synonymGroups[i][0])
	}
	return text
}
