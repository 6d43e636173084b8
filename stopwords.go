package searchiq

// stopWords maps a two-letter language code to the function words and
// marketing filler terms removed during normalization. Queries in a
// language without a table fall back to the English list.
var stopWords = map[string][]string{
	"en": {"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by", "from", "best", "top", "cheap", "affordable"},
	"nl": {"de", "het", "een", "en", "of", "maar", "in", "op", "aan", "voor", "van", "met", "door", "beste", "goedkope"},
	"de": {"der", "die", "das", "ein", "eine", "und", "oder", "aber", "in", "auf", "an", "zu", "für", "von", "mit", "beste", "günstig"},
	"fr": {"le", "la", "les", "un", "une", "et", "ou", "mais", "dans", "sur", "à", "pour", "de", "avec", "par", "meilleur", "pas cher"},
	"es": {"el", "la", "los", "las", "un", "una", "y", "o", "pero", "en", "sobre", "a", "para", "de", "con", "mejor", "barato"},
	"it": {"il", "lo", "la", "i", "gli", "le", "un", "uno", "una", "e", "o", "ma", "in", "su", "a", "per", "di", "con", "migliore", "economico"},
	"pt": {"o", "a", "os", "as", "um", "uma", "e", "ou", "mas", "em", "sobre", "para", "de", "com", "melhor", "barato"},
	"da": {"den", "det", "de", "en", "et", "og", "eller", "men", "i", "på", "til", "for", "af", "med", "bedste", "billig"},
}

// stopWordSets is the membership-test view of stopWords, built once.
var stopWordSets = func() map[string]map[string]bool {
	sets := make(map[string]map[string]bool, len(stopWords))
	for lang, words := range stopWords {
		set := make(map[string]bool, len(words))
		for _, w := range words {
			set[w] = true
		}
		sets[lang] = set
	}
	return sets
}()

// stopWordSet returns the stop-word set for a two-letter language code,
// falling back to English.
func stopWordSet(lang string) map[string]bool {
	if set, ok := stopWordSets[lang]; ok {
		return set
	}
	return stopWordSets["en"]
}
