package searchiq

import "strings"

// Tag is a product tag, either plain ("new") or namespaced
// ("room:kitchen"). A single parsing routine decides the split so filter
// matching and intelligence extraction cannot diverge.
type Tag struct {
	Namespace string `json:"namespace,omitempty"`
	Value     string `json:"value"`
}

// ParseTag splits a raw tag on its first colon. Plain tags have an empty
// namespace and the whole tag as value. Whitespace around either part is
// trimmed; namespace and value are lowercased.
func ParseTag(raw string) Tag {
	ns, val, found := strings.Cut(raw, ":")
	if !found {
		return Tag{Value: strings.ToLower(strings.TrimSpace(raw))}
	}
	return Tag{
		Namespace: strings.ToLower(strings.TrimSpace(ns)),
		Value:     strings.ToLower(strings.TrimSpace(val)),
	}
}

// MatchesFacet reports whether any of the product's tags carries the given
// namespace with the given value.
func MatchesFacet(tags []string, namespace, value string) bool {
	namespace = strings.ToLower(namespace)
	value = strings.ToLower(value)
	for _, raw := range tags {
		t := ParseTag(raw)
		if t.Namespace == namespace && t.Value == value {
			return true
		}
	}
	return false
}
