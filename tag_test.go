package searchiq

import "testing"

func TestParseTag(t *testing.T) {
	tests := []struct {
		raw  string
		want Tag
	}{
		{"new", Tag{Value: "new"}},
		{"room:kitchen", Tag{Namespace: "room", Value: "kitchen"}},
		{"Room: Kitchen ", Tag{Namespace: "room", Value: "kitchen"}},
		{"usage:underfloor heating", Tag{Namespace: "usage", Value: "underfloor heating"}},
		{"a:b:c", Tag{Namespace: "a", Value: "b:c"}},
		{":kitchen", Tag{Value: "kitchen"}},
		{"", Tag{}},
	}

	for _, tt := range tests {
		if got := ParseTag(tt.raw); got != tt.want {
			t.Errorf("ParseTag(%q) = %+v, want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestMatchesFacet(t *testing.T) {
	tags := []string{"new", "room:kitchen", "usage:pet safe"}

	tests := []struct {
		namespace string
		value     string
		want      bool
	}{
		{"room", "kitchen", true},
		{"Room", "Kitchen", true},
		{"usage", "pet safe", true},
		{"room", "bathroom", false},
		{"", "new", true},
		{"new", "", false},
	}

	for _, tt := range tests {
		if got := MatchesFacet(tags, tt.namespace, tt.value); got != tt.want {
			t.Errorf("MatchesFacet(tags, %q, %q) = %v, want %v", tt.namespace, tt.value, got, tt.want)
		}
	}
}
