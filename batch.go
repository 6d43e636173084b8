package searchiq

// QueryGroup is a set of raw queries that normalize to the same handle.
type QueryGroup struct {
	// Handle is the shared collection handle.
	Handle string `json:"handle"`
	// Canonical is the representative query: the shortest original string,
	// ties broken by input order.
	Canonical string `json:"canonical"`
	// Variants are all original queries in the group, in input order.
	Variants []string `json:"variants"`
	Count    int      `json:"count"`
}

// BatchResult summarizes batch normalization of a query log.
type BatchResult struct {
	Total      int          `json:"total"`
	Unique     int          `json:"unique"`
	Duplicates int          `json:"duplicates"`
	Groups     []QueryGroup `json:"groups"`
}

// BatchNormalize normalizes every query and groups them by handle. Groups
// appear in first-seen order. Each group's canonical representative is its
// shortest original query; length ties keep the earlier input.
func BatchNormalize(queries []string, locale string) BatchResult {
	index := make(map[string]int)
	groups := make([]QueryGroup, 0, len(queries))

	for _, q := range queries {
		handle := Normalize(q, locale).Handle
		i, seen := index[handle]
		if !seen {
			i = len(groups)
			index[handle] = i
			groups = append(groups, QueryGroup{Handle: handle})
		}
		groups[i].Variants = append(groups[i].Variants, q)
	}

	for i := range groups {
		canonical := groups[i].Variants[0]
		for _, v := range groups[i].Variants[1:] {
			if len(v) < len(canonical) {
				canonical = v
			}
		}
		groups[i].Canonical = canonical
		groups[i].Count = len(groups[i].Variants)
	}

	return BatchResult{
		Total:      len(queries),
		Unique:     len(groups),
		Duplicates: len(queries) - len(groups),
		Groups:     groups,
	}
}
