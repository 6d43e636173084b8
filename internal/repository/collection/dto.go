package collection

import (
	"strconv"

	"github.com/floorwise/searchiq/internal/domain"
)

// collectionToHash converts a domain Collection to a map for HSET.
func collectionToHash(col domain.Collection) map[string]string {
	return map[string]string{
		"handle":     col.Handle(),
		"title":      col.Title(),
		"created_at": strconv.FormatInt(col.CreatedAt(), 10),
		"revision":   strconv.Itoa(col.Revision()),
	}
}

// collectionFromHash hydrates a domain Collection from an HGETALL result map.
func collectionFromHash(m map[string]string) domain.Collection {
	createdAt, _ := strconv.ParseInt(m["created_at"], 10, 64)

	revision := 1
	if revStr, ok := m["revision"]; ok && revStr != "" {
		if parsed, err := strconv.Atoi(revStr); err == nil {
			revision = parsed
		}
	}

	return domain.Reconstruct(m["handle"], m["title"], createdAt, revision)
}
