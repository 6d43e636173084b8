package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/floorwise/searchiq"
)

var handleRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Collection is a registered storefront collection (immutable value object).
// The handle is the URL slug; the title is what a visitor sees.
type Collection struct {
	handle    string
	title     string
	createdAt int64
	revision  int
}

func validateHandle(handle string) error {
	if handle == "" {
		return fmt.Errorf("collection handle is required")
	}
	if len(handle) > searchiq.HandleMaxLength {
		return fmt.Errorf("collection handle too long (max %d)", searchiq.HandleMaxLength)
	}
	if !handleRegex.MatchString(handle) {
		return fmt.Errorf("collection handle must be lowercase alphanumeric with single hyphens")
	}
	return nil
}

// New validates and creates a Collection.
// Handle: lowercase alphanumeric segments joined by single hyphens, 1-50 chars.
// Title: required.
func New(handle, title string) (Collection, error) {
	if err := validateHandle(handle); err != nil {
		return Collection{}, err
	}
	if title == "" {
		return Collection{}, fmt.Errorf("collection title is required")
	}

	return Collection{
		handle:    handle,
		title:     title,
		createdAt: time.Now().UnixMilli(),
		revision:  1,
	}, nil
}

// Reconstruct creates a Collection without validation (storage hydration).
func Reconstruct(handle, title string, createdAt int64, revision int) Collection {
	return Collection{
		handle:    handle,
		title:     title,
		createdAt: createdAt,
		revision:  revision,
	}
}

// Handle returns the collection's URL slug.
func (c Collection) Handle() string { return c.handle }

// Title returns the visitor-facing title.
func (c Collection) Title() string { return c.title }

// CreatedAt returns the creation timestamp (unix millis).
func (c Collection) CreatedAt() int64 { return c.createdAt }

// Revision returns the optimistic concurrency version.
func (c Collection) Revision() int { return c.revision }

// Matchable converts the registry entry into the shape the matching engine
// consumes.
func (c Collection) Matchable() searchiq.Collection {
	return searchiq.Collection{Handle: c.handle, Title: c.title}
}
