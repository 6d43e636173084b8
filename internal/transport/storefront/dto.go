package storefront

import (
	"math"
	"strconv"
	"strings"

	"github.com/floorwise/searchiq"
)

type suggestResponse struct {
	Resources struct {
		Results struct {
			Products []productRow `json:"products"`
		} `json:"results"`
	} `json:"resources"`
}

type collectionsResponse struct {
	Collections []collectionRow `json:"collections"`
}

type collectionRow struct {
	Handle string `json:"handle"`
	Title  string `json:"title"`
}

// productRow is the predictive search product shape. Prices come as
// decimal strings ("24.95"); tags as an array.
type productRow struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Vendor    string   `json:"vendor"`
	Type      string   `json:"type"`
	Price     string   `json:"price"`
	Available bool     `json:"available"`
	Tags      []string `json:"tags"`
	URL       string   `json:"url"`
	Image     string   `json:"image"`
}

func (p productRow) toProduct() searchiq.Product {
	return searchiq.Product{
		ID:          p.ID,
		Title:       p.Title,
		Vendor:      p.Vendor,
		ProductType: p.Type,
		Price:       parsePriceCents(p.Price),
		Available:   p.Available,
		Tags:        p.Tags,
		URL:         p.URL,
		Image:       p.Image,
	}
}

// parsePriceCents converts a decimal price string ("24.95", "1,299.00")
// to cents. Unparseable prices become 0.
func parsePriceCents(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(math.Round(f * 100))
}
