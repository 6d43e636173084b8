package searchiq

import "testing"

func TestRankResults_SpecExample(t *testing.T) {
	products := []Product{
		{ID: 1, Title: "Oak Laminate", Vendor: "Quick-Step", Available: true},
		{ID: 2, Title: "Vinyl Tile", Vendor: "Bona", Available: false, Tags: []string{"new"}},
	}

	query := "oak laminate"
	got := RankResults(products, query, AnalyzeQuery(query))

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != 1 {
		t.Errorf("top result ID = %d, want 1", got[0].ID)
	}
	// Title match (+100) and availability (+20) at minimum.
	if got[0].RelevanceScore < 120 {
		t.Errorf("top score = %d, want >= 120", got[0].RelevanceScore)
	}
	if got[1].RelevanceScore >= got[0].RelevanceScore {
		t.Errorf("scores not descending: %d, %d", got[0].RelevanceScore, got[1].RelevanceScore)
	}
}

func TestRankResults_Contributions(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		product Product
		want    int
	}{
		{
			name:    "title and availability",
			query:   "walnut parquet",
			product: Product{Title: "Walnut Parquet Classic", Available: true},
			// +100 title, +80 synonym ("parquet" is in the title), +20 available
			want: 200,
		},
		{
			name:    "brand via vendor",
			query:   "bona cleaner",
			product: Product{Title: "Floor Care Kit", Vendor: "Bona AB"},
			// +60 brand; the synonym expansion of "cleaner" does not hit the title
			want: 60,
		},
		{
			name:    "room and characteristic tags",
			query:   "waterproof kitchen flooring",
			product: Product{Title: "Aqua Plank", Tags: []string{"waterproof", "room:kitchen"}},
			// +50 characteristic tag ("moisture resistant" -> "waterproof" tag? no:
			// tags must contain the characteristic name), +40 room tag
			want: 40,
		},
		{
			name:    "price in range",
			query:   "laminate under €30",
			product: Product{Title: "Budget Board", Price: 2495},
			// +30 price (24.95 <= 30)
			want: 30,
		},
		{
			name:    "new tag boost",
			query:   "walnut parquet",
			product: Product{Title: "Unrelated", Tags: []string{"NEW"}},
			want:    10,
		},
		{
			name:    "no matches",
			query:   "walnut parquet",
			product: Product{Title: "Garden Hose"},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankResults([]Product{tt.product}, tt.query, AnalyzeQuery(tt.query))
			if got[0].RelevanceScore != tt.want {
				t.Errorf("score = %d, want %d", got[0].RelevanceScore, tt.want)
			}
		})
	}
}

func TestRankResults_StableTies(t *testing.T) {
	products := []Product{
		{ID: 10, Title: "Plain A"},
		{ID: 11, Title: "Plain B"},
		{ID: 12, Title: "Plain C"},
	}

	got := RankResults(products, "walnut parquet", AnalyzeQuery("walnut parquet"))
	for i, want := range []int64{10, 11, 12} {
		if got[i].ID != want {
			t.Errorf("position %d: ID = %d, want %d (ties must keep input order)", i, got[i].ID, want)
		}
	}
}

func TestRankResults_PreservesRecords(t *testing.T) {
	products := []Product{
		{ID: 7, Title: "Oak Board", Vendor: "Pergo", Price: 3999, Tags: []string{"room:living"}},
	}

	got := RankResults(products, "oak", AnalyzeQuery("oak"))
	if got[0].Product.ID != 7 || got[0].Title != "Oak Board" || got[0].Price != 3999 {
		t.Errorf("record fields changed: %+v", got[0].Product)
	}
	if products[0].Tags[0] != "room:living" {
		t.Errorf("input mutated: %+v", products[0])
	}
}

func TestRankResults_Empty(t *testing.T) {
	got := RankResults(nil, "oak", AnalyzeQuery("oak"))
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
