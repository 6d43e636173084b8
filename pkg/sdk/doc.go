// Package sdk provides a Go client for the searchiq HTTP API.
//
// The client covers the full API surface: query normalization and batch
// deduplication, query analysis, intelligent product search, query
// variations, and collection management.
//
//	client := sdk.New("http://localhost:8080", sdk.WithAPIKey("secret"))
//	result, _ := client.Normalize(ctx, "Waterproof Laminate!!", "en")
//	fmt.Println(result.Handle) // laminate-waterproof
//
//	search, _ := client.Search(ctx, sdk.SearchRequest{Query: "oak laminate"})
//	for _, p := range search.Products {
//	    fmt.Println(p.Title, p.RelevanceScore)
//	}
package sdk
