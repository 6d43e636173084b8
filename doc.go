// Package searchiq is the query understanding core for storefront search:
// normalization, deduplication, and heuristic relevance ranking.
//
// The package is pure and table-driven. Every function is a deterministic
// function of its arguments and a set of immutable multilingual keyword
// tables, so all of it is safe for concurrent use without coordination.
// No function returns an error for any textual input; empty input produces
// empty-result values.
//
// Two engines cover the two halves of the problem:
//
//   - The normalizer turns a raw query into a canonical form and a URL-safe
//     handle usable as a stable collection key, scores query quality, flags
//     spam, and detects duplicates across queries.
//
//     nq := searchiq.Normalize("Best Waterproof Vinyl Flooring!!", "en")
//     // nq.Handle == "flooring-vinyl-waterproof", nq.ShouldCreateCollection == true
//
//   - The intelligence side analyzes a query for intent, rooms, brands,
//     colors, characteristics, and price ranges, expands it into equivalent
//     search strings, and orders candidate products by relevance.
//
//     a := searchiq.AnalyzeQuery("waterproof vinyl for kitchen under €50")
//     ranked := searchiq.RankResults(products, query, a)
//
// The normalizer canonicalizes synonyms with whole-word matching while the
// intelligence side expands them with substring matching. The two behaviors
// are intentionally distinct and both are part of the package contract.
package searchiq
