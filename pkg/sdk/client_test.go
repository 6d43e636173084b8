package sdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/floorwise/searchiq"
)

func TestNormalize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/normalize" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["query"] != "Waterproof Laminate!!" || req["locale"] != "en" {
			t.Errorf("unexpected body: %v", req)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"original":   "Waterproof Laminate!!",
			"normalized": " laminate waterproof",
			"handle":     "laminate-waterproof",
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	result, err := client.Normalize(context.Background(), "Waterproof Laminate!!", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Handle != "laminate-waterproof" {
		t.Errorf("handle: got %q", result.Handle)
	}
}

func TestSearch_SendsFacetsAndAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization: got %q", got)
		}
		var req SearchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if len(req.Facets) != 1 || req.Facets[0].Namespace != "room" {
			t.Errorf("unexpected facets: %v", req.Facets)
		}
		_ = json.NewEncoder(w).Encode(SearchResult{Variations: []string{req.Query}})
	}))
	defer srv.Close()

	client := New(srv.URL, WithAPIKey("secret"))
	result, err := client.Search(context.Background(), SearchRequest{
		Query:  "oak laminate",
		Facets: []Facet{{Namespace: "room", Value: "kitchen"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Variations) != 1 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestRelated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/related" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req map[string]searchiq.Product
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req["product"].ProductType != "Laminate" {
			t.Errorf("unexpected product: %+v", req["product"])
		}
		_ = json.NewEncoder(w).Encode(map[string][]string{
			"queries": {"Laminate", "laminaat", "laminat"},
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	queries, err := client.Related(context.Background(), searchiq.Product{
		ProductType: "Laminate",
		Vendor:      "Quick-Step",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queries) != 3 || queries[0] != "Laminate" {
		t.Errorf("unexpected queries: %v", queries)
	}
}

func TestSyncCollections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/collections/sync" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]int{"synced": 7})
	}))
	defer srv.Close()

	client := New(srv.URL)
	synced, err := client.SyncCollections(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if synced != 7 {
		t.Errorf("synced: got %d, want 7", synced)
	}
}

func TestGetCollection_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    CodeNotFound,
			"message": "collection not found",
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.GetCollection(context.Background(), "missing")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSearch_SpamRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"code":    CodeSpamRejected,
			"message": "query rejected",
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Search(context.Background(), SearchRequest{Query: "qwerty123"})
	if !IsSpamRejected(err) {
		t.Fatalf("expected spam rejection, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("unexpected error detail: %v", err)
	}
}

func TestDeleteCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/v1/collections/oak-laminate" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(srv.URL)
	if err := client.DeleteCollection(context.Background(), "oak-laminate"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestHealth_Degraded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(HealthStatus{
			Status: "degraded",
			Checks: map[string]string{"database": "error", "storefront": "ok"},
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.Status != "degraded" {
		t.Errorf("status: got %q", status.Status)
	}
	if status.Checks["database"] != "error" {
		t.Errorf("checks: got %v", status.Checks)
	}
}

func TestResolveCollection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/collections/resolve" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(ResolveResult{
			Match: &CollectionMatch{
				Collection: Collection{Handle: "oak-laminate", Title: "Oak Laminate"},
				MatchType:  "exact",
				Confidence: 1.0,
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL)
	result, err := client.ResolveCollection(context.Background(), "oak laminate", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Match == nil || result.Match.Collection.Handle != "oak-laminate" {
		t.Errorf("unexpected result: %+v", result)
	}
}
