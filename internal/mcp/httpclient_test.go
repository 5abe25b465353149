package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/fuelplan/internal/catalog"
)

// newCatalogAPIStub serves a two-drink catalog and records write headers.
func newCatalogAPIStub(t *testing.T, gotKey *string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/catalog/drinks", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]catalog.Drink{
			{Name: "Isotonic", MlPerServing: 500, CHOPerServing: 30, SodiumPerServing: 300},
			{Name: "Water", MlPerServing: 500},
		})
	})
	mux.HandleFunc("GET /api/v1/catalog/products", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]catalog.CHOProduct{})
	})
	mux.HandleFunc("POST /api/v1/catalog/electrolytes", func(w http.ResponseWriter, r *http.Request) {
		*gotKey = r.Header.Get("X-API-Key")
		var e catalog.Electrolyte
		json.NewDecoder(r.Body).Decode(&e)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(e)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// TestHTTPClientByNameFallback verifies the remote lookup matches the local
// store's fallback semantics.
func TestHTTPClientByNameFallback(t *testing.T) {
	var key string
	srv := newCatalogAPIStub(t, &key)
	c := NewHTTPClient(srv.URL, "")

	d, err := c.DrinkByName(t.Context(), "Water")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if d.Name != "Water" {
		t.Errorf("exact lookup = %q, want Water", d.Name)
	}

	d, err = c.DrinkByName(t.Context(), "no such drink")
	if err != nil {
		t.Fatalf("fallback lookup: %v", err)
	}
	if d.Name != "Isotonic" {
		t.Errorf("fallback = %q, want first entry", d.Name)
	}
}

// TestHTTPClientEmptyCatalog verifies lookups error when the remote catalog
// has no entries.
func TestHTTPClientEmptyCatalog(t *testing.T) {
	var key string
	srv := newCatalogAPIStub(t, &key)
	c := NewHTTPClient(srv.URL, "")

	if _, err := c.CHOProductByName(t.Context(), "anything"); err == nil {
		t.Error("expected error on empty remote catalog")
	}
}

// TestHTTPClientAddSendsAPIKey verifies writes carry the API key header.
func TestHTTPClientAddSendsAPIKey(t *testing.T) {
	var key string
	srv := newCatalogAPIStub(t, &key)
	c := NewHTTPClient(srv.URL, "secret")

	added, err := c.AddElectrolyte(t.Context(), catalog.Electrolyte{Name: "caps", SodiumPerUnit: 250})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if key != "secret" {
		t.Errorf("X-API-Key = %q, want secret", key)
	}
	if added.Name != "caps" {
		t.Errorf("added = %q, want caps", added.Name)
	}
}

// TestHTTPClientErrorStatus verifies non-2xx responses surface as errors.
func TestHTTPClientErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"nope"}`, http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, "wrong")
	if _, err := c.ListDrinks(t.Context()); err == nil {
		t.Error("expected error on 403 response")
	}
}
