package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/fuelplan/internal/catalog"
	"github.com/claude/fuelplan/internal/plan"
)

// planRequest is the body of POST /api/v1/plan: the raw engine inputs plus
// the three selected product names. Unknown or empty names resolve to the
// first catalog entry.
type planRequest struct {
	plan.Input
	CHOProduct  string `json:"cho_product"`
	Drink       string `json:"drink"`
	Electrolyte string `json:"electrolyte"`
}

func (s *Server) handleComputePlan(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	ctx := r.Context()
	product, err := s.cat.CHOProductByName(ctx, req.CHOProduct)
	if err != nil {
		s.log.Error("cho product lookup failed", "name", req.CHOProduct, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	drink, err := s.cat.DrinkByName(ctx, req.Drink)
	if err != nil {
		s.log.Error("drink lookup failed", "name", req.Drink, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	elec, err := s.cat.ElectrolyteByName(ctx, req.Electrolyte)
	if err != nil {
		s.log.Error("electrolyte lookup failed", "name", req.Electrolyte, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, plan.Compute(req.Input, product, drink, elec))
}

func (s *Server) handleSweatTest(w http.ResponseWriter, r *http.Request) {
	var test plan.SweatTest
	if err := json.NewDecoder(r.Body).Decode(&test); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, test.Evaluate())
}

// toleranceRequest pairs the symptom scores with the product under
// suspicion.
type toleranceRequest struct {
	Symptoms   plan.Symptoms `json:"symptoms"`
	CHOProduct string        `json:"cho_product"`
}

func (s *Server) handleTolerance(w http.ResponseWriter, r *http.Request) {
	var req toleranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	product, err := s.cat.CHOProductByName(r.Context(), req.CHOProduct)
	if err != nil {
		s.log.Error("cho product lookup failed", "name", req.CHOProduct, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, plan.BuildToleranceReport(req.Symptoms, product))
}

func (s *Server) handleListCHOProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.cat.ListCHOProducts(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) handleListDrinks(w http.ResponseWriter, r *http.Request) {
	drinks, err := s.cat.ListDrinks(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, drinks)
}

func (s *Server) handleListElectrolytes(w http.ResponseWriter, r *http.Request) {
	elecs, err := s.cat.ListElectrolytes(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, elecs)
}

func (s *Server) handleAddCHOProduct(w http.ResponseWriter, r *http.Request) {
	var p catalog.CHOProduct
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if p.Name == "" || p.CHOGrams <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name and cho_g are required"})
		return
	}

	added, err := s.cat.AddCHOProduct(r.Context(), p)
	if err != nil {
		s.log.Error("add cho product failed", "name", p.Name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (s *Server) handleAddDrink(w http.ResponseWriter, r *http.Request) {
	var d catalog.Drink
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if d.Name == "" || d.MlPerServing <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name and ml_per_serving are required"})
		return
	}

	added, err := s.cat.AddDrink(r.Context(), d)
	if err != nil {
		s.log.Error("add drink failed", "name", d.Name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func (s *Server) handleAddElectrolyte(w http.ResponseWriter, r *http.Request) {
	var e catalog.Electrolyte
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if e.Name == "" || e.SodiumPerUnit <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name and sodium_mg_per_unit are required"})
		return
	}

	added, err := s.cat.AddElectrolyte(r.Context(), e)
	if err != nil {
		s.log.Error("add electrolyte failed", "name", e.Name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusCreated, added)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
