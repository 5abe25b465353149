package mcp

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/claude/fuelplan/internal/catalog"
	"github.com/claude/fuelplan/internal/plan"
	"github.com/mark3labs/mcp-go/mcp"
)

func newTestHandlers(t *testing.T) *handlers {
	t.Helper()

	cat, err := catalog.Open(":memory:")
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	t.Cleanup(func() { cat.Close() })

	if err := cat.Seed(t.Context()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &handlers{cat: cat, log: log}
}

func callTool(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func resultJSON(t *testing.T, result *mcp.CallToolResult, out any) {
	t.Helper()

	if result.IsError {
		t.Fatalf("tool returned error: %+v", result.Content)
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is not text: %T", result.Content[0])
	}
	if err := json.Unmarshal([]byte(text.Text), out); err != nil {
		t.Fatalf("decode result: %v", err)
	}
}

// TestComputePlanTool runs the reference scenario through the MCP tool.
func TestComputePlanTool(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.computePlan(t.Context(), callTool(map[string]any{
		"duration":           "03:30",
		"modality":           "running",
		"pace_min_per_km":    5.0,
		"body_mass_kg":       70.0,
		"weeks_training":     1.0,
		"sessions_per_week":  1.0,
		"hours_per_week":     1.0,
		"long_sessions":      1.0,
		"gi_symptom_history": 2.0,
		"sweat_rate_l_per_h": 0.8,
		"replace_percent":    70.0,
	}))
	if err != nil {
		t.Fatalf("computePlan: %v", err)
	}

	var p plan.Plan
	resultJSON(t, result, &p)

	if p.DurationMin != 210 {
		t.Errorf("duration = %d, want 210", p.DurationMin)
	}
	if p.Targets.CHOTargetGPerH != 60 {
		t.Errorf("CHO target = %v, want 60", p.Targets.CHOTargetGPerH)
	}
	if p.CHOProduct == "" {
		t.Error("cho product name missing; fallback did not resolve")
	}
}

// TestComputePlanToolRequiresDuration verifies the only hard-required
// parameter.
func TestComputePlanToolRequiresDuration(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.computePlan(t.Context(), callTool(map[string]any{}))
	if err != nil {
		t.Fatalf("computePlan: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result without duration")
	}
}

// TestEvaluateSweatTestTool checks the reference self-test through MCP.
func TestEvaluateSweatTestTool(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.evaluateSweatTest(t.Context(), callTool(map[string]any{
		"duration":        "01:00",
		"pre_mass_kg":     70.0,
		"post_mass_kg":    69.5,
		"bottle_before_g": 700.0,
		"bottle_after_g":  300.0,
	}))
	if err != nil {
		t.Fatalf("evaluateSweatTest: %v", err)
	}

	var r plan.SweatTestResult
	resultJSON(t, result, &r)

	if r.SweatRateLPerH != 0.9 {
		t.Errorf("sweat rate = %v, want 0.9", r.SweatRateLPerH)
	}
}

// TestScreenToleranceTool screens lower-GI symptoms against the seeded
// high-fructose gel.
func TestScreenToleranceTool(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.screenTolerance(t.Context(), callTool(map[string]any{
		"bloating":    2.0,
		"cramping":    2.0,
		"cho_product": "High-fructose gel (30 g)",
	}))
	if err != nil {
		t.Fatalf("screenTolerance: %v", err)
	}

	var report plan.ToleranceReport
	resultJSON(t, result, &report)

	if report.LowerGI != 4 {
		t.Errorf("lower GI = %d, want 4", report.LowerGI)
	}
	if len(report.Flags) != 1 {
		t.Fatalf("flags = %d, want 1: %+v", len(report.Flags), report.Flags)
	}
}

// TestListCatalogTool verifies the seeded catalog is returned in full.
func TestListCatalogTool(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.listCatalog(t.Context(), callTool(nil))
	if err != nil {
		t.Fatalf("listCatalog: %v", err)
	}

	var full fullCatalogResult
	resultJSON(t, result, &full)

	if len(full.CHOProducts) != 5 || len(full.Drinks) != 3 || len(full.Electrolytes) != 2 {
		t.Errorf("catalog = %d/%d/%d, want 5/3/2",
			len(full.CHOProducts), len(full.Drinks), len(full.Electrolytes))
	}
}

// TestAddCHOProductTool appends a product and validates the input checks.
func TestAddCHOProductTool(t *testing.T) {
	h := newTestHandlers(t)

	result, err := h.addCHOProduct(t.Context(), callTool(map[string]any{
		"name":  "Test chew (20 g)",
		"kind":  "other",
		"cho_g": 20.0,
	}))
	if err != nil {
		t.Fatalf("addCHOProduct: %v", err)
	}

	var added catalog.CHOProduct
	resultJSON(t, result, &added)
	if added.Kind != catalog.KindOther {
		t.Errorf("kind = %q, want other", added.Kind)
	}

	// Missing cho_g must be rejected.
	result, err = h.addCHOProduct(t.Context(), callTool(map[string]any{"name": "bad"}))
	if err != nil {
		t.Fatalf("addCHOProduct: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result without cho_g")
	}
}
