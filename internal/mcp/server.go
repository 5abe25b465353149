package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(cat Catalog, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("FuelPlan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("FuelPlan endurance fueling calculator. Compute hourly carbohydrate, fluid and sodium targets with an intake schedule, evaluate sweat-rate self-tests, and screen gut tolerance symptoms. Product selections resolve against the catalog by name; unknown names fall back to the first catalog entry."),
	)

	h := &handlers{cat: cat, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolComputePlan, Handler: h.computePlan},
		server.ServerTool{Tool: toolEvaluateSweatTest, Handler: h.evaluateSweatTest},
		server.ServerTool{Tool: toolScreenTolerance, Handler: h.screenTolerance},
		server.ServerTool{Tool: toolListCatalog, Handler: h.listCatalog},
		server.ServerTool{Tool: toolAddCHOProduct, Handler: h.addCHOProduct},
		server.ServerTool{Tool: toolAddDrink, Handler: h.addDrink},
		server.ServerTool{Tool: toolAddElectrolyte, Handler: h.addElectrolyte},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.catalogResource},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	cat Catalog
	log *slog.Logger
}

// --- Resource definitions ---

var resCatalog = mcp.NewResource(
	"fuelplan://catalog",
	"Product Catalog",
	mcp.WithResourceDescription("All carbohydrate products, drinks and electrolyte supplements with their composition"),
	mcp.WithMIMEType("application/json"),
)
