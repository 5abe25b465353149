package mcp

import (
	"context"
	"encoding/json"

	"github.com/claude/fuelplan/internal/catalog"
	"github.com/mark3labs/mcp-go/mcp"
)

// fullCatalog gathers all three product lists.
type fullCatalogResult struct {
	CHOProducts  []catalog.CHOProduct  `json:"cho_products"`
	Drinks       []catalog.Drink       `json:"drinks"`
	Electrolytes []catalog.Electrolyte `json:"electrolytes"`
}

func (h *handlers) fullCatalog(ctx context.Context) (fullCatalogResult, error) {
	var full fullCatalogResult
	var err error

	if full.CHOProducts, err = h.cat.ListCHOProducts(ctx); err != nil {
		return fullCatalogResult{}, err
	}
	if full.Drinks, err = h.cat.ListDrinks(ctx); err != nil {
		return fullCatalogResult{}, err
	}
	if full.Electrolytes, err = h.cat.ListElectrolytes(ctx); err != nil {
		return fullCatalogResult{}, err
	}
	return full, nil
}

func (h *handlers) catalogResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	full, err := h.fullCatalog(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(full)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
