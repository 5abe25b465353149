package mcp

import (
	"context"

	"github.com/claude/fuelplan/internal/catalog"
)

// Catalog abstracts the product catalog for MCP tools. Both *catalog.Store
// (local) and HTTPClient (remote via REST API) satisfy this interface.
type Catalog interface {
	ListCHOProducts(ctx context.Context) ([]catalog.CHOProduct, error)
	ListDrinks(ctx context.Context) ([]catalog.Drink, error)
	ListElectrolytes(ctx context.Context) ([]catalog.Electrolyte, error)
	CHOProductByName(ctx context.Context, name string) (catalog.CHOProduct, error)
	DrinkByName(ctx context.Context, name string) (catalog.Drink, error)
	ElectrolyteByName(ctx context.Context, name string) (catalog.Electrolyte, error)
	AddCHOProduct(ctx context.Context, p catalog.CHOProduct) (catalog.CHOProduct, error)
	AddDrink(ctx context.Context, d catalog.Drink) (catalog.Drink, error)
	AddElectrolyte(ctx context.Context, e catalog.Electrolyte) (catalog.Electrolyte, error)
}

// Compile-time check: *catalog.Store satisfies Catalog.
var _ Catalog = (*catalog.Store)(nil)
