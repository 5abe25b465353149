package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/claude/fuelplan/internal/catalog"
)

// HTTPClient implements Catalog by calling the FuelPlan REST API. Used for
// remote MCP mode where the binary runs locally (stdio) but the catalog
// lives on the remote server.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies Catalog.
var _ Catalog = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. The API
// key is only needed for catalog writes.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("GET %s: status %d: %s", path, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) post(ctx context.Context, path string, in, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("POST %s: status %d: %s", path, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// ListCHOProducts retrieves all carbohydrate products.
func (c *HTTPClient) ListCHOProducts(ctx context.Context) ([]catalog.CHOProduct, error) {
	var products []catalog.CHOProduct
	if err := c.get(ctx, "/api/v1/catalog/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// ListDrinks retrieves all drinks.
func (c *HTTPClient) ListDrinks(ctx context.Context) ([]catalog.Drink, error) {
	var drinks []catalog.Drink
	if err := c.get(ctx, "/api/v1/catalog/drinks", &drinks); err != nil {
		return nil, err
	}
	return drinks, nil
}

// ListElectrolytes retrieves all electrolyte supplements.
func (c *HTTPClient) ListElectrolytes(ctx context.Context) ([]catalog.Electrolyte, error) {
	var elecs []catalog.Electrolyte
	if err := c.get(ctx, "/api/v1/catalog/electrolytes", &elecs); err != nil {
		return nil, err
	}
	return elecs, nil
}

// CHOProductByName resolves a product name with the same fallback the local
// store uses: exact match, else the first catalog entry.
func (c *HTTPClient) CHOProductByName(ctx context.Context, name string) (catalog.CHOProduct, error) {
	products, err := c.ListCHOProducts(ctx)
	if err != nil {
		return catalog.CHOProduct{}, err
	}
	if len(products) == 0 {
		return catalog.CHOProduct{}, fmt.Errorf("cho product catalog is empty")
	}
	for _, p := range products {
		if p.Name == name {
			return p, nil
		}
	}
	return products[0], nil
}

// DrinkByName resolves a drink name with fallback to the first entry.
func (c *HTTPClient) DrinkByName(ctx context.Context, name string) (catalog.Drink, error) {
	drinks, err := c.ListDrinks(ctx)
	if err != nil {
		return catalog.Drink{}, err
	}
	if len(drinks) == 0 {
		return catalog.Drink{}, fmt.Errorf("drink catalog is empty")
	}
	for _, d := range drinks {
		if d.Name == name {
			return d, nil
		}
	}
	return drinks[0], nil
}

// ElectrolyteByName resolves an electrolyte name with fallback to the first
// entry.
func (c *HTTPClient) ElectrolyteByName(ctx context.Context, name string) (catalog.Electrolyte, error) {
	elecs, err := c.ListElectrolytes(ctx)
	if err != nil {
		return catalog.Electrolyte{}, err
	}
	if len(elecs) == 0 {
		return catalog.Electrolyte{}, fmt.Errorf("electrolyte catalog is empty")
	}
	for _, e := range elecs {
		if e.Name == name {
			return e, nil
		}
	}
	return elecs[0], nil
}

// AddCHOProduct appends a carbohydrate product via the REST API.
func (c *HTTPClient) AddCHOProduct(ctx context.Context, p catalog.CHOProduct) (catalog.CHOProduct, error) {
	var added catalog.CHOProduct
	if err := c.post(ctx, "/api/v1/catalog/products", p, &added); err != nil {
		return catalog.CHOProduct{}, err
	}
	return added, nil
}

// AddDrink appends a drink via the REST API.
func (c *HTTPClient) AddDrink(ctx context.Context, d catalog.Drink) (catalog.Drink, error) {
	var added catalog.Drink
	if err := c.post(ctx, "/api/v1/catalog/drinks", d, &added); err != nil {
		return catalog.Drink{}, err
	}
	return added, nil
}

// AddElectrolyte appends an electrolyte supplement via the REST API.
func (c *HTTPClient) AddElectrolyte(ctx context.Context, e catalog.Electrolyte) (catalog.Electrolyte, error) {
	var added catalog.Electrolyte
	if err := c.post(ctx, "/api/v1/catalog/electrolytes", e, &added); err != nil {
		return catalog.Electrolyte{}, err
	}
	return added, nil
}
