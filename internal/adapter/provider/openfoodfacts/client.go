// Package openfoodfacts is a client for the Open Food Facts product registry.
package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/heartmarshall/nutritrack-backend/internal/adapter/provider/providerhttp"
	"github.com/heartmarshall/nutritrack-backend/internal/config"
	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/nutrition"
)

const providerName = "openfoodfacts"

const searchPageSize = 10

// Client queries Open Food Facts. Every call is a single attempt.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.OpenFoodFactsConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", providerName),
	}
}

// Search runs a full-text product search.
func (c *Client) Search(ctx context.Context, term string) ([]domain.FoodSummary, error) {
	term = domain.NormalizeQuery(term)
	if term == "" {
		return []domain.FoodSummary{}, nil
	}

	q := url.Values{}
	q.Set("search_terms", term)
	q.Set("search_simple", "1")
	q.Set("action", "process")
	q.Set("json", "1")
	q.Set("page_size", strconv.Itoa(searchPageSize))

	var resp apiSearchResponse
	found, err := c.getJSON(ctx, c.baseURL+"/cgi/search.pl?"+q.Encode(), &resp)
	if err != nil {
		c.log.ErrorContext(ctx, "openfoodfacts search failed", slog.String("query", term), slog.String("error", err.Error()))
		return nil, err
	}
	if !found {
		return []domain.FoodSummary{}, nil
	}

	out := make([]domain.FoodSummary, 0, len(resp.Products))
	for _, p := range resp.Products {
		if strings.TrimSpace(p.Code) == "" {
			continue
		}
		out = append(out, mapSummary(p.Code, p))
	}

	c.log.DebugContext(ctx, "openfoodfacts search", slog.String("query", term), slog.Int("hits", len(out)))

	return out, nil
}

// FetchProduct looks a barcode up and returns its summary.
// Returns nil, nil if the registry does not know the product.
func (c *Client) FetchProduct(ctx context.Context, barcode string) (*domain.FoodSummary, error) {
	code, p, err := c.fetch(ctx, barcode)
	if err != nil || p == nil {
		return nil, err
	}
	s := mapSummary(code, *p)
	return &s, nil
}

// FetchDetail looks a barcode up and returns the product with per-100 nutrients.
// Returns nil, nil if the registry does not know the product.
func (c *Client) FetchDetail(ctx context.Context, barcode string) (*domain.FoodDetail, error) {
	code, p, err := c.fetch(ctx, barcode)
	if err != nil || p == nil {
		return nil, err
	}
	d := domain.FoodDetail{
		FoodSummary: mapSummary(code, *p),
		Nutrients:   nutrition.NormalizePer100(mapNutriments(p.Nutriments)),
	}
	return &d, nil
}

func (c *Client) fetch(ctx context.Context, barcode string) (string, *apiProduct, error) {
	code := domain.NormalizeBarcode(barcode)
	if code == "" {
		return "", nil, domain.NewProviderError(providerName, domain.ErrInvalidRequest, 0, fmt.Errorf("barcode %q is not numeric", barcode))
	}

	c.log.DebugContext(ctx, "openfoodfacts product request", slog.String("barcode", code))

	var resp apiProductResponse
	found, err := c.getJSON(ctx, c.baseURL+"/api/v0/product/"+url.PathEscape(code)+".json", &resp)
	if err != nil {
		c.log.ErrorContext(ctx, "openfoodfacts product failed", slog.String("barcode", code), slog.String("error", err.Error()))
		return "", nil, err
	}
	if !found || resp.Status != 1 || resp.Product == nil {
		c.log.DebugContext(ctx, "openfoodfacts product not found", slog.String("barcode", code))
		return code, nil, nil
	}

	return code, resp.Product, nil
}

// getJSON performs a GET and decodes the body into dst.
// A 404 reports found=false without an error.
func (c *Client) getJSON(ctx context.Context, reqURL string, dst any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, fmt.Errorf("openfoodfacts: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, providerhttp.TransportError(providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, providerhttp.StatusError(providerName, resp.StatusCode)
	}

	body, err := providerhttp.ReadBody(providerName, resp)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return false, providerhttp.DecodeError(providerName, err)
	}
	return true, nil
}

func mapSummary(code string, p apiProduct) domain.FoodSummary {
	s := domain.FoodSummary{
		ID:              code,
		Name:            domain.UnknownProductName,
		DataType:        domain.DataTypeExternalRegistry,
		ServingSize:     domain.DefaultServingSize,
		ServingSizeUnit: domain.DefaultServingSizeUnit,
	}

	if name := strings.TrimSpace(p.ProductName); name != "" {
		s.Name = name
	} else if name := strings.TrimSpace(p.ProductNameEn); name != "" {
		s.Name = name
	}
	if brand := strings.TrimSpace(p.Brands); brand != "" {
		s.Brand = &brand
	}
	if size, ok := leadingFloat(p.ServingSize); ok && size > 0 {
		s.ServingSize = size
	}
	if unit := strings.TrimSpace(p.ServingSizeUnit); unit != "" {
		s.ServingSizeUnit = unit
	}

	return s
}

func mapNutriments(n apiNutriments) nutrition.Per100Nutriments {
	return nutrition.Per100Nutriments{
		EnergyKcal:    n.EnergyKcal100g.ptr(),
		Energy:        n.Energy100g.ptr(),
		Proteins:      n.Proteins100g.ptr(),
		Carbohydrates: n.Carbohydrates100g.ptr(),
		Fat:           n.Fat100g.ptr(),
		Fiber:         n.Fiber100g.ptr(),
		Sugars:        n.Sugars100g.ptr(),
		Sodium:        n.Sodium100g.ptr(),
	}
}

var leadingNumber = regexp.MustCompile(`^\s*[+-]?(\d+(\.\d*)?|\.\d+)`)

// leadingFloat parses the number at the start of a free-text serving size
// such as "30 g" or "250ml (1 cup)".
func leadingFloat(s string) (float64, bool) {
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
