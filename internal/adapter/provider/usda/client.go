// Package usda is a client for the FoodData Central API.
package usda

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/nutritrack-backend/internal/adapter/provider/providerhttp"
	"github.com/heartmarshall/nutritrack-backend/internal/config"
	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/nutrition"
)

const providerName = "usda"

// barcodePageSize is the page size of a branded search by UPC.
const barcodePageSize = 5

var brandedOnly = []string{"Branded"}

// Client queries FoodData Central. Every call is a single attempt;
// retries belong to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	dataTypes  []string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from configuration.
func NewClient(cfg config.USDAConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		pageSize:   cfg.PageSize,
		dataTypes:  cfg.DataTypes(),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", providerName),
	}
}

// Search runs a text query. An empty term or an empty hit list yields an
// empty slice and no error.
func (c *Client) Search(ctx context.Context, term string) ([]domain.FoodSummary, error) {
	term = domain.NormalizeQuery(term)
	if term == "" {
		return []domain.FoodSummary{}, nil
	}

	resp, err := c.search(ctx, apiSearchRequest{Query: term, PageSize: c.pageSize, DataType: c.dataTypes})
	if err != nil {
		c.log.ErrorContext(ctx, "usda search failed", slog.String("query", term), slog.String("error", err.Error()))
		return nil, err
	}

	out := make([]domain.FoodSummary, 0, len(resp.Foods))
	for _, f := range resp.Foods {
		out = append(out, mapSummary(f))
	}

	c.log.DebugContext(ctx, "usda search",
		slog.String("query", term),
		slog.Int("hits", len(out)),
		slog.Int("total", resp.TotalHits),
	)

	return out, nil
}

// SearchBarcode looks a UPC up among branded foods. The search is full-text,
// so only a hit whose GTIN equals code counts. Returns nil, nil if none does.
func (c *Client) SearchBarcode(ctx context.Context, code string) (*domain.FoodSummary, error) {
	resp, err := c.search(ctx, apiSearchRequest{Query: code, PageSize: barcodePageSize, DataType: brandedOnly})
	if err != nil {
		c.log.ErrorContext(ctx, "usda barcode search failed", slog.String("barcode", code), slog.String("error", err.Error()))
		return nil, err
	}

	for _, f := range resp.Foods {
		if sameGTIN(f.GtinUpc, code) {
			s := mapSummary(f)
			return &s, nil
		}
	}

	if len(resp.Foods) > 0 {
		c.log.DebugContext(ctx, "usda barcode search: no hit with matching gtin",
			slog.String("barcode", code),
			slog.Int("hits", len(resp.Foods)),
		)
	}
	return nil, nil
}

// sameGTIN compares two codes as GTINs: separators and zero padding
// (UPC-A vs GTIN-13/14) are ignored.
func sameGTIN(a, b string) bool {
	a = strings.TrimLeft(domain.NormalizeBarcode(a), "0")
	b = strings.TrimLeft(domain.NormalizeBarcode(b), "0")
	return a != "" && a == b
}

// FetchDetail fetches one food with its nutrients by FDC id.
// Returns nil, nil if the food does not exist (HTTP 404).
func (c *Client) FetchDetail(ctx context.Context, fdcID string) (*domain.FoodDetail, error) {
	if _, err := strconv.ParseInt(fdcID, 10, 64); err != nil {
		return nil, domain.NewProviderError(providerName, domain.ErrInvalidRequest, 0, fmt.Errorf("fdc id %q is not numeric", fdcID))
	}

	reqURL := c.baseURL + "/food/" + url.PathEscape(fdcID) + "?" + c.query().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("usda: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.DebugContext(ctx, "usda detail request", slog.String("fdc_id", fdcID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = providerhttp.TransportError(providerName, err)
		c.log.ErrorContext(ctx, "usda detail failed", slog.String("fdc_id", fdcID), slog.String("error", err.Error()))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, providerhttp.StatusError(providerName, resp.StatusCode)
	}

	body, err := providerhttp.ReadBody(providerName, resp)
	if err != nil {
		return nil, err
	}

	var food apiFood
	if err := json.Unmarshal(body, &food); err != nil {
		return nil, providerhttp.DecodeError(providerName, err)
	}

	detail := mapDetail(food)

	c.log.DebugContext(ctx, "usda detail",
		slog.String("fdc_id", fdcID),
		slog.Int("nutrients", len(food.FoodNutrients)),
	)

	return &detail, nil
}

func (c *Client) search(ctx context.Context, payload apiSearchRequest) (*apiSearchResponse, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("usda: encode request: %w", err)
	}

	reqURL := c.baseURL + "/foods/search?" + c.query().Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("usda: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, providerhttp.TransportError(providerName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, providerhttp.StatusError(providerName, resp.StatusCode)
	}

	body, err := providerhttp.ReadBody(providerName, resp)
	if err != nil {
		return nil, err
	}

	var out apiSearchResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, providerhttp.DecodeError(providerName, err)
	}
	return &out, nil
}

func (c *Client) query() url.Values {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	return q
}

// mapSummary converts an API food into a FoodSummary, filling serving defaults.
func mapSummary(f apiFood) domain.FoodSummary {
	s := domain.FoodSummary{
		ID:              strconv.FormatInt(f.FdcID, 10),
		Name:            strings.TrimSpace(f.Description),
		DataType:        mapDataType(f.DataType),
		ServingSize:     domain.DefaultServingSize,
		ServingSizeUnit: domain.DefaultServingSizeUnit,
	}

	if brand := firstNonEmpty(f.BrandOwner, f.BrandName); brand != "" {
		s.Brand = &brand
	}
	if f.ServingSize != nil && *f.ServingSize > 0 {
		s.ServingSize = *f.ServingSize
	}
	if unit := strings.TrimSpace(f.ServingSizeUnit); unit != "" {
		s.ServingSizeUnit = unit
	}

	return s
}

func mapDetail(f apiFood) domain.FoodDetail {
	rows := make([]nutrition.NamedNutrient, 0, len(f.FoodNutrients))
	for _, n := range f.FoodNutrients {
		rows = append(rows, toNamedNutrient(n))
	}
	return domain.FoodDetail{
		FoodSummary: mapSummary(f),
		Nutrients:   nutrition.Normalize(rows),
	}
}

func toNamedNutrient(n apiFoodNutrient) nutrition.NamedNutrient {
	out := nutrition.NamedNutrient{Name: n.NutrientName, Unit: n.UnitName}
	if n.Nutrient != nil {
		out.Name = firstNonEmpty(n.Nutrient.Name, out.Name)
		out.Unit = firstNonEmpty(n.Nutrient.UnitName, out.Unit)
	}
	switch {
	case n.Amount != nil:
		out.Amount = *n.Amount
	case n.Value != nil:
		out.Amount = *n.Value
	}
	return out
}

// mapDataType maps FoodData Central labels; anything unrecognized is
// treated as a legacy record.
func mapDataType(label string) domain.DataType {
	if dt, ok := domain.ParseDataType(label); ok && dt != domain.DataTypeExternalRegistry {
		return dt
	}
	return domain.DataTypeLegacy
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
