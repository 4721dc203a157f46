package food

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/provider"
)

type barcodeStage struct {
	name  string
	fetch func(ctx context.Context, code string) (*domain.FoodSummary, error)
}

// LookupBarcode resolves a scanned barcode through FoodData Central branded
// foods, then Open Food Facts. Stages run one after another; the first hit wins.
//
// Returns domain.ErrNotFound when every provider answered "not found", and
// an error wrapping domain.ErrProviderUnavailable when nothing was found and
// at least one provider failed.
func (s *Service) LookupBarcode(ctx context.Context, barcode string) (*domain.FoodSummary, error) {
	code := domain.NormalizeBarcode(barcode)
	if code == "" {
		return nil, domain.NewValidationError("barcode", "must contain only digits")
	}

	stages := []barcodeStage{
		{name: "usda", fetch: s.usda.SearchBarcode},
		{name: "openfoodfacts", fetch: s.registry.FetchProduct},
	}

	var failures []error
	for _, st := range stages {
		v, err := provider.Retry(ctx, s.retrier, st.name+".barcode", func(ctx context.Context) (*domain.FoodSummary, error) {
			return st.fetch(ctx, code)
		})
		res := provider.LookupOf(v, err)

		switch res.Outcome {
		case provider.Found:
			s.log.InfoContext(ctx, "barcode resolved",
				slog.String("barcode", code),
				slog.String("provider", st.name),
				slog.String("food_id", res.Value.ID),
			)
			return res.Value, nil

		case provider.Failed:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, fmt.Errorf("lookup barcode %s: %w", code, ctxErr)
			}
			s.log.WarnContext(ctx, "barcode provider failed, trying next",
				slog.String("barcode", code),
				slog.String("provider", st.name),
				slog.String("error", res.Err.Error()),
			)
			failures = append(failures, res.Err)

		case provider.NotFound:
			s.log.DebugContext(ctx, "barcode not found in provider",
				slog.String("barcode", code),
				slog.String("provider", st.name),
			)
		}
	}

	if len(failures) > 0 {
		return nil, fmt.Errorf("lookup barcode %s: %w", code,
			errors.Join(append([]error{domain.ErrProviderUnavailable}, failures...)...))
	}
	return nil, fmt.Errorf("barcode %s: %w", code, domain.ErrNotFound)
}
