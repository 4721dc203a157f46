package food

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/nutritrack-backend/internal/domain"
	"github.com/heartmarshall/nutritrack-backend/internal/provider"
)

// sharedFetchTimeout bounds a coalesced detail fetch, which no longer follows
// any single caller's context. It covers every retry attempt.
const sharedFetchTimeout = time.Minute

// GetDetail resolves a food into its nutrient detail. External-registry foods
// are looked up by barcode in Open Food Facts; everything else by FDC id.
// Concurrent requests for the same food share one provider call; a caller
// that goes away stops waiting without failing the others.
// Returns domain.ErrNotFound if the provider does not know the food.
func (s *Service) GetDetail(ctx context.Context, input GetDetailInput) (*domain.FoodDetail, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	key := string(input.DataType) + ":" + input.ID
	ch := s.details.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		return s.fetchDetail(fetchCtx, input)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		detail := *res.Val.(*domain.FoodDetail)
		return &detail, nil
	}
}

func (s *Service) fetchDetail(ctx context.Context, input GetDetailInput) (*domain.FoodDetail, error) {
	op, fetch := "usda.detail", s.usda.FetchDetail
	if input.DataType == domain.DataTypeExternalRegistry {
		op, fetch = "openfoodfacts.detail", s.registry.FetchDetail
	}

	detail, err := provider.Retry(ctx, s.retrier, op, func(ctx context.Context) (*domain.FoodDetail, error) {
		return fetch(ctx, input.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("get food %s: %w", input.ID, err)
	}
	if detail == nil {
		return nil, fmt.Errorf("food %s: %w", input.ID, domain.ErrNotFound)
	}

	return detail, nil
}
