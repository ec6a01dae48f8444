package pricing

import (
	"context"
	"errors"

	corepricing "github.com/Phecobaba/Skybooker-sub001/internal/pricing"
	"github.com/Phecobaba/Skybooker-sub001/internal/repository"
)

type PricingUseCase interface {
	Rates(ctx context.Context) (corepricing.RateConfig, error)
	Quote(ctx context.Context, basePrice float64) (corepricing.Breakdown, error)
	UpdateRates(ctx context.Context, rates corepricing.RateConfig) error
}

type RatesCache interface {
	GetRates(ctx context.Context) (*corepricing.RateConfig, error)
	SetRates(ctx context.Context, rates corepricing.RateConfig) error
	InvalidateRates(ctx context.Context) error
}

type PricingService struct {
	settings repository.SettingsRepository
	cache    RatesCache
}

func NewPricingService(settings repository.SettingsRepository, cache RatesCache) *PricingService {
	return &PricingService{settings: settings, cache: cache}
}

// Rates loads the configured rates, cache-aside. Cache failures fall through
// to the settings store.
func (s *PricingService) Rates(ctx context.Context) (corepricing.RateConfig, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetRates(ctx); err == nil && cached != nil {
			return *cached, nil
		}
	}

	rates, err := s.settings.GetRates(ctx)
	if err != nil {
		return corepricing.RateConfig{}, err
	}
	if s.cache != nil {
		_ = s.cache.SetRates(ctx, rates)
	}
	return rates, nil
}

func (s *PricingService) Quote(ctx context.Context, basePrice float64) (corepricing.Breakdown, error) {
	rates, err := s.Rates(ctx)
	if err != nil {
		return corepricing.Breakdown{}, err
	}
	return corepricing.ComputeTotal(basePrice, rates), nil
}

func (s *PricingService) UpdateRates(ctx context.Context, rates corepricing.RateConfig) error {
	if err := validateRate(rates.TaxRate); err != nil {
		return err
	}
	if err := validateRate(rates.ServiceFeeRate); err != nil {
		return err
	}
	if err := s.settings.UpdateRates(ctx, rates); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateRates(ctx)
	}
	return nil
}

func validateRate(rate *float64) error {
	if rate == nil {
		return nil
	}
	if *rate < 0 || *rate >= 1 {
		return errors.New("rate must be in [0, 1)")
	}
	return nil
}

var _ PricingUseCase = (*PricingService)(nil)
