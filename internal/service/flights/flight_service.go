package flights

import (
	"context"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/Phecobaba/Skybooker-sub001/internal/pricing"
	"github.com/Phecobaba/Skybooker-sub001/internal/repository"
)

// PricedFlight pairs a flight with its derived price breakdown. The breakdown
// is recomputed on every read, never stored.
type PricedFlight struct {
	Flight domain.Flight
	Price  pricing.Breakdown
}

type FlightUseCase interface {
	List(ctx context.Context) ([]PricedFlight, error)
	GetByID(ctx context.Context, id int64) (*PricedFlight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
}

type Quoter interface {
	Quote(ctx context.Context, basePrice float64) (pricing.Breakdown, error)
}

type FlightService struct {
	repo     repository.FlightRepository
	cache    Cache
	quoter   Quoter
	cacheTTL time.Duration
}

func NewFlightService(repo repository.FlightRepository, cache Cache, quoter Quoter, cacheTTL time.Duration) *FlightService {
	return &FlightService{repo: repo, cache: cache, quoter: quoter, cacheTTL: cacheTTL}
}

func (s *FlightService) List(ctx context.Context) ([]PricedFlight, error) {
	flights, err := s.listFlights(ctx)
	if err != nil {
		return nil, err
	}

	priced := make([]PricedFlight, 0, len(flights))
	for _, f := range flights {
		p, err := s.price(ctx, f)
		if err != nil {
			return nil, err
		}
		priced = append(priced, p)
	}
	return priced, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*PricedFlight, error) {
	flight, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := s.price(ctx, *flight)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *FlightService) listFlights(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) price(ctx context.Context, f domain.Flight) (PricedFlight, error) {
	breakdown, err := s.quoter.Quote(ctx, float64(f.PriceCents)/100)
	if err != nil {
		return PricedFlight{}, err
	}
	return PricedFlight{Flight: f, Price: breakdown}, nil
}

var _ FlightUseCase = (*FlightService)(nil)
