package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
	"github.com/Phecobaba/Skybooker-sub001/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

type MockQuoter struct {
	mock.Mock
}

func (m *MockQuoter) Quote(ctx context.Context, basePrice float64) (pricing.Breakdown, error) {
	args := m.Called(ctx, basePrice)
	return args.Get(0).(pricing.Breakdown), args.Error(1)
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	mockQuoter := &MockQuoter{}

	flights := []domain.Flight{{ID: 1, PriceCents: 10000}}
	breakdown := pricing.ComputeTotal(100, pricing.RateConfig{})

	mockCache.On("GetFlights", mock.Anything).Return(nil, nil)
	mockRepo.On("List", mock.Anything).Return(flights, nil)
	mockCache.On("SetFlights", mock.Anything, flights).Return(nil)
	mockQuoter.On("Quote", mock.Anything, 100.0).Return(breakdown, nil)

	service := NewFlightService(mockRepo, mockCache, mockQuoter, time.Minute)

	priced, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, priced, 1)
	assert.InDelta(t, 117.0, priced[0].Price.TotalPrice, 1e-9)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestFlightService_List_CacheHitSkipsRepo(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	mockQuoter := &MockQuoter{}

	flights := []domain.Flight{{ID: 1, PriceCents: 5000}}
	mockCache.On("GetFlights", mock.Anything).Return(flights, nil)
	mockQuoter.On("Quote", mock.Anything, 50.0).Return(pricing.ComputeTotal(50, pricing.RateConfig{}), nil)

	service := NewFlightService(mockRepo, mockCache, mockQuoter, time.Minute)

	priced, err := service.List(context.Background())

	assert.NoError(t, err)
	assert.Len(t, priced, 1)
	mockRepo.AssertNotCalled(t, "List", mock.Anything)
}

func TestFlightService_GetByID(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockQuoter := &MockQuoter{}

	flight := &domain.Flight{ID: 3, PriceCents: 25050}
	mockRepo.On("GetByID", mock.Anything, int64(3)).Return(flight, nil)
	mockQuoter.On("Quote", mock.Anything, 250.5).Return(pricing.ComputeTotal(250.5, pricing.RateConfig{}), nil)

	service := NewFlightService(mockRepo, nil, mockQuoter, time.Minute)

	priced, err := service.GetByID(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), priced.Flight.ID)
	assert.InDelta(t, 250.5, priced.Price.BasePrice, 1e-9)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, errors.New("no rows"))

	service := NewFlightService(mockRepo, nil, &MockQuoter{}, time.Minute)

	_, err := service.GetByID(context.Background(), 99)
	assert.Error(t, err)
}

func TestFlightService_List_QuoteError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockQuoter := &MockQuoter{}

	mockRepo.On("List", mock.Anything).Return([]domain.Flight{{ID: 1, PriceCents: 100}}, nil)
	mockQuoter.On("Quote", mock.Anything, 1.0).Return(pricing.Breakdown{}, errors.New("settings unavailable"))

	service := NewFlightService(mockRepo, nil, mockQuoter, time.Minute)

	_, err := service.List(context.Background())
	assert.EqualError(t, err, "settings unavailable")
}
