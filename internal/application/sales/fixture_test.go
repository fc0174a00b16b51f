package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/application/sales"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
)

type fixture struct {
	store        *memStore
	observer     *recordingObserver
	reservations *sales.ReservationUseCase
	sales        *sales.SaleUseCase
	availability *sales.AvailabilityQuery
	client       *entity.Client
	unit         *entity.Unit
}

// newFixture siembra el cliente C1 (CPF 12345678901) y la unidad U1 ("101", AVAILABLE).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := newMemStore()
	obs := &recordingObserver{}
	repos := store.repos()

	now := time.Now().UTC()
	client := &entity.Client{
		ID:         uuid.New().String(),
		Name:       "João Silva",
		NationalID: "12345678901",
		Email:      "joao@example.com",
		Phone:      "11999999999",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	unit := newUnit("101", entity.UnitStatusAvailable)
	store.addClient(client)
	store.addUnit(unit)

	return &fixture{
		store:        store,
		observer:     obs,
		reservations: sales.NewReservationUseCase(store, repos.Reservations, obs),
		sales:        sales.NewSaleUseCase(store, repos.Sales, obs),
		availability: sales.NewAvailabilityQuery(repos.Units),
		client:       client,
		unit:         unit,
	}
}

func newUnit(number string, status entity.UnitStatus) *entity.Unit {
	now := time.Now().UTC()
	return &entity.Unit{
		ID:        uuid.New().String(),
		Number:    number,
		Block:     "A",
		Floor:     1,
		Rooms:     2,
		Area:      decimal.RequireFromString("65.5"),
		Price:     decimal.NewFromInt(250000),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (f *fixture) reserve(t *testing.T) *dto.ReservationResponse {
	t.Helper()
	res, err := f.reservations.Create(context.Background(), f.reservationRequest())
	require.NoError(t, err)
	return res
}

func (f *fixture) reservationRequest() dto.CreateReservationRequest {
	return dto.CreateReservationRequest{
		ClientID:  f.client.ID,
		UnitID:    f.unit.ID,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
}

func (f *fixture) saleRequest() dto.CreateSaleRequest {
	return dto.CreateSaleRequest{
		ClientID:    f.client.ID,
		UnitID:      f.unit.ID,
		SaleValue:   decimal.NewFromInt(250000),
		DownPayment: decimal.NewFromInt(50000),
	}
}

func (f *fixture) sell(t *testing.T) *dto.SaleResponse {
	t.Helper()
	sale, err := f.sales.Create(context.Background(), f.saleRequest())
	require.NoError(t, err)
	return sale
}

func (f *fixture) unitStatus() entity.UnitStatus {
	return f.store.unit(f.unit.ID).Status
}
