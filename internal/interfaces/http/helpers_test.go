package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/direcional-api/internal/application/auth"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
	apphttp "github.com/jhoicas/direcional-api/internal/interfaces/http"
	"github.com/jhoicas/direcional-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testToken    = "token-valido"
	testUserID   = "00000000-0000-0000-0000-000000000001"
	testClientID = "00000000-0000-0000-0000-0000000000c1"
	testUnitID   = "00000000-0000-0000-0000-0000000000a1"
	testResID    = "00000000-0000-0000-0000-0000000000b1"
	testSaleID   = "00000000-0000-0000-0000-0000000000d1"
)

// stubGate acepta únicamente testToken.
type stubGate struct{}

func (stubGate) Authenticate(_ context.Context, token string) (*auth.Identity, error) {
	if token != testToken {
		return nil, domain.Unauthorized("token inválido o expirado")
	}
	return &auth.Identity{
		User:   &entity.User{ID: testUserID, Username: "corretor", Email: "corretor@direcional.com.br", Active: true},
		Claims: &auth.TokenClaims{Subject: "corretor", ID: "jti-1"},
	}, nil
}

type testEnv struct {
	app          *fiber.App
	auth         *mockAuth
	clients      *mockClients
	units        *mockUnits
	reservations *mockReservations
	sales        *mockSales
	availability *mockAvailability
	receipts     *mockReceipts
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		auth:         new(mockAuth),
		clients:      new(mockClients),
		units:        new(mockUnits),
		reservations: new(mockReservations),
		sales:        new(mockSales),
		availability: new(mockAvailability),
		receipts:     new(mockReceipts),
	}
	env.app = fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	apphttp.Router(env.app, apphttp.RouterDeps{
		AuthUC:        env.auth,
		Gate:          stubGate{},
		ClientUC:      env.clients,
		UnitUC:        env.units,
		ReservationUC: env.reservations,
		SaleUC:        env.sales,
		Availability:  env.availability,
		ReceiptUC:     env.receipts,
	})
	t.Cleanup(func() {
		env.auth.AssertExpectations(t)
		env.clients.AssertExpectations(t)
		env.units.AssertExpectations(t)
		env.reservations.AssertExpectations(t)
		env.sales.AssertExpectations(t)
		env.availability.AssertExpectations(t)
		env.receipts.AssertExpectations(t)
	})
	return env
}

// do lanza la petición con cuerpo JSON opcional y el bearer de prueba.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+testToken)
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Mocks de servicios
// ──────────────────────────────────────────────────────────────────────────────

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dto.UserResponse)
	return out, args.Error(1)
}

func (m *mockAuth) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dto.TokenResponse)
	return out, args.Error(1)
}

func (m *mockAuth) Logout(ctx context.Context, id *auth.Identity) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAuth) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*dto.UserResponse)
	return out, args.Error(1)
}

type mockClients struct{ mock.Mock }

func (m *mockClients) Create(ctx context.Context, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dto.ClientResponse)
	return out, args.Error(1)
}

func (m *mockClients) GetByID(ctx context.Context, id string) (*dto.ClientResponse, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*dto.ClientResponse)
	return out, args.Error(1)
}

func (m *mockClients) List(ctx context.Context, page dto.PageRequest) ([]*dto.ClientResponse, error) {
	args := m.Called(ctx, page)
	out, _ := args.Get(0).([]*dto.ClientResponse)
	return out, args.Error(1)
}

func (m *mockClients) Update(ctx context.Context, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	args := m.Called(ctx, id, in)
	out, _ := args.Get(0).(*dto.ClientResponse)
	return out, args.Error(1)
}

func (m *mockClients) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockUnits struct{ mock.Mock }

func (m *mockUnits) Create(ctx context.Context, in dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dto.UnitResponse)
	return out, args.Error(1)
}

func (m *mockUnits) GetByID(ctx context.Context, id string) (*dto.UnitResponse, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*dto.UnitResponse)
	return out, args.Error(1)
}

func (m *mockUnits) List(ctx context.Context, status string, page dto.PageRequest) ([]*dto.UnitResponse, error) {
	args := m.Called(ctx, status, page)
	out, _ := args.Get(0).([]*dto.UnitResponse)
	return out, args.Error(1)
}

func (m *mockUnits) Update(ctx context.Context, id string, in dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	args := m.Called(ctx, id, in)
	out, _ := args.Get(0).(*dto.UnitResponse)
	return out, args.Error(1)
}

func (m *mockUnits) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockReservations struct{ mock.Mock }

func (m *mockReservations) Create(ctx context.Context, in dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dto.ReservationResponse)
	return out, args.Error(1)
}

func (m *mockReservations) Cancel(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*dto.ReservationResponse)
	return out, args.Error(1)
}

func (m *mockReservations) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReservations) Get(ctx context.Context, id string) (*dto.ReservationResponse, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*dto.ReservationResponse)
	return out, args.Error(1)
}

func (m *mockReservations) List(ctx context.Context, offset, limit int) ([]*dto.ReservationResponse, error) {
	args := m.Called(ctx, offset, limit)
	out, _ := args.Get(0).([]*dto.ReservationResponse)
	return out, args.Error(1)
}

func (m *mockReservations) ListByClient(ctx context.Context, clientID string, offset, limit int) ([]*dto.ReservationResponse, error) {
	args := m.Called(ctx, clientID, offset, limit)
	out, _ := args.Get(0).([]*dto.ReservationResponse)
	return out, args.Error(1)
}

type mockSales struct{ mock.Mock }

func (m *mockSales) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*dto.SaleResponse)
	return out, args.Error(1)
}

func (m *mockSales) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSales) Get(ctx context.Context, id string) (*dto.SaleResponse, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*dto.SaleResponse)
	return out, args.Error(1)
}

func (m *mockSales) List(ctx context.Context, offset, limit int) ([]*dto.SaleResponse, error) {
	args := m.Called(ctx, offset, limit)
	out, _ := args.Get(0).([]*dto.SaleResponse)
	return out, args.Error(1)
}

func (m *mockSales) ListByClient(ctx context.Context, clientID string, offset, limit int) ([]*dto.SaleResponse, error) {
	args := m.Called(ctx, clientID, offset, limit)
	out, _ := args.Get(0).([]*dto.SaleResponse)
	return out, args.Error(1)
}

type mockAvailability struct{ mock.Mock }

func (m *mockAvailability) Check(ctx context.Context, unitID string) (*dto.UnitAvailabilityResponse, error) {
	args := m.Called(ctx, unitID)
	out, _ := args.Get(0).(*dto.UnitAvailabilityResponse)
	return out, args.Error(1)
}

type mockReceipts struct{ mock.Mock }

func (m *mockReceipts) Generate(ctx context.Context, saleID string) ([]byte, string, error) {
	args := m.Called(ctx, saleID)
	out, _ := args.Get(0).([]byte)
	return out, args.String(1), args.Error(2)
}
