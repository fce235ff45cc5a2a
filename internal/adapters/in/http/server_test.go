package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apphttp "swiftwash/internal/adapters/in/http"
	"swiftwash/internal/core/application/usecases/commands"
	"swiftwash/internal/core/application/usecases/queries"
	"swiftwash/internal/core/domain/model/city"
	"swiftwash/internal/core/domain/model/counter"
	"swiftwash/internal/core/domain/model/kernel"
	"swiftwash/internal/core/domain/services"
	"swiftwash/internal/core/ports"
	"swiftwash/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAddressProvider struct {
	address ports.Address
	err     error
}

func (s *stubAddressProvider) PrimaryAddress(_ context.Context, _ kernel.UUID) (ports.Address, error) {
	return s.address, s.err
}

type stubAuditRepository struct{}

func (s *stubAuditRepository) Add(_ context.Context, _ ports.Generation) error {
	return nil
}

type stubCounterRepository struct {
	value int
	err   error
}

func (s *stubCounterRepository) Increment(_ context.Context, _ counter.Key) (int, error) {
	return s.value, s.err
}
func (s *stubCounterRepository) Current(_ context.Context, _ counter.Key) (int, error) {
	return s.value, nil
}

type stubUoW struct {
	repo ports.CounterRepository
}

func (s *stubUoW) Begin(_ context.Context) error              { return nil }
func (s *stubUoW) Commit(_ context.Context) error             { return nil }
func (s *stubUoW) Rollback(_ context.Context) error           { return nil }
func (s *stubUoW) CounterRepository() ports.CounterRepository { return s.repo }

type stubUoWFactory struct {
	uow commands.CounterUoW
}

func (s *stubUoWFactory) Create() commands.CounterUoW { return s.uow }

func newTestServer(addresses ports.AddressProvider, repo ports.CounterRepository) *apphttp.Server {
	resolver := services.NewGeoResolver(city.DefaultTable())
	handler := commands.NewGenerateOrderIDCommandHandler(
		&stubUoWFactory{uow: &stubUoW{repo: repo}},
		addresses,
		&stubAuditRepository{},
		resolver,
		slog.New(slog.DiscardHandler),
	)
	return apphttp.NewServer(
		handler,
		queries.GetDailyCountersQueryHandler{},
		queries.GetRecentGenerationsQueryHandler{},
	)
}

func postOrderID(t *testing.T, server *apphttp.Server, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/order-ids", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, server.GenerateOrderID(e.NewContext(req, rec)))
	return rec
}

func TestGenerateOrderID_Success(t *testing.T) {
	addresses := &stubAddressProvider{
		address: ports.Address{PostalCode: "440010", CityName: "Nagpur"},
	}
	server := newTestServer(addresses, &stubCounterRepository{value: 1})

	body := `{"userId":"` + kernel.NewUUID().String() + `","orderType":"wash","isUrgent":true}`
	rec := postOrderID(t, server, body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var response apphttp.GenerateOrderIDResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "SW-NGP-N-440-WSH-001-URG", response.OrderID)
	assert.Equal(t, "NGP", response.CityCode)
	assert.Equal(t, "N", response.Direction)
	assert.Equal(t, "440", response.PostalPrefix)
	assert.Equal(t, "WSH", response.ServiceCode)
	assert.Equal(t, "001", response.Sequence)
	assert.Equal(t, []string{"URG"}, response.Flags)
}

func TestGenerateOrderID_InvalidUserID(t *testing.T) {
	server := newTestServer(&stubAddressProvider{}, &stubCounterRepository{})

	rec := postOrderID(t, server, `{"userId":"not-a-uuid","orderType":"wash"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateOrderID_MissingOrderType(t *testing.T) {
	server := newTestServer(&stubAddressProvider{}, &stubCounterRepository{})

	rec := postOrderID(t, server, `{"userId":"`+kernel.NewUUID().String()+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateOrderID_NoAddressOnFile(t *testing.T) {
	addresses := &stubAddressProvider{
		err: errs.NewObjectNotFoundError("address", "user"),
	}
	server := newTestServer(addresses, &stubCounterRepository{})

	rec := postOrderID(t, server, `{"userId":"`+kernel.NewUUID().String()+`","orderType":"wash"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerateOrderID_NoUsableAddress(t *testing.T) {
	addresses := &stubAddressProvider{
		address: ports.Address{CityName: "Nagpur"},
	}
	server := newTestServer(addresses, &stubCounterRepository{})

	rec := postOrderID(t, server, `{"userId":"`+kernel.NewUUID().String()+`","orderType":"wash"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerateOrderID_AllocationFailure(t *testing.T) {
	addresses := &stubAddressProvider{
		address: ports.Address{PostalCode: "440010"},
	}
	server := newTestServer(addresses, &stubCounterRepository{err: errors.New("store down")})

	rec := postOrderID(t, server, `{"userId":"`+kernel.NewUUID().String()+`","orderType":"wash"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetDailyCounters_InvalidDay(t *testing.T) {
	server := newTestServer(&stubAddressProvider{}, &stubCounterRepository{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/counters?day=2025-08-29", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, server.GetDailyCounters(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRecentGenerations_InvalidLimit(t *testing.T) {
	server := newTestServer(&stubAddressProvider{}, &stubCounterRepository{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/generations?limit=0", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, server.GetRecentGenerations(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
