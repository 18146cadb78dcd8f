package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chiplogistics/pricing_backend/internal/core/domain"
	portssvc "github.com/chiplogistics/pricing_backend/internal/core/ports/services"
	"github.com/chiplogistics/pricing_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock CurrencyService ---

type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListCurrencies() []domain.Currency {
	args := m.Called()
	return args.Get(0).([]domain.Currency)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Test Cases ---

func TestListCurrencies(t *testing.T) {
	mockCurrencyService := new(MockCurrencyService)
	mockCurrencyService.On("ListCurrencies").Return(domain.SupportedCurrencies()).Once()

	router := newTestRouter(&portssvc.ServiceContainer{Currency: mockCurrencyService})

	req, err := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(t, uuid.NewString()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CurrencyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "USD", resp[0].CurrencyCode)
	assert.Equal(t, "CNY", resp[1].CurrencyCode)

	mockCurrencyService.AssertExpectations(t)
}

func TestListCurrencies_RequiresAuth(t *testing.T) {
	router := newTestRouter(&portssvc.ServiceContainer{Currency: new(MockCurrencyService)})

	req, err := http.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetHealth(t *testing.T) {
	router := newTestRouter(&portssvc.ServiceContainer{})

	req, err := http.NewRequest(http.MethodGet, "/health", nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}
