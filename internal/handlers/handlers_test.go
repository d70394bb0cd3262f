package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	portssvc "github.com/nepalicrafts/storefront_api/internal/core/ports/services"
	"github.com/nepalicrafts/storefront_api/internal/core/services"
	"github.com/nepalicrafts/storefront_api/internal/dto"
	"github.com/nepalicrafts/storefront_api/internal/handlers"
	"github.com/nepalicrafts/storefront_api/internal/platform/config"
	"github.com/nepalicrafts/storefront_api/internal/utils"
	"github.com/nepalicrafts/storefront_api/internal/utils/currency"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "test-secret-for-handlers"

// --- Mock PricingService ---
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) GetProductPrice(ctx context.Context, productID, country, currencyCode string) (*domain.ProductPrice, error) {
	args := m.Called(ctx, productID, country, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductPrice), args.Error(1)
}

func (m *MockPricingService) ListProductCurrencyPrices(ctx context.Context, productID string) ([]domain.ProductCurrencyPrice, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProductCurrencyPrice), args.Error(1)
}

func (m *MockPricingService) UpsertProductCurrencyPrice(ctx context.Context, productID string, req dto.UpsertProductCurrencyPriceRequest, userID string) (*domain.ProductCurrencyPrice, error) {
	args := m.Called(ctx, productID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProductCurrencyPrice), args.Error(1)
}

func (m *MockPricingService) DeactivateProductCurrencyPrice(ctx context.Context, productID, country, userID string) error {
	args := m.Called(ctx, productID, country, userID)
	return args.Error(0)
}

var _ portssvc.PricingSvcFacade = (*MockPricingService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) UpsertExchangeRate(ctx context.Context, currencyCode string, req dto.UpsertExchangeRateRequest, userID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockPricing      *MockPricingService
	mockExchangeRate *MockExchangeRateService
}

func (suite *HandlersTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (suite *HandlersTestSuite) SetupTest() {
	suite.mockPricing = new(MockPricingService)
	suite.mockExchangeRate = new(MockExchangeRateService)
	rates := services.NewRateProvider(nil, currency.DefaultRateTable())

	container := &portssvc.ServiceContainer{
		Rates:        rates,
		Currency:     services.NewCurrencyService(rates),
		ExchangeRate: suite.mockExchangeRate,
		Pricing:      suite.mockPricing,
	}
	cfg := &config.Config{JWTSecret: testJWTSecret, IsProduction: true}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, nil, nil)
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.mockPricing.AssertExpectations(suite.T())
	suite.mockExchangeRate.AssertExpectations(suite.T())
}

func generateTestToken(userID, role string) string {
	token, err := utils.GenerateAdminToken(userID, role, testJWTSecret, time.Hour, "storefront-tests")
	if err != nil {
		panic(err)
	}
	return token
}

func (suite *HandlersTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			suite.Require().NoError(json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](suite *HandlersTestSuite, w *httptest.ResponseRecorder) T {
	var out T
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}
