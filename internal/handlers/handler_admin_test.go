package handlers_test

import (
	"errors"
	"net/http"

	"github.com/nepalicrafts/storefront_api/internal/apperrors"
	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/nepalicrafts/storefront_api/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestAdminRoutes_RequireToken() {
	w := suite.do(http.MethodGet, "/api/v1/admin/exchange-rates", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/admin/exchange-rates", nil, "not-a-jwt")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *HandlersTestSuite) TestAdminRoutes_RequireAdminRole() {
	w := suite.do(http.MethodGet, "/api/v1/admin/exchange-rates", nil, generateTestToken("user-1", "customer"))
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlersTestSuite) TestListExchangeRates() {
	suite.mockExchangeRate.On("ListExchangeRates", mock.Anything).Return([]domain.ExchangeRate{
		{CurrencyCode: "USD", Country: "United States", RateToNPR: decimal.RequireFromString("0.0075"), IsActive: true},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/exchange-rates", nil, generateTestToken("admin-1", "admin"))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := decodeBody[[]map[string]any](suite, w)
	suite.Require().Len(body, 1)
	suite.Equal("USD", body[0]["currencyCode"])
}

func (suite *HandlersTestSuite) TestUpsertExchangeRate() {
	rate := decimal.RequireFromString("0.0077")
	suite.mockExchangeRate.On("UpsertExchangeRate", mock.Anything, "USD",
		mock.MatchedBy(func(req dto.UpsertExchangeRateRequest) bool {
			return req.RateToNPR != nil && req.RateToNPR.Equal(rate) && req.Country == "United States"
		}), "admin-1",
	).Return(&domain.ExchangeRate{CurrencyCode: "USD", Country: "United States", RateToNPR: rate, IsActive: true}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/exchange-rates/USD",
		`{"rateToNPR": 0.0077, "country": "United States"}`, generateTestToken("admin-1", "admin"))

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlersTestSuite) TestUpsertExchangeRate_ValidationError() {
	suite.mockExchangeRate.On("UpsertExchangeRate", mock.Anything, "NPR", mock.Anything, "admin-1").
		Return(nil, apperrors.NewValidationError("the NPR rate is fixed at 1")).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/exchange-rates/NPR",
		`{"rateToNPR": 2, "country": "Nepal"}`, generateTestToken("admin-1", "admin"))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestUpsertExchangeRate_MissingRate() {
	w := suite.do(http.MethodPut, "/api/v1/admin/exchange-rates/USD",
		`{"country": "United States"}`, generateTestToken("admin-1", "admin"))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestListCurrencyPrices_ServiceError() {
	suite.mockPricing.On("ListProductCurrencyPrices", mock.Anything, "prod-1").
		Return(nil, errors.New("db down")).Once()

	w := suite.do(http.MethodGet, "/api/v1/admin/products/prod-1/currency-prices", nil, generateTestToken("admin-1", "admin"))

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Contains(w.Body.String(), "Failed to list currency prices")
	suite.NotContains(w.Body.String(), "db down")
}

func (suite *HandlersTestSuite) TestUpsertCurrencyPrice() {
	suite.mockPricing.On("UpsertProductCurrencyPrice", mock.Anything, "prod-1",
		mock.MatchedBy(func(req dto.UpsertProductCurrencyPriceRequest) bool {
			return req.Country == "Australia" && req.Currency == "AUD" && req.Price != nil
		}), "admin-1",
	).Return(&domain.ProductCurrencyPrice{
		CurrencyPriceID: "cp-1",
		ProductID:       "prod-1",
		Country:         "Australia",
		Currency:        "AUD",
		Symbol:          "$",
		Price:           decimal.NewFromInt(15),
		IsActive:        true,
	}, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/products/prod-1/currency-prices",
		`{"country": "Australia", "currency": "AUD", "price": "15.00"}`, generateTestToken("admin-1", "admin"))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := decodeBody[map[string]any](suite, w)
	suite.Equal("cp-1", body["currencyPriceID"])
}

func (suite *HandlersTestSuite) TestUpsertCurrencyPrice_ProductMissing() {
	suite.mockPricing.On("UpsertProductCurrencyPrice", mock.Anything, "ghost", mock.Anything, "admin-1").
		Return(nil, apperrors.NewNotFoundError("product ghost not found")).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/products/ghost/currency-prices",
		`{"country": "Australia", "currency": "AUD", "price": 15}`, generateTestToken("admin-1", "admin"))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlersTestSuite) TestUpsertCurrencyPrice_ConcurrentSaveConflicts() {
	suite.mockPricing.On("UpsertProductCurrencyPrice", mock.Anything, "prod-1", mock.Anything, "admin-1").
		Return(nil, apperrors.NewDuplicateError("an active currency price for Australia already exists")).Once()

	w := suite.do(http.MethodPut, "/api/v1/admin/products/prod-1/currency-prices",
		`{"country": "Australia", "currency": "AUD", "price": 15}`, generateTestToken("admin-1", "admin"))

	suite.Equal(http.StatusConflict, w.Code)
	body := decodeBody[map[string]any](suite, w)
	suite.Contains(body["error"], "Australia")
}

func (suite *HandlersTestSuite) TestDeactivateCurrencyPrice() {
	suite.mockPricing.On("DeactivateProductCurrencyPrice", mock.Anything, "prod-1", "New Zealand", "admin-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/admin/products/prod-1/currency-prices/New%20Zealand", nil, generateTestToken("admin-1", "admin"))

	suite.Equal(http.StatusNoContent, w.Code)
}
