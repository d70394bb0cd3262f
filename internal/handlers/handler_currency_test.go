package handlers_test

import (
	"net/http"

	"github.com/nepalicrafts/storefront_api/internal/apperrors"
	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	body := decodeBody[map[string]any](suite, w)
	suite.Equal("OK", body["status"])
}

func (suite *HandlersTestSuite) TestGetRates() {
	w := suite.do(http.MethodGet, "/api/v1/currency/rates", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	body := decodeBody[map[string]any](suite, w)
	suite.Equal("NPR", body["baseCurrency"])
	suite.Contains(body["rates"], "USD")
	suite.Contains(body["symbols"], "EUR")
	suite.NotEmpty(body["lastUpdated"])
}

func (suite *HandlersTestSuite) TestConvert_Success() {
	w := suite.do(http.MethodPost, "/api/v1/currency/convert", `{"amount": 1000, "from": "NPR", "to": "usd"}`, "")

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := decodeBody[struct {
		From struct {
			Currency  string          `json:"currency"`
			Amount    decimal.Decimal `json:"amount"`
			Formatted string          `json:"formatted"`
		} `json:"from"`
		To struct {
			Currency  string          `json:"currency"`
			Amount    decimal.Decimal `json:"amount"`
			Formatted string          `json:"formatted"`
		} `json:"to"`
		ExchangeRate decimal.Decimal `json:"exchangeRate"`
	}](suite, w)
	suite.Equal("NPR", body.From.Currency)
	suite.Equal("NPR 1,000.00", body.From.Formatted)
	suite.Equal("USD", body.To.Currency)
	suite.True(decimal.RequireFromString("7.5").Equal(body.To.Amount))
	suite.Equal("$7.50", body.To.Formatted)
	suite.True(decimal.RequireFromString("0.0075").Equal(body.ExchangeRate))
}

func (suite *HandlersTestSuite) TestConvert_BadRequests() {
	cases := map[string]string{
		"missing amount":       `{"from": "NPR", "to": "USD"}`,
		"missing to":           `{"amount": 10, "from": "NPR"}`,
		"non numeric amount":   `{"amount": "ten", "from": "NPR", "to": "USD"}`,
		"malformed code":       `{"amount": 10, "from": "NPR", "to": "DOLLAR"}`,
		"unsupported currency": `{"amount": 10, "from": "NPR", "to": "XYZ"}`,
		"not json":             `amount=10`,
	}
	for name, body := range cases {
		w := suite.do(http.MethodPost, "/api/v1/currency/convert", body, "")
		suite.Equal(http.StatusBadRequest, w.Code, name)
		suite.Contains(w.Body.String(), `"error"`, name)
	}
}

func (suite *HandlersTestSuite) TestOrderTotals() {
	w := suite.do(http.MethodPost, "/api/v1/currency/order-totals",
		`{"currency": "USD", "items": [{"price": 10, "quantity": 2}, {"price": "5", "quantity": 1}]}`, "")

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := decodeBody[struct {
		Currency     string          `json:"currency"`
		Subtotal     decimal.Decimal `json:"subtotal"`
		NPRSubtotal  decimal.Decimal `json:"nprSubtotal"`
		ExchangeRate decimal.Decimal `json:"exchangeRate"`
	}](suite, w)
	suite.Equal("USD", body.Currency)
	suite.True(decimal.NewFromInt(25).Equal(body.Subtotal))
	suite.True(decimal.RequireFromString("3333.33").Equal(body.NPRSubtotal))
	suite.True(decimal.RequireFromString("133.3333").Equal(body.ExchangeRate))
}

func (suite *HandlersTestSuite) TestOrderTotals_RejectsNegativeInput() {
	w := suite.do(http.MethodPost, "/api/v1/currency/order-totals",
		`{"currency": "USD", "items": [{"price": 10, "quantity": -2}]}`, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/currency/order-totals",
		`{"currency": "USD", "items": [{"price": -10, "quantity": 2}]}`, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestGetProductPrice_Success() {
	suite.mockPricing.On("GetProductPrice", mock.Anything, "prod-1", "Australia", "AUD").Return(&domain.ProductPrice{
		ProductID:      "prod-1",
		Country:        "Australia",
		Price:          decimal.RequireFromString("15.00"),
		Currency:       "AUD",
		Symbol:         "$",
		NPRPrice:       decimal.NewFromInt(1300),
		ExchangeRate:   decimal.RequireFromString("0.0114"),
		PriceSource:    domain.PriceSourceOverride,
		NPRPriceSource: domain.PriceSourceLegacyBase,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/currency/product/prod-1?country=Australia&currency=AUD", nil, "")

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := decodeBody[map[string]any](suite, w)
	suite.Equal("$", body["symbol"])
	suite.Equal("AUD", body["currency"])
	suite.Equal("override", body["priceSource"])
	suite.Equal("legacy_base", body["nprPriceSource"])
	suite.NotContains(body, "comparePrice")
}

func (suite *HandlersTestSuite) TestGetProductPrice_MissingParams() {
	for _, path := range []string{
		"/api/v1/currency/product/prod-1",
		"/api/v1/currency/product/prod-1?country=France",
		"/api/v1/currency/product/prod-1?currency=EUR",
	} {
		w := suite.do(http.MethodGet, path, nil, "")
		suite.Equal(http.StatusBadRequest, w.Code, path)
	}
}

func (suite *HandlersTestSuite) TestGetProductPrice_NotFound() {
	suite.mockPricing.On("GetProductPrice", mock.Anything, "prod-0", "France", "EUR").
		Return(nil, apperrors.NewNotFoundError("no price available for product prod-0")).Once()

	w := suite.do(http.MethodGet, "/api/v1/currency/product/prod-0?country=France&currency=EUR", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "no price available")
}

func (suite *HandlersTestSuite) TestGetProductPrice_UnsupportedCurrency() {
	suite.mockPricing.On("GetProductPrice", mock.Anything, "prod-1", "Mars", "XYZ").
		Return(nil, apperrors.NewUnsupportedCurrencyError("XYZ")).Once()

	w := suite.do(http.MethodGet, "/api/v1/currency/product/prod-1?country=Mars&currency=XYZ", nil, "")

	suite.Equal(http.StatusBadRequest, w.Code)
}
