package dto

import (
	"time"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProductPriceQuery holds the query string of a storefront price lookup.
type ProductPriceQuery struct {
	Country  string `form:"country" binding:"required"`
	Currency string `form:"currency" binding:"required,currencycode"`
}

// ProductPriceResponse is the resolved price of a product for a country and currency.
type ProductPriceResponse struct {
	ProductID      string           `json:"productID"`
	Price          decimal.Decimal  `json:"price"`
	ComparePrice   *decimal.Decimal `json:"comparePrice,omitempty"`
	Currency       string           `json:"currency"`
	Symbol         string           `json:"symbol"`
	NPRPrice       decimal.Decimal  `json:"nprPrice"`
	ExchangeRate   decimal.Decimal  `json:"exchangeRate"`
	PriceSource    string           `json:"priceSource"`
	NPRPriceSource string           `json:"nprPriceSource"`
}

// ToProductPriceResponse converts a domain.ProductPrice to ProductPriceResponse DTO
func ToProductPriceResponse(p *domain.ProductPrice) ProductPriceResponse {
	return ProductPriceResponse{
		ProductID:      p.ProductID,
		Price:          p.Price,
		ComparePrice:   p.ComparePrice,
		Currency:       p.Currency,
		Symbol:         p.Symbol,
		NPRPrice:       p.NPRPrice,
		ExchangeRate:   p.ExchangeRate,
		PriceSource:    string(p.PriceSource),
		NPRPriceSource: string(p.NPRPriceSource),
	}
}

// UpsertProductCurrencyPriceRequest creates or replaces a product's override for one country.
type UpsertProductCurrencyPriceRequest struct {
	Country      string           `json:"country" binding:"required,max=100"`
	Currency     string           `json:"currency" binding:"required,currencycode"`
	Symbol       string           `json:"symbol" binding:"max=8"`
	Price        *decimal.Decimal `json:"price" binding:"required"`
	ComparePrice *decimal.Decimal `json:"comparePrice"`
	IsActive     *bool            `json:"isActive"` // defaults to true
}

// ProductCurrencyPriceResponse is an override as stored.
type ProductCurrencyPriceResponse struct {
	CurrencyPriceID string           `json:"currencyPriceID"`
	ProductID       string           `json:"productID"`
	Country         string           `json:"country"`
	Currency        string           `json:"currency"`
	Symbol          string           `json:"symbol"`
	Price           decimal.Decimal  `json:"price"`
	ComparePrice    *decimal.Decimal `json:"comparePrice,omitempty"`
	IsActive        bool             `json:"isActive"`
	LastUpdatedAt   time.Time        `json:"lastUpdatedAt"`
	LastUpdatedBy   string           `json:"lastUpdatedBy"`
}

// ToProductCurrencyPriceResponse converts a domain override to its response DTO
func ToProductCurrencyPriceResponse(p *domain.ProductCurrencyPrice) ProductCurrencyPriceResponse {
	return ProductCurrencyPriceResponse{
		CurrencyPriceID: p.CurrencyPriceID,
		ProductID:       p.ProductID,
		Country:         p.Country,
		Currency:        p.Currency,
		Symbol:          p.Symbol,
		Price:           p.Price,
		ComparePrice:    p.ComparePrice,
		IsActive:        p.IsActive,
		LastUpdatedAt:   p.LastUpdatedAt,
		LastUpdatedBy:   p.LastUpdatedBy,
	}
}

// ToListProductCurrencyPriceResponse converts overrides to response DTOs
func ToListProductCurrencyPriceResponse(prices []domain.ProductCurrencyPrice) []ProductCurrencyPriceResponse {
	res := make([]ProductCurrencyPriceResponse, len(prices))
	for i := range prices {
		res[i] = ToProductCurrencyPriceResponse(&prices[i])
	}
	return res
}
