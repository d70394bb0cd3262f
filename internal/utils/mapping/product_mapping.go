package mapping

import (
	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/nepalicrafts/storefront_api/internal/models"
	"github.com/shopspring/decimal"
)

// ToDomainProduct converts a model Product and its override rows to a domain Product
func ToDomainProduct(m models.Product, prices []models.ProductCurrencyPrice) domain.Product {
	return domain.Product{
		ProductID:      m.ProductID,
		Name:           m.Name,
		Price:          m.Price,
		ComparePrice:   fromNullDecimal(m.ComparePrice),
		CurrencyPrices: ToDomainProductCurrencyPriceSlice(prices),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelProductCurrencyPrice converts a domain ProductCurrencyPrice to a model row
func ToModelProductCurrencyPrice(d domain.ProductCurrencyPrice) models.ProductCurrencyPrice {
	return models.ProductCurrencyPrice{
		CurrencyPriceID: d.CurrencyPriceID,
		ProductID:       d.ProductID,
		Country:         d.Country,
		Currency:        d.Currency,
		Symbol:          d.Symbol,
		Price:           d.Price,
		ComparePrice:    toNullDecimal(d.ComparePrice),
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProductCurrencyPrice converts a model row to a domain ProductCurrencyPrice
func ToDomainProductCurrencyPrice(m models.ProductCurrencyPrice) domain.ProductCurrencyPrice {
	return domain.ProductCurrencyPrice{
		CurrencyPriceID: m.CurrencyPriceID,
		ProductID:       m.ProductID,
		Country:         m.Country,
		Currency:        m.Currency,
		Symbol:          m.Symbol,
		Price:           m.Price,
		ComparePrice:    fromNullDecimal(m.ComparePrice),
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductCurrencyPriceSlice converts model override rows to domain overrides
func ToDomainProductCurrencyPriceSlice(ms []models.ProductCurrencyPrice) []domain.ProductCurrencyPrice {
	ds := make([]domain.ProductCurrencyPrice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProductCurrencyPrice(m)
	}
	return ds
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
