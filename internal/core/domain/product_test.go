package domain_test

import (
	"testing"

	"github.com/nepalicrafts/storefront_api/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestProductCurrencyPrice_IsNepalLabeled(t *testing.T) {
	tests := []struct {
		country string
		want    bool
	}{
		{country: "Nepal", want: true},
		{country: "nepal", want: true},
		{country: " NEPAL ", want: true},
		{country: "NPR", want: true},
		{country: "npr", want: true},
		{country: "Australia", want: false},
		{country: "Nepal Himalaya", want: false},
		{country: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.country, func(t *testing.T) {
			p := domain.ProductCurrencyPrice{Country: tt.country}
			assert.Equal(t, tt.want, p.IsNepalLabeled())
		})
	}
}
