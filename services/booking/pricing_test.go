package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salonbook/models"
)

func TestPriceQuoteAddsTaxOnTop(t *testing.T) {
	services := []models.Service{
		{ID: "haircut", Price: 30},
		{ID: "manicure", Price: 25},
	}
	q := PriceQuote(services, 0.18)

	assert.Equal(t, 55.0, q.Subtotal)
	assert.Equal(t, 9.9, q.Tax)
	assert.Equal(t, 64.9, q.Total)
}

func TestInclusiveQuoteBacksOutTax(t *testing.T) {
	services := []models.Service{
		{ID: "haircut", Price: 30},
		{ID: "manicure", Price: 25},
	}
	q := InclusiveQuote(services, 0.18)

	assert.Equal(t, 55.0, q.Total)
	assert.Equal(t, 8.39, q.Tax)
	assert.Equal(t, 46.61, q.Subtotal)
}

func TestQuoteForSelectsConvention(t *testing.T) {
	services := []models.Service{{ID: "facial", Price: 40}}

	added := QuoteFor(&models.Salon{TaxRate: 0.18}, services)
	assert.Equal(t, 47.2, added.Total)

	inclusive := QuoteFor(&models.Salon{TaxRate: 0.18, PricesIncludeTax: true}, services)
	assert.Equal(t, 40.0, inclusive.Total)
}

func TestQuoteZeroServices(t *testing.T) {
	q := PriceQuote(nil, 0.18)
	assert.Equal(t, 0.0, q.Subtotal)
	assert.Equal(t, 0.0, q.Tax)
	assert.Equal(t, 0.0, q.Total)
}
