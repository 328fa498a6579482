package booking

import (
	"math"

	"salonbook/models"
)

// Quote is the price breakdown shown on the summary, payment and
// confirmation screens. Whichever convention produced it, the same quote is
// used on every screen of a flow; conventions are never mixed per screen.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// PriceQuote computes a breakdown with tax added on top of listed prices:
// subtotal = Σprice, tax = subtotal × rate, total = subtotal + tax.
func PriceQuote(services []models.Service, taxRate float64) Quote {
	var subtotal float64
	for _, s := range services {
		subtotal += s.Price
	}
	subtotal = round2(subtotal)
	tax := round2(subtotal * taxRate)
	return Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    round2(subtotal + tax),
	}
}

// InclusiveQuote computes a breakdown for salons whose listed prices already
// contain tax: total = Σprice, tax is back-calculated as
// total × rate / (1 + rate), and the displayed subtotal is total − tax.
func InclusiveQuote(services []models.Service, taxRate float64) Quote {
	var total float64
	for _, s := range services {
		total += s.Price
	}
	total = round2(total)
	tax := round2(total * taxRate / (1 + taxRate))
	return Quote{
		Subtotal: round2(total - tax),
		Tax:      tax,
		Total:    total,
	}
}

// QuoteFor applies the salon's configured pricing convention.
func QuoteFor(salon *models.Salon, services []models.Service) Quote {
	if salon.PricesIncludeTax {
		return InclusiveQuote(services, salon.TaxRate)
	}
	return PriceQuote(services, salon.TaxRate)
}
