package services

import (
	"errors"
	"math"
	"strings"
)

// TaxRate applied to the cart subtotal at checkout.
const TaxRate = 0.10

// DefaultDeliveryFee in centavos, used when the restaurant does not set
// its own fee.
const DefaultDeliveryFee = 599

var ErrInvalidPromoCode = errors.New("invalid promo code")

// Promo codes are a static client-side table, not backend-verified rules.
// Known limitation carried over from the storefront.
var promoCodes = map[string]float64{
	"PRIMEIRACOMPRA": 0.10,
}

// ResolvePromo looks a code up case-insensitively. Unknown codes yield
// rate 0 and ErrInvalidPromoCode. The empty code is no promo, not an error.
func ResolvePromo(code string) (float64, error) {
	if code == "" {
		return 0, nil
	}
	if rate, ok := promoCodes[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return rate, nil
	}
	return 0, ErrInvalidPromoCode
}

// Totals is the checkout price breakdown, everything in centavos.
type Totals struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Discount    int64 `json:"discount"`
	Total       int64 `json:"total"`
}

// CalculateTotals derives the checkout breakdown from the cart subtotal,
// the restaurant's delivery fee (0 = fallback) and the promo discount rate.
func CalculateTotals(subtotal, deliveryFee int64, discountRate float64) Totals {
	if deliveryFee <= 0 {
		deliveryFee = DefaultDeliveryFee
	}
	tax := roundCents(float64(subtotal) * TaxRate)
	before := subtotal + deliveryFee + tax
	discount := roundCents(float64(before) * discountRate)
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Discount:    discount,
		Total:       before - discount,
	}
}

func roundCents(v float64) int64 {
	return int64(math.Round(v))
}
