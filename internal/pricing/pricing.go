// Package pricing derives booking totals from catalog prices and frequency
// discounts.
package pricing

import (
	"fmt"

	"github.com/cleanco/cleanco/internal/catalog"
)

// Amount is a currency amount in cents.
type Amount int64

// String renders the amount as two-decimal fixed point, e.g. "340.00".
func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Quote is the invoice breakdown for a service and frequency.
type Quote struct {
	Service         catalog.ServiceType
	Frequency       catalog.FrequencyPlan
	Base            Amount
	DiscountPercent int
	Discount        Amount
	Total           Amount
}

// Total returns the discounted price for the given keys, or 0 when either key
// does not resolve in the catalog.
func Total(serviceKey, frequencyKey string) Amount {
	q, ok := NewQuote(serviceKey, frequencyKey)
	if !ok {
		return 0
	}
	return q.Total
}

// NewQuote prices a service at a frequency. It reports false when either key
// does not resolve.
func NewQuote(serviceKey, frequencyKey string) (Quote, bool) {
	svc, ok := catalog.Service(serviceKey)
	if !ok {
		return Quote{}, false
	}
	freq, ok := catalog.Frequency(frequencyKey)
	if !ok {
		return Quote{}, false
	}
	base := Amount(svc.PriceCents)
	total := applyDiscount(base, freq.DiscountPercent)
	return Quote{
		Service:         svc,
		Frequency:       freq,
		Base:            base,
		DiscountPercent: freq.DiscountPercent,
		Discount:        base - total,
		Total:           total,
	}, true
}

// applyDiscount computes base*(100-percent)/100 rounded half-up to the cent.
func applyDiscount(base Amount, percent int) Amount {
	if percent <= 0 {
		return base
	}
	if percent >= 100 {
		return 0
	}
	return Amount((int64(base)*int64(100-percent) + 50) / 100)
}
