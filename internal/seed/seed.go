// Package seed fills a session ledger with sample bookings for demos and
// tests.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/cleanco/cleanco/internal/booking"
	"github.com/cleanco/cleanco/internal/catalog"
	"github.com/cleanco/cleanco/internal/database/repository"
	"github.com/cleanco/cleanco/internal/pricing"
)

// Inserter is satisfied by repository.BookingRepo.
type Inserter interface {
	Insert(ctx context.Context, b repository.Booking) error
}

var customers = []struct{ name, email, phone, address string }{
	{"Ana Lim", "ana.lim@example.com", "+60123456789", "12 Jalan Ampang, Kuala Lumpur"},
	{"Ravi Kumar", "ravi@example.com", "+60198765432", "7 Lorong Maarof, Bangsar"},
	{"Mei Tan", "mei.tan@example.com", "0123456789", "3A Jalan SS2/24, Petaling Jaya"},
	{"Farid Osman", "farid@example.com", "+60172233445", "88 Persiaran Gurney, Penang"},
}

// Bookings inserts n random bookings priced from the catalog. Confirmation
// times run back from now one minute apart.
func Bookings(ctx context.Context, repo Inserter, n int, rng *rand.Rand) ([]repository.Booking, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	services := catalog.ServiceKeys()
	freqs := catalog.FrequencyKeys()
	slots := catalog.SlotKeys()
	now := time.Now().UTC().Truncate(time.Second)

	out := make([]repository.Booking, 0, n)
	for i := 0; i < n; i++ {
		svc := services[rng.Intn(len(services))]
		freq := freqs[rng.Intn(len(freqs))]
		quote, ok := pricing.NewQuote(svc, freq)
		if !ok {
			return out, fmt.Errorf("seed: no price for %s/%s", svc, freq)
		}
		c := customers[rng.Intn(len(customers))]
		b := repository.Booking{
			ID:              uuid.NewString(),
			ServiceKey:      svc,
			FrequencyKey:    freq,
			Date:            now.AddDate(0, 0, 1+rng.Intn(30)).Format(booking.DateLayout),
			TimeSlot:        slots[rng.Intn(len(slots))],
			Name:            c.name,
			Email:           c.email,
			Phone:           c.phone,
			Address:         c.address,
			BaseCents:       int64(quote.Base),
			DiscountPercent: quote.DiscountPercent,
			TotalCents:      int64(quote.Total),
			ConfirmedAt:     now.Add(-time.Duration(n-i) * time.Minute),
		}
		if err := repo.Insert(ctx, b); err != nil {
			return out, fmt.Errorf("seed booking %d: %w", i, err)
		}
		out = append(out, b)
	}
	return out, nil
}
