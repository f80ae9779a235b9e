package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cleanco/cleanco/internal/database"
	"github.com/cleanco/cleanco/internal/database/repository"
	"github.com/cleanco/cleanco/internal/pricing"
	"github.com/cleanco/cleanco/internal/wizard"
)

// ErrNotConfirmable is returned when the state is not showing a confirmable
// booking.
var ErrNotConfirmable = errors.New("booking not confirmable")

// BookingStore is the slice of the ledger the service needs.
type BookingStore interface {
	Insert(ctx context.Context, b repository.Booking) error
	List(ctx context.Context, limit int) ([]repository.Booking, error)
	Count(ctx context.Context) (int, error)
	SumTotals(ctx context.Context) (int64, error)
}

// ConfirmationService records confirmed bookings in the session ledger.
type ConfirmationService struct {
	Bookings BookingStore
	Now      func() time.Time
	NewID    func() string
	Logger   *zap.Logger
}

// Summary aggregates the ledger.
type Summary struct {
	Count int
	Total pricing.Amount
}

// Confirm records the booking shown in the confirmation overlay. The caller
// dispatches ConfirmAndReset only after this succeeds.
func (s *ConfirmationService) Confirm(ctx context.Context, st wizard.State) (repository.Booking, error) {
	if !st.ShowConfirmation {
		return repository.Booking{}, ErrNotConfirmable
	}
	d := st.Draft
	quote, ok := pricing.NewQuote(d.ServiceType, d.Frequency)
	if !ok {
		return repository.Booking{}, fmt.Errorf("%w: no price for %q at %q", ErrNotConfirmable, d.ServiceType, d.Frequency)
	}
	if s.Bookings == nil {
		return repository.Booking{}, fmt.Errorf("confirmation: ledger not configured")
	}

	b := repository.Booking{
		ID:              s.newID(),
		ServiceKey:      d.ServiceType,
		FrequencyKey:    d.Frequency,
		Date:            d.Date,
		TimeSlot:        d.Time,
		Name:            strings.TrimSpace(d.Name),
		Email:           strings.TrimSpace(d.Email),
		Phone:           strings.TrimSpace(d.Phone),
		Address:         strings.TrimSpace(d.Address),
		BaseCents:       int64(quote.Base),
		DiscountPercent: quote.DiscountPercent,
		TotalCents:      int64(quote.Total),
		ConfirmedAt:     s.now(),
	}
	if err := s.Bookings.Insert(ctx, b); err != nil {
		s.logger().Error("record booking failed", zap.String("reference", Reference(b.ID)), zap.Error(err))
		return repository.Booking{}, fmt.Errorf("record booking: %w", err)
	}
	s.logger().Info("booking confirmed",
		zap.String("reference", Reference(b.ID)),
		zap.String("service", b.ServiceKey),
		zap.String("frequency", b.FrequencyKey),
		zap.String("total", quote.Total.String()),
	)
	return b, nil
}

// History returns the most recent bookings, newest first.
func (s *ConfirmationService) History(ctx context.Context, limit int) ([]repository.Booking, error) {
	if s.Bookings == nil {
		return nil, nil
	}
	out, err := s.Bookings.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return out, nil
}

func (s *ConfirmationService) Summary(ctx context.Context) (Summary, error) {
	if s.Bookings == nil {
		return Summary{}, nil
	}
	n, err := s.Bookings.Count(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("count bookings: %w", err)
	}
	sum, err := s.Bookings.SumTotals(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("sum bookings: %w", err)
	}
	return Summary{Count: n, Total: pricing.Amount(sum)}, nil
}

// Reference is the short booking reference shown to customers.
func Reference(id string) string {
	id = strings.ReplaceAll(id, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}

func (s *ConfirmationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return database.Now()
}

func (s *ConfirmationService) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func (s *ConfirmationService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.NewNop()
}
