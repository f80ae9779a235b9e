package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cleanco/cleanco/internal/booking"
	"github.com/cleanco/cleanco/internal/catalog"
	"github.com/cleanco/cleanco/internal/config"
	"github.com/cleanco/cleanco/internal/database"
	"github.com/cleanco/cleanco/internal/database/repository"
	"github.com/cleanco/cleanco/internal/logging"
	"github.com/cleanco/cleanco/internal/pricing"
	"github.com/cleanco/cleanco/internal/service"
	"github.com/cleanco/cleanco/internal/wizard"
)

// runCheck walks a deep weekly booking through the machine and the ledger
// without a terminal and returns the recorded total.
func runCheck(ctx context.Context, cfg config.Config) (pricing.Amount, error) {
	db, err := database.Open("check-" + uuid.NewString())
	if err != nil {
		return 0, fmt.Errorf("open ledger: %w", err)
	}
	defer db.Close()

	repo := repository.NewBookingRepo(db)
	svc := &service.ConfirmationService{Bookings: repo, Logger: logging.Nop()}
	m := wizard.NewMachine(rulesFromConfig(cfg))

	if _, ok := catalog.Suggest("deap", catalog.ServiceKeys()); !ok {
		return 0, fmt.Errorf("suggest: no match for %q", "deap")
	}

	date := time.Now().AddDate(0, 0, 7).Format(booking.DateLayout)
	events := []wizard.Event{
		wizard.StartBooking{},
		wizard.SetField{Field: booking.FieldServiceType, Value: "deep"},
		wizard.Advance{},
		wizard.SetField{Field: booking.FieldDate, Value: date},
		wizard.SetField{Field: booking.FieldTime, Value: "09:00"},
		wizard.Advance{},
		wizard.SetField{Field: booking.FieldName, Value: "Check Run"},
		wizard.SetField{Field: booking.FieldEmail, Value: "check@example.com"},
		wizard.SetField{Field: booking.FieldPhone, Value: "+60123456789"},
		wizard.SetField{Field: booking.FieldAddress, Value: "1 Check Street"},
		wizard.SetField{Field: booking.FieldFrequency, Value: "weekly"},
		wizard.Advance{},
	}
	for _, e := range events {
		st, err := m.Dispatch(e)
		if err != nil {
			return 0, fmt.Errorf("dispatch %s: %w", wizard.Name(e), err)
		}
		if !st.Errors.Empty() {
			return 0, fmt.Errorf("dispatch %s: unexpected errors %v", wizard.Name(e), st.Errors.Fields())
		}
	}
	if !m.State().ShowConfirmation {
		return 0, fmt.Errorf("confirmation not shown")
	}

	b, err := svc.Confirm(ctx, m.State())
	if err != nil {
		return 0, fmt.Errorf("confirm: %w", err)
	}
	if _, err := m.Dispatch(wizard.ConfirmAndReset{}); err != nil {
		return 0, fmt.Errorf("reset: %w", err)
	}
	if !m.State().Equal(wizard.Initial()) {
		return 0, fmt.Errorf("machine not reset after confirm")
	}

	stored, err := repo.Get(ctx, b.ID)
	if err != nil {
		return 0, fmt.Errorf("load booking: %w", err)
	}
	want := pricing.Total("deep", "weekly")
	if pricing.Amount(stored.TotalCents) != want {
		return 0, fmt.Errorf("recorded total = %s, want %s", pricing.Amount(stored.TotalCents), want)
	}
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	if n != 1 {
		return 0, fmt.Errorf("ledger rows = %d, want 1", n)
	}
	return want, nil
}
