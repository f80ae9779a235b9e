package service

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/cleanco/cleanco/internal/database"
	"github.com/cleanco/cleanco/internal/database/repository"
)

// MaintenanceService houses destructive actions surfaced through the TUI.
type MaintenanceService struct {
	DB     *sql.DB
	Logger *zap.Logger
}

// ClearHistory wipes the session ledger. The schema is kept so the app can
// continue running.
func (s *MaintenanceService) ClearHistory(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("maintenance: db not configured")
	}
	var removed int64
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		n, err := repository.NewBookingRepo(tx).DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("clear bookings: %w", err)
		}
		removed = n
		return nil
	}); err != nil {
		return 0, err
	}
	if s.Logger != nil {
		s.Logger.Info("session history cleared", zap.Int64("removed", removed))
	}
	return removed, nil
}
