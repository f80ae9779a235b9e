package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cleanco/cleanco/internal/database"
	"github.com/cleanco/cleanco/internal/database/repository"
)

func TestClearHistory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := database.Open("maint-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := repository.NewBookingRepo(db)
	svc := &ConfirmationService{Bookings: repo}
	_, err = svc.Confirm(ctx, confirming(t).State())
	require.NoError(t, err)

	maint := &MaintenanceService{DB: db}
	removed, err := maint.ClearHistory(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestClearHistoryWithoutDB(t *testing.T) {
	t.Parallel()

	_, err := (&MaintenanceService{}).ClearHistory(context.Background())
	require.Error(t, err)
}
