package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/cleanco/cleanco/internal/database"
	"github.com/cleanco/cleanco/internal/database/repository"
)

func openLedger(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open("repo-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func sample(id string, total int64, at time.Time) repository.Booking {
	return repository.Booking{
		ID:              id,
		ServiceKey:      "deep",
		FrequencyKey:    "weekly",
		Date:            "2026-10-20",
		TimeSlot:        "09:00",
		Name:            "Ana Lim",
		Email:           "ana@example.com",
		Phone:           "+60123456789",
		Address:         "1 Jalan Ampang",
		BaseCents:       40000,
		DiscountPercent: 15,
		TotalCents:      total,
		ConfirmedAt:     at,
	}
}

func TestBookingRepoInsertGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepo(openLedger(t))

	at := time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
	want := sample("b-1", 34000, at)
	require.NoError(t, repo.Insert(ctx, want))

	got, err := repo.Get(ctx, "b-1")
	require.NoError(t, err)
	require.True(t, got.ConfirmedAt.Equal(at))
	got.ConfirmedAt = at
	require.Equal(t, want, got)
}

func TestBookingRepoGetMissing(t *testing.T) {
	repo := repository.NewBookingRepo(openLedger(t))
	_, err := repo.Get(context.Background(), "nope")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestBookingRepoDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepo(openLedger(t))
	b := sample("dup", 34000, time.Now().UTC())
	require.NoError(t, repo.Insert(ctx, b))
	require.Error(t, repo.Insert(ctx, b))
}

func TestBookingRepoListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepo(openLedger(t))

	base := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Insert(ctx, sample("old", 15000, base)))
	require.NoError(t, repo.Insert(ctx, sample("new", 30000, base.Add(time.Hour))))
	require.NoError(t, repo.Insert(ctx, sample("mid", 40000, base.Add(30*time.Minute))))

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []string{"new", "mid", "old"}, []string{all[0].ID, all[1].ID, all[2].ID})

	top, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	require.Equal(t, "new", top[0].ID)
}

func TestBookingRepoAggregates(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepo(openLedger(t))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
	sum, err := repo.SumTotals(ctx)
	require.NoError(t, err)
	require.Zero(t, sum)

	now := time.Now().UTC()
	require.NoError(t, repo.Insert(ctx, sample("a", 34000, now)))
	require.NoError(t, repo.Insert(ctx, sample("b", 15000, now)))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	sum, err = repo.SumTotals(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(49000), sum)

	removed, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), removed)
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestBookingRepoInsideTransaction(t *testing.T) {
	ctx := context.Background()
	db := openLedger(t)
	repo := repository.NewBookingRepo(db)
	require.NoError(t, repo.Insert(ctx, sample("keep", 34000, time.Now().UTC())))

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	removed, err := repository.NewBookingRepo(tx).DeleteAll(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)
	require.NoError(t, tx.Rollback())

	got, err := repo.Get(ctx, "keep")
	require.NoError(t, err)
	require.Equal(t, int64(34000), got.TotalCents)
}
