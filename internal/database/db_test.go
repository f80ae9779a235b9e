package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var errRollback = errors.New("rollback")

func TestOpenCreatesSchema(t *testing.T) {
	db, err := Open("test-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&n))
	require.Equal(t, 0, n)
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := Open("test-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))
	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	require.Equal(t, 1, one)
}

func TestDistinctNamesAreIsolated(t *testing.T) {
	a, err := Open("test-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	b, err := Open("test-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	_, err = a.Exec(`INSERT INTO bookings (id, service_key, frequency_key, date, time_slot, name, email, phone, address, base_cents, discount_percent, total_cents, confirmed_at)
		VALUES ('x', 'deep', 'weekly', '2026-10-20', '09:00', 'n', 'e', 'p', 'a', 40000, 15, 34000, CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	var n int
	require.NoError(t, b.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&n))
	require.Equal(t, 0, n)
}

func TestWithTxRollsBack(t *testing.T) {
	db, err := Open("test-" + uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	err = WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO bookings (id, service_key, frequency_key, date, time_slot, name, email, phone, address, base_cents, discount_percent, total_cents, confirmed_at)
			VALUES ('y', 'deep', 'weekly', '2026-10-20', '09:00', 'n', 'e', 'p', 'a', 40000, 15, 34000, CURRENT_TIMESTAMP)`)
		require.NoError(t, err)
		return errRollback
	})
	require.ErrorIs(t, err, errRollback)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&n))
	require.Equal(t, 0, n)
}
