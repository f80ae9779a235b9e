package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned by Get when no booking has the requested id.
var ErrNotFound = errors.New("booking not found")

const bookingColumns = `id, service_key, frequency_key, date, time_slot, name, email, phone, address,
	base_cents, discount_percent, total_cents, confirmed_at`

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// BookingRepo handles confirmed bookings.
type BookingRepo struct {
	db DBTX
}

func NewBookingRepo(db DBTX) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) Insert(ctx context.Context, b Booking) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO bookings(`+bookingColumns+`)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.ID, b.ServiceKey, b.FrequencyKey, b.Date, b.TimeSlot, b.Name, b.Email, b.Phone, b.Address,
		b.BaseCents, b.DiscountPercent, b.TotalCents, b.ConfirmedAt)
	return err
}

func (r *BookingRepo) Get(ctx context.Context, id string) (Booking, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Booking{}, ErrNotFound
	}
	return b, err
}

// List returns bookings newest first. limit <= 0 returns all rows.
func (r *BookingRepo) List(ctx context.Context, limit int) ([]Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY confirmed_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BookingRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookings`).Scan(&n)
	return n, err
}

// SumTotals returns the sum of total_cents over all bookings.
func (r *BookingRepo) SumTotals(ctx context.Context) (int64, error) {
	var sum int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(total_cents), 0) FROM bookings`).Scan(&sum)
	return sum, err
}

// DeleteAll clears the ledger and reports how many rows were removed.
func (r *BookingRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bookings`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(s scanner) (Booking, error) {
	var b Booking
	err := s.Scan(&b.ID, &b.ServiceKey, &b.FrequencyKey, &b.Date, &b.TimeSlot, &b.Name, &b.Email, &b.Phone, &b.Address,
		&b.BaseCents, &b.DiscountPercent, &b.TotalCents, &b.ConfirmedAt)
	return b, err
}
