package repository

import "time"

// Booking is a confirmed booking row in the session ledger.
type Booking struct {
	ID              string
	ServiceKey      string
	FrequencyKey    string
	Date            string
	TimeSlot        string
	Name            string
	Email           string
	Phone           string
	Address         string
	BaseCents       int64
	DiscountPercent int
	TotalCents      int64
	ConfirmedAt     time.Time
}
