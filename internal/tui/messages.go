package tui

import (
	"github.com/cleanco/cleanco/internal/database/repository"
	"github.com/cleanco/cleanco/internal/service"
)

type (
	errMsg    struct{ error }
	statusMsg string

	bookingConfirmedMsg struct {
		booking repository.Booking
	}

	historyMsg struct {
		bookings []repository.Booking
		summary  service.Summary
	}

	historyClearedMsg struct {
		removed int64
	}
)
