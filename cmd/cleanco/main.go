package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cleanco/cleanco/internal/booking"
	"github.com/cleanco/cleanco/internal/config"
	"github.com/cleanco/cleanco/internal/database"
	"github.com/cleanco/cleanco/internal/database/repository"
	"github.com/cleanco/cleanco/internal/logging"
	"github.com/cleanco/cleanco/internal/seed"
	"github.com/cleanco/cleanco/internal/service"
	"github.com/cleanco/cleanco/internal/tui"
	"github.com/cleanco/cleanco/internal/wizard"
)

func main() {
	check := flag.Bool("check", false, "run a headless booking walk and exit")
	demo := flag.Int("demo", 0, "seed the session history with N sample bookings")
	initConfig := flag.Bool("init-config", false, "write the effective config file and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if *initConfig {
		if err := config.Save(cfg, ""); err != nil {
			log.Fatalf("config: %v", err)
		}
		return
	}

	if *check {
		total, err := runCheck(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("check ok total=%s\n", total)
		return
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open("cleanco-" + uuid.NewString())
	if err != nil {
		log.Fatalf("ledger: %v", err)
	}
	defer db.Close()
	logger.Info("session ledger ready")

	repo := repository.NewBookingRepo(db)
	if *demo > 0 {
		if _, err := seed.Bookings(ctx, repo, *demo, nil); err != nil {
			log.Fatalf("seed: %v", err)
		}
		logger.Info("seeded sample bookings", zap.Int("count", *demo))
	}

	svc := &service.ConfirmationService{Bookings: repo, Logger: logger}
	maint := &service.MaintenanceService{DB: db, Logger: logger}
	machine := wizard.NewMachine(rulesFromConfig(cfg))

	app := tui.New(ctx, cfg, machine, tui.Services{Confirmation: svc, Maintenance: maint}, logger)
	defer app.Close()

	logger.Info("starting", zap.String("brand", cfg.UI.Brand), zap.Bool("reject_past_dates", cfg.Booking.RejectPastDates))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func rulesFromConfig(cfg config.Config) booking.Rules {
	return booking.Rules{RejectPastDates: cfg.Booking.RejectPastDates}
}
