package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-mess/internal/auth"
	"github.com/iliyamo/hostel-mess/internal/booking"
	"github.com/iliyamo/hostel-mess/internal/config"
	"github.com/iliyamo/hostel-mess/internal/database"
	"github.com/iliyamo/hostel-mess/internal/handler"
	"github.com/iliyamo/hostel-mess/internal/repository"
	"github.com/iliyamo/hostel-mess/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set env vars directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = database.Migrate(ctx, db)
	cancel()
	if err != nil {
		log.Fatalf("database migrate failed: %v", err)
	}

	boarders := repository.NewBoarderRepo(db)
	meals := repository.NewMealRepo(db)
	options := repository.NewDinnerOptionRepo(db)
	notices := repository.NewNoticeRepo(db)

	ledger := booking.NewLedger(meals, options)
	resolver := auth.NewResolver(boarders, auth.Superadmin{
		Username: cfg.SuperadminUser,
		Room:     cfg.SuperadminRoom,
		PIN:      cfg.SuperadminPIN,
	})

	h := router.Handlers{
		Public:   handler.NewPublicHandler(boarders, notices, options),
		Boarder:  handler.NewBoarderHandler(cfg, boarders),
		Booking:  handler.NewBookingHandler(cfg, boarders, ledger),
		Auth:     handler.NewAuthHandler(cfg, resolver),
		Convenor: handler.NewConvenorHandler(meals, options, notices),
		Admin:    handler.NewAdminHandler(cfg, boarders),
	}

	e := echo.New()
	router.RegisterRoutes(e, h, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
