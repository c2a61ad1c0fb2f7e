package handler

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-mess/internal/booking"
	"github.com/iliyamo/hostel-mess/internal/config"
	"github.com/iliyamo/hostel-mess/internal/model"
	"github.com/iliyamo/hostel-mess/internal/queue"
	"github.com/iliyamo/hostel-mess/internal/repository"
	queue_publisher "github.com/iliyamo/hostel-mess/internal/service"
	"github.com/iliyamo/hostel-mess/internal/utils"
)

// BookingHandler performs the boarder-facing booking action. The target
// date is always the one the window resolver produces at request time;
// clients never supply it.
type BookingHandler struct {
	Cfg      config.Config
	Boarders *repository.BoarderRepo
	Ledger   *booking.Ledger
}

func NewBookingHandler(cfg config.Config, boarders *repository.BoarderRepo, ledger *booking.Ledger) *BookingHandler {
	return &BookingHandler{Cfg: cfg, Boarders: boarders, Ledger: ledger}
}

type bookReq struct {
	BoarderID    uint64 `json:"boarder_id"`
	PIN          string `json:"pin"`
	Lunch        bool   `json:"lunch"`
	Dinner       bool   `json:"dinner"`
	DinnerChoice string `json:"dinner_choice"`
}

// Book handles POST /v1/bookings. Rebooking the same date overwrites the
// earlier record in full.
func (h *BookingHandler) Book(c echo.Context) error {
	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.BoarderID == 0 || req.PIN == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "boarder_id and pin are required"})
	}

	date, open := booking.ResolveBookingDate(time.Now())
	if !open {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking is currently closed, check the booking timings"})
	}

	var choice *model.DinnerChoice
	if req.DinnerChoice != "" {
		parsed, ok := model.ParseDinnerChoice(req.DinnerChoice)
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown dinner choice"})
		}
		choice = &parsed
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Boarders.GetByID(ctx, req.BoarderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "boarder not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}
	if !utils.VerifyPIN(b.PINHash, req.PIN) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid pin"})
	}

	if err := h.Ledger.Book(ctx, b.ID, date, req.Lunch, req.Dinner, choice); err != nil {
		switch {
		case errors.Is(err, booking.ErrWindowClosed):
			return c.JSON(http.StatusConflict, echo.Map{"error": "booking is currently closed, check the booking timings"})
		case errors.Is(err, booking.ErrInvalidChoice):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "dinner choice is missing or not offered today"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}

	if h.Cfg.AMQPURL != "" {
		ev := queue.MealBookedEvent{
			BoarderID:   b.ID,
			BoarderName: b.Name,
			RoomNo:      b.RoomNo,
			MealDate:    date.Format(model.DateLayout),
			Lunch:       req.Lunch,
			Dinner:      req.Dinner,
			BookedAt:    time.Now().UTC().Format(time.RFC3339),
		}
		if req.Dinner && choice != nil {
			ev.DinnerChoice = string(*choice)
		}
		// Fire-and-forget: a broker outage must not fail the booking.
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer pubCancel()
			if err := queue_publisher.PublishMealBooked(pubCtx, h.Cfg.AMQPURL, ev); err != nil {
				log.Printf("meal.booked publish skipped: %v", err)
			}
		}()
	}

	resp := echo.Map{
		"meal_date": date.Format(model.DateLayout),
		"lunch":     req.Lunch,
		"dinner":    req.Dinner,
	}
	if req.Dinner && choice != nil {
		resp["dinner_choice"] = string(*choice)
	}
	return c.JSON(http.StatusCreated, resp)
}
