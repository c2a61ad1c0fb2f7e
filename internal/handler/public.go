package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-mess/internal/booking"
	"github.com/iliyamo/hostel-mess/internal/model"
	"github.com/iliyamo/hostel-mess/internal/repository"
)

// PublicHandler exposes the unauthenticated browse surface: the notice
// board, the convenor list, room rosters for the booking picker, and the
// current booking window. Nothing here ever returns PIN material.
type PublicHandler struct {
	Boarders   *repository.BoarderRepo
	NoticeRepo *repository.NoticeRepo
	Options    *repository.DinnerOptionRepo
}

func NewPublicHandler(b *repository.BoarderRepo, n *repository.NoticeRepo, o *repository.DinnerOptionRepo) *PublicHandler {
	return &PublicHandler{Boarders: b, NoticeRepo: n, Options: o}
}

// recentNoticeLimit caps the home surface at the five newest notices.
const recentNoticeLimit = 5

// BookingWindow handles GET /v1/booking-window. It reports whether booking
// is open right now and, if so, for which date.
func (h *PublicHandler) BookingWindow(c echo.Context) error {
	date, open := booking.ResolveBookingDate(time.Now())
	if !open {
		return c.JSON(http.StatusOK, echo.Map{"open": false})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"open":      true,
		"meal_date": date.Format(model.DateLayout),
	})
}

// DinnerChoices handles GET /v1/dinner-option. When a window is open it
// returns the target date and the pair of choices offered for it.
func (h *PublicHandler) DinnerChoices(c echo.Context) error {
	date, open := booking.ResolveBookingDate(time.Now())
	if !open {
		return c.JSON(http.StatusOK, echo.Map{"open": false})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	opt, err := h.Options.Get(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"open":      true,
		"meal_date": date.Format(model.DateLayout),
		"choices":   booking.AllowedChoices(opt),
	})
}

// Notices handles GET /v1/notices.
func (h *PublicHandler) Notices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	notices, err := h.NoticeRepo.ListRecent(ctx, recentNoticeLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]echo.Map, 0, len(notices))
	for _, n := range notices {
		out = append(out, echo.Map{
			"notice":    n.Text,
			"posted_by": n.PosterName,
			"posted_at": n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"notices": out})
}

// Convenors handles GET /v1/convenors, listing name and room of the
// boarders currently holding convenor status.
func (h *PublicHandler) Convenors(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	convenors, err := h.Boarders.ListConvenors(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]echo.Map, 0, len(convenors))
	for _, b := range convenors {
		out = append(out, echo.Map{"name": b.Name, "room_no": b.RoomNo})
	}
	return c.JSON(http.StatusOK, echo.Map{"convenors": out})
}

// RoomBoarders handles GET /v1/rooms/:room/boarders so a booking client can
// present the name picker for a room.
func (h *PublicHandler) RoomBoarders(c echo.Context) error {
	room := strings.TrimSpace(c.Param("room"))
	if room == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room number is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	boarders, err := h.Boarders.ListByRoom(ctx, room)
	if errors.Is(err, repository.ErrNoBoardersInRoom) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no boarders found for this room"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]echo.Map, 0, len(boarders))
	for _, b := range boarders {
		out = append(out, echo.Map{"id": b.ID, "name": b.Name})
	}
	return c.JSON(http.StatusOK, echo.Map{"room_no": room, "boarders": out})
}
