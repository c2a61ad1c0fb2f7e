package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-mess/internal/booking"
	"github.com/iliyamo/hostel-mess/internal/model"
	"github.com/iliyamo/hostel-mess/internal/report"
	"github.com/iliyamo/hostel-mess/internal/repository"
)

// ConvenorHandler serves the convenor dashboard: the per-date meal report,
// its CSV export, the shared dinner option and notice posting. The
// superadmin reaches all of these too.
type ConvenorHandler struct {
	MealRepo   *repository.MealRepo
	Options    *repository.DinnerOptionRepo
	NoticeRepo *repository.NoticeRepo
}

func NewConvenorHandler(m *repository.MealRepo, o *repository.DinnerOptionRepo, n *repository.NoticeRepo) *ConvenorHandler {
	return &ConvenorHandler{MealRepo: m, Options: o, NoticeRepo: n}
}

// reportDate picks the date a convenor view applies to: an explicit
// ?date=YYYY-MM-DD wins, else the currently resolved booking date, else
// today in IST when no window is open.
func reportDate(c echo.Context) (time.Time, error) {
	if raw := strings.TrimSpace(c.QueryParam("date")); raw != "" {
		d, err := time.Parse(model.DateLayout, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", raw)
		}
		return d, nil
	}
	if d, open := booking.ResolveBookingDate(time.Now()); open {
		return d, nil
	}
	return booking.CurrentDate(time.Now()), nil
}

// Meals handles GET /v1/admin/meals.
func (h *ConvenorHandler) Meals(c echo.Context) error {
	date, err := reportDate(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.MealRepo.ListForDate(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	rep := report.Build(rows)
	return c.JSON(http.StatusOK, echo.Map{
		"meal_date": date.Format(model.DateLayout),
		"report":    rep,
	})
}

// ExportMeals handles GET /v1/admin/meals/export, serving the meal table as
// a CSV download.
func (h *ConvenorHandler) ExportMeals(c echo.Context) error {
	date, err := reportDate(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rows, err := h.MealRepo.ListForDate(ctx, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	data, err := report.Build(rows).CSV()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	name := fmt.Sprintf("meals_%s.csv", date.Format(model.DateLayout))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}

type dinnerOptionReq struct {
	Choice string `json:"choice"`
}

// SetDinnerOption handles PUT /v1/admin/dinner-option. The option applies
// to the currently resolved booking date and may only be changed while a
// window is open, matching when boarders can react to it.
func (h *ConvenorHandler) SetDinnerOption(c echo.Context) error {
	var req dinnerOptionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	choice, ok := model.ParseDinnerChoice(strings.TrimSpace(req.Choice))
	if !ok || choice == model.ChoiceEgg {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "choice must be Fish or Chicken"})
	}

	date, open := booking.ResolveBookingDate(time.Now())
	if !open {
		return c.JSON(http.StatusConflict, echo.Map{"error": "dinner options can only be set during active booking hours"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Options.Set(ctx, date, choice); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"meal_date": date.Format(model.DateLayout),
		"choices":   booking.AllowedChoices(choice),
	})
}

type noticeReq struct {
	Notice string `json:"notice"`
}

// PostNotice handles POST /v1/admin/notices. The poster is taken from the
// authenticated token, never from the body.
func (h *ConvenorHandler) PostNotice(c echo.Context) error {
	var req noticeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	text := strings.TrimSpace(req.Notice)
	if text == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "notice cannot be empty"})
	}
	username, _ := c.Get("username").(string)
	if username == "" {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.NoticeRepo.Create(ctx, text, username); err != nil {
		if errors.Is(err, repository.ErrBoarderNotFound) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "poster is not a registered boarder"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "post failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "notice has been posted"})
}
