package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-mess/internal/config"
	"github.com/iliyamo/hostel-mess/internal/repository"
	"github.com/iliyamo/hostel-mess/internal/utils"
)

// AdminHandler serves the superadmin-only surface: the full boarder list,
// convenor-status management and warden PIN recovery.
type AdminHandler struct {
	Cfg      config.Config
	Boarders *repository.BoarderRepo
}

func NewAdminHandler(cfg config.Config, b *repository.BoarderRepo) *AdminHandler {
	return &AdminHandler{Cfg: cfg, Boarders: b}
}

// ListBoarders handles GET /v1/admin/boarders.
func (h *AdminHandler) ListBoarders(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	boarders, err := h.Boarders.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]echo.Map, 0, len(boarders))
	for _, b := range boarders {
		out = append(out, echo.Map{
			"id":          b.ID,
			"name":        b.Name,
			"room_no":     b.RoomNo,
			"username":    b.Username,
			"is_convenor": b.IsConvenor,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"boarders": out})
}

type convenorStatusReq struct {
	IsConvenor bool `json:"is_convenor"`
}

// SetConvenor handles PUT /v1/admin/boarders/:id/convenor.
func (h *AdminHandler) SetConvenor(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid boarder id"})
	}
	var req convenorStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Boarders.SetConvenor(ctx, id, req.IsConvenor); err != nil {
		if errors.Is(err, repository.ErrBoarderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "boarder not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "is_convenor": req.IsConvenor})
}

type adminPINResetReq struct {
	NewPIN string `json:"new_pin"`
}

// ResetBoarderPIN handles PUT /v1/admin/boarders/:id/pin, the recovery path
// for boarders who forgot their PIN.
func (h *AdminHandler) ResetBoarderPIN(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid boarder id"})
	}
	var req adminPINResetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !utils.ValidPINFormat(req.NewPIN) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pin must be exactly 4 digits"})
	}

	hash, err := utils.HashPIN(req.NewPIN, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Boarders.UpdatePIN(ctx, id, hash); err != nil {
		if errors.Is(err, repository.ErrBoarderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "boarder not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "pin updated successfully"})
}
