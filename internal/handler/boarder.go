package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-mess/internal/config"
	"github.com/iliyamo/hostel-mess/internal/repository"
	"github.com/iliyamo/hostel-mess/internal/utils"
)

// BoarderHandler covers boarder self-service: registration and PIN reset.
type BoarderHandler struct {
	Cfg      config.Config
	Boarders *repository.BoarderRepo
}

func NewBoarderHandler(cfg config.Config, b *repository.BoarderRepo) *BoarderHandler {
	return &BoarderHandler{Cfg: cfg, Boarders: b}
}

type registerReq struct {
	Name     string `json:"name"`
	Room     string `json:"room_no"`
	Username string `json:"username"`
	PIN      string `json:"pin"`
}

// Register handles POST /v1/boarders. The PIN format is checked here, at
// the data-entry boundary, so every stored hash derives from a 4-digit PIN.
func (h *BoarderHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Room = strings.TrimSpace(req.Room)
	req.Username = strings.TrimSpace(req.Username)
	if req.Name == "" || req.Room == "" || req.Username == "" || req.PIN == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	if !utils.ValidPINFormat(req.PIN) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pin must be exactly 4 digits"})
	}

	hash, err := utils.HashPIN(req.PIN, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Boarders.Register(ctx, req.Name, req.Room, req.Username, hash)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomFull):
			return c.JSON(http.StatusConflict, echo.Map{"error": "this room already has 2 registered boarders"})
		case errors.Is(err, repository.ErrUsernameTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "this username is already taken"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "registration failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id})
}

type pinResetReq struct {
	Username string `json:"username"`
	Room     string `json:"room_no"`
	PIN      string `json:"pin"`
	NewPIN   string `json:"new_pin"`
}

// ResetPIN handles POST /v1/boarders/pin-reset. The current PIN is required
// before a new one is accepted; boarders who have lost theirs go through
// the superadmin recovery route instead.
func (h *BoarderHandler) ResetPIN(c echo.Context) error {
	var req pinResetReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Room = strings.TrimSpace(req.Room)
	if req.Username == "" || req.Room == "" || req.PIN == "" || req.NewPIN == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "all fields are required"})
	}
	if !utils.ValidPINFormat(req.NewPIN) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "pin must be exactly 4 digits"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Boarders.GetByUsernameAndRoom(ctx, req.Username, req.Room)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no matching boarder found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
	}
	if !utils.VerifyPIN(b.PINHash, req.PIN) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "current pin is incorrect"})
	}

	hash, err := utils.HashPIN(req.NewPIN, h.Cfg.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
	}
	if err := h.Boarders.UpdatePIN(ctx, b.ID, hash); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "pin updated successfully"})
}
