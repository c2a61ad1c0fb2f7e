package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-mess/internal/auth"
	"github.com/iliyamo/hostel-mess/internal/config"
	"github.com/iliyamo/hostel-mess/internal/utils"
)

// AuthHandler exchanges a (username, room, pin) triple for a signed admin
// token. Only convenors and the configured superadmin get one.
type AuthHandler struct {
	Cfg      config.Config
	Resolver *auth.Resolver
}

func NewAuthHandler(cfg config.Config, r *auth.Resolver) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Resolver: r}
}

type loginReq struct {
	Username string `json:"username"`
	Room     string `json:"room_no"`
	PIN      string `json:"pin"`
}

type loginResp struct {
	Username string    `json:"username"`
	Role     string    `json:"role"`
	Token    string    `json:"token"`
	Expires  time.Time `json:"expires"`
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Room = strings.TrimSpace(req.Room)
	if req.Username == "" || req.Room == "" || req.PIN == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username, room_no and pin are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	role, err := h.Resolver.Authorize(ctx, req.Username, req.Room, req.PIN)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "authorization failed"})
	}
	if role == auth.RoleUnauthenticated {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials or not a convenor"})
	}

	tok, err := utils.NewAccessToken(h.Cfg.JWTSecret, strings.ToLower(req.Username), string(role), h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Username: strings.ToLower(req.Username),
		Role:     string(role),
		Token:    tok.Token,
		Expires:  tok.Exp,
	})
}
