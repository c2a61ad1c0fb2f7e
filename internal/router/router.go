// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hostel-mess/internal/auth"
	"github.com/iliyamo/hostel-mess/internal/handler"
	"github.com/iliyamo/hostel-mess/internal/middleware"
)

// Handlers bundles every handler the router wires up.
type Handlers struct {
	Public   *handler.PublicHandler
	Boarder  *handler.BoarderHandler
	Booking  *handler.BookingHandler
	Auth     *handler.AuthHandler
	Convenor *handler.ConvenorHandler
	Admin    *handler.AdminHandler
}

// RegisterRoutes registers the public surface, the boarder self-service
// endpoints and the role-gated admin groups on the provided Echo instance.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	// Public browse surface and boarder self-service.
	e.GET("/v1/booking-window", h.Public.BookingWindow)
	e.GET("/v1/dinner-option", h.Public.DinnerChoices)
	e.GET("/v1/notices", h.Public.Notices)
	e.GET("/v1/convenors", h.Public.Convenors)
	e.GET("/v1/rooms/:room/boarders", h.Public.RoomBoarders)
	e.POST("/v1/boarders", h.Boarder.Register)
	e.POST("/v1/boarders/pin-reset", h.Boarder.ResetPIN)
	e.POST("/v1/bookings", h.Booking.Book)
	e.POST("/v1/auth/login", h.Auth.Login)

	// Admin routes require a valid token; the role middleware then splits
	// the convenor surface from the superadmin-only surface.
	admin := e.Group("/v1/admin", middleware.JWTAuth(jwtSecret))

	convenor := admin.Group("", middleware.RequireRole(string(auth.RoleConvenor), string(auth.RoleSuperadmin)))
	convenor.GET("/meals", h.Convenor.Meals)
	convenor.GET("/meals/export", h.Convenor.ExportMeals)
	convenor.PUT("/dinner-option", h.Convenor.SetDinnerOption)
	convenor.POST("/notices", h.Convenor.PostNotice)

	super := admin.Group("", middleware.RequireRole(string(auth.RoleSuperadmin)))
	super.GET("/boarders", h.Admin.ListBoarders)
	super.PUT("/boarders/:id/convenor", h.Admin.SetConvenor)
	super.PUT("/boarders/:id/pin", h.Admin.ResetBoarderPIN)
}
