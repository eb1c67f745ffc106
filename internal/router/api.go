package router

import (
	"net/http"

	"github.com/androadel2014/carryon-backend/internal/handler"
	"github.com/androadel2014/carryon-backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes wires the marketplace and airport directory
// endpoints. Read endpoints on listings take optional authentication;
// every mutation requires it. Ownership and admin checks live in the
// service layer, not here.
func registerAPIRoutes(e *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	listings := e.Group("/listings")

	listings.POST("", handler.Handle(h.Listings.Handler, h.Listings.Create, http.StatusOK), m.Auth.RequireAuth)
	listings.GET("", handler.Handle(h.Listings.Handler, h.Listings.List, http.StatusOK), m.Auth.OptionalAuth)
	listings.GET("/:id", handler.Handle(h.Listings.Handler, h.Listings.Get, http.StatusOK), m.Auth.OptionalAuth)
	listings.PATCH("/:id", handler.Handle(h.Listings.Handler, h.Listings.Update, http.StatusOK), m.Auth.RequireAuth)
	listings.PATCH("/:id/status", handler.Handle(h.Listings.Handler, h.Listings.Transition, http.StatusOK), m.Auth.RequireAuth)
	listings.DELETE("/:id", handler.Handle(h.Listings.Handler, h.Listings.Delete, http.StatusOK), m.Auth.RequireAuth)

	listings.POST("/:id/request", handler.Handle(h.Requests.Handler, h.Requests.Create, http.StatusOK), m.Auth.RequireAuth)
	listings.GET("/:id/requests", handler.Handle(h.Requests.Handler, h.Requests.ListForListing, http.StatusOK), m.Auth.RequireAuth)

	listings.GET("/:id/messages", handler.Handle(h.Messages.Handler, h.Messages.List, http.StatusOK), m.Auth.RequireAuth)
	listings.POST("/:id/messages", handler.Handle(h.Messages.Handler, h.Messages.Post, http.StatusOK), m.Auth.RequireAuth)

	listings.POST("/:id/review", handler.Handle(h.Reviews.Handler, h.Reviews.Create, http.StatusOK), m.Auth.RequireAuth)

	requests := e.Group("/requests")
	requests.PATCH("/:id/accept", handler.Handle(h.Requests.Handler, h.Requests.Accept, http.StatusOK), m.Auth.RequireAuth)
	requests.PATCH("/:id/reject", handler.Handle(h.Requests.Handler, h.Requests.Reject, http.StatusOK), m.Auth.RequireAuth)

	airports := e.Group("/airports", m.RateLimit.Limit(20))
	airports.GET("/search", handler.Handle(h.Airports.Handler, h.Airports.Search, http.StatusOK))
	airports.GET("/health", handler.Handle(h.Airports.Handler, h.Airports.Health, http.StatusOK))
}
