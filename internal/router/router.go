package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/coworking-space-booking/internal/handler"
	"github.com/iliyamo/coworking-space-booking/internal/middleware"
)

// RegisterRoutes registers the liveness endpoints: the root banner, a hello
// probe and the database health check.
func RegisterRoutes(e *echo.Echo, h *handler.HealthHandler) {
	e.GET("/", h.Root)
	e.GET("/api/hello", h.Hello)
	e.GET("/api/health", h.Health)
}

// RegisterUsers registers CRUD on /api/users.
func RegisterUsers(e *echo.Echo, u *handler.UserHandler) {
	g := e.Group("/api/users")
	g.GET("", u.List)
	g.POST("", u.Create)
	g.GET("/:id", u.Get)
	g.PUT("/:id", u.Update)
	g.DELETE("/:id", u.Delete)
}

// RegisterCatalog registers the read-only catalog endpoints behind the
// response cache.  /api/dates rolls over at midnight, so CACHE_TTL must stay
// well under a day.
func RegisterCatalog(e *echo.Echo, h *handler.CatalogHandler, cache echo.MiddlewareFunc) {
	e.GET("/api/plans", h.Plans, cache)
	e.GET("/api/time-slots", h.TimeSlots, cache)
	e.GET("/api/dates", h.Dates, cache)
}

// RegisterSession registers signup, session lookup and logout.
func RegisterSession(e *echo.Echo, s *handler.SessionHandler) {
	e.POST("/api/session", s.Signup)
	e.GET("/api/session", s.Current)
	e.DELETE("/api/session", s.Logout)
}

// RegisterBooking registers the booking wizard endpoints.  Every route
// requires a session; the draft is keyed by its id.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler) {
	g := e.Group("/api/booking", middleware.RequireSession())
	g.GET("", b.Get)
	g.DELETE("", b.Reset)
	g.PUT("/plan", b.SelectPlan)
	g.PUT("/date", b.SelectDate)
	g.PUT("/time-slot", b.SelectTimeSlot)
	g.GET("/seats", b.Seats)
	g.POST("/seats/:seat", b.ToggleSeat)
	g.POST("/advance", b.Advance)
	g.POST("/retreat", b.Retreat)
	g.POST("/confirm", b.Confirm)
}
