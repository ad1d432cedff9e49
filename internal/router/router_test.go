package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/coworking-space-booking/internal/catalog"
	"github.com/iliyamo/coworking-space-booking/internal/handler"
	"github.com/iliyamo/coworking-space-booking/internal/logger"
	"github.com/iliyamo/coworking-space-booking/internal/middleware"
	"github.com/iliyamo/coworking-space-booking/internal/repository"
	"github.com/iliyamo/coworking-space-booking/internal/session"
)

func TestRoutesRegistered(t *testing.T) {
	log := logger.Discard()
	seats := catalog.DefaultSeatCatalog()
	drafts := repository.NewMemoryDraftStore(time.Hour)
	sessions := session.NewManager("secret", time.Hour, false)
	users := repository.NewUserRepo(nil)

	e := echo.New()
	e.Use(middleware.LoadSession(sessions, log))
	RegisterRoutes(e, handler.NewHealthHandler(users))
	RegisterUsers(e, handler.NewUserHandler(users))
	RegisterCatalog(e, handler.NewCatalogHandler(), func(next echo.HandlerFunc) echo.HandlerFunc { return next })
	RegisterSession(e, handler.NewSessionHandler(sessions, drafts, seats, log))
	RegisterBooking(e, handler.NewBookingHandler(seats, drafts, nil, log))

	got := map[string]bool{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /", "GET /api/hello", "GET /api/health",
		"GET /api/users", "POST /api/users", "GET /api/users/:id", "PUT /api/users/:id", "DELETE /api/users/:id",
		"GET /api/plans", "GET /api/time-slots", "GET /api/dates",
		"POST /api/session", "GET /api/session", "DELETE /api/session",
		"GET /api/booking", "DELETE /api/booking",
		"PUT /api/booking/plan", "PUT /api/booking/date", "PUT /api/booking/time-slot",
		"GET /api/booking/seats", "POST /api/booking/seats/:seat",
		"POST /api/booking/advance", "POST /api/booking/retreat", "POST /api/booking/confirm",
	} {
		assert.True(t, got[want], "missing route %s", want)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/booking/advance", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/time-slots", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
