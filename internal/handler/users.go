package handler

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-space-booking/internal/model"
    "github.com/iliyamo/coworking-space-booking/internal/repository"
)

// UserStore is the subset of repository.UserRepo used by UserHandler.
type UserStore interface {
    List(ctx context.Context) ([]model.User, error)
    Create(ctx context.Context, name, email string) (model.User, error)
    GetByID(ctx context.Context, id uint64) (model.User, error)
    Update(ctx context.Context, id uint64, name, email string) (model.User, error)
    Delete(ctx context.Context, id uint64) error
}

// UserHandler exposes CRUD over the users table.
type UserHandler struct {
    Users UserStore
}

func NewUserHandler(u UserStore) *UserHandler { return &UserHandler{Users: u} }

type userReq struct {
    Name  string `json:"name" validate:"required"`
    Email string `json:"email" validate:"required"`
}

const userFieldsRequired = "Name and email are required"

func dbCtx(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// List: GET /api/users -> {data:[...]} newest first.
func (h *UserHandler) List(c echo.Context) error {
    ctx, cancel := dbCtx(c)
    defer cancel()
    users, err := h.Users.List(ctx)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, echo.Map{"data": users})
}

// Create: POST /api/users -> {data:[row]}.
func (h *UserHandler) Create(c echo.Context) error {
    var req userReq
    if !bindValid(c, &req, userFieldsRequired) {
        return nil
    }
    ctx, cancel := dbCtx(c)
    defer cancel()
    u, err := h.Users.Create(ctx, req.Name, req.Email)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, echo.Map{"data": []model.User{u}})
}

// Get: GET /api/users/:id -> {data:row} or 404.
func (h *UserHandler) Get(c echo.Context) error {
    id, ok := parseID(c)
    if !ok {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
    }
    ctx, cancel := dbCtx(c)
    defer cancel()
    u, err := h.Users.GetByID(ctx, id)
    if errors.Is(err, repository.ErrUserNotFound) {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "User not found"})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, echo.Map{"data": u})
}

// Update: PUT /api/users/:id -> {data:[row]}; an unknown id yields {data:[]}.
func (h *UserHandler) Update(c echo.Context) error {
    var req userReq
    if !bindValid(c, &req, userFieldsRequired) {
        return nil
    }
    id, ok := parseID(c)
    if !ok {
        return c.JSON(http.StatusOK, echo.Map{"data": []model.User{}})
    }
    ctx, cancel := dbCtx(c)
    defer cancel()
    u, err := h.Users.Update(ctx, id, req.Name, req.Email)
    if errors.Is(err, repository.ErrUserNotFound) {
        return c.JSON(http.StatusOK, echo.Map{"data": []model.User{}})
    }
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusOK, echo.Map{"data": []model.User{u}})
}

// Delete: DELETE /api/users/:id.  Missing ids are not an error.
func (h *UserHandler) Delete(c echo.Context) error {
    if id, ok := parseID(c); ok {
        ctx, cancel := dbCtx(c)
        defer cancel()
        if err := h.Users.Delete(ctx, id); err != nil {
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}

// parseID reads the :id path parameter.  Ids that are not positive integers
// can never match a row.
func parseID(c echo.Context) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param("id"), 10, 64)
    if err != nil || id == 0 {
        return 0, false
    }
    return id, true
}
