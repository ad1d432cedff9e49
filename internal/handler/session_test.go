package handler

import (
    "context"
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/coworking-space-booking/internal/session"
)

func TestSession_SignupValidation(t *testing.T) {
    ts := newTestServer(t)

    rec := ts.do(http.MethodPost, "/api/session", `{"firstName":"Lan","email":"not-an-email"}`, nil)
    assert.Equal(t, http.StatusBadRequest, rec.Code)

    rec = ts.do(http.MethodPost, "/api/session", `{"email":"lan@example.com","selectedPlan":"PENTHOUSE"}`, nil)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.JSONEq(t, `{"error":"unknown plan"}`, rec.Body.String())
}

func TestSession_SignupCurrentLogout(t *testing.T) {
    ts := newTestServer(t)

    assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/api/session", "", nil).Code)

    ck := ts.signup(t, `{"email":"lan@example.com","selectedPlan":"HOT DESK"}`)
    assert.True(t, ck.HttpOnly)

    rec := ts.do(http.MethodGet, "/api/session", "", ck)
    require.Equal(t, http.StatusOK, rec.Code)
    var out struct {
        Data session.Context `json:"data"`
    }
    decode(t, rec, &out)
    assert.True(t, out.Data.Authenticated)
    assert.Equal(t, "User", out.Data.User.FirstName)
    assert.Equal(t, session.PlanInactive, out.Data.User.PlanStatus)

    // signup with a plan seeds the booking draft
    d, err := ts.drafts.Load(context.Background(), out.Data.ID)
    require.NoError(t, err)
    assert.Equal(t, "HOT DESK", d.PlanName)
    assert.True(t, d.Active)

    rec = ts.do(http.MethodDelete, "/api/session", "", ck)
    assert.Equal(t, http.StatusOK, rec.Code)
    _, err = ts.drafts.Load(context.Background(), out.Data.ID)
    assert.Error(t, err)
    cleared := rec.Result().Cookies()
    require.Len(t, cleared, 1)
    assert.Equal(t, -1, cleared[0].MaxAge)
}
