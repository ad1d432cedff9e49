package handler

import (
    "errors"
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestUsers_CreateRequiresNameAndEmail(t *testing.T) {
    ts := newTestServer(t)
    rec := ts.do(http.MethodPost, "/api/users", `{"name":"Lan"}`, nil)
    assert.Equal(t, http.StatusBadRequest, rec.Code)
    assert.JSONEq(t, `{"error":"Name and email are required"}`, rec.Body.String())
}

func TestUsers_CRUD(t *testing.T) {
    ts := newTestServer(t)

    rec := ts.do(http.MethodPost, "/api/users", `{"name":"Lan","email":"lan@example.com"}`, nil)
    require.Equal(t, http.StatusOK, rec.Code)
    var created struct {
        Data []struct {
            ID    uint64 `json:"id"`
            Name  string `json:"name"`
            Email string `json:"email"`
        } `json:"data"`
    }
    decode(t, rec, &created)
    require.Len(t, created.Data, 1)
    assert.Equal(t, uint64(1), created.Data[0].ID)

    ts.do(http.MethodPost, "/api/users", `{"name":"Minh","email":"minh@example.com"}`, nil)

    rec = ts.do(http.MethodGet, "/api/users", "", nil)
    require.Equal(t, http.StatusOK, rec.Code)
    var list struct {
        Data []struct {
            ID uint64 `json:"id"`
        } `json:"data"`
    }
    decode(t, rec, &list)
    require.Len(t, list.Data, 2)
    assert.Equal(t, uint64(2), list.Data[0].ID)

    rec = ts.do(http.MethodGet, "/api/users/1", "", nil)
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"email":"lan@example.com"`)

    rec = ts.do(http.MethodPut, "/api/users/1", `{"name":"Lan T","email":"lt@example.com"}`, nil)
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `"name":"Lan T"`)

    rec = ts.do(http.MethodDelete, "/api/users/1", "", nil)
    assert.JSONEq(t, `{"message":"User deleted successfully"}`, rec.Body.String())

    rec = ts.do(http.MethodGet, "/api/users/1", "", nil)
    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.JSONEq(t, `{"error":"User not found"}`, rec.Body.String())
}

func TestUsers_UnknownIDs(t *testing.T) {
    ts := newTestServer(t)

    rec := ts.do(http.MethodGet, "/api/users/abc", "", nil)
    assert.Equal(t, http.StatusNotFound, rec.Code)

    rec = ts.do(http.MethodPut, "/api/users/99", `{"name":"x","email":"y"}`, nil)
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.JSONEq(t, `{"data":[]}`, rec.Body.String())

    rec = ts.do(http.MethodDelete, "/api/users/abc", "", nil)
    assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUsers_ListFailure(t *testing.T) {
    ts := newTestServer(t)
    ts.users.err = errors.New("db down")
    rec := ts.do(http.MethodGet, "/api/users", "", nil)
    assert.Equal(t, http.StatusInternalServerError, rec.Code)
    assert.JSONEq(t, `{"error":"db down"}`, rec.Body.String())
}
