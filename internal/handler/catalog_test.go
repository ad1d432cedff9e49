package handler

import (
    "net/http"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestCatalog_Plans(t *testing.T) {
    ts := newTestServer(t)
    rec := ts.do(http.MethodGet, "/api/plans", "", nil)
    require.Equal(t, http.StatusOK, rec.Code)

    var out struct {
        Data []struct {
            Name   string `json:"name"`
            Price  string `json:"price"`
            Amount int64  `json:"amount"`
        } `json:"data"`
    }
    decode(t, rec, &out)
    require.Len(t, out.Data, 6)
    assert.Equal(t, "HOT DESK", out.Data[0].Name)
    assert.Equal(t, int64(110000), out.Data[0].Amount)
}

func TestCatalog_DatesAndSlots(t *testing.T) {
    ts := newTestServer(t)

    rec := ts.do(http.MethodGet, "/api/dates", "", nil)
    var dates struct {
        Data []struct {
            Value string `json:"value"`
            Label string `json:"label"`
        } `json:"data"`
    }
    decode(t, rec, &dates)
    require.Len(t, dates.Data, 7)
    assert.Equal(t, "2026-10-15", dates.Data[0].Value)
    assert.Equal(t, "Thu, Oct 15", dates.Data[0].Label)
    assert.Equal(t, "2026-10-21", dates.Data[6].Value)

    rec = ts.do(http.MethodGet, "/api/time-slots", "", nil)
    var slots struct {
        Data []string `json:"data"`
    }
    decode(t, rec, &slots)
    assert.Len(t, slots.Data, 9)
    assert.Equal(t, "8:00 AM", slots.Data[0])
}
