package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func run(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, string) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var seen string
	_ = mw(func(c echo.Context) error {
		seen, _ = c.Get("uid").(string)
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, seen
}

func TestDevLogin(t *testing.T) {
	tests := []struct {
		name   string
		target string
		cookie string
		want   string
		sets   bool
	}{
		{"default", "/", "", DefaultUID, true},
		{"query", "/?uid=alice", "", "alice", true},
		{"cookie wins over query", "/?uid=alice", "bob", "bob", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: UIDCookie, Value: tt.cookie})
			}
			rec, uid := run(DevLogin(), req)
			assert.Equal(t, tt.want, uid)
			assert.Equal(t, tt.sets, rec.Header().Get("Set-Cookie") != "")
		})
	}
}

func TestRequireUID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, _ := run(RequireUID(true), req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(UIDHeader, "carol")
	rec, uid := run(RequireUID(true), req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "carol", uid)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: UIDCookie, Value: "dave"})
	_, uid = run(RequireUID(true), req)
	assert.Equal(t, "dave", uid)

	rec, uid = run(RequireUID(false), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, uid)
}
