package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hostel-mess/internal/utils"
)

const testSecret = "test-secret"

func invoke(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/meals", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	h := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	return rec, c
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken(testSecret, "alice", "CONVENOR", 15)
	require.NoError(t, err)

	rec, c := invoke(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", c.Get("username"))
	assert.Equal(t, "CONVENOR", c.Get("role"))
}

func TestJWTAuthRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken(testSecret, "alice", "CONVENOR", -1)
	require.NoError(t, err)

	rec, _ := invoke(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	t.Parallel()

	rec, _ := invoke(t, JWTAuth(testSecret), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := utils.NewAccessToken("other-secret", "alice", "CONVENOR", 15)
	require.NoError(t, err)

	rec, _ := invoke(t, JWTAuth(testSecret), "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	e := echo.New()
	run := func(role string, allowed ...string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set("role", role)
		}
		h := RequireRole(allowed...)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		require.NoError(t, h(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run("CONVENOR", "CONVENOR", "SUPERADMIN"))
	assert.Equal(t, http.StatusOK, run("SUPERADMIN", "SUPERADMIN"))
	assert.Equal(t, http.StatusForbidden, run("CONVENOR", "SUPERADMIN"))
	assert.Equal(t, http.StatusForbidden, run("", "CONVENOR"))
}
