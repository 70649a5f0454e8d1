package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-booking-web/internal/model"
)

// sessionApp wires the middleware in front of a probe handler exposing the
// parsed session.
func sessionApp(capture **model.UserToken) *echo.Echo {
	e := echo.New()
	e.Use(Session("token"))
	e.GET("/", func(c echo.Context) error {
		*capture = CurrentUser(c)
		return c.NoContent(http.StatusOK)
	})
	return e
}

func get(e *echo.Echo, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestSession_NoCookieIsGuest(t *testing.T) {
	var got *model.UserToken
	get(sessionApp(&got), nil)
	assert.Nil(t, got)
}

func TestSession_ParsesCookieIntoUserToken(t *testing.T) {
	var got *model.UserToken
	cookie := &http.Cookie{
		Name:  "token",
		Value: url.QueryEscape(`{"user":{"id":7,"name":"Ana"},"token":"jwt-here"}`),
	}
	get(sessionApp(&got), cookie)

	require.NotNil(t, got)
	assert.Equal(t, uint64(7), got.User.ID)
	assert.Equal(t, "jwt-here", got.Token)
}

func TestSession_MalformedCookieClearedAndGuest(t *testing.T) {
	var got *model.UserToken
	cookie := &http.Cookie{Name: "token", Value: url.QueryEscape(`{oops`)}
	rec := get(sessionApp(&got), cookie)

	assert.Nil(t, got)
	// The garbage cookie is expired so the browser stops sending it.
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestSession_ExpiredBearerIsGuest(t *testing.T) {
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	var got *model.UserToken
	cookie := &http.Cookie{
		Name:  "token",
		Value: url.QueryEscape(`{"user":{"id":7},"token":"` + expired + `"}`),
	}
	get(sessionApp(&got), cookie)
	assert.Nil(t, got)
}

func TestCurrentUserID_RateLimitIdentity(t *testing.T) {
	e := echo.New()
	var key string
	e.Use(Session("token"))
	e.GET("/", func(c echo.Context) error {
		key = currentUserID(c)
		return c.NoContent(http.StatusOK)
	})

	get(e, nil)
	assert.Equal(t, "guest", key)

	get(e, &http.Cookie{
		Name:  "token",
		Value: url.QueryEscape(`{"user":{"id":7},"token":"jwt-here"}`),
	})
	assert.Equal(t, "7", key)
}
