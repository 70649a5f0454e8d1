package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-booking-web/internal/apiclient"
	"github.com/iliyamo/cinema-booking-web/internal/endpoint"
	"github.com/iliyamo/cinema-booking-web/internal/model"
	"github.com/iliyamo/cinema-booking-web/internal/view"
)

// authBackend fakes the auth endpoints with call counters.
type authBackend struct {
	loginCalls    atomic.Int64
	registerCalls atomic.Int64
	loginStatus   int // 0 means 200
}

func (b *authBackend) start(t *testing.T) *apiclient.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		b.loginCalls.Add(1)
		if b.loginStatus != 0 {
			w.WriteHeader(b.loginStatus)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid credentials"})
			return
		}
		json.NewEncoder(w).Encode(model.UserToken{
			User:  model.User{ID: 7, Email: "a@b.com", Name: "Ana"},
			Token: "jwt-here",
		})
	})
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		b.registerCalls.Add(1)
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return apiclient.New(endpoint.NewRegistry(srv.URL, srv.URL))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Renderer = view.NewRenderer()
	return e
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no %q cookie in response", name)
	return nil
}

func TestAuthHandler_Login_EmptyFieldsShortCircuit(t *testing.T) {
	b := &authBackend{}
	e := newTestEcho()
	e.POST("/sign-in", NewAuthHandler(b.start(t), "token").Login)

	rec := postForm(e, "/sign-in", url.Values{"email": {"a@b.com"}, "password": {""}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill all fields.")
	assert.Equal(t, int64(0), b.loginCalls.Load())
}

func TestAuthHandler_Login_SuccessSetsCookieAndRedirects(t *testing.T) {
	b := &authBackend{}
	e := newTestEcho()
	e.POST("/sign-in", NewAuthHandler(b.start(t), "token").Login)

	rec := postForm(e, "/sign-in", url.Values{"email": {"a@b.com"}, "password": {"pw"}})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

	cookie := sessionCookie(t, rec, "token")
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Zero(t, cookie.MaxAge)

	raw, err := url.QueryUnescape(cookie.Value)
	require.NoError(t, err)
	var tok model.UserToken
	require.NoError(t, json.Unmarshal([]byte(raw), &tok))
	assert.Equal(t, "jwt-here", tok.Token)
	assert.Equal(t, uint64(7), tok.User.ID)
}

func TestAuthHandler_Login_APIFailureRendersError(t *testing.T) {
	b := &authBackend{loginStatus: http.StatusUnauthorized}
	e := newTestEcho()
	e.POST("/sign-in", NewAuthHandler(b.start(t), "token").Login)

	rec := postForm(e, "/sign-in", url.Values{"email": {"a@b.com"}, "password": {"bad"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Body.String(), http.StatusText(http.StatusUnauthorized))
}

func TestAuthHandler_Register_RequiresAllFields(t *testing.T) {
	b := &authBackend{}
	e := newTestEcho()
	e.POST("/sign-up", NewAuthHandler(b.start(t), "token").Register)

	rec := postForm(e, "/sign-up", url.Values{"email": {"a@b.com"}, "password": {"pw"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Please fill all fields.")
	assert.Equal(t, int64(0), b.registerCalls.Load())
}

func TestAuthHandler_Register_SuccessLandsOnSignIn(t *testing.T) {
	b := &authBackend{}
	e := newTestEcho()
	e.POST("/sign-up", NewAuthHandler(b.start(t), "token").Register)

	rec := postForm(e, "/sign-up", url.Values{
		"name": {"Ana"}, "email": {"a@b.com"}, "password": {"pw"},
	})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/sign-in", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, int64(1), b.registerCalls.Load())
}

func TestAuthHandler_SetSession_EchoesBodyAsCookie(t *testing.T) {
	b := &authBackend{}
	e := newTestEcho()
	e.POST("/session", NewAuthHandler(b.start(t), "token").SetSession)

	payload := `{"user":{"id":7},"token":"jwt-here"}`
	req := httptest.NewRequest(http.MethodPost, "/session", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	cookie := sessionCookie(t, rec, "token")
	raw, err := url.QueryUnescape(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, payload, raw)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	b := &authBackend{}
	e := newTestEcho()
	e.GET("/logout", NewAuthHandler(b.start(t), "token").Logout)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	cookie := sessionCookie(t, rec, "token")
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
