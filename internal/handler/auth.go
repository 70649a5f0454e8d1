package handler

import (
    "encoding/json"
    "io"
    "net/http"
    "net/url"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/cinema-booking-web/internal/apiclient"
    "github.com/iliyamo/cinema-booking-web/internal/model"
)

// fillAllFields is the inline message for empty required form fields.  It
// fires before any network call.
const fillAllFields = "Please fill all fields."

// AuthHandler serves the sign-in/sign-up forms and owns the session
// cookie.  The cookie stores the raw login-result JSON, URL-escaped; the
// session middleware parses it back on every request.
type AuthHandler struct {
    API        *apiclient.Client
    CookieName string
}

func NewAuthHandler(api *apiclient.Client, cookieName string) *AuthHandler {
    return &AuthHandler{API: api, CookieName: cookieName}
}

// Login handles the sign-in form.  Empty fields short-circuit locally;
// an API failure re-renders the form with the error; success stores the
// session cookie and sends the browser home.
func (h *AuthHandler) Login(c echo.Context) error {
    email := c.FormValue("email")
    password := c.FormValue("password")
    data := signinData{Header: headerData(c), Email: email}

    if email == "" || password == "" {
        data.ErrorMessage = fillAllFields
        return c.Render(http.StatusOK, "signin.html", data)
    }

    tok, err := h.API.Login(c.Request().Context(), model.LoginRequest{Email: email, Password: password})
    if err != nil {
        c.Logger().Infof("login failed for %s: %v", email, err)
        data.ErrorMessage = err.Error()
        return c.Render(http.StatusOK, "signin.html", data)
    }

    raw, err := json.Marshal(tok)
    if err != nil {
        data.ErrorMessage = "Sign-in failed."
        return c.Render(http.StatusOK, "signin.html", data)
    }
    setSessionCookie(c, h.CookieName, string(raw))
    return c.Redirect(http.StatusSeeOther, "/")
}

// Register handles the sign-up form.  All three fields are required
// locally; the API's own {error} message (e.g. duplicate email) is shown
// verbatim.  Success lands on the sign-in page.
func (h *AuthHandler) Register(c echo.Context) error {
    req := model.RegisterRequest{
        Name:     c.FormValue("name"),
        Email:    c.FormValue("email"),
        Password: c.FormValue("password"),
    }
    data := signupData{Header: headerData(c), Name: req.Name, Email: req.Email}

    if req.Email == "" || req.Password == "" || req.Name == "" {
        data.ErrorMessage = fillAllFields
        return c.Render(http.StatusOK, "signup.html", data)
    }

    if err := h.API.Register(c.Request().Context(), req); err != nil {
        c.Logger().Infof("register failed for %s: %v", req.Email, err)
        data.ErrorMessage = err.Error()
        return c.Render(http.StatusOK, "signup.html", data)
    }
    return c.Redirect(http.StatusSeeOther, "/sign-in")
}

// SetSession is the same-origin endpoint that turns a login result into a
// session cookie: it accepts the JSON payload and echoes it back as a
// Set-Cookie header.  Kept for pages that sign in via fetch instead of
// the form post.
func (h *AuthHandler) SetSession(c echo.Context) error {
    body, err := io.ReadAll(c.Request().Body)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    setSessionCookie(c, h.CookieName, string(body))
    return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// Logout clears the session cookie and sends the browser home.
func (h *AuthHandler) Logout(c echo.Context) error {
    c.SetCookie(&http.Cookie{
        Name:     h.CookieName,
        Value:    "",
        Path:     "/",
        MaxAge:   -1,
        HttpOnly: true,
        Secure:   true,
        SameSite: http.SameSiteStrictMode,
    })
    return c.Redirect(http.StatusSeeOther, "/")
}

// setSessionCookie stores the raw JSON payload URL-escaped.  HttpOnly,
// Secure, SameSite=Strict, session-lived: no Max-Age, the browser drops
// it on close and the bearer token inside expires server-side.
func setSessionCookie(c echo.Context, name, payload string) {
    c.SetCookie(&http.Cookie{
        Name:     name,
        Value:    url.QueryEscape(payload),
        Path:     "/",
        HttpOnly: true,
        Secure:   true,
        SameSite: http.SameSiteStrictMode,
    })
}
