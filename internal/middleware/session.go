package middleware

import (
    "errors"
    "net/http"
    "net/url"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/cinema-booking-web/internal/model"
)

// sessionKey is the context key under which the parsed session lives.
const sessionKey = "session"

// Session returns middleware that parses the auth cookie once per request
// into a typed *model.UserToken and stores it in the Echo context.  The
// cookie holds the raw login-result JSON the auth service produced.  No
// cookie, a malformed payload or an expired bearer token all degrade to
// guest (nil); a malformed payload additionally clears the cookie so the
// browser stops sending garbage.
func Session(cookieName string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            cookie, err := c.Cookie(cookieName)
            if err != nil || cookie.Value == "" {
                return next(c)
            }
            raw, err := unescapeCookie(cookie.Value)
            if err != nil {
                return next(c)
            }
            tok, err := model.ParseUserToken(raw)
            if err != nil {
                var malformed *model.MalformedTokenError
                if errors.As(err, &malformed) {
                    c.Logger().Warnf("session: %v", malformed)
                    clearCookie(c, cookieName)
                }
                return next(c)
            }
            if tok.Expired() {
                return next(c)
            }
            c.Set(sessionKey, tok)
            return next(c)
        }
    }
}

// CurrentUser returns the parsed session, or nil for a guest.
func CurrentUser(c echo.Context) *model.UserToken {
    if tok, ok := c.Get(sessionKey).(*model.UserToken); ok {
        return tok
    }
    return nil
}

// unescapeCookie reverses the URL-escaping applied when the JSON payload
// was stored.  Cookie values cannot carry bare quotes or semicolons.
func unescapeCookie(v string) (string, error) {
    return url.QueryUnescape(v)
}

// clearCookie expires the session cookie with the same attributes it was
// set with.
func clearCookie(c echo.Context, name string) {
    c.SetCookie(&http.Cookie{
        Name:     name,
        Value:    "",
        Path:     "/",
        MaxAge:   -1,
        HttpOnly: true,
        Secure:   true,
        SameSite: http.SameSiteStrictMode,
    })
}

// currentUserID is the identity the rate limiter keys on: the signed-in
// user's id, or "guest".
func currentUserID(c echo.Context) string {
    if tok := CurrentUser(c); tok != nil && tok.User.ID != 0 {
        return strconv.FormatUint(tok.User.ID, 10)
    }
    return "guest"
}
