package router // package router defines how HTTP routes are registered for the web app

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/cinema-booking-web/internal/handler"
)

// RegisterRoutes registers routes that carry no page or form logic.
// Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterPages maps the navigation surface: every view a visitor can
// reach by plain hyperlink.  Pages render per request; only the JSON
// reference proxies sit behind the response cache (see RegisterReference)
// since page HTML varies with the session header.
func RegisterPages(e *echo.Echo, p *handler.PageHandler) {
    e.GET("/", p.Home)
    e.GET("/sign-in", p.SignIn)
    e.GET("/sign-up", p.SignUp)
    e.GET("/studios/:id/seats", p.SeatsPage)
    e.GET("/my-bookings", p.MyBookings)
    e.GET("/booking-offline", p.OfflineConfirmation)
    e.GET("/validate", p.ValidatePage)
}

// RegisterAuth maps the sign-in/sign-up form posts, the JSON session
// endpoint and logout.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler) {
    e.POST("/sign-in", a.Login)
    e.POST("/sign-up", a.Register)
    e.POST("/session", a.SetSession)
    e.GET("/logout", a.Logout)
}

// RegisterBooking maps the seat-selection submission and the local QR
// renderer.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler) {
    e.POST("/studios/:id/book", b.Submit)
    e.GET("/bookings/:code/qr.png", b.QRCodePNG)
}

// RegisterValidate maps the scan endpoint.  The rate limiter guards it:
// the endpoint is public and cameras fire continuously.
func RegisterValidate(e *echo.Echo, v *handler.ValidateHandler, ratelimit echo.MiddlewareFunc) {
    e.POST("/validate/scan", v.Scan, ratelimit)
}

// RegisterReference maps the same-origin JSON reference proxies behind
// the page cache.
func RegisterReference(e *echo.Echo, r *handler.ReferenceHandler, cache echo.MiddlewareFunc) {
    e.GET("/api/studios", r.Studios, cache)
    e.GET("/api/studios/:id/seats", r.Seats, cache)
}
