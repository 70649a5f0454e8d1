package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/cinema-booking-web/internal/apiclient"
)

// ReferenceHandler proxies the read-only reference data as same-origin
// JSON for the page scripts (seat-availability refresh).  These routes sit
// behind the Redis page cache, which is the point: browser polling lands
// here instead of on the booking platform.
type ReferenceHandler struct {
    API *apiclient.Client
}

func NewReferenceHandler(api *apiclient.Client) *ReferenceHandler {
    return &ReferenceHandler{API: api}
}

// Studios returns the studio list.
func (h *ReferenceHandler) Studios(c echo.Context) error {
    studios, err := h.API.Studios(c.Request().Context())
    if err != nil {
        c.Logger().Errorf("reference: studios: %v", err)
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "upstream unavailable"})
    }
    return c.JSON(http.StatusOK, studios)
}

// Seats returns one studio's seats with availability at fetch time.
func (h *ReferenceHandler) Seats(c echo.Context) error {
    seats, err := h.API.Seats(c.Request().Context(), c.Param("id"))
    if err != nil {
        c.Logger().Errorf("reference: seats %s: %v", c.Param("id"), err)
        return c.JSON(http.StatusBadGateway, echo.Map{"error": "upstream unavailable"})
    }
    return c.JSON(http.StatusOK, seats)
}
