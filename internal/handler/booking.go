package handler

import (
    "encoding/json"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"
    qrcode "github.com/skip2/go-qrcode"

    "github.com/iliyamo/cinema-booking-web/internal/apiclient"
    "github.com/iliyamo/cinema-booking-web/internal/middleware"
    "github.com/iliyamo/cinema-booking-web/internal/model"
    "github.com/iliyamo/cinema-booking-web/internal/workflow"
)

// BookingHandler accepts the seat-selection form and renders booking
// barcodes.
type BookingHandler struct {
    API *apiclient.Client
}

func NewBookingHandler(api *apiclient.Client) *BookingHandler {
    return &BookingHandler{API: api}
}

// Submit handles the seat-selection form for both booking variants.  The
// form carries the clicked seat ids; the selection is rebuilt by loading
// current availability and replaying the clicks, so the toggle guard
// applies against fresh server truth.  Success redirects; any failure
// re-renders the page with the selection and error message, leaving the
// browser where it was.
func (h *BookingHandler) Submit(c echo.Context) error {
    sel := workflow.NewSeatSelection(h.API, c.Param("id"))
    if err := sel.Load(c.Request().Context()); err != nil {
        c.Logger().Errorf("booking: load studio %s: %v", sel.StudioID, err)
        sel.ErrorMessage = "Could not load seats."
        return c.Render(http.StatusOK, "seats.html", seatsPageData(c, sel))
    }

    form, err := c.FormParams()
    if err != nil {
        sel.ErrorMessage = "Invalid form submission."
        return c.Render(http.StatusOK, "seats.html", seatsPageData(c, sel))
    }
    for _, v := range form["seat"] {
        if id, err := strconv.ParseUint(v, 10, 64); err == nil {
            sel.Click(id)
        }
    }

    tok := middleware.CurrentUser(c)
    var redirectTo string
    if c.FormValue("mode") == "offline" {
        redirectTo, err = sel.SubmitOffline(c.Request().Context(), tok, c.FormValue("name"), c.FormValue("email"))
    } else {
        redirectTo, err = sel.SubmitOnline(c.Request().Context(), tok)
    }
    if err != nil {
        c.Logger().Infof("booking: submit studio %s: %v", sel.StudioID, err)
        data := seatsPageData(c, sel)
        if data.ErrorMessage == "" {
            data.ErrorMessage = err.Error()
        }
        return c.Render(http.StatusOK, "seats.html", data)
    }
    return c.Redirect(http.StatusSeeOther, redirectTo)
}

// QRCodePNG renders a booking code as a QR image.  The encoded payload is
// the same JSON envelope the booking service embeds in its QR data URIs,
// so codes drawn here scan identically at the gate.
func (h *BookingHandler) QRCodePNG(c echo.Context) error {
    code := c.Param("code")
    if code == "" {
        return c.NoContent(http.StatusNotFound)
    }
    payload, err := json.Marshal(model.ScanPayload{BookingCode: code})
    if err != nil {
        return c.NoContent(http.StatusInternalServerError)
    }
    png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
    if err != nil {
        c.Logger().Errorf("qr: encode %s: %v", code, err)
        return c.NoContent(http.StatusInternalServerError)
    }
    return c.Blob(http.StatusOK, "image/png", png)
}
