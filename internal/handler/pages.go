// Package handler implements the HTTP surface: page rendering, form
// submissions and the small JSON endpoints the pages call back into.
// Handlers bundle their dependencies in structs and translate workflow
// results into renders and redirects; business rules live in the workflow
// and apiclient packages.
package handler

import (
    "html/template"
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/cinema-booking-web/internal/apiclient"
    "github.com/iliyamo/cinema-booking-web/internal/middleware"
    "github.com/iliyamo/cinema-booking-web/internal/model"
    "github.com/iliyamo/cinema-booking-web/internal/workflow"
)

// PageHandler renders the read-only pages.
type PageHandler struct {
    API *apiclient.Client
}

func NewPageHandler(api *apiclient.Client) *PageHandler {
    return &PageHandler{API: api}
}

// ----- template data -----

// HeaderData feeds the shared header partial.
type HeaderData struct {
    SignedIn bool
}

func headerData(c echo.Context) HeaderData {
    return HeaderData{SignedIn: middleware.CurrentUser(c) != nil}
}

type homeData struct {
    Header       HeaderData
    Studios      []model.Studio
    ErrorMessage string
}

type signinData struct {
    Header       HeaderData
    Email        string
    ErrorMessage string
}

type signupData struct {
    Header       HeaderData
    Name         string
    Email        string
    ErrorMessage string
}

type seatView struct {
    ID      uint64
    Label   string
    Checked bool
    Taken   bool
    Class   string
}

type seatsData struct {
    Header          HeaderData
    StudioID        string
    Seats           []seatView
    SelectedSummary string
    ErrorMessage    string
}

type bookingView struct {
    QRSrc    template.URL // may be a data URI, which the URL filter would reject
    StudioID uint64
    Status   string
}

type bookingsData struct {
    Header       HeaderData
    Bookings     []bookingView
    ErrorMessage string
}

type offlineData struct {
    Header HeaderData
    QR     template.URL
}

type validateData struct {
    Header       HeaderData
    Result       *model.ValidationResult
    ErrorMessage string
}

// seatsPageData projects a selection into the template view.  The summary
// line lists the labels of the selected set, comma separated, like the
// original grid footer.
func seatsPageData(c echo.Context, sel *workflow.SeatSelection) seatsData {
    views := make([]seatView, 0, len(sel.Seats))
    for _, s := range sel.Seats {
        v := seatView{ID: s.ID, Label: s.SeatNumber}
        switch s.Status() {
        case model.SeatSelected:
            v.Checked = true
            v.Class = "selected"
        case model.SeatUnavailable:
            v.Taken = true
            v.Class = "taken"
        }
        views = append(views, v)
    }
    return seatsData{
        Header:          headerData(c),
        StudioID:        sel.StudioID,
        Seats:           views,
        SelectedSummary: strings.Join(sel.SelectedSeatNumbers(), ", "),
        ErrorMessage:    sel.ErrorMessage,
    }
}

// ----- pages -----

// Home lists the studios as tiles.
func (h *PageHandler) Home(c echo.Context) error {
    data := homeData{Header: headerData(c)}
    studios, err := h.API.Studios(c.Request().Context())
    if err != nil {
        c.Logger().Errorf("home: list studios: %v", err)
        data.ErrorMessage = "Could not load studios."
        return c.Render(http.StatusOK, "home.html", data)
    }
    data.Studios = studios
    return c.Render(http.StatusOK, "home.html", data)
}

// SignIn renders the empty sign-in form.
func (h *PageHandler) SignIn(c echo.Context) error {
    return c.Render(http.StatusOK, "signin.html", signinData{Header: headerData(c)})
}

// SignUp renders the empty registration form.
func (h *PageHandler) SignUp(c echo.Context) error {
    return c.Render(http.StatusOK, "signup.html", signupData{Header: headerData(c)})
}

// SeatsPage loads the seat grid for one studio and renders the selection
// form.  The overlay is seeded fresh on every view; nothing survives
// navigation.
func (h *PageHandler) SeatsPage(c echo.Context) error {
    sel := workflow.NewSeatSelection(h.API, c.Param("id"))
    if err := sel.Load(c.Request().Context()); err != nil {
        c.Logger().Errorf("seats: load studio %s: %v", sel.StudioID, err)
        sel.ErrorMessage = "Could not load seats."
    }
    return c.Render(http.StatusOK, "seats.html", seatsPageData(c, sel))
}

// MyBookings lists the signed-in user's bookings as QR barcodes.  Guests
// are sent to the sign-in page.
func (h *PageHandler) MyBookings(c echo.Context) error {
    tok := middleware.CurrentUser(c)
    if tok == nil {
        return c.Redirect(http.StatusSeeOther, "/sign-in")
    }
    data := bookingsData{Header: headerData(c)}
    bookings, err := h.API.MyBookings(c.Request().Context(), tok.Token)
    if err != nil {
        c.Logger().Errorf("my-bookings: %v", err)
        data.ErrorMessage = "Could not load bookings."
        return c.Render(http.StatusOK, "bookings.html", data)
    }
    for _, b := range bookings {
        src := b.QRCode
        if src == "" {
            // Older bookings predate server-side QR rendering; draw the
            // code locally from the booking code instead.
            src = "/bookings/" + b.BookingCode + "/qr.png"
        }
        data.Bookings = append(data.Bookings, bookingView{
            QRSrc:    template.URL(src),
            StudioID: b.StudioID,
            Status:   b.Status,
        })
    }
    return c.Render(http.StatusOK, "bookings.html", data)
}

// OfflineConfirmation shows the barcode of a just-created walk-in booking.
// The QR payload arrives URL-encoded in the query string; Echo has already
// decoded it here.
func (h *PageHandler) OfflineConfirmation(c echo.Context) error {
    return c.Render(http.StatusOK, "offline.html", offlineData{
        Header: headerData(c),
        QR:     template.URL(c.QueryParam("qr")),
    })
}

// ValidatePage renders the scanner page.
func (h *PageHandler) ValidatePage(c echo.Context) error {
    return c.Render(http.StatusOK, "validate.html", validateData{Header: headerData(c)})
}
