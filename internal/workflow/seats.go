// Package workflow implements the two interactive flows of the front end:
// seat selection with booking submission, and scanned-code validation.
// Both are thin client workflows — the booking platform owns all state and
// rejects conflicting requests; the workflows here track per-page-view
// selection overlays and translate user actions into single API calls.
package workflow

import (
    "context"
    "errors"
    "net/url"
    "strconv"

    "github.com/go-playground/validator/v10"

    "github.com/iliyamo/cinema-booking-web/internal/apiclient"
    "github.com/iliyamo/cinema-booking-web/internal/model"
)

// ErrLoginRequired is returned when a booking is submitted without a
// session.  It fires before any network call; the server would reject the
// request anyway, but the user should see the prompt instantly.
var ErrLoginRequired = errors.New("Please login first")

// ErrInvalidCustomer is returned when the walk-in customer fields fail
// validation before any network call.
var ErrInvalidCustomer = errors.New("Please fill all fields.")

var validate = validator.New()

// SeatSelection is the seat-picking state for one studio and one page
// view.  Seats carry a server-truth availability flag and a local overlay;
// the overlay is discarded on navigation, nothing is cached.
//
// The overlay is seeded to true for every seat regardless of server truth.
// That makes the selected-for-booking set (seats whose flags diverge)
// start out as exactly the seats the server reported taken, and the
// flip-when-equal click guard makes those seats absorb clicks forever
// while free seats toggle between picked and unpicked.  The flag pair is
// the long-standing observable contract of this flow and is reproduced
// here bit for bit; Seat.Status exposes the readable three-state view of
// the same information.
type SeatSelection struct {
    StudioID     string
    Seats        []model.Seat
    Loading      bool
    ErrorMessage string

    api *apiclient.Client
}

// NewSeatSelection builds an empty selection for one studio.
func NewSeatSelection(api *apiclient.Client, studioID string) *SeatSelection {
    return &SeatSelection{StudioID: studioID, api: api}
}

// Load fetches the studio's seats and seeds the selection overlay.  Every
// seat gets is_available_local = true, independent of what the server
// said.
func (s *SeatSelection) Load(ctx context.Context) error {
    seats, err := s.api.Seats(ctx, s.StudioID)
    if err != nil {
        return err
    }
    for i := range seats {
        seats[i].IsAvailableLocal = true
    }
    s.Seats = seats
    return nil
}

// Click toggles the seat with the given id.  Both flags flip together, and
// only when they currently agree; a seat whose flags diverge is a no-op.
// Unknown ids are ignored.
func (s *SeatSelection) Click(seatID uint64) {
    for i := range s.Seats {
        if s.Seats[i].ID != seatID {
            continue
        }
        if s.Seats[i].IsAvailable == s.Seats[i].IsAvailableLocal {
            s.Seats[i].IsAvailable = !s.Seats[i].IsAvailable
            s.Seats[i].IsAvailableLocal = !s.Seats[i].IsAvailableLocal
        }
        return
    }
}

// SelectedSeatIDs returns the ids of every seat whose two flags diverge —
// the set a submitted booking carries, whatever sequence of clicks led
// here.
func (s *SeatSelection) SelectedSeatIDs() []uint64 {
    ids := make([]uint64, 0, len(s.Seats))
    for _, seat := range s.Seats {
        if seat.IsAvailable != seat.IsAvailableLocal {
            ids = append(ids, seat.ID)
        }
    }
    return ids
}

// SelectedSeatNumbers returns the seat labels of the selected set, for the
// summary line under the grid.
func (s *SeatSelection) SelectedSeatNumbers() []string {
    nums := make([]string, 0, len(s.Seats))
    for _, seat := range s.Seats {
        if seat.IsAvailable != seat.IsAvailableLocal {
            nums = append(nums, seat.SeatNumber)
        }
    }
    return nums
}

// payload assembles the booking submission from the current selection.
func (s *SeatSelection) payload() model.Booking {
    id, _ := strconv.ParseUint(s.StudioID, 10, 64) // route param; 0 on garbage, server rejects
    return model.Booking{StudioID: id, SeatIDs: s.SelectedSeatIDs()}
}

// SubmitOnline books the selected seats against the signed-in user's
// account.  Returns the path to redirect to on success.  Without a session
// it aborts before any network call.
func (s *SeatSelection) SubmitOnline(ctx context.Context, token *model.UserToken) (string, error) {
    if token == nil || token.Token == "" {
        return "", ErrLoginRequired
    }
    s.Loading = true
    s.ErrorMessage = ""

    if _, err := s.api.BookingOnline(ctx, s.payload(), token.Token); err != nil {
        return "", s.fail(ctx, err)
    }
    s.Loading = false
    return "/my-bookings", nil
}

// offlineCustomer carries the walk-in form fields through validation.
type offlineCustomer struct {
    Name  string `validate:"required"`
    Email string `validate:"required,email"`
}

// SubmitOffline books the selected seats for a walk-in customer.  The
// name/email pair is validated locally before any network call; on
// success the returned path carries the booking's QR payload URL-encoded
// for the confirmation page.
func (s *SeatSelection) SubmitOffline(ctx context.Context, token *model.UserToken, customerName, customerEmail string) (string, error) {
    if token == nil || token.Token == "" {
        return "", ErrLoginRequired
    }
    if err := validate.Struct(offlineCustomer{Name: customerName, Email: customerEmail}); err != nil {
        s.ErrorMessage = ErrInvalidCustomer.Error()
        return "", ErrInvalidCustomer
    }
    s.Loading = true
    s.ErrorMessage = ""

    payload := s.payload()
    payload.CustomerName = customerName
    payload.CustomerEmail = customerEmail

    res, err := s.api.BookingOffline(ctx, payload, token.Token)
    if err != nil {
        return "", s.fail(ctx, err)
    }
    s.Loading = false
    return "/booking-offline?qr=" + url.QueryEscape(res.QRCode), nil
}

// fail records a submission failure.  The seats-taken conflict triggers a
// full seat-list refresh so the user re-picks against current
// availability; everything else just lands in ErrorMessage.  The loading
// flag is cleared on every failure path.
func (s *SeatSelection) fail(ctx context.Context, err error) error {
    s.Loading = false
    s.ErrorMessage = err.Error()
    if errors.Is(err, apiclient.ErrSeatsUnavailable) {
        if lerr := s.Load(ctx); lerr != nil {
            s.ErrorMessage = lerr.Error()
        }
    }
    return err
}
