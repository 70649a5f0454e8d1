package model

import "time"

// Studio is a cinema auditorium with a fixed seat layout.  Reference data,
// read-only from this service's point of view.
type Studio struct {
    ID         uint64    `json:"id"`
    Name       string    `json:"name"`
    TotalSeats int       `json:"total_seats"`
    CreatedAt  time.Time `json:"created_at"`
    UpdatedAt  time.Time `json:"updated_at"`
}

// SeatStatus is the three-state view of a seat during selection, derived
// from the availability flag pair.  Making the states explicit keeps the
// toggle rules visible instead of burying them in flag comparisons.
type SeatStatus int

const (
    // SeatAvailable: both flags agree and the seat is free; a click
    // selects it.
    SeatAvailable SeatStatus = iota
    // SeatSelected: both flags agree and were flipped by a click; another
    // click returns the seat to SeatAvailable.
    SeatSelected
    // SeatUnavailable: the flags diverge — the server reported the seat
    // taken before the overlay was seeded.  Clicks are absorbed; the seat
    // can never be toggled in this page view.
    SeatUnavailable
)

// Seat is one seat row as the cinema service returns it, plus the
// client-only selection overlay.  IsAvailable is server truth at fetch
// time; IsAvailableLocal is the overlay this service maintains per page
// view and never sends back.
type Seat struct {
    ID               uint64  `json:"id"`
    StudioID         uint64  `json:"studio_id"`
    SeatNumber       string  `json:"seat_number"`
    IsAvailable      bool    `json:"is_available"`
    IsAvailableLocal bool    `json:"-"`
    Studio           *Studio `json:"studio,omitempty"`
}

// Status derives the three-state view from the flag pair.  Divergent flags
// mean the seat was taken when the overlay was seeded; agreeing flags are
// either untouched (true) or click-selected (false).
func (s Seat) Status() SeatStatus {
    if s.IsAvailable != s.IsAvailableLocal {
        return SeatUnavailable
    }
    if s.IsAvailable {
        return SeatAvailable
    }
    return SeatSelected
}
