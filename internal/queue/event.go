// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketValidatedEvent is published after a scanned booking code has been
// submitted for validation.  It gives the cinema's ops tooling an audit
// trail of gate scans without querying the booking service.
type TicketValidatedEvent struct {
    EventID      string   `json:"event_id"`
    BookingCode  string   `json:"booking_code"`
    StudioID     uint64   `json:"studio_id"`
    SeatIDs      []uint64 `json:"seat_ids"`
    CustomerName string   `json:"customer_name"`
    BookingType  string   `json:"booking_type"`
    Valid        bool     `json:"valid"`
    ScannedAt    string   `json:"scanned_at"`
}
