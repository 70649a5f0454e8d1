package model

import "time"

// Booking is the submission payload for both booking variants.  The
// customer fields ride along only for the offline (walk-in) variant.
// seatIds being non-empty is not enforced here; the server rejects empty
// bookings on its own.
type Booking struct {
    StudioID      uint64   `json:"studioId"`
    SeatIDs       []uint64 `json:"seatIds"`
    CustomerName  string   `json:"customerName,omitempty"`
    CustomerEmail string   `json:"customerEmail,omitempty"`
}

// BookingDetail is the booking read model the server returns.  QRCode is a
// data URI holding the rendered code image.
type BookingDetail struct {
    ID          uint64    `json:"id"`
    BookingCode string    `json:"booking_code"`
    UserID      *uint64   `json:"user_id"`
    UserName    string    `json:"user_name"`
    UserEmail   string    `json:"user_email"`
    StudioID    uint64    `json:"studio_id"`
    SeatIDs     []uint64  `json:"seat_ids"`
    QRCode      string    `json:"qr_code"`
    BookingType string    `json:"booking_type"`
    Status      string    `json:"status"`
    CreatedAt   time.Time `json:"created_at"`
}

// BookingResult is the creation response envelope: the stored booking plus
// a top-level qrCode the confirmation redirect carries as a query
// parameter.
type BookingResult struct {
    Booking BookingDetail `json:"booking"`
    QRCode  string        `json:"qrCode"`
}

// ValidatedBooking is the booking summary inside a validation response.
// Field names are camelCase on this endpoint, unlike the read model above.
type ValidatedBooking struct {
    BookingCode  string   `json:"bookingCode"`
    StudioID     uint64   `json:"studioId"`
    SeatIDs      []uint64 `json:"seatIds"`
    CustomerName string   `json:"customerName"`
    BookingType  string   `json:"bookingType"`
}

// ValidationResult is the response to validating a scanned booking code.
type ValidationResult struct {
    Valid   bool             `json:"valid"`
    Booking ValidatedBooking `json:"booking"`
}

// ScanPayload is the JSON a booking QR image encodes.  The scanner page
// posts the raw decoded text and only bookingCode is consumed.
type ScanPayload struct {
    BookingCode string `json:"bookingCode"`
}
