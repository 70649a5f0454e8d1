package apiclient

import (
    "context"
    "net/http"

    "github.com/iliyamo/cinema-booking-web/internal/endpoint"
    "github.com/iliyamo/cinema-booking-web/internal/model"
)

// BookingOnline creates a booking billed to the signed-in user.
func (c *Client) BookingOnline(ctx context.Context, payload model.Booking, bearer string) (*model.BookingResult, error) {
    var res model.BookingResult
    if err := c.do(ctx, http.MethodPost, c.reg.BookingOnline(endpoint.Direct), bearer, payload, &res, false); err != nil {
        return nil, err
    }
    return &res, nil
}

// BookingOffline creates a walk-in booking carrying the customer's name
// and email instead of a session.
func (c *Client) BookingOffline(ctx context.Context, payload model.Booking, bearer string) (*model.BookingResult, error) {
    var res model.BookingResult
    if err := c.do(ctx, http.MethodPost, c.reg.BookingOffline(endpoint.Direct), bearer, payload, &res, false); err != nil {
        return nil, err
    }
    return &res, nil
}

// MyBookings lists the signed-in user's bookings.  Resolved
// gateway-internal like the studio listing.
func (c *Client) MyBookings(ctx context.Context, bearer string) ([]model.BookingDetail, error) {
    var bookings []model.BookingDetail
    if err := c.do(ctx, http.MethodGet, c.reg.MyBookings(endpoint.GatewayInternal), bearer, nil, &bookings, false); err != nil {
        return nil, err
    }
    return bookings, nil
}

// Validate submits a scanned booking code for validation.
func (c *Client) Validate(ctx context.Context, bookingCode string) (*model.ValidationResult, error) {
    var res model.ValidationResult
    payload := model.ScanPayload{BookingCode: bookingCode}
    if err := c.do(ctx, http.MethodPost, c.reg.BookingValidate(endpoint.Direct), "", payload, &res, false); err != nil {
        return nil, err
    }
    return &res, nil
}
