package apiclient

import (
    "context"
    "net/http"

    "github.com/iliyamo/cinema-booking-web/internal/endpoint"
    "github.com/iliyamo/cinema-booking-web/internal/model"
)

// Studios lists all studios.  Resolved gateway-internal: the home page
// fetches this server-side and should not round-trip through the public
// edge.
func (c *Client) Studios(ctx context.Context) ([]model.Studio, error) {
    var studios []model.Studio
    if err := c.do(ctx, http.MethodGet, c.reg.Studios(endpoint.GatewayInternal), "", nil, &studios, false); err != nil {
        return nil, err
    }
    return studios, nil
}

// Seats lists the seats of one studio with their availability at fetch
// time.
func (c *Client) Seats(ctx context.Context, studioID string) ([]model.Seat, error) {
    var seats []model.Seat
    if err := c.do(ctx, http.MethodGet, c.reg.Seats(endpoint.Direct, studioID), "", nil, &seats, false); err != nil {
        return nil, err
    }
    return seats, nil
}
