package apiclient

import (
    "context"
    "net/http"

    "github.com/iliyamo/cinema-booking-web/internal/endpoint"
    "github.com/iliyamo/cinema-booking-web/internal/model"
)

// Register creates an account.  The endpoint answers validation failures
// with an {error} body, so that message is surfaced instead of the bare
// status text.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) error {
    return c.do(ctx, http.MethodPost, c.reg.Register(endpoint.Direct), "", req, nil, true)
}

// Login exchanges credentials for a UserToken.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.UserToken, error) {
    var tok model.UserToken
    if err := c.do(ctx, http.MethodPost, c.reg.Login(endpoint.Direct), "", req, &tok, false); err != nil {
        return nil, err
    }
    return &tok, nil
}
