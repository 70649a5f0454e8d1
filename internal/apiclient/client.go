// Package apiclient wraps the external booking platform's HTTP API.  Every
// operation is a single attempt: no retry, no backoff, no client-side
// timeout beyond whatever deadline the caller's context carries.  The
// server is the sole authority on seat inventory and auth; this client
// only marshals requests and surfaces non-2xx responses as errors.
package apiclient

import (
    "bytes"
    "context"
    "encoding/json"
    "io"
    "net/http"
    "strings"

    "github.com/iliyamo/cinema-booking-web/internal/endpoint"
)

// seatsUnavailableMessage is the literal error message the cinema service
// produces when a booking names seats someone else already took.  Matching
// it lets callers refresh stale seat lists instead of showing a generic
// failure.
const seatsUnavailableMessage = "some seats are not available"

// Client performs JSON calls against the booking platform.  URLs come from
// the endpoint registry; which base-URL variant each operation uses is
// fixed at the call site.
type Client struct {
    http *http.Client
    reg  *endpoint.Registry
}

// New builds a Client around the given registry.  The underlying
// http.Client deliberately sets no timeout — a hung request is bounded
// only by the caller's context, matching the platform's one-attempt
// contract.
func New(reg *endpoint.Registry) *Client {
    return &Client{http: &http.Client{}, reg: reg}
}

// do issues one JSON request.  A bearer token is attached when non-empty.
// On 2xx the body is decoded into out (when out is non-nil).  On any other
// status the body is inspected for the seats-taken conflict, then
// discarded in favor of a RequestError carrying the status text; when
// parseBodyError is set the server's own {error} message is preferred,
// which the registration endpoint relies on.
func (c *Client) do(ctx context.Context, method, url, bearer string, payload, out interface{}, parseBodyError bool) error {
    var body io.Reader
    if payload != nil {
        b, err := json.Marshal(payload)
        if err != nil {
            return err
        }
        body = bytes.NewReader(b)
    }
    req, err := http.NewRequestWithContext(ctx, method, url, body)
    if err != nil {
        return err
    }
    req.Header.Set("Content-Type", "application/json")
    if bearer != "" {
        req.Header.Set("Authorization", "Bearer "+bearer)
    }

    resp, err := c.http.Do(req)
    if err != nil {
        return err
    }
    defer resp.Body.Close()

    if resp.StatusCode < 200 || resp.StatusCode > 299 {
        raw, _ := io.ReadAll(resp.Body)
        var errBody struct {
            Error string `json:"error"`
        }
        _ = json.Unmarshal(raw, &errBody)
        if strings.Contains(errBody.Error, seatsUnavailableMessage) || strings.Contains(string(raw), seatsUnavailableMessage) {
            return ErrSeatsUnavailable
        }
        msg := http.StatusText(resp.StatusCode)
        if parseBodyError && errBody.Error != "" {
            msg = errBody.Error
        }
        return &RequestError{Status: resp.StatusCode, Message: msg}
    }

    if out == nil {
        return nil
    }
    return json.NewDecoder(resp.Body).Decode(out)
}
