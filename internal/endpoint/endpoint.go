// Package endpoint maps logical API operations to concrete URLs.  The
// booking platform is reachable through two base URLs: the browser-facing
// gateway address and, when the service runs inside the deployment network,
// an internal gateway address that skips the public edge.  Which variant a
// call site uses is a static decision made where the call is written, not a
// runtime policy.
package endpoint

import "fmt"

// Variant selects which configured base URL an operation resolves against.
type Variant int

const (
    // Direct resolves against the browser-facing gateway URL.
    Direct Variant = iota
    // GatewayInternal resolves against the in-network gateway URL.  Used
    // for server-to-server fetches (reference data, booking listings) so
    // they do not round-trip through the public edge.
    GatewayInternal
)

// Registry holds the two configured base URLs and builds request URLs for
// every operation the front end performs.  Base URLs are taken as-is; a
// misconfigured value surfaces only as failed requests downstream.
type Registry struct {
    direct   string
    internal string
}

// NewRegistry builds a Registry from the two base URLs.  The internal URL
// may equal the direct one in single-network deployments.
func NewRegistry(direct, internal string) *Registry {
    return &Registry{direct: direct, internal: internal}
}

func (r *Registry) base(v Variant) string {
    if v == GatewayInternal {
        return r.internal
    }
    return r.direct
}

// Studios returns the URL listing all studios.
func (r *Registry) Studios(v Variant) string {
    return r.base(v) + "/cinema/studios"
}

// Seats returns the URL listing the seats of one studio.
func (r *Registry) Seats(v Variant, studioID string) string {
    return fmt.Sprintf("%s/cinema/studios/%s/seats", r.base(v), studioID)
}

// Register returns the account-registration URL.
func (r *Registry) Register(v Variant) string {
    return r.base(v) + "/auth/register"
}

// Login returns the login URL.
func (r *Registry) Login(v Variant) string {
    return r.base(v) + "/auth/login"
}

// BookingOnline returns the URL creating a booking for the signed-in user.
func (r *Registry) BookingOnline(v Variant) string {
    return r.base(v) + "/booking/online"
}

// BookingOffline returns the URL creating a walk-in booking.
func (r *Registry) BookingOffline(v Variant) string {
    return r.base(v) + "/booking/offline"
}

// BookingValidate returns the URL validating a scanned booking code.
func (r *Registry) BookingValidate(v Variant) string {
    return r.base(v) + "/booking/validate"
}

// MyBookings returns the URL listing the current user's bookings.
func (r *Registry) MyBookings(v Variant) string {
    return r.base(v) + "/booking/my-bookings"
}
