package apiclient

import (
    "errors"
    "fmt"
)

// ErrSeatsUnavailable is returned when a booking submission fails because
// one or more of the requested seats were taken between the page load and
// the submit.  Callers must refresh the seat list rather than present this
// as a generic failure.
var ErrSeatsUnavailable = errors.New(seatsUnavailableMessage)

// RequestError is the generic failure for a non-2xx API response.  Message
// is the HTTP status text for most operations; registration substitutes
// the server-supplied error message when one is present.
type RequestError struct {
    Status  int
    Message string
}

func (e *RequestError) Error() string {
    return fmt.Sprintf("api request failed: %d %s", e.Status, e.Message)
}
