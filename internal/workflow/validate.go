package workflow

import (
    "context"
    "encoding/json"
    "errors"
    "sync"
    "time"

    "github.com/google/uuid"

    "github.com/iliyamo/cinema-booking-web/internal/apiclient"
    "github.com/iliyamo/cinema-booking-web/internal/model"
    "github.com/iliyamo/cinema-booking-web/internal/queue"
)

// ErrEmptyScan marks a scan frame with no payload.  Cameras fire
// continuously; empty frames are expected and callers just drop them.
var ErrEmptyScan = errors.New("empty scan")

// ErrDuplicateScan marks a booking code that was already submitted within
// the de-dup window.  The same QR stays in front of the camera for many
// frames; only the first one should reach the API.
var ErrDuplicateScan = errors.New("duplicate scan")

// PublishFunc publishes a gate-scan audit event.  Failures are the
// publisher's to log; the validation result does not depend on it.
type PublishFunc func(ctx context.Context, event queue.TicketValidatedEvent) error

// Validator consumes scanned QR payloads and submits the embedded booking
// code for validation.  Submitted codes are remembered for a TTL so a code
// held in front of the camera is validated once, not once per frame.
type Validator struct {
    api     *apiclient.Client
    publish PublishFunc
    ttl     time.Duration
    now     func() time.Time

    mu   sync.Mutex
    seen map[string]time.Time
}

// NewValidator builds a Validator.  publish may be nil when no broker is
// configured.
func NewValidator(api *apiclient.Client, publish PublishFunc, dedupTTL time.Duration) *Validator {
    return &Validator{
        api:     api,
        publish: publish,
        ttl:     dedupTTL,
        now:     time.Now,
        seen:    make(map[string]time.Time),
    }
}

// HandleScan processes one raw scan payload.  The payload is the decoded
// QR text: JSON carrying a bookingCode.  A missing code is submitted as
// the empty string and left for the API to reject, same as the original
// page did.  Returns ErrEmptyScan / ErrDuplicateScan for frames to drop
// silently; any other error is a scanner or API failure the caller logs
// without surfacing.
func (v *Validator) HandleScan(ctx context.Context, raw string) (*model.ValidationResult, error) {
    if raw == "" {
        return nil, ErrEmptyScan
    }
    var payload model.ScanPayload
    if err := json.Unmarshal([]byte(raw), &payload); err != nil {
        return nil, err
    }
    if !v.admit(payload.BookingCode) {
        return nil, ErrDuplicateScan
    }

    res, err := v.api.Validate(ctx, payload.BookingCode)
    if err != nil {
        // Let the code through again; the failure may have been transient
        // and the visitor is still standing at the gate.
        v.forget(payload.BookingCode)
        return nil, err
    }

    if v.publish != nil {
        // Best effort; the publisher logs its own failures.
        _ = v.publish(ctx, queue.TicketValidatedEvent{
            EventID:      uuid.New().String(),
            BookingCode:  res.Booking.BookingCode,
            StudioID:     res.Booking.StudioID,
            SeatIDs:      res.Booking.SeatIDs,
            CustomerName: res.Booking.CustomerName,
            BookingType:  res.Booking.BookingType,
            Valid:        res.Valid,
            ScannedAt:    v.now().UTC().Format(time.RFC3339),
        })
    }
    return res, nil
}

// admit records the code and reports whether it should be submitted.
// Expired entries are pruned on the way through.
func (v *Validator) admit(code string) bool {
    v.mu.Lock()
    defer v.mu.Unlock()
    now := v.now()
    for c, t := range v.seen {
        if now.Sub(t) > v.ttl {
            delete(v.seen, c)
        }
    }
    if t, ok := v.seen[code]; ok && now.Sub(t) <= v.ttl {
        return false
    }
    v.seen[code] = now
    return true
}

func (v *Validator) forget(code string) {
    v.mu.Lock()
    delete(v.seen, code)
    v.mu.Unlock()
}
