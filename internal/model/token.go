package model

import (
    "encoding/json"
    "fmt"
    "time"

    "github.com/golang-jwt/jwt/v5"
)

// MalformedTokenError reports a session payload that could not be decoded
// into a UserToken.  Callers treat the holder as a guest but may want to
// log the cause or clear the cookie that carried the payload.
type MalformedTokenError struct {
    cause error
}

func (e *MalformedTokenError) Error() string {
    return fmt.Sprintf("malformed session token: %v", e.cause)
}

func (e *MalformedTokenError) Unwrap() error { return e.cause }

// ParseUserToken decodes the JSON session payload into a UserToken.  An
// empty payload means no session and yields (nil, nil): absence of a token
// is a guest, not an error.  Invalid JSON yields a *MalformedTokenError.
func ParseUserToken(raw string) (*UserToken, error) {
    if raw == "" {
        return nil, nil
    }
    var tok UserToken
    if err := json.Unmarshal([]byte(raw), &tok); err != nil {
        return nil, &MalformedTokenError{cause: err}
    }
    return &tok, nil
}

// Expired reports whether the bearer token carries an exp claim in the
// past.  The token is an HS256 JWT issued by the auth service; the signing
// secret stays there, so the claims are read without signature
// verification.  This is only an early-out so the UI can degrade to guest
// instead of issuing API calls that will come back 401 — the API remains
// the authority on token validity.  Tokens that do not parse as JWTs or
// carry no exp claim are treated as unexpired.
func (t *UserToken) Expired() bool {
    if t == nil || t.Token == "" {
        return false
    }
    var claims jwt.MapClaims = map[string]interface{}{}
    if _, _, err := jwt.NewParser().ParseUnverified(t.Token, claims); err != nil {
        return false
    }
    exp, err := claims.GetExpirationTime()
    if err != nil || exp == nil {
        return false
    }
    return exp.Before(time.Now())
}
