package model

import "time"

// User mirrors the account record the auth service returns on login and
// registration.  Timestamps are RFC3339 strings on the wire and decode
// into time.Time here.
type User struct {
    ID        uint64    `json:"id"`
    Email     string    `json:"email"`
    Name      string    `json:"name"`
    Role      string    `json:"role"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}

// UserToken is the login result: the user record plus the bearer token to
// attach to authenticated API calls.  The whole structure is what the
// session cookie stores, serialized as JSON.
type UserToken struct {
    User  User   `json:"user"`
    Token string `json:"token"`
}

// RegisterRequest is the payload for POST auth/register.
type RegisterRequest struct {
    Email    string `json:"email" validate:"required,email"`
    Password string `json:"password" validate:"required"`
    Name     string `json:"name" validate:"required"`
}

// LoginRequest is the payload for POST auth/login.
type LoginRequest struct {
    Email    string `json:"email" validate:"required"`
    Password string `json:"password" validate:"required"`
}
