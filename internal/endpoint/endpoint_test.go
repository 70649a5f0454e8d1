package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_DirectVariant(t *testing.T) {
	reg := NewRegistry("http://edge:3000/api", "http://gateway:3000/api")

	assert.Equal(t, "http://edge:3000/api/cinema/studios", reg.Studios(Direct))
	assert.Equal(t, "http://edge:3000/api/cinema/studios/5/seats", reg.Seats(Direct, "5"))
	assert.Equal(t, "http://edge:3000/api/auth/register", reg.Register(Direct))
	assert.Equal(t, "http://edge:3000/api/auth/login", reg.Login(Direct))
	assert.Equal(t, "http://edge:3000/api/booking/online", reg.BookingOnline(Direct))
	assert.Equal(t, "http://edge:3000/api/booking/offline", reg.BookingOffline(Direct))
	assert.Equal(t, "http://edge:3000/api/booking/validate", reg.BookingValidate(Direct))
	assert.Equal(t, "http://edge:3000/api/booking/my-bookings", reg.MyBookings(Direct))
}

func TestRegistry_GatewayInternalVariant(t *testing.T) {
	reg := NewRegistry("http://edge:3000/api", "http://gateway:3000/api")

	assert.Equal(t, "http://gateway:3000/api/cinema/studios", reg.Studios(GatewayInternal))
	assert.Equal(t, "http://gateway:3000/api/booking/my-bookings", reg.MyBookings(GatewayInternal))
}

func TestRegistry_SingleNetworkDeployment(t *testing.T) {
	// When no internal URL is configured the caller passes the public one
	// twice and both variants resolve identically.
	reg := NewRegistry("http://edge:3000/api", "http://edge:3000/api")

	assert.Equal(t, reg.Studios(Direct), reg.Studios(GatewayInternal))
}
