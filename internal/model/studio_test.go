package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeat_Status(t *testing.T) {
	assert.Equal(t, SeatAvailable, Seat{IsAvailable: true, IsAvailableLocal: true}.Status())
	assert.Equal(t, SeatSelected, Seat{IsAvailable: false, IsAvailableLocal: false}.Status())
	assert.Equal(t, SeatUnavailable, Seat{IsAvailable: false, IsAvailableLocal: true}.Status())
	assert.Equal(t, SeatUnavailable, Seat{IsAvailable: true, IsAvailableLocal: false}.Status())
}
