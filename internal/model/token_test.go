package model

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestParseUserToken_EmptyIsGuest(t *testing.T) {
	tok, err := ParseUserToken("")
	assert.NoError(t, err)
	assert.Nil(t, tok)
}

func TestParseUserToken_ValidPayload(t *testing.T) {
	raw := `{"user":{"id":7,"email":"a@b.c","name":"Ana","role":"customer"},"token":"jwt-here"}`
	tok, err := ParseUserToken(raw)
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.Equal(t, uint64(7), tok.User.ID)
	assert.Equal(t, "Ana", tok.User.Name)
	assert.Equal(t, "jwt-here", tok.Token)
}

func TestParseUserToken_MalformedPayload(t *testing.T) {
	tok, err := ParseUserToken("{not json")
	assert.Nil(t, tok)
	var malformed *MalformedTokenError
	assert.ErrorAs(t, err, &malformed)
}

func TestUserToken_Expired(t *testing.T) {
	past := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(-time.Hour).Unix()})
	future := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()})
	noExp := signedToken(t, jwt.MapClaims{"sub": "7"})

	assert.True(t, (&UserToken{Token: past}).Expired())
	assert.False(t, (&UserToken{Token: future}).Expired())
	assert.False(t, (&UserToken{Token: noExp}).Expired())
}

func TestUserToken_ExpiredDegradesGracefully(t *testing.T) {
	// Anything that is not a readable JWT is left for the API to reject.
	assert.False(t, (*UserToken)(nil).Expired())
	assert.False(t, (&UserToken{}).Expired())
	assert.False(t, (&UserToken{Token: "not-a-jwt"}).Expired())
}
