package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("s3cret", "65f000000000000000000001", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, "65f000000000000000000001", claims.AdminID)
	assert.Equal(t, "admin", claims.Username)
}

func TestJWTRejects(t *testing.T) {
	good, err := GenerateJWT("s3cret", "id", "admin", time.Hour)
	require.NoError(t, err)
	expired, err := GenerateJWT("s3cret", "id", "admin", -time.Minute)
	require.NoError(t, err)
	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{AdminID: "id"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	cases := map[string]struct{ secret, token string }{
		"WrongSecret": {"other", good},
		"Expired":     {"s3cret", expired},
		"Empty":       {"s3cret", ""},
		"Garbage":     {"s3cret", "not.a.jwt"},
		"NoneAlg":     {"s3cret", noneAlg},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseJWT(tc.secret, tc.token)
			assert.Error(t, err)
		})
	}
}

func TestJWTMissingSecret(t *testing.T) {
	_, err := GenerateJWT("", "id", "admin", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
	_, err = ParseJWT("", "x")
	assert.ErrorIs(t, err, ErrMissingSecret)
}
