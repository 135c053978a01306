package session_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/programme-lv/console/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var jwtKey = []byte("test-key")

func TestSetTokenAndClaims(t *testing.T) {
	token, err := session.MintToken("admin", "admin@example.com", "Super Admin", jwtKey)
	require.NoError(t, err)

	s := session.New()
	require.NoError(t, s.SetToken(token))

	assert.Equal(t, token, s.Token())
	assert.Equal(t, "admin", s.Username())
	assert.False(t, s.Expired(time.Now()))
	assert.True(t, s.Expired(time.Now().Add(25*time.Hour)))
}

func TestSetTokenMalformed(t *testing.T) {
	s := session.New()
	assert.Error(t, s.SetToken("not-a-jwt"))
	assert.True(t, s.Expired(time.Now()))
}

func TestAuthorize(t *testing.T) {
	token, err := session.MintToken("admin", "", "", jwtKey)
	require.NoError(t, err)

	s := session.New()
	require.NoError(t, s.SetToken(token))

	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, s.Authorize(req))
	assert.Equal(t, "Bearer "+token, req.Header.Get("Authorization"))
}

func TestAuthorizeWithoutSession(t *testing.T) {
	s := session.New()
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	assert.Error(t, s.Authorize(req))
}

func TestClear(t *testing.T) {
	token, err := session.MintToken("admin", "", "", jwtKey)
	require.NoError(t, err)

	s := session.New()
	require.NoError(t, s.SetToken(token))
	s.Clear()

	assert.Empty(t, s.Token())
	assert.Empty(t, s.Username())
	assert.True(t, s.Expired(time.Now()))
}
