package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MintToken signs a token the way the real auth service does. The mock
// backend uses it for its login endpoint; the console itself never signs
// anything.
func MintToken(username, email string, adminType string, jwtKey []byte) (string, error) {
	claims := &Claims{
		Username:  username,
		Email:     email,
		UUID:      uuid.NewString(),
		AdminType: adminType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}
