// Package auth implements the stateless pieces of authentication: signed
// access tokens and password hashing. It keeps no server-side session state;
// a token remains valid until its expiry elapses.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/bookmarkd/internal/common"
)

// Claims embeds the registered JWT claims and carries the user's email.
// The user id travels in the standard Subject claim.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Identity is the authenticated caller resolved from a verified token.
// It is produced once per request and threaded explicitly through every
// protected operation.
type Identity struct {
	UserID int64
	Email  string
}

// GenerateToken issues an HS256-signed access token for the given user,
// expiring validityDuration from now.
func GenerateToken(userID int64, email string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Email: email,
	})

	return token.SignedString(secretKey)
}

// GetIdentityFromToken verifies signature and expiry and extracts the
// caller's Identity. Expired tokens yield common.ErrorTokenExpired; any
// other malformed or tampered token yields common.ErrorInvalidToken.
func GetIdentityFromToken(tokenString string, secretKey []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrorTokenExpired
		}
		return nil, common.ErrorInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrorInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, common.ErrorInvalidToken
	}

	return &Identity{UserID: userID, Email: claims.Email}, nil
}
