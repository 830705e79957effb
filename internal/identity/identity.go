// Package identity verifies the opaque login assertions issued by the
// external identity provider. The backend only ever sees the assertion
// string and the verified identity that comes back.
package identity

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidAssertion = errors.New("identity assertion could not be verified")

// Identity is the result of a successful verification.
type Identity struct {
	UID   string
	Email string
}

// Verifier maps an opaque identity assertion to a verified identity.
type Verifier interface {
	Verify(assertion string) (*Identity, error)
}

type assertionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenVerifier verifies HMAC-signed assertions against the secret
// shared with the identity provider.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) *TokenVerifier {
	return &TokenVerifier{secret: []byte(secret)}
}

func (v *TokenVerifier) Verify(assertion string) (*Identity, error) {
	if assertion == "" {
		return nil, ErrInvalidAssertion
	}

	claims := &assertionClaims{}
	token, err := jwt.ParseWithClaims(assertion, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidAssertion
	}

	return &Identity{UID: claims.Subject, Email: claims.Email}, nil
}
