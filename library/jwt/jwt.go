// Package jwt signs and verifies actor tokens.
package jwt

import (
	"github.com/Laisky/errors/v2"
	jwtLib "github.com/golang-jwt/jwt/v5"
)

var Instance *JWT

// Initialize setup the shared jwt instance
func Initialize(secret []byte) (err error) {
	Instance, err = New(secret)
	return err
}

// JWT sign and verify HS256 tokens
type JWT struct {
	secret []byte
}

// New create a new jwt signer
func New(secret []byte) (*JWT, error) {
	if len(secret) == 0 {
		return nil, errors.New("jwt secret is empty")
	}

	return &JWT{secret: secret}, nil
}

// Sign sign claims into a token string
func (j *JWT) Sign(claims *ActorClaims) (string, error) {
	token, err := jwtLib.NewWithClaims(jwtLib.SigningMethodHS256, claims).
		SignedString(j.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return token, nil
}

// Verify parse and validate a token string
func (j *JWT) Verify(raw string) (*ActorClaims, error) {
	claims := &ActorClaims{}
	token, err := jwtLib.ParseWithClaims(raw, claims,
		func(t *jwtLib.Token) (any, error) {
			if _, ok := t.Method.(*jwtLib.SigningMethodHMAC); !ok {
				return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
			}

			return j.secret, nil
		},
		jwtLib.WithValidMethods([]string{jwtLib.SigningMethodHS256.Alg()}),
		jwtLib.WithIssuedAt(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !token.Valid {
		return nil, errors.New("token invalid")
	}

	return claims, nil
}
