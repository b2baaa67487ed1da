package jwt

import (
	jwtLib "github.com/golang-jwt/jwt/v5"
)

// ActorClaims jwt claims carried by actor tokens.
// Subject is the actor id.
type ActorClaims struct {
	jwtLib.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}
