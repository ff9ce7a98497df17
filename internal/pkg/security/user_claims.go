package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims carries the viewer identity through the token.
type UserClaims struct {
	UserID   uint64 `json:"user_id"`
	Nickname string `json:"nickname"`
	jwt.RegisteredClaims
}
