package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const JWTExpirationTime = time.Hour * 24

// UserClaims 身份由上游签发，sub 即用户 ID
type UserClaims struct {
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	FirstName string `json:"given_name,omitempty"`
	LastName  string `json:"family_name,omitempty"`
	Picture   string `json:"picture,omitempty"`
	jwt.RegisteredClaims
}

// UserID 即 sub
func (c *UserClaims) UserID() string {
	return c.Subject
}
