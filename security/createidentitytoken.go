package security

import (
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type PulseIdentity struct {
	EmployeeId int
	UserName   string
	Role       string
	Email      string
}

// IdentityClaims includes Identity and standard JWT claims

type Identity struct {
	EmployeeID int    `json:"employeeId"`
	UniqueName string `json:"unique_name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}
type IdentityClaims struct {
	Identity
	jwt.RegisteredClaims
}

func CreateIdentityToken(identity *PulseIdentity, base64Secret string, expiresInSeconds int64) (string, error) {
	secretBytes, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return "", err
	}
	claims := IdentityClaims{
		Identity: Identity{
			EmployeeID: identity.EmployeeId,
			UniqueName: identity.UserName,
			Email:      identity.Email,
			Role:       identity.Role,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "pulsehr",
			Audience:  []string{"*.pulsehr.com"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expiresInSeconds) * time.Second)),
		},
	}

	// Use HS256 signing method (symmetric key)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(secretBytes))
}
