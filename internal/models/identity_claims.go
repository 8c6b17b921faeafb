package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims are the claims carried by an identity-provider session
// token. The registered subject identifies the user.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}
