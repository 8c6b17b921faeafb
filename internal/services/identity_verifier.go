package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-ledger/internal/config"
	"finance-ledger/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrEmptyToken        = errors.New("empty token")
	ErrMissingSubject    = errors.New("token has no subject")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrDevTokensDisabled = errors.New("development tokens are disabled")
)

// IdentityVerifier checks identity-provider session tokens against the
// provider's RSA public key
type IdentityVerifier struct {
	config.IdentityConfig
}

func NewIdentityVerifier(identityConfig config.IdentityConfig) IdentityVerifierInterface {
	return &IdentityVerifier{
		IdentityConfig: identityConfig,
	}
}

// VerifyToken validates the signature, expiry and issuer of a session token
// and returns its claims. A token without a subject is rejected.
func (v *IdentityVerifier) VerifyToken(tokenString string) (*models.IdentityClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	opts := []jwt.ParserOption{jwt.WithLeeway(v.Leeway)}
	if v.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.Issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.IdentityClaims{}, v.keyFunc, opts...)
	if err != nil {
		return nil, v.mapTokenError(err)
	}

	claims, ok := token.Claims.(*models.IdentityClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if strings.TrimSpace(claims.Subject) == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the JWT token from the Authorization header
func (v *IdentityVerifier) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrInvalidAuthHeader
	}

	const bearerPrefix = "bearer "
	if !strings.HasPrefix(strings.ToLower(authHeader), bearerPrefix) {
		return "", ErrInvalidAuthHeader
	}

	token := strings.TrimSpace(authHeader[len(bearerPrefix):])
	if token == "" {
		return "", ErrInvalidAuthHeader
	}

	return token, nil
}

// IssueDevToken mints a session token signed with the local development key.
// It fails when no development key is configured, which is always the case in
// production.
func (v *IdentityVerifier) IssueDevToken(subject, name, email string, ttl time.Duration) (string, time.Time, error) {
	if v.DevSigningKey == nil {
		return "", time.Time{}, ErrDevTokensDisabled
	}
	if strings.TrimSpace(subject) == "" {
		return "", time.Time{}, ErrMissingSubject
	}

	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := models.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    v.Issuer,
			Subject:   subject,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
		},
		Name:  name,
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	tokenString, err := token.SignedString(v.DevSigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign development token: %w", err)
	}

	return tokenString, expiresAt, nil
}

func (v *IdentityVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return v.PublicKey, nil
}

func (v *IdentityVerifier) mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return ErrInvalidIssuer
	default:
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
}
