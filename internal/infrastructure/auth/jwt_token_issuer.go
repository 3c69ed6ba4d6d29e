package auth

import (
	"fmt"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/domain/accounts"
	"github.com/giorgigordiashvili/restaurant-platform/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// Token type claim values.
const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type claims struct {
	Email     string `json:"email,omitempty"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

type jwtTokenIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTTokenIssuer creates a TokenIssuer signing HS256 tokens with the
// configured secret.
func NewJWTTokenIssuer(settings config.AuthSettings) (accounts.TokenIssuer, error) {
	if settings.SecretKey == "" {
		return nil, fmt.Errorf("token issuer requires a signing secret")
	}
	return &jwtTokenIssuer{
		secret:     []byte(settings.SecretKey),
		accessTTL:  settings.AccessTokenTTL,
		refreshTTL: settings.RefreshTokenTTL,
	}, nil
}

func (i *jwtTokenIssuer) IssuePair(userID, email string) (*accounts.TokenPair, error) {
	now := time.Now().UTC()
	accessExpiry := now.Add(i.accessTTL)

	access, err := i.sign(userID, email, tokenTypeAccess, now, accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := i.sign(userID, "", tokenTypeRefresh, now, now.Add(i.refreshTTL))
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &accounts.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    accessExpiry,
	}, nil
}

func (i *jwtTokenIssuer) VerifyAccess(token string) (string, error) {
	return i.verify(token, tokenTypeAccess)
}

func (i *jwtTokenIssuer) VerifyRefresh(token string) (string, error) {
	return i.verify(token, tokenTypeRefresh)
}

func (i *jwtTokenIssuer) sign(userID, email, tokenType string, issuedAt, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	return token.SignedString(i.secret)
}

func (i *jwtTokenIssuer) verify(tokenString, wantType string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	tokenClaims, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return "", fmt.Errorf("invalid token claims")
	}
	if tokenClaims.TokenType != wantType {
		return "", fmt.Errorf("token is not a %s token", wantType)
	}
	if tokenClaims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return tokenClaims.Subject, nil
}
