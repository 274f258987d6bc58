package processor

import (
	"context"
	"errors"
	"fmt"
	"time"
	"webcall-server/internal/observability"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "webcall-server"

var (
	ErrAuthDisabled    = errors.New("admin authentication is disabled")
	ErrExpiredToken    = errors.New("token expired")
	ErrParseJWTToken   = errors.New("failed to parse token")
	ErrInvalidJWTToken = errors.New("invalid token")
	ErrFailedSignIn    = errors.New("failed to sign token")
)

// BaseClaims are the claims carried by admin tokens.
type BaseClaims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type AuthProcessor struct {
	jwtSecret string
	logger    *observability.Logger
}

func New(jwtSecret string, logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

// Enabled reports whether admin routes require a token.
func (p *AuthProcessor) Enabled() bool {
	return p.jwtSecret != ""
}

// GenerateJWTToken signs an admin token for subject that expires after ttl.
func (p *AuthProcessor) GenerateJWTToken(ctx context.Context, subject string, ttl time.Duration) (string, error) {
	if !p.Enabled() {
		return "", ErrAuthDisabled
	}

	now := time.Now()
	claims := BaseClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenIssuer},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.jwtSecret))
	if err != nil {
		p.logger.Error(ctx, "failed to sign token", err)
		return "", ErrFailedSignIn
	}

	return tokenString, nil
}

func (p *AuthProcessor) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.jwtSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithAudience(tokenIssuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			p.logger.Info(ctx, "rejected expired token")
			return BaseClaims{}, ErrExpiredToken
		}

		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reason", Value: err.Error()}), "rejected token")
		return BaseClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return BaseClaims{}, ErrInvalidJWTToken
	}

	return baseClaims, nil
}
