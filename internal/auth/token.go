package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"schedcast/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer   = "schedcast-api"
	tokenAudience = "schedcast-client"

	// TokenTTL is how long an issued bearer token stays valid.
	TokenTTL = 7 * 24 * time.Hour
)

var (
	// ErrTokenExpired is returned by Verify when the token's expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid is returned by Verify for any malformed, tampered,
	// or otherwise unverifiable token.
	ErrTokenInvalid = errors.New("token invalid")
)

// Identity is the set of claims a bearer token carries about its subject.
type Identity struct {
	UserID uint
	Email  string
	Role   models.Role
}

// TokenManager signs and verifies bearer tokens with a process-wide secret.
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a TokenManager. An empty secret is a
// configuration error and is rejected rather than silently defaulted.
func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	return &TokenManager{secret: []byte(secret)}, nil
}

// Issue signs a token embedding id, valid for TokenTTL from now.
// Tokens issued at different times for the same identity differ (jti, iat).
func (m *TokenManager) Issue(id Identity) (string, error) {
	return m.issueAt(id, time.Now())
}

func (m *TokenManager) issueAt(id Identity, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   strconv.FormatUint(uint64(id.UserID), 10),
		"email": id.Email,
		"role":  string(id.Role),
		"iss":   tokenIssuer,
		"aud":   tokenAudience,
		"exp":   now.Add(TokenTTL).Unix(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"jti":   generateJTI(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, expiry, issuer, and audience, and returns
// the identity claims exactly as issued.
func (m *TokenManager) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
			}
			return m.secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)
	role := models.Role(roleStr)
	if !role.Valid() {
		return nil, ErrTokenInvalid
	}

	return &Identity{
		UserID: uint(userID),
		Email:  email,
		Role:   role,
	}, nil
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8])
}
