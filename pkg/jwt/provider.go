package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Provider issues and checks the HS256 bearer tokens accepted by the
// catalog API when AUTH_JWT_SECRET is set.
type Provider struct {
	Secret string
	TTL    time.Duration
}

func NewProvider(secret string, ttl time.Duration) *Provider {
	return &Provider{
		Secret: secret,
		TTL:    ttl,
	}
}

func (p *Provider) Issue(subject string) (string, error) {
	if p.Secret == "" {
		return "", errors.New("jwt: secret is empty")
	}
	if subject == "" {
		return "", errors.New("jwt: subject is empty")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.TTL)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(p.Secret))
}

// Subject validates the token signature and expiry and returns its subject.
func (p *Provider) Subject(token string) (string, error) {
	claims := new(jwt.RegisteredClaims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(p.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", errors.New("jwt: invalid token")
	}
	return claims.Subject, nil
}
