package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the registered claims; Subject identifies the caller of the history API.
type Claims struct {
	jwt.RegisteredClaims
}

// Generator mints HS256 tokens accepted by NewAuthMiddleware.
type Generator struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewGenerator(secret, issuer string, ttl time.Duration) *Generator {
	return &Generator{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Generate returns a signed token for subject with a unique jti.
func (g *Generator) Generate(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("token subject is required")
	}
	issued := g.now()
	claims := Claims{jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Issuer:    g.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issued),
		NotBefore: jwt.NewNumericDate(issued),
		ExpiresAt: jwt.NewNumericDate(issued.Add(g.ttl)),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
}
