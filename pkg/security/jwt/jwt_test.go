package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateClaims(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewGenerator("k", "skillscan", 30*time.Minute)
	g.now = func() time.Time { return issued }

	first, err := g.Generate("recruiter")
	require.NoError(t, err)
	second, err := g.Generate("recruiter")
	require.NoError(t, err)

	parse := func(tok string) *Claims {
		c := &Claims{}
		_, _, err := jwt.NewParser().ParseUnverified(tok, c)
		require.NoError(t, err)
		return c
	}
	c := parse(first)
	assert.Equal(t, "recruiter", c.Subject)
	assert.Equal(t, "skillscan", c.Issuer)
	assert.Equal(t, issued, c.IssuedAt.Time.UTC())
	assert.Equal(t, issued, c.NotBefore.Time.UTC())
	assert.Equal(t, issued.Add(30*time.Minute), c.ExpiresAt.Time.UTC())
	assert.NotEmpty(t, c.ID)
	assert.NotEqual(t, c.ID, parse(second).ID)
}

func TestGenerateRequiresSubject(t *testing.T) {
	_, err := NewGenerator("k", "skillscan", time.Minute).Generate("")
	assert.Error(t, err)
}
