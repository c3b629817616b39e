package handlers

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsJSON(t *testing.T) {
	for ct, want := range map[string]bool{
		"application/json":                true,
		"application/json; charset=utf-8": true,
		"application/problem+json":        true,
		"text/plain":                      false,
		"text/json+xml":                   false,
		"":                                false,
		";;;":                             false,
	} {
		assert.Equal(t, want, isJSON(ct), ct)
	}
}

func TestIsEmptyJSON(t *testing.T) {
	for _, v := range []any{nil, map[string]any{}, []any{}, "", float64(0), false} {
		assert.True(t, isEmptyJSON(v), "%#v", v)
	}
	for _, v := range []any{map[string]any{"a": 1}, []any{"x"}, "x", float64(1), true} {
		assert.False(t, isEmptyJSON(v), "%#v", v)
	}
}

func TestParseLimitOffset(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		l, o := parseLimitOffset(c, 50)
		return c.JSON(fiber.Map{"limit": l, "offset": o})
	})

	cases := map[string]string{
		"/":                     `{"limit":50,"offset":0}`,
		"/?limit=10&offset=5":   `{"limit":10,"offset":5}`,
		"/?limit=0&offset=-1":   `{"limit":50,"offset":0}`,
		"/?limit=500":           `{"limit":50,"offset":0}`,
		"/?limit=abc&offset=xy": `{"limit":50,"offset":0}`,
	}
	for url, want := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", url, nil))
		require.NoError(t, err)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.JSONEq(t, want, string(body), url)
	}
}
