package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// parseLimitOffset reads ?limit and ?offset; out-of-range values fall back to defaults.
func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = queryInt(c, "limit", defLimit, func(n int) bool { return n > 0 && n <= maxPageLimit })
	offset = queryInt(c, "offset", 0, func(n int) bool { return n >= 0 })
	return limit, offset
}

func queryInt(c *fiber.Ctx, key string, def int, valid func(int) bool) int {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || !valid(n) {
		return def
	}
	return n
}
