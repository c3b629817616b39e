package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// KeywordsResponse is the body of a successful extraction.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}
