package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey is the Locals key under which the request ID is stored.
const RequestIDKey = "request_id"

// RequestID is a Fiber middleware that propagates an X-Request-Id header,
// generating one when the client did not send any.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Locals(RequestIDKey, reqID)
		c.Set("X-Request-Id", reqID)

		return c.Next()
	}
}
