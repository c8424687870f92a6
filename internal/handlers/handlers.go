package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var errInvalidID = errors.New("identificador inválido")

// parseID reads the :id path parameter. IDs are store-assigned positive
// integers; anything non-numeric is invalid input, not a missing entity.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}
