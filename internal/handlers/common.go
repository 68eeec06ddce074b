// common.go
//
// Shared request parsing helpers for the route handlers.

package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// paramID parses a numeric id from a path parameter.
func paramID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// queryID parses a numeric id from a query parameter.
func queryID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Query(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
