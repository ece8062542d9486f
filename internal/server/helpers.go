package server

import (
	"errors"

	"schedcast/internal/models"
	"schedcast/internal/service"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts the "id" route parameter as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// caller builds the service-layer caller identity from the locals set by
// AuthRequired.
func (s *Server) caller(c *fiber.Ctx) service.Caller {
	userID, _ := c.Locals("userID").(uint)
	role, _ := c.Locals("userRole").(models.Role)
	return service.Caller{UserID: userID, Role: role}
}
