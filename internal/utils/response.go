package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerguide/careerguide-api/internal/repository"
)

// Success writes the standard success envelope.
func Success(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"data":    data,
	})
}

// SuccessMessage writes a success envelope with an operator-facing message,
// used by mutations.
func SuccessMessage(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// List writes a success envelope carrying one page of results.
func List(c *fiber.Ctx, items any, total, page, limit int64) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    items,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// Error writes the standard failure envelope.
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

// RepoError maps repository sentinel errors onto HTTP statuses; any other
// error surfaces as a 500 with its message.
func RepoError(c *fiber.Ctx, err error) error {
	switch err {
	case repository.ErrInvalidID:
		return Error(c, fiber.StatusBadRequest, "Invalid id")
	case repository.ErrNotFound:
		return Error(c, fiber.StatusNotFound, "Not found")
	case repository.ErrNoUpdate:
		return Error(c, fiber.StatusBadRequest, "No data to update")
	case repository.ErrDuplicate:
		return Error(c, fiber.StatusConflict, "Already exists")
	default:
		return Error(c, fiber.StatusInternalServerError, err.Error())
	}
}
