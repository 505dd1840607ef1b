package handlers

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"boltresume/resume-ai/internal/models"
	"boltresume/resume-ai/internal/services"
)

// RespondError maps service errors to a status code and a message that is
// safe to show. fallback is used for provider failures.
func RespondError(c *fiber.Ctx, err error, fallback string) error {
	var (
		validationErr *services.ValidationError
		serviceErr    *services.ServiceError
		extractionErr *services.ExtractionError
		parseErr      *services.ParseError
	)

	switch {
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{Error: validationErr.Error()})
	case errors.As(err, &serviceErr):
		log.Printf("❌ [%s] %v", requestID(c), serviceErr)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: fallback})
	case errors.As(err, &extractionErr):
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: extractionErr.Message})
	case errors.As(err, &parseErr):
		log.Printf("❌ [%s] PDF parsing error: %v", requestID(c), parseErr)
		message := "Failed to parse PDF."
		if parseErr.Err != nil {
			message = fmt.Sprintf("Failed to parse PDF: %v", parseErr.Err)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: message})
	default:
		log.Printf("❌ [%s] unexpected error: %v", requestID(c), err)
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{Error: fallback})
	}
}

// ErrorHandler catches errors that escape handlers, including Fiber's own
// (body too large, unknown route).
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}

	message := err.Error()
	if code >= fiber.StatusInternalServerError {
		log.Printf("❌ [%s] %v", requestID(c), err)
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
		"code":  code,
	})
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "-"
}
