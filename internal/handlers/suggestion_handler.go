package handlers

import (
	"github.com/gofiber/fiber/v2"

	"boltresume/resume-ai/internal/models"
	"boltresume/resume-ai/internal/services"
)

const suggestionsFailedMessage = "Failed to get resume suggestions from AI."

type SuggestionHandler struct {
	suggestionService services.SuggestionService
}

func NewSuggestionHandler(suggestionService services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
	}
}

// HandleSuggest handles POST /suggestions
func (h *SuggestionHandler) HandleSuggest(c *fiber.Ctx) error {
	var req models.SuggestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	result, err := h.suggestionService.Suggest(c.UserContext(), req)
	if err != nil {
		return RespondError(c, err, suggestionsFailedMessage)
	}

	return c.JSON(result)
}
