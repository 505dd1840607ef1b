package handlers

import (
	"github.com/gofiber/fiber/v2"

	"boltresume/resume-ai/internal/models"
	"boltresume/resume-ai/internal/services"
)

const rankFailedMessage = "Failed to rank resume. Please try again later."

type RankHandler struct {
	rankingService services.RankingService
}

func NewRankHandler(rankingService services.RankingService) *RankHandler {
	return &RankHandler{
		rankingService: rankingService,
	}
}

// HandleRank handles POST /rank
func (h *RankHandler) HandleRank(c *fiber.Ctx) error {
	var req models.RankRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Error: "Invalid request payload",
		})
	}

	result, err := h.rankingService.Rank(c.UserContext(), req)
	if err != nil {
		return RespondError(c, err, rankFailedMessage)
	}

	return c.JSON(result)
}
