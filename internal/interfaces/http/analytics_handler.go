package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topca/siparis-takip-api/internal/application/analytics"
	"github.com/topca/siparis-takip-api/internal/application/dto"
)

// AnalyticsHandler admin panosu; rota admin rolüyle korunur.
type AnalyticsHandler struct {
	uc *analytics.UseCase
}

// NewAnalyticsHandler pano handler'ını kurar.
func NewAnalyticsHandler(uc *analytics.UseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Summary godoc
// @Summary      Pano özeti
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.AnalyticsSummary
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
