package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/application/preference"
)

// PreferenceHandler oturum sahibinin tablo tercihleri; başka kullanıcının
// tercihine erişim yolu yoktur, kimlik her zaman oturumdan gelir.
type PreferenceHandler struct {
	uc *preference.UseCase
}

// NewPreferenceHandler tercih handler'ını kurar.
func NewPreferenceHandler(uc *preference.UseCase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

// Get godoc
// @Summary      Tercihleri getir
// @Tags         preferences
// @Produce      json
// @Success      200  {object}  dto.PreferenceResponse
// @Security     BearerAuth
// @Router       /api/preferences [get]
func (h *PreferenceHandler) Get(c *fiber.Ctx) error {
	sess := SessionFrom(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "oturum bulunamadı"})
	}
	out, err := h.uc.Get(sess.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Save godoc
// @Summary      Tercihleri kaydet
// @Tags         preferences
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreferenceRequest  true  "gizli kolonlar ve filtre tercihi"
// @Success      204  "No Content"
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/preferences [put]
func (h *PreferenceHandler) Save(c *fiber.Ctx) error {
	sess := SessionFrom(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "oturum bulunamadı"})
	}
	var in dto.PreferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	if err := h.uc.Save(sess.UserID, in); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
