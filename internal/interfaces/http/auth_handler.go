package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/topca/siparis-takip-api/internal/application/auth"
	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/domain"
)

// AuthHandler giriş akışını yönetir. Çıkış sunucu tarafında durum tutmaz;
// istemci token'ı atar.
type AuthHandler struct {
	uc        *auth.UseCase
	validator *requestValidator
}

// NewAuthHandler auth handler'ını kurar.
func NewAuthHandler(uc *auth.UseCase, v *requestValidator) *AuthHandler {
	return &AuthHandler{uc: uc, validator: v}
}

// Login godoc
// @Summary      Oturum aç
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "kullanici_adi, sifre"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "gövde çözümlenemedi"})
	}
	if err := h.validator.Validate(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "kullanıcı adı ya da şifre hatalı"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
