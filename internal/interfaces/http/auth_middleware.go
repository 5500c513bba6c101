package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
	"github.com/topca/siparis-takip-api/pkg/jwt"
)

// LocalSession Fiber locals'ta oturum anahtarı.
const LocalSession = "session"

// Session doğrulanmış istekle taşınan oturum bilgisi. Filtre tanımlayıcısı
// token'dan çözülür; handler'lar küresel duruma değil buna bakar.
type Session struct {
	UserID   string
	Role     string
	FullName string
	Filter   entity.OrderFilter
}

// AuthMiddleware Bearer token'ı doğrular ve çözülmüş oturumu c.Locals'a koyar.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization başlığı gerekli"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "biçim: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token boş"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token geçersiz ya da süresi dolmuş"})
		}

		var filter entity.OrderFilter
		if err := json.Unmarshal([]byte(claims.Filter), &filter); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "filtre tanımlayıcısı çözümlenemedi"})
		}

		c.Locals(LocalSession, &Session{
			UserID:   claims.UserID,
			Role:     claims.Role,
			FullName: claims.FullName,
			Filter:   filter,
		})
		return c.Next()
	}
}

// SessionFrom bağlamdaki oturumu döndürür (auth middleware sonrası).
func SessionFrom(c *fiber.Ctx) *Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*Session)
	return s
}

// RequireRole oturumun rolünü izin listesiyle karşılaştırır.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := SessionFrom(c)
		if sess == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "oturum bulunamadı"})
		}
		for _, r := range roles {
			if sess.Role == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "bu işlem için yetkiniz yok"})
	}
}
