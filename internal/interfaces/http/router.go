package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/topca/siparis-takip-api/internal/application/analytics"
	"github.com/topca/siparis-takip-api/internal/application/auth"
	"github.com/topca/siparis-takip-api/internal/application/order"
	"github.com/topca/siparis-takip-api/internal/application/preference"
	"github.com/topca/siparis-takip-api/internal/application/sync"
	"github.com/topca/siparis-takip-api/internal/application/user"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
)

// RouterDeps router'ın ihtiyaç duyduğu use case'ler ve ayarlar.
type RouterDeps struct {
	AuthUC          *auth.UseCase
	OrderUC         *order.UseCase
	SyncUC          *sync.UseCase
	UserUC          *user.UseCase
	PreferenceUC    *preference.UseCase
	AnalyticsUC     *analytics.UseCase
	JWTSecret       string
	UploadMaxSizeMB int
}

// Router API rotalarını kaydeder. Giriş dışında her rota Bearer token ister;
// rol kısıtları rota bazında eklenir.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	validator := NewValidator()

	// Auth (herkese açık)
	authHandler := NewAuthHandler(deps.AuthUC, validator)
	api.Post("/auth/login", authHandler.Login)

	// Korunan rotalar
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Siparişler: upload rolü liste göremez, use case bunu filtreden çözer
	orderHandler := NewOrderHandler(deps.OrderUC, deps.PreferenceUC)
	protected.Get("/orders", orderHandler.List)

	// Excel yükleme: yalnızca admin ve upload rolleri
	syncHandler := NewSyncHandler(deps.SyncUC, deps.UploadMaxSizeMB)
	protected.Post("/orders/upload", RequireRole(entity.RoleAdmin, entity.RoleUpload), syncHandler.Upload)

	// Kullanıcı yönetimi: yalnızca admin
	userHandler := NewUserHandler(deps.UserUC, validator)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/aktif", userHandler.SetActive)

	// Tercihler: oturum sahibine özel
	prefHandler := NewPreferenceHandler(deps.PreferenceUC)
	protected.Get("/preferences", prefHandler.Get)
	protected.Put("/preferences", prefHandler.Save)

	// Pano: yalnızca admin
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	protected.Get("/analytics/summary", RequireRole(entity.RoleAdmin), analyticsHandler.Summary)
}
