package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/application/order"
	"github.com/topca/siparis-takip-api/internal/application/preference"
	"github.com/topca/siparis-takip-api/internal/domain"
)

// OrderHandler sipariş listesini oturumun filtre tanımlayıcısıyla sunar.
// Gizli kolonlar kullanıcının kayıtlı tercihlerinden yüklenir; arama yalnızca
// görünür kolonlarda çalışır.
type OrderHandler struct {
	orders *order.UseCase
	prefs  *preference.UseCase
}

// NewOrderHandler sipariş handler'ını kurar.
func NewOrderHandler(orders *order.UseCase, prefs *preference.UseCase) *OrderHandler {
	return &OrderHandler{orders: orders, prefs: prefs}
}

// List godoc
// @Summary      Sipariş listesi
// @Tags         orders
// @Produce      json
// @Param        hizli_filtre      query  string  false  "bugun | bu_hafta | son_7_gun | bu_ay"
// @Param        baslangic_tarihi  query  string  false  "YYYY-MM-DD (dahil)"
// @Param        bitis_tarihi      query  string  false  "YYYY-MM-DD (dahil)"
// @Param        arama             query  string  false  "görünür kolonlarda serbest metin"
// @Param        gruplama          query  string  false  "siparis_tarihi | musteri_adi | marka"
// @Param        katlanan          query  string  false  "katlanmış grup anahtarları (virgülle)"
// @Param        sayfa             query  int     false  "sıfır tabanlı sayfa"
// @Param        sayfa_boyutu      query  int     false  "10 | 20 | 30 | 40 | 50"
// @Success      200  {object}  dto.OrderListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	sess := SessionFrom(c)
	if sess == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "oturum bulunamadı"})
	}

	req := order.ListRequest{
		QuickFilter: c.Query("hizli_filtre"),
		Search:      c.Query("arama"),
		GroupBy:     c.Query("gruplama"),
		Page:        c.QueryInt("sayfa", 0),
		PageSize:    c.QueryInt("sayfa_boyutu", order.DefaultPageSize),
	}
	if raw := c.Query("katlanan"); raw != "" {
		req.Collapsed = strings.Split(raw, ",")
	}

	var err error
	if req.StartDate, err = parseDateParam(c.Query("baslangic_tarihi")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "baslangic_tarihi YYYY-MM-DD olmalıdır"})
	}
	if req.EndDate, err = parseDateParam(c.Query("bitis_tarihi")); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bitis_tarihi YYYY-MM-DD olmalıdır"})
	}

	// Gizli kolonlar sunucuda tutulan tercihlerden gelir; istemci göndermez.
	if p, err := h.prefs.Get(sess.UserID); err == nil {
		req.HiddenColumns = p.HiddenColumns
	}

	out, err := h.orders.List(c.Context(), sess.Filter, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUploadOnly):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "UPLOAD_ONLY", Message: "bu hesap yalnızca dosya yükleyebilir"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}

func parseDateParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
