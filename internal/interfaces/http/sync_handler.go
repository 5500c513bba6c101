package http

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/application/sync"
	"github.com/topca/siparis-takip-api/internal/domain"
	"github.com/topca/siparis-takip-api/internal/infrastructure/excel"
)

// allowedUploadExts kabul edilen dosya uzantıları.
var allowedUploadExts = map[string]bool{".xls": true, ".xlsx": true, ".xlsm": true}

// SyncHandler ERP Excel dışa aktarımını kabul eder ve senkron motorunu çalıştırır.
type SyncHandler struct {
	sync        *sync.UseCase
	maxFileSize int64 // bayt
}

// NewSyncHandler yükleme handler'ını kurar; maxFileSizeMB sıfırsa sınır 20 MB'dir.
func NewSyncHandler(uc *sync.UseCase, maxFileSizeMB int) *SyncHandler {
	if maxFileSizeMB <= 0 {
		maxFileSizeMB = 20
	}
	return &SyncHandler{sync: uc, maxFileSize: int64(maxFileSizeMB) * 1024 * 1024}
}

// Upload godoc
// @Summary      Excel yükle ve senkronla
// @Tags         sync
// @Accept       multipart/form-data
// @Produce      json
// @Param        dosya  formData  file  true  "ERP sipariş dışa aktarımı (.xls/.xlsx)"
// @Success      200  {object}  dto.SyncResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      413  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/orders/upload [post]
func (h *SyncHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("dosya")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "dosya alanı gerekli"})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadExts[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE_TYPE", Message: "yalnızca .xls ve .xlsx dosyaları kabul edilir"})
	}
	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "dosya boyutu sınırı aşıyor"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "dosya açılamadı"})
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "dosya okunamadı"})
	}

	rows, err := excel.ParseOrders(fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySheet) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SHEET", Message: "dosyada veri satırı yok"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: err.Error()})
	}

	out, err := h.sync.Run(c.Context(), rows)
	if err != nil {
		if errors.Is(err, domain.ErrEmptySheet) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SHEET", Message: "dosyada veri satırı yok"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
