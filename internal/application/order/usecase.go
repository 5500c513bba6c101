package order

import (
	"context"
	"fmt"
	"time"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/domain"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
	"github.com/topca/siparis-takip-api/internal/domain/repository"
)

// ListRequest sipariş listesi için UI düzeyi ayrıntılar: tarih aralığı
// (hızlı filtre ya da özel), serbest metin arama, gruplama ve sayfalama.
type ListRequest struct {
	QuickFilter   string
	StartDate     *time.Time
	EndDate       *time.Time
	Search        string
	HiddenColumns []string // arama görünür kolonlarla sınırlıdır
	GroupBy       string
	Collapsed     []string // katlanmış grup anahtarları (oturum içi durum)
	Page          int
	PageSize      int
}

// UseCase rol filtresini kapsamlı sorguya çevirir ve sonucu sunuma hazırlar.
type UseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewUseCase sipariş sorgu katmanını kurar.
func NewUseCase(orders repository.OrderRepository) *UseCase {
	return &UseCase{orders: orders, now: time.Now}
}

// List oturumun filtre tanımlayıcısına göre siparişleri getirir.
// UploadOnly filtresinde hiçbir sipariş sorgusu atılmaz; ErrUploadOnly döner
// ve sunum katmanı yalnızca-yükleme bildirimi gösterir. Sonuçlar her zaman
// siparis_tarihi azalan gelir; yalnızca aktif satırlar sorgulanır.
func (uc *UseCase) List(ctx context.Context, filter entity.OrderFilter, req ListRequest) (*dto.OrderListResponse, error) {
	if !ValidGroupBy(req.GroupBy) {
		return nil, fmt.Errorf("%w: geçersiz gruplama anahtarı %q", domain.ErrInvalidInput, req.GroupBy)
	}

	scope, err := buildScope(filter)
	if err != nil {
		return nil, err
	}

	// Hızlı filtre özel aralığın önüne geçer.
	if req.QuickFilter != "" {
		if s, e, ok := ResolveQuickFilter(req.QuickFilter, uc.now()); ok {
			scope.StartDate, scope.EndDate = s, e
		} else {
			return nil, fmt.Errorf("%w: bilinmeyen hızlı filtre %q", domain.ErrInvalidInput, req.QuickFilter)
		}
	} else {
		scope.StartDate, scope.EndDate = req.StartDate, req.EndDate
	}

	orders, err := uc.orders.ListActive(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("siparişler yüklenemedi: %w", err)
	}

	orders = applySearch(orders, req.Search, req.HiddenColumns)

	return BuildView(orders, req.GroupBy, req.Collapsed, req.Page, req.PageSize), nil
}

// buildScope filtre tanımlayıcısı üzerinde exhaustive dallanır; alan yoklama yok.
func buildScope(filter entity.OrderFilter) (repository.OrderScope, error) {
	switch filter.Kind {
	case entity.FilterUploadOnly:
		return repository.OrderScope{}, domain.ErrUploadOnly
	case entity.FilterSinglePerson:
		return repository.OrderScope{Salesperson: filter.Value}, nil
	case entity.FilterMultiPerson:
		return repository.OrderScope{Salespeople: filter.Values}, nil
	case entity.FilterUnrestricted, "":
		return repository.OrderScope{}, nil
	default:
		return repository.OrderScope{}, fmt.Errorf("%w: bilinmeyen filtre türü %q", domain.ErrInvalidInput, filter.Kind)
	}
}
