package analytics

import (
	"context"
	"fmt"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/domain/repository"
)

// Pano listelerinin sabit boyları.
const (
	topProductLimit      = 10
	pendingCustomerLimit = 10
)

// UseCase admin panosu toplulaştırmaları. Sorgular salt-okunur, sonuç tek
// yanıtta birleşir.
type UseCase struct {
	analytics repository.AnalyticsRepository
}

func NewUseCase(analytics repository.AnalyticsRepository) *UseCase {
	return &UseCase{analytics: analytics}
}

// Summary panonun üç bileşenini toplar: en çok sipariş edilen ürünler,
// marka bazında bekleyenler, müşteri bazında bekleyen tutarlar.
func (uc *UseCase) Summary(ctx context.Context) (*dto.AnalyticsSummary, error) {
	products, err := uc.analytics.TopProducts(ctx, topProductLimit)
	if err != nil {
		return nil, fmt.Errorf("ürün toplulaştırması alınamadı: %w", err)
	}
	brands, err := uc.analytics.PendingByBrand(ctx)
	if err != nil {
		return nil, fmt.Errorf("marka toplulaştırması alınamadı: %w", err)
	}
	customers, err := uc.analytics.PendingByCustomer(ctx, pendingCustomerLimit)
	if err != nil {
		return nil, fmt.Errorf("müşteri toplulaştırması alınamadı: %w", err)
	}

	out := &dto.AnalyticsSummary{
		TopProducts:       make([]dto.TopProduct, 0, len(products)),
		PendingByBrand:    make([]dto.BrandPending, 0, len(brands)),
		PendingByCustomer: make([]dto.CustomerPending, 0, len(customers)),
	}
	for _, p := range products {
		out.TopProducts = append(out.TopProducts, dto.TopProduct{
			StokKodu:      p.StokKodu,
			UrunAdi:       p.UrunAdi,
			ToplamMiktar:  p.ToplamMiktar,
			SiparisSayisi: p.SiparisSayisi,
		})
	}
	for _, b := range brands {
		out.PendingByBrand = append(out.PendingByBrand, dto.BrandPending{
			Marka:         b.Marka,
			SiparisSayisi: b.SiparisSayisi,
			KalanTutar:    b.KalanTutar,
		})
	}
	for _, c := range customers {
		out.PendingByCustomer = append(out.PendingByCustomer, dto.CustomerPending{
			MusteriAdi:    c.MusteriAdi,
			SiparisSayisi: c.SiparisSayisi,
			KalanTutar:    c.KalanTutar,
		})
	}
	return out, nil
}
