package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// TopProductResult en çok sipariş edilen ürün satırı.
type TopProductResult struct {
	StokKodu      string
	UrunAdi       string
	ToplamMiktar  decimal.Decimal
	SiparisSayisi int64
}

// BrandPendingResult marka bazında bekleyen siparişler.
type BrandPendingResult struct {
	Marka         string
	SiparisSayisi int64
	KalanTutar    decimal.Decimal
}

// CustomerPendingResult müşteri bazında bekleyen sipariş tutarı.
type CustomerPendingResult struct {
	MusteriAdi    string
	SiparisSayisi int64
	KalanTutar    decimal.Decimal
}

// AnalyticsRepository salt-okunur toplulaştırma sorguları (admin panosu).
// Yalnızca aktif siparişler hesaba katılır.
type AnalyticsRepository interface {
	TopProducts(ctx context.Context, limit int) ([]TopProductResult, error)
	PendingByBrand(ctx context.Context) ([]BrandPendingResult, error)
	PendingByCustomer(ctx context.Context, limit int) ([]CustomerPendingResult, error)
}
