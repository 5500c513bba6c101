package postgres

import (
	"context"
	"fmt"

	"github.com/topca/siparis-takip-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo admin panosunun salt-okunur toplulaştırma sorguları.
// Yalnızca aktif siparişler hesaba katılır; null alanlar kovadan düşer.
type AnalyticsRepo struct {
	db Querier
}

// NewAnalyticsRepository pano sorgu adaptörünü kurar.
func NewAnalyticsRepository(db Querier) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// TopProducts en çok sipariş edilen ürünleri toplam miktara göre döndürür.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	query := `
		SELECT stok_kodu, COALESCE(MAX(urun_adi), ''), COALESCE(SUM(siparis_miktar), 0), COUNT(*)
		FROM siparisler
		WHERE aktif = true AND stok_kodu IS NOT NULL
		GROUP BY stok_kodu
		ORDER BY SUM(siparis_miktar) DESC NULLS LAST
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("ürün toplulaştırması sorgulanamadı: %w", err)
	}
	defer rows.Close()

	var out []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.StokKodu, &t.UrunAdi, &t.ToplamMiktar, &t.SiparisSayisi); err != nil {
			return nil, fmt.Errorf("ürün satırı okunamadı: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ürün sonuç kümesi: %w", err)
	}
	return out, nil
}

// PendingByBrand marka bazında bekleyen sipariş sayısı ve kalan tutar.
func (r *AnalyticsRepo) PendingByBrand(ctx context.Context) ([]repository.BrandPendingResult, error) {
	query := `
		SELECT marka, COUNT(*), COALESCE(SUM(kalan_tutar), 0)
		FROM siparisler
		WHERE aktif = true AND marka IS NOT NULL
		GROUP BY marka
		ORDER BY SUM(kalan_tutar) DESC NULLS LAST`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("marka toplulaştırması sorgulanamadı: %w", err)
	}
	defer rows.Close()

	var out []repository.BrandPendingResult
	for rows.Next() {
		var b repository.BrandPendingResult
		if err := rows.Scan(&b.Marka, &b.SiparisSayisi, &b.KalanTutar); err != nil {
			return nil, fmt.Errorf("marka satırı okunamadı: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("marka sonuç kümesi: %w", err)
	}
	return out, nil
}

// PendingByCustomer müşteri bazında bekleyen tutarları büyükten küçüğe döndürür.
func (r *AnalyticsRepo) PendingByCustomer(ctx context.Context, limit int) ([]repository.CustomerPendingResult, error) {
	query := `
		SELECT musteri_adi, COUNT(*), COALESCE(SUM(kalan_tutar), 0)
		FROM siparisler
		WHERE aktif = true AND musteri_adi IS NOT NULL
		GROUP BY musteri_adi
		ORDER BY SUM(kalan_tutar) DESC NULLS LAST
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("müşteri toplulaştırması sorgulanamadı: %w", err)
	}
	defer rows.Close()

	var out []repository.CustomerPendingResult
	for rows.Next() {
		var c repository.CustomerPendingResult
		if err := rows.Scan(&c.MusteriAdi, &c.SiparisSayisi, &c.KalanTutar); err != nil {
			return nil, fmt.Errorf("müşteri satırı okunamadı: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("müşteri sonuç kümesi: %w", err)
	}
	return out, nil
}
