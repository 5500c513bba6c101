package dto

import "github.com/shopspring/decimal"

// TopProduct en çok sipariş edilen ürün.
type TopProduct struct {
	StokKodu      string          `json:"stok_kodu"`
	UrunAdi       string          `json:"urun_adi"`
	ToplamMiktar  decimal.Decimal `json:"toplam_miktar"`
	SiparisSayisi int64           `json:"siparis_sayisi"`
}

// BrandPending marka bazında bekleyen siparişler.
type BrandPending struct {
	Marka         string          `json:"marka"`
	SiparisSayisi int64           `json:"siparis_sayisi"`
	KalanTutar    decimal.Decimal `json:"kalan_tutar"`
}

// CustomerPending müşteri bazında bekleyen sipariş tutarı.
type CustomerPending struct {
	MusteriAdi    string          `json:"musteri_adi"`
	SiparisSayisi int64           `json:"siparis_sayisi"`
	KalanTutar    decimal.Decimal `json:"kalan_tutar"`
}

// AnalyticsSummary admin panosunun üç bileşeni.
type AnalyticsSummary struct {
	TopProducts       []TopProduct      `json:"en_cok_siparis_edilen_urunler"`
	PendingByBrand    []BrandPending    `json:"marka_bazinda_bekleyen"`
	PendingByCustomer []CustomerPending `json:"musteri_bazinda_bekleyen_tutar"`
}
