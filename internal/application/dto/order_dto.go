package dto

import "github.com/shopspring/decimal"

// OrderResponse görüntülenen tek sipariş satırı. Tarihler YYYY-MM-DD string,
// boş kaynak alanları null olarak çıkar.
type OrderResponse struct {
	MsgS0088 string `json:"msg_s_0088"`

	MusteriKodu *string `json:"musteri_kodu"`
	MusteriAdi  *string `json:"musteri_adi"`
	Sehir       *string `json:"sehir"`

	StokKodu *string `json:"stok_kodu"`
	UrunAdi  *string `json:"urun_adi"`
	Marka    *string `json:"marka"`
	Birim    *string `json:"birim"`

	Bakiye           *decimal.Decimal `json:"bakiye"`
	F1               *decimal.Decimal `json:"f_1"`
	F5               *decimal.Decimal `json:"f_5"`
	P1               *decimal.Decimal `json:"p_1"`
	P5               *decimal.Decimal `json:"p_5"`
	SonGirisMaliyeti *decimal.Decimal `json:"son_giris_maliyeti"`
	GuncelMaliyet    *decimal.Decimal `json:"guncel_maliyet"`
	BirimFiyat       *decimal.Decimal `json:"birim_fiyat"`
	ToplamTutar      *decimal.Decimal `json:"toplam_tutar"`
	KalanTutar       *decimal.Decimal `json:"kalan_tutar"`

	SiparisTarihi  *string `json:"siparis_tarihi"`
	TeslimTarihi   *string `json:"teslim_tarihi"`
	SonGirisTarihi *string `json:"son_giris_tarihi"`

	SiparisMiktar    *decimal.Decimal `json:"siparis_miktar"`
	MerkezDepoMiktar *decimal.Decimal `json:"merkez_depo_miktar"`
	TopcaDepoMiktar  *decimal.Decimal `json:"topca_depo_miktar"`
	SiparisDeposu    *string          `json:"siparis_deposu"`

	BelgeNo      *string `json:"belge_no"`
	SiraNo       *string `json:"sira_no"`
	Aciklama     *string `json:"aciklama"`
	SektorKodu   *string `json:"sektor_kodu"`
	GrupKodu     *string `json:"grup_kodu"`
	Vade         *string `json:"vade"`
	SiparisGiren *string `json:"siparis_giren"`

	SonGuncelleme string `json:"son_guncelleme"`
}

// GroupHeader gruplu görünümde bir grup başlığı.
type GroupHeader struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Count     int    `json:"count"`
	Collapsed bool   `json:"collapsed"`
}

// ListRow düzleştirilmiş listede tek satır: ya grup başlığı ya sipariş.
type ListRow struct {
	Type  string         `json:"type"` // "group" | "order"
	Group *GroupHeader   `json:"group,omitempty"`
	Order *OrderResponse `json:"order,omitempty"`
}

// OrderListResponse sayfalanmış (ve istenirse gruplanmış) sipariş listesi.
// Sayfalama, gruplama sonrası düzleştirilmiş ve katlama durumuna duyarlı
// satır listesi üzerinde çalışır.
type OrderListResponse struct {
	Rows       []ListRow `json:"rows"`
	GroupBy    string    `json:"group_by,omitempty"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalRows  int       `json:"total_rows"`  // düzleştirilmiş satır sayısı
	TotalPages int       `json:"total_pages"`
	OrderCount int       `json:"order_count"` // arama sonrası sipariş sayısı
	HasPrev    bool      `json:"has_prev"`
	HasNext    bool      `json:"has_next"`
}
