package order

import (
	"github.com/shopspring/decimal"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
)

// Column tabloda gösterilebilen bir kolon: kimlik + satırdan string değer
// çıkaran okuyucu. Serbest metin araması yalnızca görünür (gizlenmemiş)
// kolonların değerlerini tarar.
type Column struct {
	ID    string
	Value func(o *entity.Order) string
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func decVal(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.String()
}

// Columns görüntülenen kolonların sabit kaydı; kimlikler tercihlerdeki
// gizli kolon kimlikleriyle aynıdır.
var Columns = []Column{
	{"msg_s_0088", func(o *entity.Order) string { return o.MsgS0088 }},
	{"musteri_kodu", func(o *entity.Order) string { return strVal(o.MusteriKodu) }},
	{"musteri_adi", func(o *entity.Order) string { return strVal(o.MusteriAdi) }},
	{"sehir", func(o *entity.Order) string { return strVal(o.Sehir) }},
	{"stok_kodu", func(o *entity.Order) string { return strVal(o.StokKodu) }},
	{"urun_adi", func(o *entity.Order) string { return strVal(o.UrunAdi) }},
	{"marka", func(o *entity.Order) string { return strVal(o.Marka) }},
	{"birim", func(o *entity.Order) string { return strVal(o.Birim) }},
	{"bakiye", func(o *entity.Order) string { return decVal(o.Bakiye) }},
	{"f_1", func(o *entity.Order) string { return decVal(o.F1) }},
	{"f_5", func(o *entity.Order) string { return decVal(o.F5) }},
	{"p_1", func(o *entity.Order) string { return decVal(o.P1) }},
	{"p_5", func(o *entity.Order) string { return decVal(o.P5) }},
	{"son_giris_maliyeti", func(o *entity.Order) string { return decVal(o.SonGirisMaliyeti) }},
	{"guncel_maliyet", func(o *entity.Order) string { return decVal(o.GuncelMaliyet) }},
	{"birim_fiyat", func(o *entity.Order) string { return decVal(o.BirimFiyat) }},
	{"toplam_tutar", func(o *entity.Order) string { return decVal(o.ToplamTutar) }},
	{"kalan_tutar", func(o *entity.Order) string { return decVal(o.KalanTutar) }},
	{"siparis_tarihi", func(o *entity.Order) string { return dateStr(o.SiparisTarihi) }},
	{"teslim_tarihi", func(o *entity.Order) string { return dateStr(o.TeslimTarihi) }},
	{"son_giris_tarihi", func(o *entity.Order) string { return dateStr(o.SonGirisTarihi) }},
	{"siparis_miktar", func(o *entity.Order) string { return decVal(o.SiparisMiktar) }},
	{"merkez_depo_miktar", func(o *entity.Order) string { return decVal(o.MerkezDepoMiktar) }},
	{"topca_depo_miktar", func(o *entity.Order) string { return decVal(o.TopcaDepoMiktar) }},
	{"siparis_deposu", func(o *entity.Order) string { return strVal(o.SiparisDeposu) }},
	{"belge_no", func(o *entity.Order) string { return strVal(o.BelgeNo) }},
	{"sira_no", func(o *entity.Order) string { return strVal(o.SiraNo) }},
	{"aciklama", func(o *entity.Order) string { return strVal(o.Aciklama) }},
	{"sektor_kodu", func(o *entity.Order) string { return strVal(o.SektorKodu) }},
	{"grup_kodu", func(o *entity.Order) string { return strVal(o.GrupKodu) }},
	{"vade", func(o *entity.Order) string { return strVal(o.Vade) }},
	{"siparis_giren", func(o *entity.Order) string { return strVal(o.SiparisGiren) }},
}
