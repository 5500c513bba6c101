package order

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
)

func dateStr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func datePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func decPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// toOrderResponse varlığı görüntü satırına çevirir. Saklanan tarih olduğu gibi
// sunulur; görüntü katmanında gün kaydırma yapılmaz (tarih düzeltmesi tek
// yerde, içeri alma katmanında yaşar).
func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		MsgS0088: o.MsgS0088,

		MusteriKodu: o.MusteriKodu,
		MusteriAdi:  o.MusteriAdi,
		Sehir:       o.Sehir,

		StokKodu: o.StokKodu,
		UrunAdi:  o.UrunAdi,
		Marka:    o.Marka,
		Birim:    o.Birim,

		Bakiye:           decPtr(o.Bakiye),
		F1:               decPtr(o.F1),
		F5:               decPtr(o.F5),
		P1:               decPtr(o.P1),
		P5:               decPtr(o.P5),
		SonGirisMaliyeti: decPtr(o.SonGirisMaliyeti),
		GuncelMaliyet:    decPtr(o.GuncelMaliyet),
		BirimFiyat:       decPtr(o.BirimFiyat),
		ToplamTutar:      decPtr(o.ToplamTutar),
		KalanTutar:       decPtr(o.KalanTutar),

		SiparisTarihi:  datePtr(o.SiparisTarihi),
		TeslimTarihi:   datePtr(o.TeslimTarihi),
		SonGirisTarihi: datePtr(o.SonGirisTarihi),

		SiparisMiktar:    decPtr(o.SiparisMiktar),
		MerkezDepoMiktar: decPtr(o.MerkezDepoMiktar),
		TopcaDepoMiktar:  decPtr(o.TopcaDepoMiktar),
		SiparisDeposu:    o.SiparisDeposu,

		BelgeNo:      o.BelgeNo,
		SiraNo:       o.SiraNo,
		Aciklama:     o.Aciklama,
		SektorKodu:   o.SektorKodu,
		GrupKodu:     o.GrupKodu,
		Vade:         o.Vade,
		SiparisGiren: o.SiparisGiren,

		SonGuncelleme: o.SonGuncelleme.Format(time.RFC3339),
	}
}
