package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order, ERP'den Excel ile senkronlanan tek bir sipariş satırı (siparisler tablosu).
// Tek kimlik MsgS0088'dir; aynı anahtar için en fazla bir satır bulunur ve
// senkron motoru bunu insert yerine update ile korur. Kaynakta boş gelen her
// alan null'dır; sıfıra ya da boş string'e düşürülmez.
type Order struct {
	MsgS0088 string // ERP'nin benzersiz sipariş satırı anahtarı

	// Müşteri
	MusteriKodu *string
	MusteriAdi  *string
	Sehir       *string

	// Ürün
	StokKodu *string
	UrunAdi  *string
	Marka    *string
	Birim    *string

	// Parasal alanlar
	Bakiye           decimal.NullDecimal
	F1               decimal.NullDecimal
	F5               decimal.NullDecimal
	P1               decimal.NullDecimal
	P5               decimal.NullDecimal
	SonGirisMaliyeti decimal.NullDecimal
	GuncelMaliyet    decimal.NullDecimal
	BirimFiyat       decimal.NullDecimal
	ToplamTutar      decimal.NullDecimal
	KalanTutar       decimal.NullDecimal

	// Tarihler
	SiparisTarihi  *time.Time
	TeslimTarihi   *time.Time
	SonGirisTarihi *time.Time

	// Miktarlar ve depolar
	SiparisMiktar    decimal.NullDecimal
	MerkezDepoMiktar decimal.NullDecimal
	TopcaDepoMiktar  decimal.NullDecimal
	SiparisDeposu    *string

	// Belge ve sınıflandırma
	BelgeNo      *string
	SiraNo       *string
	Aciklama     *string
	SektorKodu   *string
	GrupKodu     *string
	Vade         *string
	SiparisGiren *string // satıcı kimliği; rol filtreleri bu alana uygulanır

	Aktif         bool // soft-delete; pasif satırlar hiçbir role görünmez
	SonGuncelleme time.Time
}
