package sync

import (
	"strings"
	"time"

	"github.com/topca/siparis-takip-api/internal/domain/entity"
)

// Row çözümlenmiş bir Excel satırı: başlık etiketi -> ham hücre değeri.
// Line, hata raporlarında kullanılan 1 tabanlı Excel satır numarasıdır.
type Row struct {
	Line  int
	Cells map[string]string
}

// Anahtar kolonunun kabul edilen iki yazımı. ERP ihracı bazı kolon adlarının
// başına '#' koyar; her iki yazım da eşdeğer kabul edilir.
const (
	keyLabel       = "msg_S_0088"
	keyLabelPrefix = "#msg_S_0088"
)

// valueKind hedef alanın dönüşüm türü.
type valueKind int

const (
	kindText valueKind = iota
	kindMoney
	kindQty
	kindDate
)

// columnSpec tek bir kaynak kolonun hedef alana bağlanışı.
// Label kanonik başlıktır; '#' önekli ve öneksiz yazımların ikisi de alias'tır,
// satır içi '||' zincirleri yerine bu tablo tek yetkili kaynaktır.
type columnSpec struct {
	Label string
	Field string // siparisler tablosundaki hedef kolon (tanılama için)
	Kind  valueKind
	Apply func(o *entity.Order, c coerced)
}

// coerced tek hücrenin dönüştürülmüş hali; Kind'e göre yalnızca biri dolu olur.
type coerced struct {
	Text *string
	Num  numValue
	Date *time.Time
}

// columnTable ERP ihraç kolonlarının tamamı. Yeni bir alias gerektiğinde
// buraya satır eklenir; kod değişmez.
var columnTable = []columnSpec{
	{"Bakiye", "bakiye", kindMoney, func(o *entity.Order, c coerced) { o.Bakiye = c.Num.NullDecimal() }},
	{"F-1", "f_1", kindMoney, func(o *entity.Order, c coerced) { o.F1 = c.Num.NullDecimal() }},
	{"F-5", "f_5", kindMoney, func(o *entity.Order, c coerced) { o.F5 = c.Num.NullDecimal() }},
	{"P-1", "p_1", kindMoney, func(o *entity.Order, c coerced) { o.P1 = c.Num.NullDecimal() }},
	{"P-5", "p_5", kindMoney, func(o *entity.Order, c coerced) { o.P5 = c.Num.NullDecimal() }},
	{"Son Giriş Maliyeti + Kdv", "son_giris_maliyeti", kindMoney, func(o *entity.Order, c coerced) { o.SonGirisMaliyeti = c.Num.NullDecimal() }},
	{"Son Giriş Tarihi", "son_giris_tarihi", kindDate, func(o *entity.Order, c coerced) { o.SonGirisTarihi = c.Date }},
	{"Güncel Maliyet", "guncel_maliyet", kindMoney, func(o *entity.Order, c coerced) { o.GuncelMaliyet = c.Num.NullDecimal() }},
	{"msg_S_0078", "stok_kodu", kindText, func(o *entity.Order, c coerced) { o.StokKodu = c.Text }},
	{"msg_S_0070", "urun_adi", kindText, func(o *entity.Order, c coerced) { o.UrunAdi = c.Text }},
	{"msg_S_0010", "birim", kindText, func(o *entity.Order, c coerced) { o.Birim = c.Text }},
	{"msg_S_0024", "marka", kindText, func(o *entity.Order, c coerced) { o.Marka = c.Text }},
	{"msg_S_0200", "musteri_kodu", kindText, func(o *entity.Order, c coerced) { o.MusteriKodu = c.Text }},
	{"msg_S_0201", "musteri_adi", kindText, func(o *entity.Order, c coerced) { o.MusteriAdi = c.Text }},
	{"msg_S_0240", "siparis_tarihi", kindDate, func(o *entity.Order, c coerced) { o.SiparisTarihi = c.Date }},
	{"msg_S_0241", "teslim_tarihi", kindDate, func(o *entity.Order, c coerced) { o.TeslimTarihi = c.Date }},
	{"msg_S_0243", "belge_no", kindText, func(o *entity.Order, c coerced) { o.BelgeNo = c.Text }},
	{"msg_S_0157", "sira_no", kindText, func(o *entity.Order, c coerced) { o.SiraNo = c.Text }},
	{"msg_S_0159", "siparis_deposu", kindText, func(o *entity.Order, c coerced) { o.SiparisDeposu = c.Text }},
	{"Merkez", "merkez_depo_miktar", kindQty, func(o *entity.Order, c coerced) { o.MerkezDepoMiktar = c.Num.NullDecimal() }},
	{"Topca Dükkan", "topca_depo_miktar", kindQty, func(o *entity.Order, c coerced) { o.TopcaDepoMiktar = c.Num.NullDecimal() }},
	{"msg_S_0244", "siparis_miktar", kindQty, func(o *entity.Order, c coerced) { o.SiparisMiktar = c.Num.NullDecimal() }},
	{"msg_S_0248", "birim_fiyat", kindMoney, func(o *entity.Order, c coerced) { o.BirimFiyat = c.Num.NullDecimal() }},
	{"msg_S_0249", "toplam_tutar", kindMoney, func(o *entity.Order, c coerced) { o.ToplamTutar = c.Num.NullDecimal() }},
	{"msg_S_0253", "kalan_tutar", kindMoney, func(o *entity.Order, c coerced) { o.KalanTutar = c.Num.NullDecimal() }},
	{"msg_S_0260", "aciklama", kindText, func(o *entity.Order, c coerced) { o.Aciklama = c.Text }},
	{"msg_S_0474", "sektor_kodu", kindText, func(o *entity.Order, c coerced) { o.SektorKodu = c.Text }},
	{"msg_S_0471", "grup_kodu", kindText, func(o *entity.Order, c coerced) { o.GrupKodu = c.Text }},
	{"msg_S_0202", "sehir", kindText, func(o *entity.Order, c coerced) { o.Sehir = c.Text }},
	{"msg_S_0099", "vade", kindText, func(o *entity.Order, c coerced) { o.Vade = c.Text }},
	{"msg_S_1130", "siparis_giren", kindText, func(o *entity.Order, c coerced) { o.SiparisGiren = c.Text }},
}

// lookupCell kanonik etiketi ve '#' önekli/öneksiz alias'ını sırayla dener.
func lookupCell(cells map[string]string, label string) (string, bool) {
	if v, ok := cells[label]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}
	var alias string
	if strings.HasPrefix(label, "#") {
		alias = label[1:]
	} else {
		alias = "#" + label
	}
	if v, ok := cells[alias]; ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v), true
	}
	return "", false
}

// ExtractKey satırın benzersiz anahtarını döndürür; iki yazım da yoksa ok=false.
func ExtractKey(cells map[string]string) (string, bool) {
	if v, ok := lookupCell(cells, keyLabelPrefix); ok {
		return v, true
	}
	return lookupCell(cells, keyLabel)
}
