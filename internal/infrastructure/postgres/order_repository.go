package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/topca/siparis-takip-api/internal/domain/entity"
	"github.com/topca/siparis-takip-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo siparisler tablosunun PostgreSQL adaptörü.
type OrderRepo struct {
	db Querier
}

// NewOrderRepository sipariş kalıcılık adaptörünü kurar.
func NewOrderRepository(db Querier) *OrderRepo {
	return &OrderRepo{db: db}
}

// orderColumns SELECT listesi; Scan sırası entity alan sırasıyla birebir.
const orderColumns = `
	msg_s_0088,
	musteri_kodu, musteri_adi, sehir,
	stok_kodu, urun_adi, marka, birim,
	bakiye, f_1, f_5, p_1, p_5,
	son_giris_maliyeti, guncel_maliyet, birim_fiyat, toplam_tutar, kalan_tutar,
	siparis_tarihi, teslim_tarihi, son_giris_tarihi,
	siparis_miktar, merkez_depo_miktar, topca_depo_miktar, siparis_deposu,
	belge_no, sira_no, aciklama, sektor_kodu, grup_kodu, vade, siparis_giren,
	aktif, son_guncelleme`

func scanOrder(row interface{ Scan(dest ...any) error }) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.MsgS0088,
		&o.MusteriKodu, &o.MusteriAdi, &o.Sehir,
		&o.StokKodu, &o.UrunAdi, &o.Marka, &o.Birim,
		&o.Bakiye, &o.F1, &o.F5, &o.P1, &o.P5,
		&o.SonGirisMaliyeti, &o.GuncelMaliyet, &o.BirimFiyat, &o.ToplamTutar, &o.KalanTutar,
		&o.SiparisTarihi, &o.TeslimTarihi, &o.SonGirisTarihi,
		&o.SiparisMiktar, &o.MerkezDepoMiktar, &o.TopcaDepoMiktar, &o.SiparisDeposu,
		&o.BelgeNo, &o.SiraNo, &o.Aciklama, &o.SektorKodu, &o.GrupKodu, &o.Vade, &o.SiparisGiren,
		&o.Aktif, &o.SonGuncelleme,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListActive aktif siparişleri kapsam kısıtlarıyla getirir. Satıcı kısıtı iki
// şekilden birini alır: tekil substring (ILIKE) ya da küme üyeliği (= ANY).
// Tarih aralığı iki ucu dahil uygulanır; sıralama her zaman siparis_tarihi azalan.
func (r *OrderRepo) ListActive(ctx context.Context, scope repository.OrderScope) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM siparisler WHERE aktif = true`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if scope.Salesperson != "" {
		query += ` AND siparis_giren ILIKE ` + arg("%"+scope.Salesperson+"%")
	} else if len(scope.Salespeople) > 0 {
		query += ` AND siparis_giren = ANY(` + arg(scope.Salespeople) + `)`
	}
	if scope.StartDate != nil {
		query += ` AND siparis_tarihi >= ` + arg(*scope.StartDate)
	}
	if scope.EndDate != nil {
		query += ` AND siparis_tarihi <= ` + arg(*scope.EndDate)
	}
	query += ` ORDER BY siparis_tarihi DESC NULLS LAST, msg_s_0088`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("siparişler sorgulanamadı: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("sipariş satırı okunamadı: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sipariş sonuç kümesi: %w", err)
	}
	return orders, nil
}

// ListKeys tüm anahtarları aktiflik bilgisiyle döndürür; senkron motorunun
// başlangıç anlık görüntüsü buradan gelir.
func (r *OrderRepo) ListKeys(ctx context.Context) ([]repository.OrderKey, error) {
	rows, err := r.db.Query(ctx, `SELECT msg_s_0088, aktif FROM siparisler`)
	if err != nil {
		return nil, fmt.Errorf("anahtar kümesi sorgulanamadı: %w", err)
	}
	defer rows.Close()

	var keys []repository.OrderKey
	for rows.Next() {
		var k repository.OrderKey
		if err := rows.Scan(&k.Key, &k.Aktif); err != nil {
			return nil, fmt.Errorf("anahtar satırı okunamadı: %w", err)
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("anahtar sonuç kümesi: %w", err)
	}
	return keys, nil
}

// Insert yeni sipariş satırı ekler; satır aktif doğar.
func (r *OrderRepo) Insert(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO siparisler (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
		        $29, $30, $31, $32, $33, $34)`
	_, err := r.db.Exec(ctx, query,
		o.MsgS0088,
		o.MusteriKodu, o.MusteriAdi, o.Sehir,
		o.StokKodu, o.UrunAdi, o.Marka, o.Birim,
		o.Bakiye, o.F1, o.F5, o.P1, o.P5,
		o.SonGirisMaliyeti, o.GuncelMaliyet, o.BirimFiyat, o.ToplamTutar, o.KalanTutar,
		o.SiparisTarihi, o.TeslimTarihi, o.SonGirisTarihi,
		o.SiparisMiktar, o.MerkezDepoMiktar, o.TopcaDepoMiktar, o.SiparisDeposu,
		o.BelgeNo, o.SiraNo, o.Aciklama, o.SektorKodu, o.GrupKodu, o.Vade, o.SiparisGiren,
		o.Aktif, o.SonGuncelleme,
	)
	if err != nil {
		return fmt.Errorf("sipariş eklenemedi: %w", err)
	}
	return nil
}

// Update tam alan kümesini anahtar üzerinden yazar; aktif bayrağı bilinçli
// olarak dışarıda kalır, sahipliği pasifleştirme adımındadır.
func (r *OrderRepo) Update(ctx context.Context, o *entity.Order) error {
	query := `
		UPDATE siparisler SET
			musteri_kodu = $2, musteri_adi = $3, sehir = $4,
			stok_kodu = $5, urun_adi = $6, marka = $7, birim = $8,
			bakiye = $9, f_1 = $10, f_5 = $11, p_1 = $12, p_5 = $13,
			son_giris_maliyeti = $14, guncel_maliyet = $15, birim_fiyat = $16,
			toplam_tutar = $17, kalan_tutar = $18,
			siparis_tarihi = $19, teslim_tarihi = $20, son_giris_tarihi = $21,
			siparis_miktar = $22, merkez_depo_miktar = $23, topca_depo_miktar = $24,
			siparis_deposu = $25,
			belge_no = $26, sira_no = $27, aciklama = $28, sektor_kodu = $29,
			grup_kodu = $30, vade = $31, siparis_giren = $32,
			son_guncelleme = $33
		WHERE msg_s_0088 = $1`
	_, err := r.db.Exec(ctx, query,
		o.MsgS0088,
		o.MusteriKodu, o.MusteriAdi, o.Sehir,
		o.StokKodu, o.UrunAdi, o.Marka, o.Birim,
		o.Bakiye, o.F1, o.F5, o.P1, o.P5,
		o.SonGirisMaliyeti, o.GuncelMaliyet, o.BirimFiyat, o.ToplamTutar, o.KalanTutar,
		o.SiparisTarihi, o.TeslimTarihi, o.SonGirisTarihi,
		o.SiparisMiktar, o.MerkezDepoMiktar, o.TopcaDepoMiktar, o.SiparisDeposu,
		o.BelgeNo, o.SiraNo, o.Aciklama, o.SektorKodu, o.GrupKodu, o.Vade, o.SiparisGiren,
		o.SonGuncelleme,
	)
	if err != nil {
		return fmt.Errorf("sipariş güncellenemedi: %w", err)
	}
	return nil
}

// Deactivate satırı pasifleştirir; veri silinmez, yalnızca görünürlük kapanır.
func (r *OrderRepo) Deactivate(ctx context.Context, key string, ts time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE siparisler SET aktif = false, son_guncelleme = $2 WHERE msg_s_0088 = $1`,
		key, ts,
	)
	if err != nil {
		return fmt.Errorf("sipariş pasifleştirilemedi: %w", err)
	}
	return nil
}
