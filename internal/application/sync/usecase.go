package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/domain"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
	"github.com/topca/siparis-takip-api/internal/domain/repository"
	"github.com/topca/siparis-takip-api/pkg/logger"
)

// UseCase bir yükleme anlık görüntüsünü uzak sipariş kümesiyle mutabakata
// getirir (senkron koşusu). Yüklenen dosyanın, ihraç anındaki açık siparişlerin
// tamamını temsil ettiği varsayılır.
//
// Sözleşme bilinçli olarak toleranslıdır: satır düzeyi yazma hataları loglanır,
// sonuçta raporlanır ve koşuyu durdurmaz. Koşu transaksiyon sarmalamaz; yarıda
// kesilen koşu kısmen senkronlanmış durum bırakır ve bir sonraki yükleme bunu
// düzeltir.
type UseCase struct {
	orders repository.OrderRepository
	log    *logger.Logger
	now    func() time.Time
}

// NewUseCase senkron motorunu kurar.
func NewUseCase(orders repository.OrderRepository, log *logger.Logger) *UseCase {
	return &UseCase{orders: orders, log: log, now: time.Now}
}

// Run bir senkron koşusu yürütür: taze anahtar kümesini okur, her satırı
// yeni/mevcut olarak sınıflandırıp insert/update eder, koşu sonunda dosyada
// görülmeyen ve halen aktif olan anahtarları pasifleştirir. Satırlar kesinlikle
// sıralı işlenir; satır başına tek uzak tur atılır.
//
// Yalnızca başlangıç anahtar okuması hata döndürür; gerisi Result içinde raporlanır.
func (uc *UseCase) Run(ctx context.Context, rows []Row) (*dto.SyncResponse, error) {
	if len(rows) == 0 {
		return nil, domain.ErrEmptySheet
	}

	keys, err := uc.orders.ListKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("mevcut sipariş anahtarları okunamadı: %w", err)
	}
	existing := make(map[string]bool, len(keys)) // anahtar -> aktif
	for _, k := range keys {
		existing[k.Key] = k.Aktif
	}

	res := &dto.SyncResponse{}
	seen := make(map[string]bool, len(rows))
	runTS := uc.now()

	for _, row := range rows {
		key, ok := ExtractKey(row.Cells)
		if !ok {
			// Anahtarsız satır sessizce atlanır; hata değildir.
			uc.log.Warn().Int("satir", row.Line).Msg("anahtar kolonu olmayan satır atlandı")
			res.Skipped = append(res.Skipped, dto.RowIssue{Line: row.Line, Reason: "anahtar kolonu yok"})
			continue
		}
		seen[key] = true

		order := uc.buildOrder(key, row, runTS)

		if _, found := existing[key]; !found {
			if err := uc.orders.Insert(ctx, order); err != nil {
				uc.log.Error().Err(err).Str("anahtar", key).Msg("sipariş eklenemedi")
				res.Failed = append(res.Failed, dto.RowIssue{Line: row.Line, Key: key, Reason: err.Error()})
				continue
			}
			res.Inserted++
		} else {
			if err := uc.orders.Update(ctx, order); err != nil {
				uc.log.Error().Err(err).Str("anahtar", key).Msg("sipariş güncellenemedi")
				res.Failed = append(res.Failed, dto.RowIssue{Line: row.Line, Key: key, Reason: err.Error()})
				continue
			}
			res.Updated++
		}
	}

	// Dosyada görülmeyen ve halen aktif olan anahtarlar pasifleştirilir;
	// anahtar başına tek yazma. Satırlar asla fiziksel silinmez.
	for _, k := range keys {
		if seen[k.Key] || !k.Aktif {
			continue
		}
		if err := uc.orders.Deactivate(ctx, k.Key, runTS); err != nil {
			uc.log.Error().Err(err).Str("anahtar", k.Key).Msg("sipariş pasifleştirilemedi")
			res.Failed = append(res.Failed, dto.RowIssue{Key: k.Key, Reason: err.Error()})
			continue
		}
		res.Deactivated++
	}

	uc.log.Info().
		Int("eklenen", res.Inserted).
		Int("guncellenen", res.Updated).
		Int("pasiflesen", res.Deactivated).
		Int("atlanan", len(res.Skipped)).
		Int("basarisiz", len(res.Failed)).
		Msg("senkron koşusu tamamlandı")

	return res, nil
}

// buildOrder kolon tablosunu uygulayarak tam alan kümesini kurar. Boş kaynak
// değerleri null'da kalır; bozuk tarih/sayı değerleri uyarı loglanıp null'a düşer.
func (uc *UseCase) buildOrder(key string, row Row, ts time.Time) *entity.Order {
	o := &entity.Order{
		MsgS0088:      key,
		Aktif:         true,
		SonGuncelleme: ts,
	}
	for _, spec := range columnTable {
		raw, ok := lookupCell(row.Cells, spec.Label)
		if !ok {
			continue // değer yok -> alan null kalır
		}
		var c coerced
		switch spec.Kind {
		case kindText:
			v := raw
			c.Text = &v
		case kindMoney, kindQty:
			num, ok := CoerceNumber(raw)
			if !ok {
				uc.log.Warn().Int("satir", row.Line).Str("kolon", spec.Field).Str("deger", raw).
					Msg("geçersiz sayı değeri, null yazıldı")
			}
			c.Num = num
		case kindDate:
			d, ok := CoerceDate(raw)
			if !ok {
				uc.log.Warn().Int("satir", row.Line).Str("kolon", spec.Field).Str("deger", raw).
					Msg("geçersiz tarih değeri, null yazıldı")
			}
			c.Date = d
		}
		spec.Apply(o, c)
	}
	return o
}
