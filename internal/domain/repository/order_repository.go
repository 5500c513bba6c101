package repository

import (
	"context"
	"time"

	"github.com/topca/siparis-takip-api/internal/domain/entity"
)

// OrderKey uzak anahtar kümesinin bir elemanı; senkron motoru pasifleştirme
// kararını bu küme üzerinden verir.
type OrderKey struct {
	Key   string
	Aktif bool
}

// OrderScope role bağlı kapsam + tarih aralığı. En fazla bir satıcı kısıtı dolu olur:
// Salesperson (substring) veya Salespeople (küme üyeliği). İkisi de boşsa kısıt yok.
type OrderScope struct {
	Salesperson string
	Salespeople []string
	StartDate   *time.Time // siparis_tarihi alt sınırı (dahil)
	EndDate     *time.Time // siparis_tarihi üst sınırı (dahil)
}

// OrderRepository sipariş tablosunun kalıcılık portu.
type OrderRepository interface {
	// ListActive yalnızca aktif siparişleri, siparis_tarihi azalan sırada döndürür.
	ListActive(ctx context.Context, scope OrderScope) ([]*entity.Order, error)
	// ListKeys tüm anahtarları aktiflik bilgisiyle döndürür (senkron başlangıç anlık görüntüsü).
	ListKeys(ctx context.Context) ([]OrderKey, error)
	Insert(ctx context.Context, order *entity.Order) error
	// Update tam alan kümesini yazar; aktif bayrağına dokunmaz.
	Update(ctx context.Context, order *entity.Order) error
	// Deactivate anahtarı pasifleştirir ve son_guncelleme'yi tazeler. Satır asla silinmez.
	Deactivate(ctx context.Context, key string, ts time.Time) error
}
