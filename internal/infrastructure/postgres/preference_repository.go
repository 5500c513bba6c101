package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/topca/siparis-takip-api/internal/domain/entity"
	"github.com/topca/siparis-takip-api/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo kullanici_tercihleri tablosunun PostgreSQL adaptörü.
// Kullanıcı başına tek satır; gizli kolonlar ve filtre tercihi JSONB saklanır.
type PreferenceRepo struct {
	db Querier
}

// NewPreferenceRepository tercih kalıcılık adaptörünü kurar.
func NewPreferenceRepository(db Querier) *PreferenceRepo {
	return &PreferenceRepo{db: db}
}

// GetByUser kullanıcının tercih kaydını döndürür; kayıt yoksa (nil, nil).
func (r *PreferenceRepo) GetByUser(userID string) (*entity.UserPreference, error) {
	query := `
		SELECT id, kullanici_id, kolon_tercihleri, filtre_tercihleri, son_guncelleme
		FROM kullanici_tercihleri WHERE kullanici_id = $1`

	var p entity.UserPreference
	var kolonlar, filtre []byte
	err := r.db.QueryRow(context.Background(), query, userID).Scan(
		&p.ID, &p.KullaniciID, &kolonlar, &filtre, &p.SonGuncelleme,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("tercih kaydı okunamadı: %w", err)
	}
	if err := json.Unmarshal(kolonlar, &p.HiddenColumns); err != nil {
		return nil, fmt.Errorf("kolon tercihleri çözümlenemedi: %w", err)
	}
	if err := json.Unmarshal(filtre, &p.FilterPref); err != nil {
		return nil, fmt.Errorf("filtre tercihleri çözümlenemedi: %w", err)
	}
	return &p, nil
}

// Upsert kaydı ekler ya da kullanıcı bazında günceller; çakışma anahtarı
// kullanici_id'dir, id yalnızca ilk eklemede yazılır.
func (r *PreferenceRepo) Upsert(p *entity.UserPreference) error {
	kolonlar, err := json.Marshal(p.HiddenColumns)
	if err != nil {
		return fmt.Errorf("kolon tercihleri kodlanamadı: %w", err)
	}
	filtre, err := json.Marshal(p.FilterPref)
	if err != nil {
		return fmt.Errorf("filtre tercihleri kodlanamadı: %w", err)
	}

	query := `
		INSERT INTO kullanici_tercihleri (id, kullanici_id, kolon_tercihleri, filtre_tercihleri, son_guncelleme)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (kullanici_id) DO UPDATE SET
			kolon_tercihleri = EXCLUDED.kolon_tercihleri,
			filtre_tercihleri = EXCLUDED.filtre_tercihleri,
			son_guncelleme = EXCLUDED.son_guncelleme`
	_, err = r.db.Exec(context.Background(), query,
		p.ID, p.KullaniciID, kolonlar, filtre, p.SonGuncelleme,
	)
	if err != nil {
		return fmt.Errorf("tercih kaydı yazılamadı: %w", err)
	}
	return nil
}
