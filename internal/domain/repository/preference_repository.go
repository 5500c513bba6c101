package repository

import "github.com/topca/siparis-takip-api/internal/domain/entity"

// PreferenceRepository kullanıcı tercihleri portu.
type PreferenceRepository interface {
	// GetByUser kullanıcının tercih kaydını döndürür; kayıt yoksa (nil, nil).
	GetByUser(userID string) (*entity.UserPreference, error)
	// Upsert kaydı ekler ya da kullanıcı bazında günceller.
	Upsert(pref *entity.UserPreference) error
}
