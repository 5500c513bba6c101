package preference

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
	"github.com/topca/siparis-takip-api/internal/domain/repository"
)

// UseCase kullanıcı başına tablo tercihleri: gizli kolonlar ve kayıtlı
// tarih filtresi. Kayıt yoksa boş varsayılan döner; ilk kayıtta oluşur.
type UseCase struct {
	prefs repository.PreferenceRepository
	now   func() time.Time
}

func NewUseCase(prefs repository.PreferenceRepository) *UseCase {
	return &UseCase{prefs: prefs, now: time.Now}
}

// Get kullanıcının tercihlerini döndürür. Kayıt yoksa hata değil, boş
// varsayılan döner; istemci her zaman kullanılabilir bir tercih görür.
func (uc *UseCase) Get(userID string) (*dto.PreferenceResponse, error) {
	p, err := uc.prefs.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("tercihler yüklenemedi: %w", err)
	}
	if p == nil {
		return &dto.PreferenceResponse{HiddenColumns: []string{}}, nil
	}
	hidden := p.HiddenColumns
	if hidden == nil {
		hidden = []string{}
	}
	return &dto.PreferenceResponse{
		HiddenColumns: hidden,
		FilterPref:    p.FilterPref,
		SonGuncelleme: p.SonGuncelleme.Format(time.RFC3339),
	}, nil
}

// Save tercihleri yazar; kullanıcı başına tek kayıt tutulur (upsert).
func (uc *UseCase) Save(userID string, req dto.PreferenceRequest) error {
	hidden := req.HiddenColumns
	if hidden == nil {
		hidden = []string{}
	}
	p := &entity.UserPreference{
		ID:            uuid.New().String(),
		KullaniciID:   userID,
		HiddenColumns: hidden,
		FilterPref:    req.FilterPref,
		SonGuncelleme: uc.now(),
	}
	if err := uc.prefs.Upsert(p); err != nil {
		return fmt.Errorf("tercihler kaydedilemedi: %w", err)
	}
	return nil
}
