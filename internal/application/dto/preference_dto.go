package dto

import "github.com/topca/siparis-takip-api/internal/domain/entity"

// PreferenceRequest tercih kaydetme girdisi.
type PreferenceRequest struct {
	HiddenColumns []string                `json:"kolon_tercihleri"`
	FilterPref    entity.FilterPreference `json:"filtre_tercihleri"`
}

// PreferenceResponse tercih çıktısı. Kayıt yoksa varsayılan boş tercihler döner.
type PreferenceResponse struct {
	HiddenColumns []string                `json:"kolon_tercihleri"`
	FilterPref    entity.FilterPreference `json:"filtre_tercihleri"`
	SonGuncelleme string                  `json:"son_guncelleme,omitempty"`
}
