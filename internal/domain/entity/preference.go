package entity

import "time"

// FilterPreference son kullanılan hızlı filtre / tarih aralığı seçimi.
// QuickFilter: "bugun", "bu_hafta", "son_7_gun", "bu_ay" veya boş (özel aralık).
type FilterPreference struct {
	QuickFilter string `json:"quick_filter,omitempty"`
	StartDate   string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate     string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

// UserPreference kullanıcı başına bire bir tercih kaydı (kullanici_tercihleri).
// İlk kayıtta tembel oluşturulur, sonrasında upsert edilir; yalnızca sahibinin
// oturumu tarafından okunup yazılır.
type UserPreference struct {
	ID            string
	KullaniciID   string
	HiddenColumns []string // gizlenen kolon kimlikleri
	FilterPref    FilterPreference
	SonGuncelleme time.Time
}
