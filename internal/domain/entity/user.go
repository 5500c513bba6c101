package entity

import "time"

// Geçerli kullanıcı rolleri.
const (
	RoleSatici = "satici" // tekil satıcı: yalnızca kendi siparişleri
	RoleOfis   = "ofis"   // ofis: birden çok satıcının siparişleri
	RoleAdmin  = "admin"  // tüm siparişler + kullanıcı yönetimi + analitik
	RoleUpload = "upload" // sipariş göremez, yalnızca Excel yükler
)

// ValidRole rolün sabit kümede olup olmadığını söyler.
func ValidRole(role string) bool {
	switch role {
	case RoleSatici, RoleOfis, RoleAdmin, RoleUpload:
		return true
	}
	return false
}

// User sistem kullanıcısı. Filtre, role bağlı sipariş görme kapsamını taşır;
// rol ve filtre birlikte atanır ama bağımsız saklanır.
type User struct {
	ID           string
	KullaniciAdi string // benzersiz
	SifreHash    string // bcrypt; domain'de asla düz metin tutulmaz
	Rol          string // satici, ofis, admin, upload
	Filtre       OrderFilter
	TamAd        string
	Eposta       string
	Aktif        bool
	SonGiris     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
