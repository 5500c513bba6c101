package dto

import (
	"time"

	"github.com/topca/siparis-takip-api/internal/domain/entity"
)

// LoginRequest giriş isteği.
type LoginRequest struct {
	KullaniciAdi string `json:"kullanici_adi" validate:"required"`
	Sifre        string `json:"sifre" validate:"required"`
}

// LoginResponse token + kullanıcı bilgisi.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateUserRequest yeni kullanıcı girdisi (yalnızca admin).
// Filtre eski tel şeklinde gelir ({field,value} / {field,values} / {onlyUpload});
// entity.OrderFilter çözümlemeyi tek noktada yapar.
type CreateUserRequest struct {
	KullaniciAdi string             `json:"kullanici_adi" validate:"required,min=2,max=100"`
	Sifre        string             `json:"sifre" validate:"required,min=4"`
	Rol          string             `json:"rol" validate:"required,oneof=satici ofis admin upload"`
	TamAd        string             `json:"tam_ad" validate:"omitempty,max=200"`
	Eposta       string             `json:"eposta" validate:"omitempty,email"`
	Filtre       entity.OrderFilter `json:"filtre"`
}

// UpdateUserRequest kullanıcı güncelleme girdisi. Sifre boşsa mevcut şifre korunur.
type UpdateUserRequest struct {
	KullaniciAdi string             `json:"kullanici_adi" validate:"required,min=2,max=100"`
	Sifre        string             `json:"sifre" validate:"omitempty,min=4"`
	Rol          string             `json:"rol" validate:"required,oneof=satici ofis admin upload"`
	TamAd        string             `json:"tam_ad" validate:"omitempty,max=200"`
	Eposta       string             `json:"eposta" validate:"omitempty,email"`
	Filtre       entity.OrderFilter `json:"filtre"`
}

// SetActiveRequest hesabı aktifleştirme/pasifleştirme girdisi.
type SetActiveRequest struct {
	Aktif bool `json:"aktif"`
}

// NewUserResponse entity'den şifresiz kullanıcı çıktısı üretir.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		KullaniciAdi: u.KullaniciAdi,
		Rol:          u.Rol,
		Filtre:       u.Filtre,
		TamAd:        u.TamAd,
		Eposta:       u.Eposta,
		Aktif:        u.Aktif,
		SonGiris:     u.SonGiris,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// UserResponse kullanıcı çıktısı (şifre alanı yok).
type UserResponse struct {
	ID           string             `json:"id"`
	KullaniciAdi string             `json:"kullanici_adi"`
	Rol          string             `json:"rol"`
	Filtre       entity.OrderFilter `json:"filtre"`
	TamAd        string             `json:"tam_ad"`
	Eposta       string             `json:"eposta"`
	Aktif        bool               `json:"aktif"`
	SonGiris     *time.Time         `json:"son_giris,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
