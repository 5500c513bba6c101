package repository

import (
	"time"

	"github.com/topca/siparis-takip-api/internal/domain/entity"
)

// UserRepository kullanıcı kalıcılık portu (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	Update(user *entity.User) error
	// List tüm kullanıcıları kullanıcı adına göre sıralı döndürür (yönetim ekranı).
	List() ([]*entity.User, error)
	// SetActive hesabı pasifleştirir/aktifleştirir; pasif hesap giriş yapamaz.
	SetActive(id string, active bool) error
	UpdateLastLogin(id string, t time.Time) error
}
