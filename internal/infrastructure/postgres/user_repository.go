package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/topca/siparis-takip-api/internal/domain"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
	"github.com/topca/siparis-takip-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo kullanicilar tablosunun PostgreSQL adaptörü. Filtre tanımlayıcısı
// eski JSON şekliyle JSONB kolonunda saklanır; dönüşümü entity üstlenir.
type UserRepo struct {
	db Querier
}

// NewUserRepository kullanıcı kalıcılık adaptörünü kurar.
func NewUserRepository(db Querier) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `
	id, kullanici_adi, sifre, rol, filtre, tam_ad, eposta, aktif,
	son_giris, created_at, updated_at`

func scanUser(row interface{ Scan(dest ...any) error }) (*entity.User, error) {
	var u entity.User
	var filtre []byte
	err := row.Scan(
		&u.ID, &u.KullaniciAdi, &u.SifreHash, &u.Rol, &filtre,
		&u.TamAd, &u.Eposta, &u.Aktif,
		&u.SonGiris, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(filtre, &u.Filtre); err != nil {
		return nil, fmt.Errorf("filtre kolonu çözümlenemedi: %w", err)
	}
	return &u, nil
}

// Create yeni kullanıcıyı kalıcılaştırır.
func (r *UserRepo) Create(u *entity.User) error {
	filtre, err := json.Marshal(u.Filtre)
	if err != nil {
		return fmt.Errorf("filtre kodlanamadı: %w", err)
	}
	query := `
		INSERT INTO kullanicilar (id, kullanici_adi, sifre, rol, filtre, tam_ad, eposta, aktif, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.db.Exec(context.Background(), query,
		u.ID, u.KullaniciAdi, u.SifreHash, u.Rol, filtre, u.TamAd, u.Eposta, u.Aktif,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("kullanıcı eklenemedi: %w", err)
	}
	return nil
}

// GetByID kullanıcıyı kimliğiyle getirir; kayıt yoksa (nil, nil).
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM kullanicilar WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("kullanıcı okunamadı: %w", err)
	}
	return u, nil
}

// GetByUsername kullanıcıyı adıyla getirir; kayıt yoksa (nil, nil).
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM kullanicilar WHERE kullanici_adi = $1 LIMIT 1`
	u, err := scanUser(r.db.QueryRow(context.Background(), query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("kullanıcı okunamadı: %w", err)
	}
	return u, nil
}

// Update kullanıcı kaydını yazar; aktiflik SetActive üzerinden yönetilir.
func (r *UserRepo) Update(u *entity.User) error {
	filtre, err := json.Marshal(u.Filtre)
	if err != nil {
		return fmt.Errorf("filtre kodlanamadı: %w", err)
	}
	query := `
		UPDATE kullanicilar SET
			kullanici_adi = $2, sifre = $3, rol = $4, filtre = $5,
			tam_ad = $6, eposta = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query,
		u.ID, u.KullaniciAdi, u.SifreHash, u.Rol, filtre, u.TamAd, u.Eposta, u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// List tüm kullanıcıları kullanıcı adına göre sıralı döndürür.
func (r *UserRepo) List() ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM kullanicilar ORDER BY kullanici_adi`
	rows, err := r.db.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("kullanıcılar sorgulanamadı: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("kullanıcı satırı okunamadı: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("kullanıcı sonuç kümesi: %w", err)
	}
	return users, nil
}

// SetActive hesabın aktiflik bayrağını yazar.
func (r *UserRepo) SetActive(id string, active bool) error {
	tag, err := r.db.Exec(context.Background(),
		`UPDATE kullanicilar SET aktif = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("hesap durumu yazılamadı: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// UpdateLastLogin son giriş damgasını yazar.
func (r *UserRepo) UpdateLastLogin(id string, t time.Time) error {
	_, err := r.db.Exec(context.Background(),
		`UPDATE kullanicilar SET son_giris = $2 WHERE id = $1`,
		id, t,
	)
	if err != nil {
		return fmt.Errorf("son giriş yazılamadı: %w", err)
	}
	return nil
}
