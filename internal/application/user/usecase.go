package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/domain"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
	"github.com/topca/siparis-takip-api/internal/domain/repository"
	"github.com/topca/siparis-takip-api/pkg/logger"
)

// UseCase kullanıcı yönetimi: listeleme, oluşturma, güncelleme,
// aktifleştirme/pasifleştirme. Tamamı admin ekranına hizmet eder.
type UseCase struct {
	users repository.UserRepository
	log   *logger.Logger
	now   func() time.Time
}

func NewUseCase(users repository.UserRepository, log *logger.Logger) *UseCase {
	return &UseCase{users: users, log: log, now: time.Now}
}

// List tüm kullanıcıları döndürür; şifre karmaları çıktıya girmez.
func (uc *UseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.users.List()
	if err != nil {
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

// Create yeni kullanıcı açar. Rol ile filtre birlikte doğrulanır; upload ve
// admin rollerinde filtre formdan gelene bakılmaksızın rolün zorunlu şekline
// sabitlenir. Kullanıcı adı benzersizdir.
func (uc *UseCase) Create(req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(req.Rol) {
		return nil, fmt.Errorf("%w: geçersiz rol %q", domain.ErrInvalidInput, req.Rol)
	}

	filter := normalizeFilter(req.Rol, req.Filtre)
	if err := filter.ValidateForRole(req.Rol); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	existing, err := uc.users.GetByUsername(req.KullaniciAdi)
	if err != nil {
		return nil, fmt.Errorf("kullanıcı adı denetlenemedi: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Sifre), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("şifre karması üretilemedi: %w", err)
	}

	now := uc.now()
	u := &entity.User{
		ID:           uuid.New().String(),
		KullaniciAdi: req.KullaniciAdi,
		SifreHash:    string(hash),
		Rol:          req.Rol,
		Filtre:       filter,
		TamAd:        req.TamAd,
		Eposta:       req.Eposta,
		Aktif:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(u); err != nil {
		return nil, fmt.Errorf("kullanıcı kaydedilemedi: %w", err)
	}

	uc.log.Info().Str("kullanici", u.KullaniciAdi).Str("rol", u.Rol).Msg("kullanıcı oluşturuldu")

	resp := dto.NewUserResponse(u)
	return &resp, nil
}

// Update mevcut kullanıcıyı günceller. Şifre alanı boşsa eski karma korunur;
// kullanıcı adı değişikliğinde benzersizlik kendisi hariç denetlenir.
func (uc *UseCase) Update(id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("kullanıcı yüklenemedi: %w", err)
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	if !entity.ValidRole(req.Rol) {
		return nil, fmt.Errorf("%w: geçersiz rol %q", domain.ErrInvalidInput, req.Rol)
	}
	filter := normalizeFilter(req.Rol, req.Filtre)
	if err := filter.ValidateForRole(req.Rol); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err)
	}

	if req.KullaniciAdi != u.KullaniciAdi {
		existing, err := uc.users.GetByUsername(req.KullaniciAdi)
		if err != nil {
			return nil, fmt.Errorf("kullanıcı adı denetlenemedi: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrUsernameTaken
		}
	}

	u.KullaniciAdi = req.KullaniciAdi
	u.Rol = req.Rol
	u.Filtre = filter
	u.TamAd = req.TamAd
	u.Eposta = req.Eposta
	u.UpdatedAt = uc.now()

	if req.Sifre != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Sifre), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("şifre karması üretilemedi: %w", err)
		}
		u.SifreHash = string(hash)
	}

	if err := uc.users.Update(u); err != nil {
		return nil, fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}

	uc.log.Info().Str("kullanici", u.KullaniciAdi).Msg("kullanıcı güncellendi")

	resp := dto.NewUserResponse(u)
	return &resp, nil
}

// SetActive hesabı pasifleştirir ya da yeniden açar. Pasif hesap giriş yapamaz
// ama kaydı ve filtre tanımı silinmez.
func (uc *UseCase) SetActive(id string, active bool) error {
	u, err := uc.users.GetByID(id)
	if err != nil {
		return fmt.Errorf("kullanıcı yüklenemedi: %w", err)
	}
	if u == nil {
		return domain.ErrUserNotFound
	}
	if err := uc.users.SetActive(id, active); err != nil {
		return fmt.Errorf("hesap durumu yazılamadı: %w", err)
	}
	uc.log.Info().Str("kullanici", u.KullaniciAdi).Bool("aktif", active).Msg("hesap durumu değişti")
	return nil
}

// normalizeFilter rolün kendi başına belirlediği filtre şekillerini formdan
// gelen değerden bağımsız sabitler; satıcı ve ofis için gelen şekil korunur,
// boş Kind eski istemci uyumu için rolün varsayılanına tamamlanır.
func normalizeFilter(role string, f entity.OrderFilter) entity.OrderFilter {
	switch role {
	case entity.RoleUpload:
		return entity.OrderFilter{Kind: entity.FilterUploadOnly}
	case entity.RoleAdmin:
		return entity.OrderFilter{Kind: entity.FilterUnrestricted}
	}
	if f.Kind == "" {
		d := entity.DefaultFilterForRole(role)
		d.Value = f.Value
		if f.Values != nil {
			d.Values = f.Values
		}
		return d
	}
	if f.Field == "" {
		f.Field = entity.FilterField
	}
	return f
}
