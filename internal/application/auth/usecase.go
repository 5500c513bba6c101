package auth

import (
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/domain"
	"github.com/topca/siparis-takip-api/internal/domain/repository"
	"github.com/topca/siparis-takip-api/pkg/jwt"
	"github.com/topca/siparis-takip-api/pkg/logger"
)

// Config token üretimi için gereken ayarlar.
type Config struct {
	JWTSecret         string
	JWTIssuer         string
	ExpirationMinutes int
}

// UseCase kimlik doğrulama akışı: kullanıcı adı + şifre -> oturum token'ı.
type UseCase struct {
	users repository.UserRepository
	cfg   Config
	log   *logger.Logger
	now   func() time.Time
}

func NewUseCase(users repository.UserRepository, cfg Config, log *logger.Logger) *UseCase {
	return &UseCase{users: users, cfg: cfg, log: log, now: time.Now}
}

// Login kimlik bilgilerini doğrular ve JWT üretir. Yanlış şifre ile pasif
// hesap aynı genel hatayı döndürür; hangi durumun geçerli olduğu dışarıya
// sızdırılmaz.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(req.KullaniciAdi)
	if err != nil {
		return nil, fmt.Errorf("kullanıcı sorgulanamadı: %w", err)
	}
	if user == nil || !user.Aktif {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SifreHash), []byte(req.Sifre)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Son giriş damgası bilgi amaçlı; yazılamazsa oturum yine açılır.
	if err := uc.users.UpdateLastLogin(user.ID, uc.now()); err != nil {
		uc.log.Warn().Err(err).Str("kullanici", user.KullaniciAdi).Msg("son giriş damgası yazılamadı")
	}

	filterJSON, err := json.Marshal(user.Filtre)
	if err != nil {
		return nil, fmt.Errorf("filtre tanımlayıcısı kodlanamadı: %w", err)
	}

	token, err := jwt.Generate(uc.cfg.JWTSecret, user.ID, user.Rol, user.TamAd,
		string(filterJSON), uc.cfg.JWTIssuer, uc.cfg.ExpirationMinutes)
	if err != nil {
		return nil, fmt.Errorf("token üretilemedi: %w", err)
	}

	uc.log.Info().Str("kullanici", user.KullaniciAdi).Str("rol", user.Rol).Msg("oturum açıldı")

	return &dto.LoginResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}
