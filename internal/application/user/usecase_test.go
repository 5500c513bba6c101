package user_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/application/user"
	"github.com/topca/siparis-takip-api/internal/domain"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
	"github.com/topca/siparis-takip-api/pkg/logger"
)

type fakeUserRepo struct {
	byID   map[string]*entity.User
	byName map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: map[string]*entity.User{}, byName: map[string]*entity.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byName[u.KullaniciAdi] = u
	}
	return f
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	f.byID[u.ID] = u
	f.byName[u.KullaniciAdi] = u
	return nil
}
func (f *fakeUserRepo) GetByID(id string) (*entity.User, error)         { return f.byID[id], nil }
func (f *fakeUserRepo) GetByUsername(name string) (*entity.User, error) { return f.byName[name], nil }
func (f *fakeUserRepo) Update(u *entity.User) error {
	f.byID[u.ID] = u
	return nil
}
func (f *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.byID {
		out = append(out, u)
	}
	return out, nil
}
func (f *fakeUserRepo) SetActive(id string, active bool) error {
	if u, ok := f.byID[id]; ok {
		u.Aktif = active
	}
	return nil
}
func (f *fakeUserRepo) UpdateLastLogin(id string, t time.Time) error { return nil }

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "disabled"})
}

func TestCreate_SaticiFiltresiyle(t *testing.T) {
	repo := newFakeUserRepo()
	uc := user.NewUseCase(repo, testLogger())

	resp, err := uc.Create(dto.CreateUserRequest{
		KullaniciAdi: "ayse",
		Sifre:        "gizli123",
		Rol:          entity.RoleSatici,
		TamAd:        "Ayşe Demir",
		Filtre:       entity.OrderFilter{Kind: entity.FilterSinglePerson, Field: entity.FilterField, Value: "ayse"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.True(t, resp.Aktif, "yeni hesap aktif açılır")

	// Şifre düz metin saklanmaz.
	stored := repo.byName["ayse"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "gizli123", stored.SifreHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.SifreHash), []byte("gizli123")))
}

// Upload ve admin rollerinde formdan gelen filtre ne olursa olsun rolün
// zorunlu şekli yazılır.
func TestCreate_RolFiltreyiSabitler(t *testing.T) {
	repo := newFakeUserRepo()
	uc := user.NewUseCase(repo, testLogger())

	resp, err := uc.Create(dto.CreateUserRequest{
		KullaniciAdi: "depocu",
		Sifre:        "gizli123",
		Rol:          entity.RoleUpload,
		Filtre:       entity.OrderFilter{Kind: entity.FilterSinglePerson, Value: "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.FilterUploadOnly, resp.Filtre.Kind)

	resp, err = uc.Create(dto.CreateUserRequest{
		KullaniciAdi: "patron",
		Sifre:        "gizli123",
		Rol:          entity.RoleAdmin,
		Filtre:       entity.OrderFilter{Kind: entity.FilterMultiPerson, Values: []string{"a"}},
	})
	require.NoError(t, err)
	assert.Equal(t, entity.FilterUnrestricted, resp.Filtre.Kind)
}

func TestCreate_KullaniciAdiBenzersiz(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: "u-1", KullaniciAdi: "ayse"})
	uc := user.NewUseCase(repo, testLogger())

	_, err := uc.Create(dto.CreateUserRequest{
		KullaniciAdi: "ayse",
		Sifre:        "gizli123",
		Rol:          entity.RoleSatici,
		Filtre:       entity.OrderFilter{Kind: entity.FilterSinglePerson, Value: "ayse"},
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestCreate_RolFiltreTutarsizligi(t *testing.T) {
	uc := user.NewUseCase(newFakeUserRepo(), testLogger())

	// Satıcı rolü değersiz filtre ile açılamaz.
	_, err := uc.Create(dto.CreateUserRequest{
		KullaniciAdi: "ayse",
		Sifre:        "gizli123",
		Rol:          entity.RoleSatici,
		Filtre:       entity.OrderFilter{Kind: entity.FilterSinglePerson},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Ofis rolü boş satıcı kümesiyle açılamaz.
	_, err = uc.Create(dto.CreateUserRequest{
		KullaniciAdi: "merkez",
		Sifre:        "gizli123",
		Rol:          entity.RoleOfis,
		Filtre:       entity.OrderFilter{Kind: entity.FilterMultiPerson},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Boş şifre mevcut karmayı korur.
func TestUpdate_BosSifreKarmayiKorur(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("eski"), bcrypt.MinCost)
	repo := newFakeUserRepo(&entity.User{
		ID: "u-1", KullaniciAdi: "ayse", SifreHash: string(hash),
		Rol:    entity.RoleSatici,
		Filtre: entity.OrderFilter{Kind: entity.FilterSinglePerson, Value: "ayse"},
	})
	uc := user.NewUseCase(repo, testLogger())

	_, err := uc.Update("u-1", dto.UpdateUserRequest{
		KullaniciAdi: "ayse",
		Rol:          entity.RoleSatici,
		TamAd:        "Ayşe Demir",
		Filtre:       entity.OrderFilter{Kind: entity.FilterSinglePerson, Value: "ayse d"},
	})
	require.NoError(t, err)
	assert.Equal(t, string(hash), repo.byID["u-1"].SifreHash)
	assert.Equal(t, "ayse d", repo.byID["u-1"].Filtre.Value)
}

func TestUpdate_BaskasininAdiAlinamaz(t *testing.T) {
	repo := newFakeUserRepo(
		&entity.User{ID: "u-1", KullaniciAdi: "ayse", Rol: entity.RoleSatici,
			Filtre: entity.OrderFilter{Kind: entity.FilterSinglePerson, Value: "ayse"}},
		&entity.User{ID: "u-2", KullaniciAdi: "merve", Rol: entity.RoleSatici,
			Filtre: entity.OrderFilter{Kind: entity.FilterSinglePerson, Value: "merve"}},
	)
	uc := user.NewUseCase(repo, testLogger())

	_, err := uc.Update("u-1", dto.UpdateUserRequest{
		KullaniciAdi: "merve",
		Rol:          entity.RoleSatici,
		Filtre:       entity.OrderFilter{Kind: entity.FilterSinglePerson, Value: "ayse"},
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestUpdate_BulunamayanKullanici(t *testing.T) {
	uc := user.NewUseCase(newFakeUserRepo(), testLogger())
	_, err := uc.Update("yok", dto.UpdateUserRequest{
		KullaniciAdi: "x", Rol: entity.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSetActive_Pasiflestirme(t *testing.T) {
	repo := newFakeUserRepo(&entity.User{ID: "u-1", KullaniciAdi: "ayse", Aktif: true})
	uc := user.NewUseCase(repo, testLogger())

	require.NoError(t, uc.SetActive("u-1", false))
	assert.False(t, repo.byID["u-1"].Aktif)

	assert.ErrorIs(t, uc.SetActive("yok", false), domain.ErrUserNotFound)
}
