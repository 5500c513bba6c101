package sync_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topca/siparis-takip-api/internal/application/sync"
	"github.com/topca/siparis-takip-api/internal/domain"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
	"github.com/topca/siparis-takip-api/internal/domain/repository"
	"github.com/topca/siparis-takip-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Sahte sipariş deposu: yazılanları kaydeder, istenirse anahtara göre hata üretir.
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	keys        []repository.OrderKey
	inserted    []*entity.Order
	updated     []*entity.Order
	deactivated []string
	failKeys    map[string]error
	keysErr     error
}

func (f *fakeOrderRepo) ListActive(ctx context.Context, scope repository.OrderScope) ([]*entity.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) ListKeys(ctx context.Context) ([]repository.OrderKey, error) {
	if f.keysErr != nil {
		return nil, f.keysErr
	}
	return f.keys, nil
}

func (f *fakeOrderRepo) Insert(ctx context.Context, o *entity.Order) error {
	if err := f.failKeys[o.MsgS0088]; err != nil {
		return err
	}
	f.inserted = append(f.inserted, o)
	return nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, o *entity.Order) error {
	if err := f.failKeys[o.MsgS0088]; err != nil {
		return err
	}
	f.updated = append(f.updated, o)
	return nil
}

func (f *fakeOrderRepo) Deactivate(ctx context.Context, key string, ts time.Time) error {
	if err := f.failKeys[key]; err != nil {
		return err
	}
	f.deactivated = append(f.deactivated, key)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func orderRow(line int, key string) sync.Row {
	return sync.Row{Line: line, Cells: map[string]string{"#msg_S_0088": key}}
}

// ──────────────────────────────────────────────────────────────────────────────
// Senkron koşusu
// ──────────────────────────────────────────────────────────────────────────────

// Aynı dosya ikinci kez yüklendiğinde koşu idempotent olmalı:
// tümü güncellenir, hiçbir şey eklenmez ya da pasifleşmez.
func TestRun_AyniDosyaIdempotent(t *testing.T) {
	repo := &fakeOrderRepo{keys: []repository.OrderKey{
		{Key: "S-1", Aktif: true},
		{Key: "S-2", Aktif: true},
		{Key: "S-3", Aktif: true},
	}}
	uc := sync.NewUseCase(repo, testLogger())

	rows := []sync.Row{orderRow(2, "S-1"), orderRow(3, "S-2"), orderRow(4, "S-3")}
	res, err := uc.Run(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 3, res.Updated)
	assert.Equal(t, 0, res.Deactivated)
	assert.Empty(t, res.Skipped)
	assert.Empty(t, res.Failed)
}

func TestRun_YeniEklenirEksikPasiflesir(t *testing.T) {
	repo := &fakeOrderRepo{keys: []repository.OrderKey{
		{Key: "S-1", Aktif: true},
		{Key: "S-2", Aktif: true},
		{Key: "S-9", Aktif: false}, // zaten pasif: tekrar yazılmamalı
	}}
	uc := sync.NewUseCase(repo, testLogger())

	rows := []sync.Row{orderRow(2, "S-1"), orderRow(3, "S-5")}
	res, err := uc.Run(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Inserted, "S-5 yeni olarak eklenmeli")
	assert.Equal(t, 1, res.Updated, "S-1 yerinde güncellenmeli")
	assert.Equal(t, 1, res.Deactivated, "dosyada olmayan aktif S-2 pasifleşmeli")

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "S-5", repo.inserted[0].MsgS0088)
	assert.True(t, repo.inserted[0].Aktif, "yeni sipariş aktif eklenmeli")

	assert.Equal(t, []string{"S-2"}, repo.deactivated,
		"pasifleştirme yalnızca önceden aktif olan eksik anahtara uygulanmalı")
}

// Anahtar kolonunun iki yazımı da olmayan satır üç sayaçtan da dışlanır ve
// pasifleştirme karşılaştırmasında görülmüş sayılmaz.
func TestRun_AnahtarsizSatirAtlanir(t *testing.T) {
	repo := &fakeOrderRepo{keys: []repository.OrderKey{{Key: "S-1", Aktif: true}}}
	uc := sync.NewUseCase(repo, testLogger())

	rows := []sync.Row{
		{Line: 2, Cells: map[string]string{"Bakiye": "10"}}, // anahtar yok
		orderRow(3, "S-1"),
	}
	res, err := uc.Run(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 0, res.Deactivated)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, 2, res.Skipped[0].Line)
}

// Satır düzeyi yazma hatası koşuyu durdurmaz; sayaçlardan dışlanır ve raporlanır.
func TestRun_YazmaHatasiKosuyuDurdurmaz(t *testing.T) {
	repo := &fakeOrderRepo{
		keys:     []repository.OrderKey{{Key: "S-1", Aktif: true}},
		failKeys: map[string]error{"S-2": errors.New("baglanti koptu")},
	}
	uc := sync.NewUseCase(repo, testLogger())

	rows := []sync.Row{orderRow(2, "S-2"), orderRow(3, "S-1")}
	res, err := uc.Run(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Inserted)
	assert.Equal(t, 1, res.Updated, "S-1 hata sonrasında da işlenmeli")
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "S-2", res.Failed[0].Key)
}

func TestRun_BosDosyaHata(t *testing.T) {
	uc := sync.NewUseCase(&fakeOrderRepo{}, testLogger())
	_, err := uc.Run(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptySheet)
}

// Başlangıç anahtar okuması tek kullanıcıya görünür hata yoludur.
func TestRun_AnahtarOkumaHatasiYayilir(t *testing.T) {
	repo := &fakeOrderRepo{keysErr: errors.New("timeout")}
	uc := sync.NewUseCase(repo, testLogger())
	_, err := uc.Run(context.Background(), []sync.Row{orderRow(2, "S-1")})
	assert.Error(t, err)
}

// Kolon eşlemesi: tanınan alanlar dolar, boş alanlar null kalır.
func TestRun_KolonEslemesi(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := sync.NewUseCase(repo, testLogger())

	rows := []sync.Row{{Line: 2, Cells: map[string]string{
		"msg_S_0088":  "S-7",
		"msg_S_0201":  "Akyol Hırdavat",
		"#msg_S_0024": "Bosch",
		"#msg_S_0240": "31.12.2023",
		"msg_S_0249":  "1.234,56",
		"#msg_S_1130": "ayşe",
	}}}
	_, err := uc.Run(context.Background(), rows)
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	o := repo.inserted[0]
	require.NotNil(t, o.MusteriAdi)
	assert.Equal(t, "Akyol Hırdavat", *o.MusteriAdi)
	require.NotNil(t, o.Marka)
	assert.Equal(t, "Bosch", *o.Marka)
	require.NotNil(t, o.SiparisTarihi)
	assert.Equal(t, "2023-12-31", o.SiparisTarihi.Format("2006-01-02"))
	require.True(t, o.ToplamTutar.Valid)
	assert.Equal(t, "1234.56", o.ToplamTutar.Decimal.String())
	require.NotNil(t, o.SiparisGiren)
	assert.Equal(t, "ayşe", *o.SiparisGiren)

	assert.Nil(t, o.TeslimTarihi, "dosyada olmayan alan null kalmalı")
	assert.False(t, o.Bakiye.Valid, "boş parasal alan null kalmalı")
}
