package order_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topca/siparis-takip-api/internal/application/order"
	"github.com/topca/siparis-takip-api/internal/domain"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
	"github.com/topca/siparis-takip-api/internal/domain/repository"
)

type fakeOrderRepo struct {
	orders    []*entity.Order
	lastScope *repository.OrderScope
	calls     int
}

func (f *fakeOrderRepo) ListActive(ctx context.Context, scope repository.OrderScope) ([]*entity.Order, error) {
	f.calls++
	f.lastScope = &scope
	return f.orders, nil
}

func (f *fakeOrderRepo) ListKeys(ctx context.Context) ([]repository.OrderKey, error) { return nil, nil }
func (f *fakeOrderRepo) Insert(ctx context.Context, o *entity.Order) error          { return nil }
func (f *fakeOrderRepo) Update(ctx context.Context, o *entity.Order) error          { return nil }
func (f *fakeOrderRepo) Deactivate(ctx context.Context, key string, ts time.Time) error {
	return nil
}

func strPtr(s string) *string { return &s }

func makeOrder(key string, customer, brand *string) *entity.Order {
	return &entity.Order{MsgS0088: key, MusteriAdi: customer, Marka: brand, Aktif: true}
}

// ──────────────────────────────────────────────────────────────────────────────
// Rol filtresi -> kapsam çözümü
// ──────────────────────────────────────────────────────────────────────────────

func TestList_TekilSaticiKapsami(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := order.NewUseCase(repo)

	filter := entity.OrderFilter{Kind: entity.FilterSinglePerson, Field: entity.FilterField, Value: "ayse"}
	_, err := uc.List(context.Background(), filter, order.ListRequest{})
	require.NoError(t, err)

	require.NotNil(t, repo.lastScope)
	assert.Equal(t, "ayse", repo.lastScope.Salesperson,
		"tekil satıcı substring kısıtı kapsamda taşınmalı")
	assert.Empty(t, repo.lastScope.Salespeople)
}

func TestList_OfisKumesiKapsami(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := order.NewUseCase(repo)

	filter := entity.OrderFilter{Kind: entity.FilterMultiPerson, Field: entity.FilterField, Values: []string{"merve", "betül"}}
	_, err := uc.List(context.Background(), filter, order.ListRequest{})
	require.NoError(t, err)

	require.NotNil(t, repo.lastScope)
	assert.Equal(t, []string{"merve", "betül"}, repo.lastScope.Salespeople)
}

// Sadece-yükleme filtresi hiçbir sipariş sorgusu tetiklemez.
func TestList_UploadOnlySorguAtmaz(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := order.NewUseCase(repo)

	filter := entity.OrderFilter{Kind: entity.FilterUploadOnly}
	_, err := uc.List(context.Background(), filter, order.ListRequest{})

	assert.ErrorIs(t, err, domain.ErrUploadOnly)
	assert.Equal(t, 0, repo.calls, "depoya hiç gidilmemeli")
}

func TestList_AdminKisitsiz(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := order.NewUseCase(repo)

	_, err := uc.List(context.Background(), entity.OrderFilter{Kind: entity.FilterUnrestricted}, order.ListRequest{})
	require.NoError(t, err)

	require.NotNil(t, repo.lastScope)
	assert.Empty(t, repo.lastScope.Salesperson)
	assert.Empty(t, repo.lastScope.Salespeople)
}

func TestList_HizliFiltreAraligi(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := order.NewUseCase(repo)

	_, err := uc.List(context.Background(), entity.OrderFilter{Kind: entity.FilterUnrestricted},
		order.ListRequest{QuickFilter: order.QuickLast7Days})
	require.NoError(t, err)

	require.NotNil(t, repo.lastScope.StartDate)
	require.NotNil(t, repo.lastScope.EndDate)
	assert.Equal(t, 6, int(repo.lastScope.EndDate.Sub(*repo.lastScope.StartDate).Hours()/24))
}

func TestList_GecersizGruplamaAnahtari(t *testing.T) {
	uc := order.NewUseCase(&fakeOrderRepo{})
	_, err := uc.List(context.Background(), entity.OrderFilter{Kind: entity.FilterUnrestricted},
		order.ListRequest{GroupBy: "sehir"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Serbest metin arama
// ──────────────────────────────────────────────────────────────────────────────

// Arama Türkçe harf katlamasıyla büyük/küçük duyarsızdır ve gizli kolonlarda
// eşleşme aramaz.
func TestList_AramaGorunurKolonlarda(t *testing.T) {
	repo := &fakeOrderRepo{orders: []*entity.Order{
		makeOrder("S-1", strPtr("KARDEŞLER HIRDAVAT"), strPtr("Bosch")),
		makeOrder("S-2", strPtr("Yılmaz Ticaret"), strPtr("Makita")),
	}}
	uc := order.NewUseCase(repo)

	resp, err := uc.List(context.Background(), entity.OrderFilter{Kind: entity.FilterUnrestricted},
		order.ListRequest{Search: "kardeşler"})
	require.NoError(t, err)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "S-1", resp.Rows[0].Order.MsgS0088)

	// Aynı sorgu, musteri_adi gizliyken eşleşme bulmaz.
	resp, err = uc.List(context.Background(), entity.OrderFilter{Kind: entity.FilterUnrestricted},
		order.ListRequest{Search: "kardeşler", HiddenColumns: []string{"musteri_adi"}})
	require.NoError(t, err)
	assert.Empty(t, resp.Rows)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gruplama
// ──────────────────────────────────────────────────────────────────────────────

// İki ayrı marka + bir null marka, beş siparişte tam üç grup üretir;
// üye sayıları toplamı beştir.
func TestBuildView_GruplamaUcGrup(t *testing.T) {
	orders := []*entity.Order{
		makeOrder("S-1", strPtr("A"), strPtr("Bosch")),
		makeOrder("S-2", strPtr("B"), strPtr("Makita")),
		makeOrder("S-3", strPtr("C"), strPtr("Bosch")),
		makeOrder("S-4", strPtr("D"), nil),
		makeOrder("S-5", strPtr("E"), strPtr("Makita")),
	}

	view := order.BuildView(orders, order.GroupByBrand, nil, 0, 50)

	groupCount := 0
	memberSum := 0
	for _, row := range view.Rows {
		if row.Type == "group" {
			groupCount++
			memberSum += row.Group.Count
		}
	}
	assert.Equal(t, 3, groupCount, "iki adlandırılmış + bir Belirtilmemiş grup olmalı")
	assert.Equal(t, 5, memberSum, "üye sayıları toplam satır sayısına eşit olmalı")
}

// Gruplar anahtar string'ine göre artan; null kovası kendi etiketiyle sıralanır.
func TestBuildView_GrupSirasi(t *testing.T) {
	orders := []*entity.Order{
		makeOrder("S-1", nil, strPtr("Makita")),
		makeOrder("S-2", nil, nil),
		makeOrder("S-3", nil, strPtr("Bosch")),
	}

	view := order.BuildView(orders, order.GroupByBrand, nil, 0, 50)

	var keys []string
	for _, row := range view.Rows {
		if row.Type == "group" {
			keys = append(keys, row.Group.Key)
		}
	}
	assert.Equal(t, []string{order.NullGroupLabel, "Bosch", "Makita"}, keys)
}

// Katlanmış grubun üyeleri düzleştirilmiş listeye girmez; başlık girer.
func TestBuildView_KatlanmisGrup(t *testing.T) {
	orders := []*entity.Order{
		makeOrder("S-1", nil, strPtr("Bosch")),
		makeOrder("S-2", nil, strPtr("Bosch")),
		makeOrder("S-3", nil, strPtr("Makita")),
	}

	view := order.BuildView(orders, order.GroupByBrand, []string{"Bosch"}, 0, 50)

	// Beklenen düz liste: [Bosch başlık] [Makita başlık] [S-3]
	require.Equal(t, 3, view.TotalRows)
	assert.Equal(t, "group", view.Rows[0].Type)
	assert.True(t, view.Rows[0].Group.Collapsed)
	assert.Equal(t, "group", view.Rows[1].Type)
	assert.Equal(t, "order", view.Rows[2].Type)
	assert.Equal(t, "S-3", view.Rows[2].Order.MsgS0088)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sayfalama
// ──────────────────────────────────────────────────────────────────────────────

// 45 satır, sayfa boyutu 20: sayfa 2 (sıfır tabanlı) tam 5 satır gösterir
// ve ileri gezinme kapalıdır.
func TestBuildView_SayfalamaSonSayfa(t *testing.T) {
	var orders []*entity.Order
	for i := 0; i < 45; i++ {
		orders = append(orders, makeOrder(fmt.Sprintf("S-%d", i), nil, nil))
	}

	view := order.BuildView(orders, "", nil, 2, 20)

	assert.Len(t, view.Rows, 5)
	assert.Equal(t, 2, view.Page)
	assert.Equal(t, 3, view.TotalPages)
	assert.True(t, view.HasPrev)
	assert.False(t, view.HasNext, "son sayfada ileri gezinme kapalı olmalı")
}

// Aralık dışı sayfa isteği sınıra kıstırılır, asla sarmaz.
func TestBuildView_AralikDisiSayfa(t *testing.T) {
	var orders []*entity.Order
	for i := 0; i < 25; i++ {
		orders = append(orders, makeOrder(fmt.Sprintf("S-%d", i), nil, nil))
	}

	view := order.BuildView(orders, "", nil, 99, 20)
	assert.Equal(t, 1, view.Page, "son geçerli sayfaya kıstırılmalı")
	assert.Len(t, view.Rows, 5)

	view = order.BuildView(orders, "", nil, -3, 20)
	assert.Equal(t, 0, view.Page)
}

// Geçersiz sayfa boyutu varsayılana düşer.
func TestBuildView_GecersizSayfaBoyutu(t *testing.T) {
	var orders []*entity.Order
	for i := 0; i < 30; i++ {
		orders = append(orders, makeOrder(fmt.Sprintf("S-%d", i), nil, nil))
	}

	view := order.BuildView(orders, "", nil, 0, 17)
	assert.Equal(t, order.DefaultPageSize, view.PageSize)
	assert.Len(t, view.Rows, 20)
}

func TestBuildView_BosListe(t *testing.T) {
	view := order.BuildView(nil, "", nil, 0, 20)
	assert.Empty(t, view.Rows)
	assert.Equal(t, 1, view.TotalPages)
	assert.False(t, view.HasPrev)
	assert.False(t, view.HasNext)
}
