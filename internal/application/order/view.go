package order

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/topca/siparis-takip-api/internal/application/dto"
	"github.com/topca/siparis-takip-api/internal/domain/entity"
)

// Gruplanabilen alanların sabit kümesi; gruplama her zaman tek seviyedir.
const (
	GroupByOrderDate = "siparis_tarihi"
	GroupByCustomer  = "musteri_adi"
	GroupByBrand     = "marka"
)

// NullGroupLabel boş/null grup değerleri için sabit kova; kendi etiketine
// göre sıralanır, öne ya da sona zorlanmaz.
const NullGroupLabel = "Belirtilmemiş"

// Sayfa boyutu sabit seçenek kümesi; geçersiz değer varsayılana düşer.
var PageSizes = []int{10, 20, 30, 40, 50}

const DefaultPageSize = 20

// ValidGroupBy gruplama anahtarının sabit kümede olup olmadığını söyler.
func ValidGroupBy(key string) bool {
	switch key {
	case "", GroupByOrderDate, GroupByCustomer, GroupByBrand:
		return true
	}
	return false
}

func validPageSize(n int) int {
	for _, s := range PageSizes {
		if n == s {
			return n
		}
	}
	return DefaultPageSize
}

// Türkçe harf sırası; grup anahtarları bu karşılaştırıcıyla artan sıralanır.
var turkishCollator = collate.New(language.Turkish)

func groupKey(o *entity.Order, groupBy string) string {
	switch groupBy {
	case GroupByOrderDate:
		return dateStr(o.SiparisTarihi)
	case GroupByCustomer:
		return strVal(o.MusteriAdi)
	case GroupByBrand:
		return strVal(o.Marka)
	}
	return ""
}

type group struct {
	key     string // boş değerler için NullGroupLabel
	members []*entity.Order
}

// buildGroups siparişleri tek seviyede gruplar. Üye sırası getirme sırasıdır
// (siparis_tarihi azalan); gruplar anahtar string'ine göre artan sıralanır.
func buildGroups(orders []*entity.Order, groupBy string) []group {
	index := make(map[string]int)
	var groups []group
	for _, o := range orders {
		k := groupKey(o, groupBy)
		if k == "" {
			k = NullGroupLabel
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group{key: k})
		}
		groups[i].members = append(groups[i].members, o)
	}

	// Araya girme sıralaması: grup sayısı küçük kalır, basit eklemeli sıralama yeterli.
	for i := 1; i < len(groups); i++ {
		for j := i; j > 0 && turkishCollator.CompareString(groups[j].key, groups[j-1].key) < 0; j-- {
			groups[j], groups[j-1] = groups[j-1], groups[j]
		}
	}
	return groups
}

// BuildView getirilen sipariş kümesini düz ya da gruplu görünüme çevirir ve
// gruplama sonrası düzleştirilmiş, katlama durumuna duyarlı satır listesi
// üzerinde sayfalar. Katlanmış grupların üyeleri listeye girmez; grup başlığı
// her durumda girer. Aralık dışı sayfa istekleri sınıra kıstırılır.
func BuildView(orders []*entity.Order, groupBy string, collapsed []string, page, pageSize int) *dto.OrderListResponse {
	pageSize = validPageSize(pageSize)

	collapsedSet := make(map[string]bool, len(collapsed))
	for _, k := range collapsed {
		collapsedSet[k] = true
	}

	var flat []dto.ListRow
	if groupBy == "" {
		flat = make([]dto.ListRow, 0, len(orders))
		for _, o := range orders {
			flat = append(flat, dto.ListRow{Type: "order", Order: toOrderResponse(o)})
		}
	} else {
		for _, g := range buildGroups(orders, groupBy) {
			flat = append(flat, dto.ListRow{Type: "group", Group: &dto.GroupHeader{
				Key:       g.key,
				Label:     g.key,
				Count:     len(g.members),
				Collapsed: collapsedSet[g.key],
			}})
			if collapsedSet[g.key] {
				continue
			}
			for _, o := range g.members {
				flat = append(flat, dto.ListRow{Type: "order", Order: toOrderResponse(o)})
			}
		}
	}

	total := len(flat)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 0 {
		page = 0
	}
	if page > totalPages-1 {
		page = totalPages - 1
	}

	startIdx := page * pageSize
	endIdx := startIdx + pageSize
	if startIdx > total {
		startIdx = total
	}
	if endIdx > total {
		endIdx = total
	}

	return &dto.OrderListResponse{
		Rows:       flat[startIdx:endIdx],
		GroupBy:    groupBy,
		Page:       page,
		PageSize:   pageSize,
		TotalRows:  total,
		TotalPages: totalPages,
		OrderCount: len(orders),
		HasPrev:    page > 0,
		HasNext:    page < totalPages-1,
	}
}
