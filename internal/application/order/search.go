package order

import (
	"strings"
	"unicode"

	"github.com/topca/siparis-takip-api/internal/domain/entity"
)

// foldTR Türkçe harf kurallarıyla küçültür (İ->i, I->ı).
func foldTR(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, s)
}

// applySearch serbest metin aramasını getirilen küme üzerinde uygular:
// görünür (gizlenmemiş) kolonların değerlerinde büyük/küçük harfe duyarsız
// substring eşleşmesi arar. Uzak sorguyu ve oradan gelen toplamları etkilemez.
func applySearch(orders []*entity.Order, query string, hiddenColumns []string) []*entity.Order {
	q := foldTR(strings.TrimSpace(query))
	if q == "" {
		return orders
	}

	hidden := make(map[string]bool, len(hiddenColumns))
	for _, id := range hiddenColumns {
		hidden[id] = true
	}

	var out []*entity.Order
	for _, o := range orders {
		for _, col := range Columns {
			if hidden[col.ID] {
				continue
			}
			if strings.Contains(foldTR(col.Value(o)), q) {
				out = append(out, o)
				break
			}
		}
	}
	return out
}
