package sync

import (
	"strings"

	"github.com/shopspring/decimal"
)

// numValue tolerant sayı dönüşümünün sonucu.
type numValue struct {
	dec   decimal.Decimal
	valid bool
}

// NullDecimal kalıcılık katmanının beklediği nullable biçime çevirir.
func (n numValue) NullDecimal() decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: n.dec, Valid: n.valid}
}

// CoerceNumber ham hücre değerini ondalık sayıya indirger. Türkçe ERP
// ihraçlarında ondalık ayırıcı virgül, binlik ayırıcı nokta olabilir.
// Boş girdi null'a gider; çözümlenemeyen girdi (null, false) döndürür.
func CoerceNumber(raw string) (numValue, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return numValue{}, true
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimPrefix(s, "₺")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		// Son ayırıcı ondalıktır; diğeri binlik olarak atılır.
		if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		if strings.Count(s, ",") == 1 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return numValue{}, false
	}
	return numValue{dec: d, valid: true}, true
}
