package entity

import (
	"encoding/json"
	"fmt"
)

// FilterKind sipariş görme kapsamının dört olası şeklinden birini işaretler.
// Eski istemci, kullanıcı kaydında şekli alan varlığına göre ayırt ediyordu
// ({field,value} / {field,values} / {onlyUpload} / null); burada tek bir tagged
// union'a indirgenir ve sorgu katmanı Kind üzerinde exhaustive switch yapar.
type FilterKind string

const (
	FilterUnrestricted FilterKind = "unrestricted" // admin: kısıt yok
	FilterSinglePerson FilterKind = "single"       // tekil satıcı: substring eşleşmesi
	FilterMultiPerson  FilterKind = "multi"        // ofis: satıcı kümesi
	FilterUploadOnly   FilterKind = "upload_only"  // sipariş göremez, sadece yükleme
)

// FilterField siparişlerde kapsam uygulanan alan. Tarihsel olarak tek alan kullanıldı.
const FilterField = "siparis_giren"

// OrderFilter kullanıcıya bağlı sipariş kapsamı tanımlayıcısı.
// Field şimdilik hep siparis_giren'dir; kayıtlı eski veriyle uyum için taşınır.
type OrderFilter struct {
	Kind   FilterKind
	Field  string
	Value  string
	Values []string
}

// wire, kullanicilar.filtre kolonundaki eski JSON şekli.
type filterWire struct {
	Field      *string  `json:"field,omitempty"`
	Value      *string  `json:"value,omitempty"`
	Values     []string `json:"values,omitempty"`
	OnlyUpload *bool    `json:"onlyUpload,omitempty"`
}

// MarshalJSON eski istemcinin beklediği şekle serileştirir; admin null yazar.
func (f OrderFilter) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case FilterUnrestricted:
		return []byte("null"), nil
	case FilterSinglePerson:
		field := f.fieldOrDefault()
		return json.Marshal(filterWire{Field: &field, Value: &f.Value})
	case FilterMultiPerson:
		field := f.fieldOrDefault()
		values := f.Values
		if values == nil {
			values = []string{}
		}
		return json.Marshal(filterWire{Field: &field, Values: values})
	case FilterUploadOnly:
		only := true
		return json.Marshal(filterWire{OnlyUpload: &only})
	default:
		return nil, fmt.Errorf("bilinmeyen filtre türü: %q", f.Kind)
	}
}

// UnmarshalJSON eski şekli tek noktada ayrıştırır; alan yoklama burada biter.
func (f *OrderFilter) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = OrderFilter{Kind: FilterUnrestricted}
		return nil
	}
	var w filterWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("filtre tanımlayıcısı çözümlenemedi: %w", err)
	}
	switch {
	case w.OnlyUpload != nil && *w.OnlyUpload:
		*f = OrderFilter{Kind: FilterUploadOnly}
	case w.Values != nil:
		*f = OrderFilter{Kind: FilterMultiPerson, Field: fieldOr(w.Field), Values: w.Values}
	case w.Value != nil:
		*f = OrderFilter{Kind: FilterSinglePerson, Field: fieldOr(w.Field), Value: *w.Value}
	default:
		// {field:null} gibi eski admin kayıtları da kısıtsız sayılır
		*f = OrderFilter{Kind: FilterUnrestricted}
	}
	return nil
}

func (f OrderFilter) fieldOrDefault() string {
	if f.Field != "" {
		return f.Field
	}
	return FilterField
}

func fieldOr(s *string) string {
	if s == nil || *s == "" {
		return FilterField
	}
	return *s
}

// DefaultFilterForRole rol için formun başlangıç filtre şeklini üretir
// (rol ve filtre birlikte atanır ama ayrı saklanır).
func DefaultFilterForRole(role string) OrderFilter {
	switch role {
	case RoleSatici:
		return OrderFilter{Kind: FilterSinglePerson, Field: FilterField}
	case RoleOfis:
		return OrderFilter{Kind: FilterMultiPerson, Field: FilterField, Values: []string{}}
	case RoleUpload:
		return OrderFilter{Kind: FilterUploadOnly}
	default:
		return OrderFilter{Kind: FilterUnrestricted}
	}
}

// ValidateForRole rol ile filtre şeklinin tutarlılığını denetler.
// Satıcı için değer, ofis için en az bir satıcı zorunludur.
func (f OrderFilter) ValidateForRole(role string) error {
	switch role {
	case RoleSatici:
		if f.Kind != FilterSinglePerson || f.Value == "" {
			return fmt.Errorf("satıcı rolü için bir filtre değeri girilmelidir")
		}
	case RoleOfis:
		if f.Kind != FilterMultiPerson || len(f.Values) == 0 {
			return fmt.Errorf("ofis rolü için en az bir satıcı seçilmelidir")
		}
	case RoleUpload:
		if f.Kind != FilterUploadOnly {
			return fmt.Errorf("upload rolü yalnızca yükleme filtresi taşıyabilir")
		}
	case RoleAdmin:
		if f.Kind != FilterUnrestricted {
			return fmt.Errorf("admin rolünde filtre tanımlanamaz")
		}
	default:
		return fmt.Errorf("geçersiz rol: %q", role)
	}
	return nil
}
