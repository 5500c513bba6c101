package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/topca/siparis-takip-api/internal/domain/entity"
)

// Eski JSON şekilleri çözümlenir ve aynı şekle geri yazılır; kayıtlı
// kullanıcı verileriyle uyum bu gidiş-dönüşe dayanır.
func TestOrderFilter_EskiSekilGidisDonus(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		kind entity.FilterKind
	}{
		{"tekil satıcı", `{"field":"siparis_giren","value":"ayse"}`, entity.FilterSinglePerson},
		{"ofis kümesi", `{"field":"siparis_giren","values":["merve","betül"]}`, entity.FilterMultiPerson},
		{"sadece yükleme", `{"onlyUpload":true}`, entity.FilterUploadOnly},
		{"admin", `null`, entity.FilterUnrestricted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f entity.OrderFilter
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &f))
			assert.Equal(t, tc.kind, f.Kind)

			out, err := json.Marshal(f)
			require.NoError(t, err)
			assert.JSONEq(t, tc.raw, string(out))
		})
	}
}

// Alan adı eksik eski kayıtlarda varsayılan alan kullanılır.
func TestOrderFilter_EksikAlanVarsayilani(t *testing.T) {
	var f entity.OrderFilter
	require.NoError(t, json.Unmarshal([]byte(`{"value":"ayse"}`), &f))
	assert.Equal(t, entity.FilterField, f.Field)
}

// {field:null} gibi bozuk eski admin kayıtları kısıtsız sayılır.
func TestOrderFilter_BosSekilKisitsiz(t *testing.T) {
	var f entity.OrderFilter
	require.NoError(t, json.Unmarshal([]byte(`{"field":null}`), &f))
	assert.Equal(t, entity.FilterUnrestricted, f.Kind)
}

func TestValidateForRole(t *testing.T) {
	ok := entity.OrderFilter{Kind: entity.FilterSinglePerson, Field: entity.FilterField, Value: "ayse"}
	assert.NoError(t, ok.ValidateForRole(entity.RoleSatici))

	assert.Error(t, entity.OrderFilter{Kind: entity.FilterSinglePerson}.ValidateForRole(entity.RoleSatici),
		"satıcı filtresi değersiz olamaz")
	assert.Error(t, entity.OrderFilter{Kind: entity.FilterMultiPerson}.ValidateForRole(entity.RoleOfis),
		"ofis filtresi boş küme olamaz")
	assert.Error(t, entity.OrderFilter{Kind: entity.FilterUnrestricted}.ValidateForRole(entity.RoleUpload))
	assert.Error(t, entity.OrderFilter{Kind: entity.FilterUploadOnly}.ValidateForRole(entity.RoleAdmin))
	assert.Error(t, entity.OrderFilter{}.ValidateForRole("misafir"))
}

func TestDefaultFilterForRole(t *testing.T) {
	assert.Equal(t, entity.FilterSinglePerson, entity.DefaultFilterForRole(entity.RoleSatici).Kind)
	assert.Equal(t, entity.FilterMultiPerson, entity.DefaultFilterForRole(entity.RoleOfis).Kind)
	assert.Equal(t, entity.FilterUploadOnly, entity.DefaultFilterForRole(entity.RoleUpload).Kind)
	assert.Equal(t, entity.FilterUnrestricted, entity.DefaultFilterForRole(entity.RoleAdmin).Kind)
}
