package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/topca/siparis-takip-api/internal/domain"
	"github.com/topca/siparis-takip-api/internal/infrastructure/excel"
)

func buildWorkbook(t *testing.T, rows [][]string) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, cells := range rows {
		for j, v := range cells {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellStr(sheet, cell, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestParseOrders_BaslikEtiketleriyleEsler(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"msg_S_0088", "msg_S_0078", "Bakiye"},
		{"S-1", "ACME", "1.250,00"},
		{"S-2", "", "0"},
	})

	rows, err := excel.ParseOrders("rapor.xlsx", data)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line, "satır numarası dosyadaki konumdur")
	assert.Equal(t, "S-1", rows[0].Cells["msg_S_0088"])
	assert.Equal(t, "ACME", rows[0].Cells["msg_S_0078"])
	assert.Equal(t, "1.250,00", rows[0].Cells["Bakiye"])
	assert.Equal(t, "S-2", rows[1].Cells["msg_S_0088"])
}

// Tamamen boş ara satırlar atlanır, satır numaraları kaymaz.
func TestParseOrders_BosSatirAtlanir(t *testing.T) {
	data := buildWorkbook(t, [][]string{
		{"msg_S_0088"},
		{"S-1"},
		{""},
		{"S-3"},
	})

	rows, err := excel.ParseOrders("rapor.xlsx", data)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, 4, rows[1].Line)
}

func TestParseOrders_SadeceBaslikBosSayilir(t *testing.T) {
	data := buildWorkbook(t, [][]string{{"msg_S_0088", "Bakiye"}})

	_, err := excel.ParseOrders("rapor.xlsx", data)
	assert.ErrorIs(t, err, domain.ErrEmptySheet)
}

func TestParseOrders_BozukDosya(t *testing.T) {
	_, err := excel.ParseOrders("rapor.xlsx", []byte("bu bir excel değil"))
	assert.Error(t, err)
}
