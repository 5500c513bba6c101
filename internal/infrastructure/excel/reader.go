package excel

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	"github.com/topca/siparis-takip-api/internal/application/sync"
	"github.com/topca/siparis-takip-api/internal/domain"
)

// maxXLSRows eski ikili biçimde okunacak satır üst sınırı.
const maxXLSRows = 100000

// ParseOrders yüklenen dosyayı başlık satırı + veri satırlarına çözer ve
// senkron motorunun beklediği etiketli satırlara çevirir. Biçim uzantıdan
// seçilir: .xls eski ikili biçim, gerisi OOXML. Hücreler ham okunur; tarih
// serileri ve sayı biçimleri olduğu gibi motorun zorlamasına bırakılır.
func ParseOrders(filename string, data []byte) ([]sync.Row, error) {
	raw, err := readRows(filename, data)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, domain.ErrEmptySheet
	}

	header := raw[0]
	labels := make([]string, len(header))
	for i, h := range header {
		labels[i] = strings.TrimSpace(h)
	}

	rows := make([]sync.Row, 0, len(raw)-1)
	for i, cells := range raw[1:] {
		if blankRow(cells) {
			continue
		}
		row := sync.Row{Line: i + 2, Cells: make(map[string]string, len(labels))}
		for j, label := range labels {
			if label == "" || j >= len(cells) {
				continue
			}
			row.Cells[label] = strings.TrimSpace(cells[j])
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, domain.ErrEmptySheet
	}
	return rows, nil
}

func readRows(filename string, data []byte) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xls":
		workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
		if err != nil {
			return nil, fmt.Errorf("xls dosyası açılamadı: %w", err)
		}
		if workbook.NumSheets() == 0 {
			return nil, domain.ErrEmptySheet
		}
		return workbook.ReadAllCells(maxXLSRows), nil
	default:
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("xlsx dosyası açılamadı: %w", err)
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, domain.ErrEmptySheet
		}
		rows, err := file.GetRows(sheetName, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("sayfa okunamadı: %w", err)
		}
		return rows, nil
	}
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
