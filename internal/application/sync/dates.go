package sync

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Excel seri tarihlerinin sayıldığı sabit epoch (30 Aralık 1899).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var (
	reDotDate   = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})$`)
	reSlashDate = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
)

// Genel çözümleyici için denenen düzenler; ERP ihraçlarında görülen biçimler.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"2.1.2006",
	"02.01.2006 15:04",
	"02.01.2006 15:04:05",
}

// CoerceDate bilinmeyen şekildeki ham hücre değerini takvim tarihine indirger.
//
//   - Sayısal değer, epoch'tan tam gün sayılan Excel seri tarihi olarak yorumlanır.
//   - DD.MM.YYYY ve DD/MM/YYYY pozisyonel olarak YYYY-MM-DD'ye çevrilir.
//   - Diğer string'ler genel düzen listesinden geçirilir.
//
// Dönüş: (tarih, true) başarıda; boş girdi için (nil, true); çözümlenemeyen
// girdi için (nil, false) döner; çağıran uyarı loglar, asla hata fırlatılmaz.
func CoerceDate(raw string) (*time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, true
	}

	// Excel seri tarihi: GetRows ham değer döndürdüğünde tarih hücreleri sayı gelir.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial <= 0 || serial > 200000 {
			return nil, false
		}
		t := excelEpoch.Add(time.Duration(serial * 24 * float64(time.Hour)))
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		return &d, true
	}

	// DD.MM.YYYY / DD/MM/YYYY: pozisyonel yeniden dizme
	for _, re := range []*regexp.Regexp{reDotDate, reSlashDate} {
		if m := re.FindStringSubmatch(s); m != nil {
			d, err := time.ParseInLocation("2006-01-02", m[3]+"-"+m[2]+"-"+m[1], time.UTC)
			if err != nil {
				return nil, false
			}
			return &d, true
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &d, true
		}
	}

	return nil, false
}
