package order

import "time"

// Hızlı filtre adları: isimlendirilmiş hazır tarih aralıkları.
const (
	QuickToday     = "bugun"
	QuickThisWeek  = "bu_hafta"
	QuickLast7Days = "son_7_gun"
	QuickThisMonth = "bu_ay"
)

// ResolveQuickFilter hızlı filtre adını kapsayıcı bir tarih aralığına çevirir.
// Bilinmeyen ad (nil, nil, false) döndürür; çağıran özel aralığa düşer.
func ResolveQuickFilter(name string, now time.Time) (start, end *time.Time, ok bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch name {
	case QuickToday:
		return &today, &today, true
	case QuickThisWeek:
		// Hafta Pazartesi başlar.
		wd := int(today.Weekday())
		if wd == 0 { // Pazar
			wd = 7
		}
		s := today.AddDate(0, 0, -(wd - 1))
		return &s, &today, true
	case QuickLast7Days:
		s := today.AddDate(0, 0, -6)
		return &s, &today, true
	case QuickThisMonth:
		s := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		return &s, &today, true
	}
	return nil, nil, false
}
