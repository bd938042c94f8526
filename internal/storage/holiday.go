package storage

import "strings"

// Праздники хранятся строками "YYYY-MM-DD" либо "YYYY-MM-DD|причина".
// Это формат импорта/экспорта фронтенда, движок работает с множеством дат.

type HolidayEntry struct {
	Date   string `json:"date"`
	Reason string `json:"reason,omitempty"`
}

func ParseHoliday(s string) HolidayEntry {
	date, reason, _ := strings.Cut(s, "|")
	return HolidayEntry{Date: date, Reason: reason}
}

func SerializeHoliday(h HolidayEntry) string {
	if h.Reason == "" {
		return h.Date
	}
	return h.Date + "|" + h.Reason
}

func ParseHolidays(raw []string) []HolidayEntry {
	entries := make([]HolidayEntry, 0, len(raw))
	for _, s := range raw {
		if strings.TrimSpace(s) == "" {
			continue
		}
		entries = append(entries, ParseHoliday(s))
	}
	return entries
}

// HolidaySet — только даты, для быстрой проверки в календаре.
func HolidaySet(raw []string) map[string]bool {
	set := make(map[string]bool, len(raw))
	for _, e := range ParseHolidays(raw) {
		set[e.Date] = true
	}
	return set
}

// HolidaysToCSV / HolidaysFromCSV — фронтенд выгружает csv,
// разделитель | подменяется запятой и обратно.
func HolidaysToCSV(raw []string) string {
	lines := make([]string, 0, len(raw))
	for _, h := range raw {
		lines = append(lines, strings.Replace(h, "|", ",", 1))
	}
	return strings.Join(lines, "\n")
}

func HolidaysFromCSV(csv string) []string {
	var out []string
	for _, line := range strings.Split(csv, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		out = append(out, strings.Replace(line, ",", "|", 1))
	}
	return out
}
