package scheduling

import (
	"math"
	"strconv"
	"strings"
	"time"

	"react-golang/internal/storage"
)

// Окно смены станка. Вместо ветвления по строке "HH:MM-HH:MM"/"Custom"
// на горячем пути — разобранный вариант с минутами от полуночи.
type WindowKind int

const (
	WindowFixed WindowKind = iota
	WindowCustom
)

type ShiftWindow struct {
	Kind     WindowKind
	StartMin int
	EndMin   int
}

const (
	DefaultCustomStart = "09:00"
	// "Custom" = 8 часов от настроенного начала
	customWindowMinutes = 8 * 60
	// предохранитель от вечного поиска рабочего дня
	maxCalendarDays = 1000
)

// ParseClock разбирает "HH:MM" в минуты от полуночи.
func ParseClock(s string) (int, bool) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, false
	}
	h, err1 := strconv.Atoi(hh)
	m, err2 := strconv.Atoi(mm)
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// ParseShiftWindow нормализует строку расписания станка.
// Кривое значение не валит генерацию — откатываемся на 09:00-17:00.
func ParseShiftWindow(timing string, customStart string) ShiftWindow {
	if strings.TrimSpace(timing) == "Custom" {
		start, ok := ParseClock(customStart)
		if !ok {
			start, _ = ParseClock(DefaultCustomStart)
		}
		return ShiftWindow{
			Kind:     WindowCustom,
			StartMin: start,
			EndMin:   (start + customWindowMinutes) % (24 * 60),
		}
	}

	from, to, ok := strings.Cut(timing, "-")
	if !ok {
		return ShiftWindow{Kind: WindowFixed, StartMin: 9 * 60, EndMin: 17 * 60}
	}
	start, ok1 := ParseClock(from)
	end, ok2 := ParseClock(to)
	if !ok1 || !ok2 {
		return ShiftWindow{Kind: WindowFixed, StartMin: 9 * 60, EndMin: 17 * 60}
	}
	return ShiftWindow{Kind: WindowFixed, StartMin: start, EndMin: end}
}

// MachineWindow — окно конкретного станка.
func MachineWindow(m storage.Machine) ShiftWindow {
	return ParseShiftWindow(m.ShiftTiming, m.CustomStart)
}

// WorkingMinutes: смена через полночь = (24:00 - start) + end.
func (w ShiftWindow) WorkingMinutes() int {
	if w.EndMin < w.StartMin {
		return (24*60 - w.StartMin) + w.EndMin
	}
	return w.EndMin - w.StartMin
}

// WorkingHours с округлением до одного знака — так же считает
// карточка станка при сохранении.
func (w ShiftWindow) WorkingHours() float64 {
	return math.Round(float64(w.WorkingMinutes())/60*10) / 10
}

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// workingDaySet: пустой список рабочих дней — битая конфигурация смены,
// деградируем до пн-сб чтобы не блокировать остальные заказы.
func workingDaySet(shift *storage.Shift) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool, 7)
	if shift != nil {
		for _, name := range shift.WorkingDays {
			if wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]; ok {
				days[wd] = true
			}
		}
	}
	if len(days) == 0 {
		for wd := time.Monday; wd <= time.Saturday; wd++ {
			days[wd] = true
		}
	}
	return days
}

func isWorkingDay(day time.Time, days map[time.Weekday]bool, holidays map[string]bool) bool {
	// воскресенье — всегда выходной
	if day.Weekday() == time.Sunday {
		return false
	}
	if holidays[day.Format("2006-01-02")] {
		return false
	}
	return days[day.Weekday()]
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func minutesDur(min float64) time.Duration {
	return time.Duration(min * float64(time.Minute))
}

// windowBounds — границы окна, открывающегося в данный день.
// Окно через полночь принадлежит дню старта и дорабатывает хвост
// следующим календарным днём.
func windowBounds(day time.Time, w ShiftWindow) (time.Time, time.Time) {
	start := day.Add(minutesDur(float64(w.StartMin)))
	end := day.Add(minutesDur(float64(w.EndMin)))
	if w.EndMin <= w.StartMin {
		end = end.Add(24 * time.Hour)
	}
	return start, end
}

// NextWorkingWindow раскладывает длительность от момента from по рабочим
// окнам станка: выходные, праздники и нерабочие дни смены пропускаются
// целиком, остаток переносится на следующий рабочий день.
// Чистая функция, входы не трогает.
func NextWorkingWindow(w ShiftWindow, shift *storage.Shift, holidays map[string]bool, from time.Time, durationMinutes float64) (time.Time, time.Time) {
	days := workingDaySet(shift)
	remaining := durationMinutes
	if remaining < 0 {
		remaining = 0
	}

	cur := from
	var start time.Time
	started := false

	for i := 0; i < maxCalendarDays; i++ {
		day := startOfDay(cur)
		if !isWorkingDay(day, days, holidays) {
			next := day.AddDate(0, 0, 1)
			cur = next.Add(minutesDur(float64(w.StartMin)))
			continue
		}

		winStart, winEnd := windowBounds(day, w)
		if !cur.Before(winEnd) {
			next := day.AddDate(0, 0, 1)
			cur = next.Add(minutesDur(float64(w.StartMin)))
			continue
		}
		if cur.Before(winStart) {
			cur = winStart
		}
		if !started {
			start = cur
			started = true
		}

		avail := winEnd.Sub(cur).Minutes()
		if remaining <= avail+1e-9 {
			return start, cur.Add(minutesDur(remaining))
		}
		remaining -= avail
		next := day.AddDate(0, 0, 1)
		cur = next.Add(minutesDur(float64(w.StartMin)))
	}

	// рабочих дней в горизонте не нашлось — вырожденное окно
	return from, from
}
