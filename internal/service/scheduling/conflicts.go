package scheduling

import (
	"sort"

	"react-golang/internal/storage"
)

// SortConflicts — сначала самые ранние затронутые даты поставки.
// Даты в ISO, строкового сравнения достаточно.
func SortConflicts(cs []storage.ScheduleConflict) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].ConflictingPO.DeliveryDate != cs[j].ConflictingPO.DeliveryDate {
			return cs[i].ConflictingPO.DeliveryDate < cs[j].ConflictingPO.DeliveryDate
		}
		return cs[i].ConflictingPO.PONumber < cs[j].ConflictingPO.PONumber
	})
}

// DeliveryConflicts отфильтровывает конфликты по обещанным датам,
// требующие решения пользователя (принять дату или перераспределить).
func DeliveryConflicts(cs []storage.ScheduleConflict) []storage.ScheduleConflict {
	var out []storage.ScheduleConflict
	for _, c := range cs {
		if c.Type == storage.ConflictDeliveryOverrun {
			out = append(out, c)
		}
	}
	return out
}
