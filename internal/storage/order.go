package storage

import "time"

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type PurchaseOrder struct {
	ID        string `json:"id"`
	PONumber  string `json:"po_number"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	// обещанная дата, YYYY-MM-DD, без времени
	DeliveryDate string `json:"delivery_date"`
	Deadline     string `json:"deadline,omitempty"`
	Priority     string `json:"priority"`
	// пользовательский статус, может перекрываться авто-статусом
	Status    string    `json:"status,omitempty"`
	Customer  string    `json:"customer,omitempty"`
	CreatedAT time.Time `json:"created_at,omitempty"`
}

// PriorityRank: high=0, medium=1, low=2 — для сортировки при генерации.
func PriorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// DeliveryDeadline — конец обещанного дня. Дата без времени
// трактуется как 23:59:59 этого дня.
func (po *PurchaseOrder) DeliveryDeadline() (time.Time, error) {
	d, err := time.Parse("2006-01-02", po.DeliveryDate)
	if err != nil {
		return time.Time{}, err
	}
	return d.Add(24*time.Hour - time.Second), nil
}
