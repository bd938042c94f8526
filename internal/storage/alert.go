package storage

import "time"

const (
	AlertDeliveryRisk     = "delivery_risk"
	AlertMachineBreakdown = "machine_breakdown"
	AlertCapacityOverload = "capacity_overload"
	AlertQualityIssue     = "quality_issue"
)

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

type Alert struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	Severity         string    `json:"severity"`
	Message          string    `json:"message"`
	AffectedEntities []string  `json:"affected_entities"`
	SuggestedActions []string  `json:"suggested_actions"`
	IsResolved       bool      `json:"is_resolved"`
	CreatedAT        time.Time `json:"created_at"`
}
