package insights

import (
	"encoding/json"

	"github.com/bagoessprasetyo/pos-ai-sub001/internal/domain"
)

// inventoryInsightShape is the JSON contract expected from the collaborator
// for the inventory report.
type inventoryInsightShape struct {
	KeyInsights     []string `json:"key_insights"`
	ActionableSteps []string `json:"actionable_steps"`
}

// MergeInventoryInsights overlays collaborator output onto the report's
// deterministic strategic insights. Fields the collaborator omits keep their
// fallback values, and the review date is always computed, never generated.
// Returns false when the payload does not match the expected shape.
func MergeInventoryInsights(report *domain.InventoryReport, raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var shape inventoryInsightShape
	if err := json.Unmarshal(raw, &shape); err != nil {
		return false
	}
	if len(shape.KeyInsights) == 0 && len(shape.ActionableSteps) == 0 {
		return false
	}
	if len(shape.KeyInsights) > 0 {
		report.StrategicInsights.KeyInsights = shape.KeyInsights
	}
	if len(shape.ActionableSteps) > 0 {
		report.StrategicInsights.ActionableSteps = shape.ActionableSteps
	}
	return true
}
