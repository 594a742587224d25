package activate_shift

import (
	activateShift "github.com/agendafacil/AF-SchedulingService/internal/usecase/activate_shift"
)

// ActivateShiftResponse HTTP response model
// При отказе Allowed=false и заполнены конфликтующие дни недели
type ActivateShiftResponse struct {
	ShiftID                 int64    `json:"shiftId"`
	Allowed                 bool     `json:"allowed"`
	Status                  string   `json:"status"`
	ConflictingWeekdays     []int    `json:"conflictingWeekdays,omitempty"`
	ConflictingWeekdayNames []string `json:"conflictingWeekdayNames,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *activateShift.Response) *ActivateShiftResponse {
	return &ActivateShiftResponse{
		ShiftID:                 resp.ShiftID,
		Allowed:                 resp.Allowed,
		Status:                  resp.Status,
		ConflictingWeekdays:     resp.ConflictingWeekdays,
		ConflictingWeekdayNames: resp.ConflictingWeekdayNames,
	}
}
