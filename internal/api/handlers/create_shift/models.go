package create_shift

import (
	"time"

	createShift "github.com/agendafacil/AF-SchedulingService/internal/usecase/create_shift"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

// CreateShiftRequest HTTP request model
type CreateShiftRequest struct {
	ProfessionalID *int64 `json:"professionalId,omitempty"` // nil - смена уровня заведения
	Name           string `json:"name"`
	Weekdays       []int  `json:"weekdays"`  // 0-6, 0 = воскресенье
	StartTime      string `json:"startTime"` // "08:00"
	EndTime        string `json:"endTime"`   // "12:00"
	Inactive       bool   `json:"inactive,omitempty"`
}

// ShiftResponse HTTP response model для созданной смены
type ShiftResponse struct {
	ID              int64  `json:"id"`
	EstablishmentID int64  `json:"establishmentId"`
	ProfessionalID  *int64 `json:"professionalId,omitempty"`
	Name            string `json:"name"`
	Weekdays        []int  `json:"weekdays"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// ConflictResponse HTTP response model при отказе по конфликту
type ConflictResponse struct {
	Allowed                 bool     `json:"allowed"`
	ConflictingWeekdays     []int    `json:"conflictingWeekdays"`
	ConflictingWeekdayNames []string `json:"conflictingWeekdayNames"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateShiftRequest) ToUseCaseRequest(establishmentID int64) (*createShift.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createShift.Request{
		EstablishmentID: establishmentID,
		ProfessionalID:  r.ProfessionalID,
		Name:            r.Name,
		Weekdays:        r.Weekdays,
		StartTime:       startTime,
		EndTime:         endTime,
		Inactive:        r.Inactive,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createShift.Response) *ShiftResponse {
	shift := resp.Shift

	return &ShiftResponse{
		ID:              shift.ID,
		EstablishmentID: shift.EstablishmentID,
		ProfessionalID:  shift.ProfessionalID,
		Name:            shift.Name,
		Weekdays:        shift.Weekdays,
		StartTime:       shift.StartTime.String(),
		EndTime:         shift.EndTime.String(),
		Status:          shift.Status,
		CreatedAt:       shift.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       shift.UpdatedAt.Format(time.RFC3339),
	}
}

// FromUseCaseConflict конвертирует отказ use case в HTTP response
func FromUseCaseConflict(resp *createShift.Response) *ConflictResponse {
	return &ConflictResponse{
		Allowed:                 false,
		ConflictingWeekdays:     resp.ConflictingWeekdays,
		ConflictingWeekdayNames: resp.ConflictingWeekdayNames,
	}
}
