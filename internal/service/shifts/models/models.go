package models

import (
	"time"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
)

// Request модели

// ListShiftsRequest запрос на получение смен заведения
type ListShiftsRequest struct {
	EstablishmentID int64   `json:"establishmentId"`
	ProfessionalID  *int64  `json:"professionalId,omitempty"` // Фильтр по области мастера (опционально)
	Status          *string `json:"status,omitempty"`         // Фильтр по статусу (опционально)
}

// Response модели

// ShiftResponse ответ с данными смены
type ShiftResponse struct {
	ID              int64    `json:"id"`
	EstablishmentID int64    `json:"establishmentId"`
	ProfessionalID  *int64   `json:"professionalId,omitempty"` // nil - смена уровня заведения
	Name            string   `json:"name"`
	Weekdays        []int    `json:"weekdays"`
	WeekdayNames    []string `json:"weekdayNames"`
	StartTime       string   `json:"startTime"` // "08:00"
	EndTime         string   `json:"endTime"`   // "12:00"
	Status          string   `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ShiftListResponse ответ со списком смен
type ShiftListResponse struct {
	Shifts []ShiftResponse `json:"shifts"`
}

// Методы конвертации

// FromDomainShift конвертирует domain модель в DTO
func FromDomainShift(s *domain.Shift) *ShiftResponse {
	if s == nil {
		return nil
	}

	resp := &ShiftResponse{
		ID:              s.ID,
		EstablishmentID: s.EstablishmentID,
		Name:            s.Name,
		Weekdays:        s.Weekdays,
		WeekdayNames:    s.Weekdays.Names(),
		StartTime:       s.StartTime.String(),
		EndTime:         s.EndTime.String(),
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}

	if s.Scope.IsProfessional() {
		professionalID := s.Scope.ProfessionalID
		resp.ProfessionalID = &professionalID
	}

	return resp
}

// FromDomainShiftList конвертирует список domain моделей в DTO
func FromDomainShiftList(shifts []*domain.Shift) *ShiftListResponse {
	if shifts == nil {
		return &ShiftListResponse{
			Shifts: []ShiftResponse{},
		}
	}

	resp := &ShiftListResponse{
		Shifts: make([]ShiftResponse, len(shifts)),
	}

	for i, shift := range shifts {
		if shiftResp := FromDomainShift(shift); shiftResp != nil {
			resp.Shifts[i] = *shiftResp
		}
	}

	return resp
}
