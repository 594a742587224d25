package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	"github.com/agendafacil/AF-SchedulingService/pkg/tznorm"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListAppointmentsRequest запрос на получение записей заведения
// Даты заданы в отображаемой конвенции
type ListAppointmentsRequest struct {
	EstablishmentID int64      `json:"establishmentId"`
	ProfessionalID  *int64     `json:"professionalId,omitempty"` // Фильтр по мастеру (опционально)
	StartDate       *time.Time `json:"startDate,omitempty"`      // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`        // Конец периода (опционально)
	IncludeTerminal bool       `json:"includeTerminal,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
// Date и StartTime приведены к отображаемой конвенции
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	Reference       uuid.UUID `json:"reference"`
	EstablishmentID int64     `json:"establishmentId"`
	ProfessionalID  *int64    `json:"professionalId,omitempty"`
	ClientID        int64     `json:"clientId"`
	ServiceID       int64     `json:"serviceId"`
	Date            string    `json:"date"`      // "2026-03-10"
	StartTime       string    `json:"startTime"` // "09:00"
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`

	// Денормализованные данные услуги
	ServiceName  string   `json:"serviceName"`
	ServicePrice *float64 `json:"servicePrice,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// ToDomainAppointmentStatus конвертирует строку в domain статус
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	switch domain.AppointmentStatus(status) {
	case domain.StatusScheduled, domain.StatusFinalized, domain.StatusDeleted:
		return domain.AppointmentStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainAppointment конвертирует domain модель в DTO
// Хранимый момент начала переводится в отображаемую конвенцию
func FromDomainAppointment(a *domain.Appointment, norm *tznorm.Normalizer) *AppointmentResponse {
	if a == nil {
		return nil
	}

	displayStart := norm.ToDisplay(a.StartAt)

	return &AppointmentResponse{
		ID:              a.ID,
		Reference:       a.Reference,
		EstablishmentID: a.EstablishmentID,
		ProfessionalID:  a.ProfessionalID,
		ClientID:        a.ClientID,
		ServiceID:       a.ServiceID,
		Date:            displayStart.Format(domain.DateFormat),
		StartTime:       types.NewTimeString(displayStart).String(),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		ServiceName:     a.ServiceName,
		ServicePrice:    a.ServicePrice,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, norm *tznorm.Normalizer) *AppointmentListResponse {
	if appointments == nil {
		return &AppointmentListResponse{
			Appointments: []AppointmentResponse{},
		}
	}

	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, len(appointments)),
	}

	for i, appointment := range appointments {
		if appointmentResp := FromDomainAppointment(appointment, norm); appointmentResp != nil {
			resp.Appointments[i] = *appointmentResp
		}
	}

	return resp
}
