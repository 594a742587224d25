package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	// StatusScheduled is the only status that blocks availability
	StatusScheduled AppointmentStatus = "scheduled"
	// StatusFinalized marks a completed appointment; terminal
	StatusFinalized AppointmentStatus = "finalized"
	// StatusDeleted marks a removed appointment; terminal
	StatusDeleted AppointmentStatus = "deleted"
)

// Appointment is a booked service occurrence. StartAt is persisted in
// the server time convention; every display-time comparison must go
// through the timezone normalizer first.
type Appointment struct {
	ID              int64
	Reference       uuid.UUID // public identifier handed to clients
	EstablishmentID int64
	ProfessionalID  *int64 // nil for establishment-level bookings
	ClientID        int64
	ServiceID       int64
	StartAt         time.Time // server convention
	DurationMinutes int       // denormalized from the service at creation
	Status          AppointmentStatus

	// Denormalized service data kept for history; duration above is the
	// only field conflict checks ever read
	ServiceName  string
	ServicePrice *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlocksAvailability reports whether the appointment occupies its
// professional's time for conflict purposes. Finalized and deleted
// appointments no longer block slots.
func (a *Appointment) BlocksAvailability() bool {
	return a.Status == StatusScheduled
}

// BelongsToProfessional reports whether the appointment is assigned to
// the given professional
func (a *Appointment) BelongsToProfessional(professionalID int64) bool {
	return a.ProfessionalID != nil && *a.ProfessionalID == professionalID
}

// IsTerminal reports whether the appointment reached a final status
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusFinalized || a.Status == StatusDeleted
}

// AppointmentsFilter фильтр для выборки записей заведения
type AppointmentsFilter struct {
	EstablishmentID int64      // Обязательный параметр
	ProfessionalID  *int64     // Фильтр по мастеру (опционально, если nil - все мастера)
	From            *time.Time // Начало периода в серверной конвенции (опционально)
	To              *time.Time // Конец периода в серверной конвенции, исключительно (опционально)
	IncludeTerminal bool       // Включать ли финализированные и удалённые записи
}

// Validate rejects malformed appointments at the data-entry boundary
func (a *Appointment) Validate() error {
	if a.EstablishmentID <= 0 {
		return fmt.Errorf("establishment id must be positive")
	}
	if a.ProfessionalID != nil && *a.ProfessionalID <= 0 {
		return fmt.Errorf("professional id must be positive when set")
	}
	if a.ClientID <= 0 {
		return fmt.Errorf("client id must be positive")
	}
	if a.ServiceID <= 0 {
		return fmt.Errorf("service id must be positive")
	}
	if a.StartAt.IsZero() {
		return fmt.Errorf("start time is required")
	}
	if a.DurationMinutes <= 0 {
		return fmt.Errorf("duration must be positive, got %d", a.DurationMinutes)
	}
	if a.DurationMinutes > MaxAppointmentDurationMinutes {
		return fmt.Errorf("duration %d exceeds maximum %d", a.DurationMinutes, MaxAppointmentDurationMinutes)
	}
	switch a.Status {
	case StatusScheduled, StatusFinalized, StatusDeleted:
	default:
		return fmt.Errorf("unknown appointment status %q", a.Status)
	}
	return nil
}
