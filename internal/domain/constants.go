package domain

// Business validation constants
const (
	MaxShiftNameLength            = 120
	MaxAppointmentDurationMinutes = 480 // 8 hours
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalStatuses список терминальных статусов записей
// Используется для фильтрации при подсчёте доступного времени
var TerminalStatuses = []AppointmentStatus{
	StatusFinalized,
	StatusDeleted,
}
