package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	appointmentRepo "github.com/agendafacil/AF-SchedulingService/internal/infra/storage/appointment"
	"github.com/agendafacil/AF-SchedulingService/internal/service/appointments/models"
	"github.com/agendafacil/AF-SchedulingService/pkg/tznorm"
)

// Service сервис для работы с записями
//
// Покрывает чтение и переходы статусов. Создание идёт через отдельный
// use case: коммит брони требует повторной проверки доступности в
// сериализуемой транзакции
type Service struct {
	appointmentRepo AppointmentRepository
	normalizer      *tznorm.Normalizer
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, normalizer *tznorm.Normalizer, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		normalizer:      normalizer,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment, s.normalizer), nil
}

// List получает записи заведения с фильтрацией
// Поддерживает фильтрацию по мастеру, периоду и включение
// финализированных и удалённых записей
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for establishment=%d, professional=%v, includeTerminal=%v",
		req.EstablishmentID, req.ProfessionalID, req.IncludeTerminal)

	filter, err := s.toDomainFilter(req)
	if err != nil {
		s.logger.Warn("List: invalid filter for establishment=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for establishment=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments for establishment=%d",
		len(appointments), req.EstablishmentID)
	return models.FromDomainAppointmentList(appointments, s.normalizer), nil
}

// UpdateStatus обновляет статус записи
// Допустимы только переходы из scheduled в finalized или deleted.
// Конечные статусы неизменяемы
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, ErrInvalidStatus
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !canTransition(appointment.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for appointment id=%d",
			appointment.Status, newStatus, id)
		return nil, ErrInvalidTransition
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		s.logger.Error("UpdateStatus: failed to update status for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - failed to update status: %v", ErrInternal, err)
	}

	appointment.Status = newStatus
	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return models.FromDomainAppointment(appointment, s.normalizer), nil
}

// canTransition проверяет допустимость перехода статуса
func canTransition(from, to domain.AppointmentStatus) bool {
	if from == to {
		return false
	}
	return from == domain.StatusScheduled
}

// toDomainFilter конвертирует request в domain фильтр, переводя
// отображаемые календарные даты в серверные границы [from, to)
func (s *Service) toDomainFilter(req *models.ListAppointmentsRequest) (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		EstablishmentID: req.EstablishmentID,
		ProfessionalID:  req.ProfessionalID,
		IncludeTerminal: req.IncludeTerminal,
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return filter, fmt.Errorf("endDate is before startDate")
	}

	if req.StartDate != nil {
		from := s.normalizer.ToServer(dayStart(*req.StartDate))
		filter.From = &from
	}
	if req.EndDate != nil {
		// конец периода включает весь день EndDate
		to := s.normalizer.ToServer(dayStart(*req.EndDate).Add(24 * time.Hour))
		filter.To = &to
	}

	return filter, nil
}

// dayStart обнуляет время, оставляя календарный день
func dayStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}
