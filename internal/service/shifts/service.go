package shifts

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	shiftRepo "github.com/agendafacil/AF-SchedulingService/internal/infra/storage/shift"
	"github.com/agendafacil/AF-SchedulingService/internal/service/shifts/models"
)

// Service сервис для работы со сменами
//
// Покрывает операции без проверки конфликтов: чтение, деактивация и
// удаление. Создание и активация идут через отдельные use case,
// потому что требуют сверки пересечений дней недели в транзакции
type Service struct {
	shiftRepo ShiftRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(shiftRepo ShiftRepository, logger Logger) *Service {
	return &Service{
		shiftRepo: shiftRepo,
		logger:    logger,
	}
}

// GetByID получает смену по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ShiftResponse, error) {
	s.logger.Info("GetByID: fetching shift id=%d", id)

	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("GetByID: shift id=%d not found", id)
			return nil, ErrShiftNotFound
		}
		s.logger.Error("GetByID: repository error for shift id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShift(shift), nil
}

// List получает смены заведения
// Опционально фильтрует по области мастера и статусу
func (s *Service) List(ctx context.Context, req *models.ListShiftsRequest) (*models.ShiftListResponse, error) {
	s.logger.Info("List: fetching shifts for establishment=%d, professional=%v, status=%v",
		req.EstablishmentID, req.ProfessionalID, req.Status)

	var status *domain.ShiftStatus
	if req.Status != nil {
		parsed := domain.ShiftStatus(*req.Status)
		if parsed != domain.ShiftStatusActive && parsed != domain.ShiftStatusInactive {
			s.logger.Warn("List: invalid status=%s for establishment=%d", *req.Status, req.EstablishmentID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &parsed
	}

	shifts, err := s.shiftRepo.ListByEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		s.logger.Error("List: repository error for establishment=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	filtered := make([]*domain.Shift, 0, len(shifts))
	for _, shift := range shifts {
		if req.ProfessionalID != nil && !shift.Scope.Equal(domain.ProfessionalScope(*req.ProfessionalID)) {
			continue
		}
		if status != nil && shift.Status != *status {
			continue
		}
		filtered = append(filtered, shift)
	}

	s.logger.Info("List: successfully fetched %d shifts for establishment=%d", len(filtered), req.EstablishmentID)
	return models.FromDomainShiftList(filtered), nil
}

// Deactivate деактивирует смену
// Деактивация всегда разрешена: неактивная смена не участвует в
// проверках конфликтов и рабочих часов
func (s *Service) Deactivate(ctx context.Context, id int64) (*models.ShiftResponse, error) {
	s.logger.Info("Deactivate: deactivating shift id=%d", id)

	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("Deactivate: shift id=%d not found", id)
			return nil, ErrShiftNotFound
		}
		s.logger.Error("Deactivate: repository error for shift id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	if shift.Status == domain.ShiftStatusInactive {
		s.logger.Info("Deactivate: shift id=%d is already inactive", id)
		return models.FromDomainShift(shift), nil
	}

	if err := s.shiftRepo.UpdateStatus(ctx, id, domain.ShiftStatusInactive); err != nil {
		s.logger.Error("Deactivate: failed to update status for shift id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Deactivate - failed to update status: %v", ErrInternal, err)
	}

	shift.Status = domain.ShiftStatusInactive
	s.logger.Info("Deactivate: successfully deactivated shift id=%d", id)
	return models.FromDomainShift(shift), nil
}

// Delete удаляет смену
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting shift id=%d", id)

	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("Delete: shift id=%d not found", id)
			return ErrShiftNotFound
		}
		s.logger.Error("Delete: repository error for shift id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted shift id=%d", id)
	return nil
}
