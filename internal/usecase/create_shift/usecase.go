package create_shift

import (
	"context"
	"fmt"

	"github.com/agendafacil/AF-SchedulingService/internal/availability"
	"github.com/agendafacil/AF-SchedulingService/internal/domain"
)

// UseCase use case создания смены
//
// Смена по умолчанию создаётся активной, поэтому создание проходит
// через ту же проверку конфликта по дням недели, что и активация:
// правило одно и применяется на каждом пути записи одинаково
type UseCase struct {
	shiftRepo ShiftRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftRepo ShiftRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		shiftRepo: shiftRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case создания смены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateShift: establishment=%d, scope=%s, weekdays=%v, window=%s-%s",
		req.EstablishmentID, scopeFromRequest(req), req.Weekdays, req.StartTime, req.EndTime)

	// 1. Собираем доменную модель и валидируем до обращения к хранилищу
	shift := buildShift(req)
	if err := shift.Validate(); err != nil {
		uc.logger.Warn("CreateShift: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *Response

	// 2. Проверка конфликта и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем все смены заведения с блокировкой (FOR UPDATE)
		allShifts, err := uc.shiftRepo.ListByEstablishment(txCtx, shift.EstablishmentID)
		if err != nil {
			uc.logger.Error("CreateShift: failed to list shifts for establishment=%d: %v",
				shift.EstablishmentID, err)
			return fmt.Errorf("%w: failed to list shifts: %v", ErrInternal, err)
		}

		// 2.2. Проверяем конфликт по дням недели
		// Для неактивной смены CanActivate разрешает тривиально
		decision := availability.CanActivate(shift, allShifts)
		if !decision.Allowed {
			uc.logger.Warn("CreateShift: refused for establishment=%d, conflicting weekdays=%v",
				shift.EstablishmentID, decision.ConflictingWeekdays)
			result = &Response{
				Allowed:                 false,
				ConflictingWeekdays:     decision.ConflictingWeekdays,
				ConflictingWeekdayNames: decision.ConflictingWeekdays.Names(),
			}
			return nil
		}

		// 2.3. Сохраняем смену
		created, err := uc.shiftRepo.Create(txCtx, shift)
		if err != nil {
			uc.logger.Error("CreateShift: failed to create shift: %v", err)
			return fmt.Errorf("%w: failed to create shift: %v", ErrInternal, err)
		}

		result = &Response{
			Allowed:                 true,
			ConflictingWeekdays:     []int{},
			ConflictingWeekdayNames: []string{},
			Shift:                   toShiftData(created),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Allowed {
		uc.logger.Info("CreateShift: created shift id=%d for establishment=%d",
			result.Shift.ID, req.EstablishmentID)
	}

	return result, nil
}

// buildShift собирает доменную модель из запроса
func buildShift(req *Request) *domain.Shift {
	status := domain.ShiftStatusActive
	if req.Inactive {
		status = domain.ShiftStatusInactive
	}

	return &domain.Shift{
		EstablishmentID: req.EstablishmentID,
		Scope:           scopeFromRequest(req),
		Name:            req.Name,
		Weekdays:        domain.Weekdays(req.Weekdays).Normalize(),
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          status,
	}
}

// scopeFromRequest восстанавливает область из опционального ID мастера
func scopeFromRequest(req *Request) domain.Scope {
	if req.ProfessionalID != nil {
		return domain.ProfessionalScope(*req.ProfessionalID)
	}
	return domain.EstablishmentScope()
}

// toShiftData конвертирует доменную модель в данные ответа
func toShiftData(s *domain.Shift) *ShiftData {
	var professionalID *int64
	if s.Scope.IsProfessional() {
		id := s.Scope.ProfessionalID
		professionalID = &id
	}

	return &ShiftData{
		ID:              s.ID,
		EstablishmentID: s.EstablishmentID,
		ProfessionalID:  professionalID,
		Name:            s.Name,
		Weekdays:        s.Weekdays,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}
