package activate_shift

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendafacil/AF-SchedulingService/internal/availability"
	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	shiftRepo "github.com/agendafacil/AF-SchedulingService/internal/infra/storage/shift"
)

// UseCase use case активации смены
//
// Активация - это read-check-write: получение смен заведения, проверка
// конфликта по дням недели и смена статуса должны быть одной логической
// операцией. Выполняется в сериализуемой транзакции с блокировкой смен
// заведения, чтобы две конкурирующие активации конфликтующих смен в
// одной области не прошли обе.
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

// Execute выполняет use case активации смены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ActivateShift: shift=%d", req.ShiftID)

	// 1. Валидация входных данных
	if req.ShiftID <= 0 {
		uc.logger.Warn("ActivateShift: validation failed: shiftID must be positive")
		return nil, fmt.Errorf("%w: shiftID must be positive", ErrInvalidInput)
	}

	var result *Response

	// 2. Выполняем решение и смену статуса в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем смену
		shift, err := uc.shiftRepo.GetByID(txCtx, req.ShiftID)
		if err != nil {
			if errors.Is(err, shiftRepo.ErrShiftNotFound) {
				uc.logger.Warn("ActivateShift: shift id=%d not found", req.ShiftID)
				return ErrShiftNotFound
			}
			uc.logger.Error("ActivateShift: failed to get shift id=%d: %v", req.ShiftID, err)
			return fmt.Errorf("%w: failed to get shift: %v", ErrInternal, err)
		}

		// 2.2. Получаем все смены заведения с блокировкой (FOR UPDATE)
		allShifts, err := uc.shiftRepo.ListByEstablishment(txCtx, shift.EstablishmentID)
		if err != nil {
			uc.logger.Error("ActivateShift: failed to list shifts for establishment=%d: %v",
				shift.EstablishmentID, err)
			return fmt.Errorf("%w: failed to list shifts: %v", ErrInternal, err)
		}

		// 2.3. Проверяем конфликт по дням недели для кандидата в статусе active
		candidate := *shift
		candidate.Status = domain.ShiftStatusActive
		decision := availability.CanActivate(&candidate, allShifts)

		if !decision.Allowed {
			// Отказ: состояние смены не меняется, транзакция завершается
			// без записей
			uc.logger.Warn("ActivateShift: shift id=%d refused, conflicting weekdays=%v",
				req.ShiftID, decision.ConflictingWeekdays)
			result = &Response{
				ShiftID:                 shift.ID,
				Allowed:                 false,
				ConflictingWeekdays:     decision.ConflictingWeekdays,
				ConflictingWeekdayNames: decision.ConflictingWeekdays.Names(),
				Status:                  string(shift.Status),
			}
			return nil
		}

		// 2.4. Сохраняем переход статуса
		if err := uc.shiftRepo.UpdateStatus(txCtx, shift.ID, domain.ShiftStatusActive); err != nil {
			uc.logger.Error("ActivateShift: failed to update status for shift id=%d: %v", shift.ID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		result = &Response{
			ShiftID:                 shift.ID,
			Allowed:                 true,
			ConflictingWeekdays:     domain.Weekdays{},
			ConflictingWeekdayNames: []string{},
			Status:                  string(domain.ShiftStatusActive),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	if result.Allowed {
		uc.logger.Info("ActivateShift: shift id=%d activated", req.ShiftID)
	}

	return result, nil
}
