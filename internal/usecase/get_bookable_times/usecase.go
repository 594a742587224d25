package get_bookable_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/agendafacil/AF-SchedulingService/internal/availability"
	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	catalogClient "github.com/agendafacil/AF-SchedulingService/internal/integrations/catalog"
	"github.com/agendafacil/AF-SchedulingService/pkg/tznorm"
)

// UseCase use case получения доступных для записи времён
//
// Конвейер: сырые кандидатные времена внешнего генератора →
// фильтр по записям мастера → фильтр по рабочим часам смен →
// дедупликация и сортировка. Все сравнения идут в отображаемом
// времени; хранимые моменты записей переводятся через нормализатор
type UseCase struct {
	shiftRepo       ShiftRepository
	appointmentRepo AppointmentRepository
	catalogClient   CatalogClient
	slotGenClient   SlotGeneratorClient
	normalizer      *tznorm.Normalizer
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	shiftRepo ShiftRepository,
	appointmentRepo AppointmentRepository,
	catalogClient CatalogClient,
	slotGenClient SlotGeneratorClient,
	normalizer *tznorm.Normalizer,
	logger Logger,
) *UseCase {
	return &UseCase{
		shiftRepo:       shiftRepo,
		appointmentRepo: appointmentRepo,
		catalogClient:   catalogClient,
		slotGenClient:   slotGenClient,
		normalizer:      normalizer,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных времён
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBookableTimes: establishment=%d, professional=%v, service=%d, date=%s",
		req.EstablishmentID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBookableTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение
	establishment, err := uc.catalogClient.GetEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrEstablishmentNotFound) {
			uc.logger.Warn("GetBookableTimes: establishment id=%d not found", req.EstablishmentID)
			return nil, ErrEstablishmentNotFound
		}
		uc.logger.Error("GetBookableTimes: failed to get establishment id=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: failed to get establishment: %v", ErrInternal, err)
	}

	// 3. Проверяем, что мастер числится в заведении
	if req.ProfessionalID != nil && !establishment.HasProfessional(*req.ProfessionalID) {
		uc.logger.Warn("GetBookableTimes: professional id=%d not found in establishment id=%d",
			*req.ProfessionalID, req.EstablishmentID)
		return nil, ErrProfessionalNotFound
	}

	// 4. Проверяем существование услуги
	if _, err := uc.catalogClient.GetService(ctx, req.EstablishmentID, req.ServiceID); err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetBookableTimes: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetBookableTimes: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Получаем сырые кандидатные времена от внешнего генератора
	candidates, err := uc.slotGenClient.GetCandidateTimes(ctx, req.EstablishmentID, req.ProfessionalID, req.ServiceID, req.Date)
	if err != nil {
		uc.logger.Error("GetBookableTimes: failed to get candidate times: %v", err)
		return nil, fmt.Errorf("%w: failed to get candidate times: %v", ErrInternal, err)
	}

	// 6. Получаем смены заведения (все области, актуальный снимок)
	shifts, err := uc.shiftRepo.ListByEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		uc.logger.Error("GetBookableTimes: failed to list shifts: %v", err)
		return nil, fmt.Errorf("%w: failed to list shifts: %v", ErrInternal, err)
	}

	// 7. Получаем записи на запрошенный день в серверной конвенции
	displayDay := dayStart(req.Date)
	serverFrom, serverTo := serverDayWindow(uc.normalizer, displayDay)

	filter := domain.AppointmentsFilter{
		EstablishmentID: req.EstablishmentID,
		ProfessionalID:  req.ProfessionalID,
		From:            &serverFrom,
		To:              &serverTo,
	}
	appointments, err := uc.appointmentRepo.ListWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetBookableTimes: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 8. Конвейер фильтров: записи мастера, затем рабочие часы
	times := availability.FilterByAppointments(candidates, displayDay, req.ProfessionalID, appointments, uc.normalizer)

	scopeShifts := availability.ShiftsForScope(shifts, scopeFromRequest(req))
	times = availability.FilterByShifts(times, displayDay, scopeShifts)

	// 9. Дедупликация и сортировка
	times = availability.Dedupe(times)

	uc.logger.Info("GetBookableTimes: %d of %d candidates bookable for establishment=%d, date=%s",
		len(times), len(candidates), req.EstablishmentID, req.Date.Format(domain.DateFormat))

	return &Response{
		EstablishmentID: req.EstablishmentID,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		Date:            displayDay,
		Times:           times,
	}, nil
}

// scopeFromRequest восстанавливает область из опционального ID мастера
func scopeFromRequest(req *Request) domain.Scope {
	if req.ProfessionalID != nil {
		return domain.ProfessionalScope(*req.ProfessionalID)
	}
	return domain.EstablishmentScope()
}
