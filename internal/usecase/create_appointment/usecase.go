package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/agendafacil/AF-SchedulingService/internal/availability"
	"github.com/agendafacil/AF-SchedulingService/internal/domain"
	catalogClient "github.com/agendafacil/AF-SchedulingService/internal/integrations/catalog"
	"github.com/agendafacil/AF-SchedulingService/pkg/tznorm"
	"github.com/agendafacil/AF-SchedulingService/pkg/types"
)

// UseCase use case создания записи
//
// Коммит брони повторяет в сериализуемой транзакции те же проверки,
// что строили список доступного времени: рабочие часы смен и занятость
// мастера. Время, прошедшее проверку при показе списка, могло быть
// занято конкурентной бронью - тогда возвращается ErrTimeNoLongerAvailable
type UseCase struct {
	appointmentRepo AppointmentRepository
	shiftRepo       ShiftRepository
	catalogClient   CatalogClient
	txManager       TransactionManager
	normalizer      *tznorm.Normalizer
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	shiftRepo ShiftRepository,
	catalogClient CatalogClient,
	txManager TransactionManager,
	normalizer *tznorm.Normalizer,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		shiftRepo:       shiftRepo,
		catalogClient:   catalogClient,
		txManager:       txManager,
		normalizer:      normalizer,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: establishment=%d, professional=%v, client=%d, service=%d, date=%s, time=%s",
		req.EstablishmentID, req.ProfessionalID, req.ClientID, req.ServiceID,
		req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем заведение
	establishment, err := uc.catalogClient.GetEstablishment(ctx, req.EstablishmentID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrEstablishmentNotFound) {
			uc.logger.Warn("CreateAppointment: establishment id=%d not found", req.EstablishmentID)
			return nil, ErrEstablishmentNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get establishment id=%d: %v", req.EstablishmentID, err)
		return nil, fmt.Errorf("%w: failed to get establishment: %v", ErrInternal, err)
	}

	// 3. Проверяем, что мастер числится в заведении
	if req.ProfessionalID != nil && !establishment.HasProfessional(*req.ProfessionalID) {
		uc.logger.Warn("CreateAppointment: professional id=%d not found in establishment id=%d",
			*req.ProfessionalID, req.EstablishmentID)
		return nil, ErrProfessionalNotFound
	}

	// 4. Получаем услугу - длительность, название и цена денормализуются в запись
	service, err := uc.catalogClient.GetService(ctx, req.EstablishmentID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	displayDay := dayStart(req.Date)
	startAtDisplay, err := displayInstant(displayDay, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	appointment := &domain.Appointment{
		Reference:       uuid.New(),
		EstablishmentID: req.EstablishmentID,
		ProfessionalID:  req.ProfessionalID,
		ClientID:        req.ClientID,
		ServiceID:       req.ServiceID,
		StartAt:         uc.normalizer.ToServer(startAtDisplay),
		DurationMinutes: service.DurationMinutes,
		Status:          domain.StatusScheduled,
		ServiceName:     service.Name,
		ServicePrice:    service.Price,
	}
	if err := appointment.Validate(); err != nil {
		uc.logger.Warn("CreateAppointment: appointment validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var created *domain.Appointment

	// 5. Проверка доступности и создание атомарны: между показом списка
	// времён и коммитом могла пройти конкурентная бронь
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Смены заведения под блокировкой
		shifts, err := uc.shiftRepo.ListByEstablishment(txCtx, req.EstablishmentID)
		if err != nil {
			return fmt.Errorf("%w: failed to list shifts: %v", ErrInternal, err)
		}

		// 5.2. Время должно попадать в рабочие часы активных смен области
		scopeShifts := availability.ShiftsForScope(shifts, scopeFromRequest(req))
		candidate := []types.TimeString{req.StartTime}
		if len(availability.FilterByShifts(candidate, displayDay, scopeShifts)) == 0 {
			return ErrOutsideBusinessHours
		}

		// 5.3. Записи мастера на день под блокировкой
		serverFrom, serverTo := serverDayWindow(uc.normalizer, displayDay)
		filter := domain.AppointmentsFilter{
			EstablishmentID: req.EstablishmentID,
			ProfessionalID:  req.ProfessionalID,
			From:            &serverFrom,
			To:              &serverTo,
		}
		appointments, err := uc.appointmentRepo.ListWithFilter(txCtx, filter)
		if err != nil {
			return fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
		}

		// 5.4. Повторная проверка занятости: время из списка могло устареть
		if len(availability.FilterByAppointments(candidate, displayDay, req.ProfessionalID, appointments, uc.normalizer)) == 0 {
			return ErrTimeNoLongerAvailable
		}

		// 5.5. Создаем запись
		created, err = uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrOutsideBusinessHours) {
			uc.logger.Warn("CreateAppointment: time %s on %s is outside business hours for establishment=%d",
				req.StartTime, req.Date.Format(domain.DateFormat), req.EstablishmentID)
			return nil, ErrOutsideBusinessHours
		}
		if errors.Is(err, ErrTimeNoLongerAvailable) {
			uc.logger.Warn("CreateAppointment: time %s on %s is no longer available for establishment=%d, professional=%v",
				req.StartTime, req.Date.Format(domain.DateFormat), req.EstablishmentID, req.ProfessionalID)
			return nil, ErrTimeNoLongerAvailable
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateAppointment: appointment id=%d reference=%s created for establishment=%d",
		created.ID, created.Reference, created.EstablishmentID)

	return uc.buildResponse(created), nil
}

// buildResponse собирает ответ, переводя хранимый момент начала
// обратно в отображаемую конвенцию
func (uc *UseCase) buildResponse(a *domain.Appointment) *Response {
	displayStart := uc.normalizer.ToDisplay(a.StartAt)

	return &Response{
		ID:              a.ID,
		Reference:       a.Reference,
		EstablishmentID: a.EstablishmentID,
		ProfessionalID:  a.ProfessionalID,
		ClientID:        a.ClientID,
		ServiceID:       a.ServiceID,
		Date:            dayStart(displayStart),
		StartTime:       types.NewTimeString(displayStart),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		ServiceName:     a.ServiceName,
		ServicePrice:    a.ServicePrice,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// scopeFromRequest восстанавливает область из опционального ID мастера
func scopeFromRequest(req *Request) domain.Scope {
	if req.ProfessionalID != nil {
		return domain.ProfessionalScope(*req.ProfessionalID)
	}
	return domain.EstablishmentScope()
}
