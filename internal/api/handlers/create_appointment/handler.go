package create_appointment

import (
	"errors"
	"net/http"

	"github.com/agendafacil/AF-SchedulingService/internal/api/handlers"
	createAppointment "github.com/agendafacil/AF-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDateOrTime     = "некорректный формат даты или времени, ожидаются YYYY-MM-DD и HH:MM"
	msgInvalidInput          = "некорректные данные записи"
	msgEstablishmentNotFound = "заведение не найдено"
	msgProfessionalNotFound  = "мастер не найден в заведении"
	msgServiceNotFound       = "услуга не найдена"
	msgOutsideBusinessHours  = "выбранное время вне рабочих часов"
	msgTimeNoLongerAvailable = "выбранное время больше недоступно, обновите список доступного времени"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: establishment_id=%d, error=%v",
				req.EstablishmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrEstablishmentNotFound):
			h.logger.Warn("POST /appointments - Establishment not found: establishment_id=%d", req.EstablishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: establishment_id=%d", req.EstablishmentID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: establishment_id=%d, service_id=%d",
				req.EstablishmentID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: establishment_id=%d, date=%s, time=%s",
				req.EstablishmentID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgOutsideBusinessHours)

		case errors.Is(err, createAppointment.ErrTimeNoLongerAvailable):
			h.logger.Warn("POST /appointments - Time no longer available: establishment_id=%d, date=%s, time=%s",
				req.EstablishmentID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgTimeNoLongerAvailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: establishment_id=%d, error=%v",
				req.EstablishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, establishment_id=%d",
		result.ID, req.EstablishmentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
