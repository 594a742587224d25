package create_shift

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendafacil/AF-SchedulingService/internal/api/handlers"
	createShift "github.com/agendafacil/AF-SchedulingService/internal/usecase/create_shift"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidEstablishmentID = "некорректный ID заведения"
	msgInvalidTime            = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput           = "некорректные данные смены"
	msgWeekdayConflict        = "смена пересекается по дням недели с активной сменой той же области"
)

type Handler struct {
	useCase CreateShiftUseCase
	logger  Logger
}

func NewHandler(useCase CreateShiftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/establishments/{establishmentId}/shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentID, err := strconv.ParseInt(vars["establishmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /establishments/{id}/shifts - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	var req CreateShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /establishments/{id}/shifts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(establishmentID)
	if err != nil {
		h.logger.Warn("POST /establishments/{id}/shifts - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createShift.ErrInvalidInput):
			h.logger.Warn("POST /establishments/{id}/shifts - Invalid input: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /establishments/{id}/shifts - Failed to create shift: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Конфликт дней недели - не ошибка сервера, а отрицательное решение
	if !result.Allowed {
		h.logger.Warn("POST /establishments/{id}/shifts - Weekday conflict: establishment_id=%d, weekdays=%v",
			establishmentID, result.ConflictingWeekdays)
		handlers.RespondJSON(w, http.StatusConflict, FromUseCaseConflict(result))
		return
	}

	h.logger.Info("POST /establishments/{id}/shifts - Shift created successfully: shift_id=%d, establishment_id=%d",
		result.Shift.ID, establishmentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
