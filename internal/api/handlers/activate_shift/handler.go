package activate_shift

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendafacil/AF-SchedulingService/internal/api/handlers"
	activateShift "github.com/agendafacil/AF-SchedulingService/internal/usecase/activate_shift"
)

const (
	msgInvalidShiftID = "некорректный ID смены"
	msgShiftNotFound  = "смена не найдена"
)

type Handler struct {
	useCase ActivateShiftUseCase
	logger  Logger
}

func NewHandler(useCase ActivateShiftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/shifts/{shiftId}/activate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shiftID, err := strconv.ParseInt(vars["shiftId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /shifts/{id}/activate - Invalid shift ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &activateShift.Request{ShiftID: shiftID})
	if err != nil {
		switch {
		case errors.Is(err, activateShift.ErrShiftNotFound):
			h.logger.Warn("PATCH /shifts/{id}/activate - Shift not found: shift_id=%d", shiftID)
			handlers.RespondNotFound(w, msgShiftNotFound)

		default:
			h.logger.Error("PATCH /shifts/{id}/activate - Failed to activate shift: shift_id=%d, error=%v",
				shiftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Отказ по конфликту дней недели: состояние смены не изменилось
	if !result.Allowed {
		h.logger.Warn("PATCH /shifts/{id}/activate - Weekday conflict: shift_id=%d, weekdays=%v",
			shiftID, result.ConflictingWeekdays)
		handlers.RespondJSON(w, http.StatusConflict, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("PATCH /shifts/{id}/activate - Shift activated successfully: shift_id=%d", shiftID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
