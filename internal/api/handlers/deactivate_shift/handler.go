package deactivate_shift

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendafacil/AF-SchedulingService/internal/api/handlers"
	"github.com/agendafacil/AF-SchedulingService/internal/service/shifts"
)

const (
	msgInvalidShiftID = "некорректный ID смены"
	msgShiftNotFound  = "смена не найдена"
)

type Handler struct {
	service ShiftService
	logger  Logger
}

func NewHandler(service ShiftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/shifts/{shiftId}/deactivate
// Деактивация всегда разрешена и не требует проверки конфликтов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shiftID, err := strconv.ParseInt(vars["shiftId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /shifts/{id}/deactivate - Invalid shift ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	shift, err := h.service.Deactivate(r.Context(), shiftID)
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrShiftNotFound):
			h.logger.Warn("PATCH /shifts/{id}/deactivate - Shift not found: shift_id=%d", shiftID)
			handlers.RespondNotFound(w, msgShiftNotFound)

		default:
			h.logger.Error("PATCH /shifts/{id}/deactivate - Failed to deactivate shift: shift_id=%d, error=%v",
				shiftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /shifts/{id}/deactivate - Shift deactivated successfully: shift_id=%d", shiftID)
	handlers.RespondJSON(w, http.StatusOK, shift)
}
