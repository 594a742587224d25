package get_bookable_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/agendafacil/AF-SchedulingService/internal/api/handlers"
	getBookableTimes "github.com/agendafacil/AF-SchedulingService/internal/usecase/get_bookable_times"
)

const (
	msgInvalidEstablishmentID = "некорректный ID заведения"
	msgInvalidQuery           = "некорректные параметры запроса, ожидаются serviceId и date (YYYY-MM-DD)"
	msgEstablishmentNotFound  = "заведение не найдено"
	msgProfessionalNotFound   = "мастер не найден в заведении"
	msgServiceNotFound        = "услуга не найдена"
)

type Handler struct {
	useCase GetBookableTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetBookableTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/establishments/{establishmentId}/bookable-times
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	establishmentID, err := strconv.ParseInt(vars["establishmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/bookable-times - Invalid establishment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEstablishmentID)
		return
	}

	req, err := parseQuery(establishmentID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /establishments/{id}/bookable-times - Invalid query: establishment_id=%d, error=%v",
			establishmentID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getBookableTimes.ErrInvalidInput):
			h.logger.Warn("GET /establishments/{id}/bookable-times - Invalid input: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, getBookableTimes.ErrEstablishmentNotFound):
			h.logger.Warn("GET /establishments/{id}/bookable-times - Establishment not found: establishment_id=%d",
				establishmentID)
			handlers.RespondNotFound(w, msgEstablishmentNotFound)

		case errors.Is(err, getBookableTimes.ErrProfessionalNotFound):
			h.logger.Warn("GET /establishments/{id}/bookable-times - Professional not found: establishment_id=%d",
				establishmentID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getBookableTimes.ErrServiceNotFound):
			h.logger.Warn("GET /establishments/{id}/bookable-times - Service not found: establishment_id=%d, service_id=%d",
				establishmentID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /establishments/{id}/bookable-times - Failed to get bookable times: establishment_id=%d, error=%v",
				establishmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /establishments/{id}/bookable-times - Fetched %d times: establishment_id=%d",
		len(result.Times), establishmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
