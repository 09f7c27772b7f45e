package delete_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	servicesService "github.com/m04kA/SMC-AppointmentService/internal/service/services"
)

const (
	msgUnauthorized    = "требуется авторизация"
	msgInvalidID       = "некорректный идентификатор услуги"
	msgServiceNotFound = "услуга не найдена"
	msgServiceInUse    = "услугу с активными записями удалить нельзя"
)

type Handler struct {
	service ServicesService
	logger  Logger
}

func NewHandler(service ServicesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	businessID, ok := middleware.BusinessIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id, businessID); err != nil {
		switch {
		case errors.Is(err, servicesService.ErrServiceNotFound):
			h.logger.Warn("DELETE /services/{id} - Not found: id=%d, business_id=%d", id, businessID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, servicesService.ErrServiceInUse):
			h.logger.Warn("DELETE /services/{id} - Service in use: id=%d, business_id=%d", id, businessID)
			handlers.RespondError(w, http.StatusConflict, msgServiceInUse)

		default:
			h.logger.Error("DELETE /services/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /services/{id} - Service deleted: id=%d, business_id=%d", id, businessID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
