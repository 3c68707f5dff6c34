package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) root(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: app.MsgAPIAvailable}, http.StatusOK)
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	writeNotFound(w)
}

func writeNotFound(w http.ResponseWriter) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{
		Success: false,
		Message: errRouteNotFound.Error(),
	}, http.StatusNotFound)
}
