package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// userDetails answers with the profile of the caller resolved by auth.
func (h *Handler) userDetails(w http.ResponseWriter, r *http.Request, user models.User) {
	profile := h.services.AuthService.Details(r.Context(), user)
	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}
