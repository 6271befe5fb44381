package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := h.services.HealthService.Check(r.Context())

	code := http.StatusOK
	if !status.OK {
		code = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, status, code)
}
