package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	validators.ErrValidation: http.StatusBadRequest,

	errInvalidJSON:     http.StatusBadRequest,
	errInvalidDelay:    http.StatusBadRequest,
	utils.ErrEmptyBody: http.StatusBadRequest,
	errUnauthorized:    http.StatusUnauthorized,
	errRouteNotFound:   http.StatusNotFound,

	store.ErrNoUserWasFound: http.StatusNotFound,
	store.ErrItemNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage is the text sent to the client for err. Server errors are
// never described; for the rest the innermost wrapped error is used since
// that is the sentinel naming the problem.
func publicMessage(err error, status int) string {
	switch status {
	case http.StatusInternalServerError:
		return errInternal.Error()
	case http.StatusUnauthorized:
		return errUnauthorized.Error()
	}

	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err.Error()
		}
		err = inner
	}
}

// writeError logs err and answers with its mapped status and an
// {"error": "..."} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: publicMessage(err, status)}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
