package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeBody(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.RegisterResponse{
		ID:    user.UserID,
		Email: user.Email,
		Token: token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeBody(w, r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", token.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, errUnauthorized)
		return
	}

	user, err := h.services.AuthService.GetUser(ctx, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		ID:        user.UserID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}, http.StatusOK)
}

// decodeBody reads a JSON request body into dst. Malformed input is
// reported as errInvalidJSON; a missing body keeps utils.ErrEmptyBody.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	err := utils.DecodeJSON(w, r, dst)
	if err == nil || errors.Is(err, utils.ErrEmptyBody) {
		return err
	}

	logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
	return errInvalidJSON
}
