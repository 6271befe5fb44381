// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// Query parameters accepted by GET /api/items.
const (
	queryCategory = "category"
	queryPriority = "priority"
	querySearch   = "search"
	querySort     = "sort"
	queryDelay    = "delay"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, errUnauthorized)
		return
	}

	delay, err := h.listDelay(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			log.Debug().Err(ctx.Err()).Msg("list aborted during simulated delay")
			return
		}
	}

	query := r.URL.Query()
	filter := models.ItemFilter{
		OwnerID:  userID,
		Category: models.Category(query.Get(queryCategory)),
		Priority: models.Priority(query.Get(queryPriority)),
		Search:   query.Get(querySearch),
		Sort:     models.SortOrder(query.Get(querySort)),
	}

	items, err := h.services.ItemService.ListItems(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, errUnauthorized)
		return
	}

	var request models.CreateItemRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.services.ItemService.CreateItem(ctx, userID, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, errUnauthorized)
		return
	}

	var update models.ItemUpdate
	if err := decodeBody(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}
	update.ID = chi.URLParam(r, "id")
	update.OwnerID = userID

	item, err := h.services.ItemService.UpdateItem(ctx, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, errUnauthorized)
		return
	}

	if err := h.services.ItemService.DeleteItem(ctx, userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{OK: true}, http.StatusOK)
}

// listDelay reads the optional delay query parameter, in milliseconds,
// capped at the configured maximum.
func (h *Handler) listDelay(r *http.Request) (time.Duration, error) {
	raw := r.URL.Query().Get(queryDelay)
	if raw == "" {
		return 0, nil
	}

	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ms < 0 {
		return 0, errInvalidDelay
	}

	delay := time.Duration(ms) * time.Millisecond
	if delay > h.maxListDelay || delay < 0 {
		delay = h.maxListDelay
	}

	return delay, nil
}
