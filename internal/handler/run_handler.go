package handler

import (
	"net/http"

	"speedrun-db-api/internal/auth"
	"speedrun-db-api/internal/model"
	"speedrun-db-api/internal/service"
	"speedrun-db-api/pkg/apierror"
)

type RunHandler struct {
	service *service.RunService
}

func NewRunHandler(service *service.RunService) *RunHandler {
	return &RunHandler{service: service}
}

func (h *RunHandler) List(w http.ResponseWriter, r *http.Request) {
	runs, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, runs)
}

func (h *RunHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "runID")
	if err != nil {
		writeError(w, err)
		return
	}

	run, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, run)
}

func (h *RunHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.CreateRunRequest
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	run, err := h.service.Create(r.Context(), principal.Login, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, run)
}

func (h *RunHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "runID")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UpdateRunRequest
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	run, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, run)
}

func (h *RunHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "runID")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"deleted": true})
}

// Confirm is the one route with an in-handler role gate: only ADMIN
// principals may confirm runs.
func (h *RunHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}
	if principal.Role != model.RoleAdmin {
		writeError(w, apierror.New("FORBIDDEN", "you are not allowed to perform this action", "", http.StatusForbidden))
		return
	}

	id, err := idParam(r, "runID")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.Confirm(r.Context(), id, principal.Login); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"confirmed": true})
}
