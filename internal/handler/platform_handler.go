package handler

import (
	"net/http"

	"speedrun-db-api/internal/model"
	"speedrun-db-api/internal/service"
)

type PlatformHandler struct {
	service *service.PlatformService
}

func NewPlatformHandler(service *service.PlatformService) *PlatformHandler {
	return &PlatformHandler{service: service}
}

func (h *PlatformHandler) List(w http.ResponseWriter, r *http.Request) {
	platforms, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, platforms)
}

func (h *PlatformHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "platformID")
	if err != nil {
		writeError(w, err)
		return
	}

	platform, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, platform)
}

func (h *PlatformHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreatePlatformRequest
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	platform, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, platform)
}

func (h *PlatformHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "platformID")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UpdatePlatformRequest
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	platform, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, platform)
}

func (h *PlatformHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "platformID")
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
