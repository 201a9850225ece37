package handler

import (
	"net/http"

	"speedrun-db-api/internal/model"
	"speedrun-db-api/internal/service"
)

type GameHandler struct {
	service *service.GameService
}

func NewGameHandler(service *service.GameService) *GameHandler {
	return &GameHandler{service: service}
}

func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, games)
}

func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "gameID")
	if err != nil {
		writeError(w, err)
		return
	}

	game, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, game)
}

func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateGameRequest
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	game, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, game)
}

func (h *GameHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "gameID")
	if err != nil {
		writeError(w, err)
		return
	}

	var payload model.UpdateGameRequest
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	game, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, game)
}

func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "gameID")
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

func (h *GameHandler) AssignPlatform(w http.ResponseWriter, r *http.Request) {
	gameID, err := idParam(r, "gameID")
	if err != nil {
		writeError(w, err)
		return
	}
	platformID, err := idParam(r, "platformID")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.service.AssignPlatform(r.Context(), gameID, platformID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"assigned": true})
}

func (h *GameHandler) Runs(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "gameID")
	if err != nil {
		writeError(w, err)
		return
	}

	runs, err := h.service.RunsInGame(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, runs)
}
