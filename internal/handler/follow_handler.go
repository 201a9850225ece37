package handler

import (
	"net/http"

	"speedrun-db-api/internal/auth"
	"speedrun-db-api/internal/model"
	"speedrun-db-api/internal/service"
	"speedrun-db-api/pkg/apierror"
)

type FollowHandler struct {
	service *service.FollowService
}

func NewFollowHandler(service *service.FollowService) *FollowHandler {
	return &FollowHandler{service: service}
}

func (h *FollowHandler) List(w http.ResponseWriter, r *http.Request) {
	follows, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, follows)
}

func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.FollowRequest
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	follow, err := h.service.Follow(r.Context(), principal.Login, payload.FollowingID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, follow)
}
