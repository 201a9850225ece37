package handler

import (
	"net/http"

	"speedrun-db-api/internal/auth"
	"speedrun-db-api/internal/model"
	"speedrun-db-api/internal/service"
	"speedrun-db-api/pkg/apierror"
)

type RatingHandler struct {
	service *service.RatingService
}

func NewRatingHandler(service *service.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

func (h *RatingHandler) Rate(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, apierror.New("UNAUTHORIZED", "authentication required", "", http.StatusUnauthorized))
		return
	}

	var payload model.RateGameRequest
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, err)
		return
	}

	rating, err := h.service.Rate(r.Context(), principal.Login, payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, rating)
}
