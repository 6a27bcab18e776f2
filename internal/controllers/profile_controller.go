package controllers

import (
	"errors"
	"net/http"
	"pitwall/internal/auth"
	"pitwall/internal/models"
	"pitwall/internal/providers"
)

type ProfileController struct {
	logger providers.Logger
}

func NewProfileController(logger providers.Logger) *ProfileController {
	return &ProfileController{logger: logger}
}

func (pc *ProfileController) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := SessionFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := s.Identity().Current()
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, id)
}

func (pc *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	s, ok := SessionFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var patch models.ProfilePatch
	if err := decodeJSON(w, r, &patch); err != nil {
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.Identity().UpdateProfile(patch)
	if errors.Is(err, auth.ErrNotSignedIn) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	pc.logger.Infof(providers.TypePost, "Profile of %s updated", id.ID)
	writeJSON(w, http.StatusOK, id)
}
