package handler

import (
	"net/http"

	"github.com/campusboard/campusboard/internal/api"
	"github.com/campusboard/campusboard/internal/domain"
	"github.com/campusboard/campusboard/internal/errors"
	mw "github.com/campusboard/campusboard/internal/middleware"
	"github.com/campusboard/campusboard/internal/utils"
)

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userId := r.URL.Query().Get("id")
	if userId == "" {
		utils.WriteError(w, &errors.ErrorWithStatusCode{Message: "Missing id parameter", StatusCode: http.StatusBadRequest})
		return
	}

	view, err := h.profile.Get(userId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userId := r.URL.Query().Get("id")
	if userId == "" {
		utils.WriteError(w, &errors.ErrorWithStatusCode{Message: "Missing id parameter", StatusCode: http.StatusBadRequest})
		return
	}

	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}
	if user.Id != userId {
		utils.WriteError(w, &errors.ErrorWithStatusCode{Message: "You may only update your own profile", StatusCode: http.StatusForbidden})
		return
	}

	var body api.UpdateProfileRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	// Overwrite semantics: omitted fields arrive as zero values and are
	// written as such.
	view, err := h.profile.Update(userId, domain.Profile{
		Nickname:   body.Nickname,
		Skills:     body.Skills,
		Department: body.Department,
		Year:       body.Year,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}
