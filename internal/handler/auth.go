package handler

import (
	"fmt"
	"net/http"

	"github.com/campusboard/campusboard/internal/api"
	"github.com/campusboard/campusboard/internal/domain"
	"github.com/campusboard/campusboard/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var body api.RegisterRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	err := h.auth.Register(domain.RegistrationData{
		StudentId:   body.StudentId,
		Email:       body.Email,
		Password:    body.Password,
		Nickname:    body.Nickname,
		Department:  body.Department,
		Year:        body.Year,
		AccountType: body.AccountType,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.MessageResponse{Message: "Registered. Check your email for a verification link"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	token, user, err := h.auth.Login(domain.Credentials{StudentId: body.StudentId, Password: body.Password})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.LoginResponse{Token: token, User: user})
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	if err := h.auth.VerifyEmail(token); err != nil {
		utils.WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "<html><body><h1>Email verified</h1><p>You can log in now.</p></body></html>")
}
