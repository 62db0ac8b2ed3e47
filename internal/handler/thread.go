package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campusboard/campusboard/internal/api"
	"github.com/campusboard/campusboard/internal/domain"
	mw "github.com/campusboard/campusboard/internal/middleware"
	"github.com/campusboard/campusboard/internal/utils"
)

func (h *Handler) ListThreads(w http.ResponseWriter, r *http.Request) {
	threads, err := h.thread.List()
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, threads)
}

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	thread, err := h.thread.Create(domain.ThreadCreationData{
		Title:    body.Title,
		Content:  body.Content,
		AuthorId: user.Id,
		Tags:     body.Tags,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, thread)
}

func (h *Handler) CloseThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}

	threadId, err := parseIntParam(chi.URLParam(r, "id"), "thread ID")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	thread, err := h.thread.Close(threadId, user.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, thread)
}

func (h *Handler) DeleteThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}

	threadId, err := parseIntParam(chi.URLParam(r, "id"), "thread ID")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	thread, err := h.thread.Delete(threadId, user.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.DeleteThreadResponse{Message: "Thread deleted", DeletedThread: thread})
}
