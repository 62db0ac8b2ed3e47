package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campusboard/campusboard/internal/api"
	"github.com/campusboard/campusboard/internal/domain"
	mw "github.com/campusboard/campusboard/internal/middleware"
	"github.com/campusboard/campusboard/internal/utils"
)

func (h *Handler) ListReplies(w http.ResponseWriter, r *http.Request) {
	threadId, err := parseIntParam(r.URL.Query().Get("threadId"), "thread ID")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	replies, err := h.reply.List(threadId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, replies)
}

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}

	var body api.CreateReplyRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteError(w, err)
		return
	}

	reply, err := h.reply.Create(domain.ReplyCreationData{
		ThreadId: body.ThreadId,
		AuthorId: user.Id,
		Content:  body.Content,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, reply)
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, errUnauthorized)
		return
	}

	replyId, err := parseIntParam(chi.URLParam(r, "id"), "reply ID")
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	reply, err := h.reply.Delete(replyId, user.Id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.DeleteReplyResponse{Message: "Reply deleted", DeletedReply: reply})
}
