package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusboard/campusboard/internal/domain"
	internal_errors "github.com/campusboard/campusboard/internal/errors"
)

type MockReplyService struct {
	MockList   func(threadId domain.ThreadId) ([]domain.Reply, error)
	MockCreate func(creation domain.ReplyCreationData) (domain.Reply, error)
	MockDelete func(id domain.ReplyId, requester domain.UserId) (domain.Reply, error)
}

func (m *MockReplyService) List(threadId domain.ThreadId) ([]domain.Reply, error) {
	if m.MockList != nil {
		return m.MockList(threadId)
	}
	return []domain.Reply{}, nil
}

func (m *MockReplyService) Create(creation domain.ReplyCreationData) (domain.Reply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(creation)
	}
	return domain.Reply{Id: 1, ThreadId: creation.ThreadId, Content: creation.Content}, nil
}

func (m *MockReplyService) Delete(id domain.ReplyId, requester domain.UserId) (domain.Reply, error) {
	if m.MockDelete != nil {
		return m.MockDelete(id, requester)
	}
	return domain.Reply{Id: id}, nil
}

func newReplyRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/api/replies", h.ListReplies)
	r.Post("/api/replies", h.CreateReply)
	r.Delete("/api/delete-reply/{id}", h.DeleteReply)
	return r
}

func TestListRepliesHandler(t *testing.T) {
	h := &Handler{reply: &MockReplyService{MockList: func(threadId domain.ThreadId) ([]domain.Reply, error) {
		assert.Equal(t, domain.ThreadId(3), threadId)
		return []domain.Reply{{Id: 1, ThreadId: threadId}, {Id: 2, ThreadId: threadId}}, nil
	}}}
	router := newReplyRouter(h)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/replies?threadId=3", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var replies []domain.Reply
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &replies))
	assert.Len(t, replies, 2)

	// missing threadId still gets the JSON error body
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/replies", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error": "Invalid thread ID: must be an integer"}`, rr.Body.String())
}

func TestCreateReplyHandler(t *testing.T) {
	h := &Handler{}
	router := newReplyRouter(h)
	user := &domain.User{Id: "u-1"}
	requestBody := []byte(`{"threadId": 3, "content": "me too"}`)

	// success
	h.reply = &MockReplyService{MockCreate: func(creation domain.ReplyCreationData) (domain.Reply, error) {
		assert.Equal(t, domain.ThreadId(3), creation.ThreadId)
		assert.Equal(t, "u-1", creation.AuthorId)
		return domain.Reply{Id: 1, ThreadId: creation.ThreadId, Content: creation.Content}, nil
	}}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/replies", bytes.NewBuffer(requestBody)), user))
	assert.Equal(t, http.StatusOK, rr.Code)

	// no user in context
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/replies", bytes.NewBuffer(requestBody)))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"error": "Please sign-in"}`, rr.Body.String())

	// closed thread surfaces as conflict
	h.reply = &MockReplyService{MockCreate: func(creation domain.ReplyCreationData) (domain.Reply, error) {
		return domain.Reply{}, &internal_errors.ErrorWithStatusCode{Message: "Thread is closed", StatusCode: http.StatusConflict}
	}}
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/replies", bytes.NewBuffer(requestBody)), user))
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestDeleteReplyHandler(t *testing.T) {
	h := &Handler{}
	router := newReplyRouter(h)
	user := &domain.User{Id: "u-1"}

	h.reply = &MockReplyService{MockDelete: func(id domain.ReplyId, requester domain.UserId) (domain.Reply, error) {
		return domain.Reply{Id: id, Content: "gone"}, nil
	}}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodDelete, "/api/delete-reply/5", nil), user))

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Message      string       `json:"message"`
		DeletedReply domain.Reply `json:"deletedReply"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, domain.ReplyId(5), resp.DeletedReply.Id)

	// unknown reply
	h.reply = &MockReplyService{MockDelete: func(id domain.ReplyId, requester domain.UserId) (domain.Reply, error) {
		return domain.Reply{}, &internal_errors.ErrorWithStatusCode{Message: "Reply not found", StatusCode: http.StatusNotFound}
	}}
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, withUser(httptest.NewRequest(http.MethodDelete, "/api/delete-reply/5", nil), user))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
