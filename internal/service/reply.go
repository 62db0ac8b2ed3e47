package service

import (
	"net/http"

	"github.com/campusboard/campusboard/internal/domain"
	"github.com/campusboard/campusboard/internal/errors"
	"github.com/campusboard/campusboard/internal/service/utils"
)

type ReplyService interface {
	List(threadId domain.ThreadId) ([]domain.Reply, error)
	Create(creation domain.ReplyCreationData) (domain.Reply, error)
	Delete(id domain.ReplyId, requester domain.UserId) (domain.Reply, error)
}

type Reply struct {
	storage ReplyStorage
}

type ReplyStorage interface {
	Replies(threadId domain.ThreadId) ([]domain.Reply, error)
	CreateReply(creation domain.ReplyCreationData) (domain.Reply, error)
	DeleteReply(id domain.ReplyId, requester domain.UserId) (domain.Reply, error)
}

func NewReply(storage ReplyStorage) *Reply {
	return &Reply{storage}
}

func (r *Reply) List(threadId domain.ThreadId) ([]domain.Reply, error) {
	return r.storage.Replies(threadId)
}

// Create posts a reply to an open thread. The storage layer verifies
// the thread is open and snapshots the author's nickname in the same
// transaction as the insert.
func (r *Reply) Create(creation domain.ReplyCreationData) (domain.Reply, error) {
	creation.Content = utils.CleanText(creation.Content)
	if creation.Content == "" {
		return domain.Reply{}, &errors.ErrorWithStatusCode{Message: "Content is required", StatusCode: http.StatusBadRequest}
	}
	return r.storage.CreateReply(creation)
}

func (r *Reply) Delete(id domain.ReplyId, requester domain.UserId) (domain.Reply, error) {
	return r.storage.DeleteReply(id, requester)
}
