package service

import (
	"net/http"

	"github.com/campusboard/campusboard/internal/domain"
	"github.com/campusboard/campusboard/internal/errors"
	"github.com/campusboard/campusboard/internal/service/utils"
)

type ThreadService interface {
	List() ([]domain.Thread, error)
	Create(creation domain.ThreadCreationData) (domain.Thread, error)
	Close(id domain.ThreadId, requester domain.UserId) (domain.Thread, error)
	Delete(id domain.ThreadId, requester domain.UserId) (domain.Thread, error)
}

type Thread struct {
	storage ThreadStorage
}

type ThreadStorage interface {
	Threads() ([]domain.Thread, error)
	CreateThread(creation domain.ThreadCreationData) (domain.Thread, error)
	CloseThread(id domain.ThreadId, requester domain.UserId) (domain.Thread, error)
	DeleteThread(id domain.ThreadId, requester domain.UserId) (domain.Thread, error)
}

func NewThread(storage ThreadStorage) *Thread {
	return &Thread{storage}
}

func (t *Thread) List() ([]domain.Thread, error) {
	return t.storage.Threads()
}

// Create snapshots the author's nickname/department/year onto the new
// row. The storage layer performs the author lookup and the insert in
// one transaction.
func (t *Thread) Create(creation domain.ThreadCreationData) (domain.Thread, error) {
	creation.Title = utils.CleanText(creation.Title)
	creation.Content = utils.CleanText(creation.Content)
	creation.Tags = utils.CleanText(creation.Tags)

	if creation.Title == "" || creation.Content == "" || creation.AuthorId == "" {
		return domain.Thread{}, &errors.ErrorWithStatusCode{Message: "Title, content and author are required", StatusCode: http.StatusBadRequest}
	}

	return t.storage.CreateThread(creation)
}

// Close moves a thread open -> closed. The transition is forward-only
// and restricted to the thread's author.
func (t *Thread) Close(id domain.ThreadId, requester domain.UserId) (domain.Thread, error) {
	return t.storage.CloseThread(id, requester)
}

// Delete removes a thread and all its replies. Only the author may
// delete; replies go first so none are orphaned.
func (t *Thread) Delete(id domain.ThreadId, requester domain.UserId) (domain.Thread, error) {
	return t.storage.DeleteThread(id, requester)
}
