package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/campusboard/campusboard/internal/domain"
	internal_errors "github.com/campusboard/campusboard/internal/errors"
)

func (s *Storage) Replies(threadId domain.ThreadId) ([]domain.Reply, error) {
	rows, err := s.db.Query(`
        SELECT id, thread_id, author_id, author_nickname, content, created
        FROM replies
        WHERE thread_id = $1
        ORDER BY created ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.Reply{}
	for rows.Next() {
		var r domain.Reply
		if err := rows.Scan(&r.Id, &r.ThreadId, &r.AuthorId, &r.AuthorNickname, &r.Content, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		replies = append(replies, r)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return replies, nil
}

// CreateReply verifies the parent thread is open and snapshots the
// author's nickname, all in the same transaction as the insert.
func (s *Storage) CreateReply(creation domain.ReplyCreationData) (domain.Reply, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var status domain.ThreadStatus
	err = tx.QueryRow(
		"SELECT status FROM threads WHERE id = $1 FOR UPDATE",
		creation.ThreadId,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reply{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Thread not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Reply{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	if status == domain.ThreadClosed {
		return domain.Reply{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Thread is closed",
			StatusCode: http.StatusConflict,
		}
	}

	// FOR SHARE keeps the snapshot stable against a concurrent profile update.
	var nickname string
	err = tx.QueryRow(
		"SELECT nickname FROM users WHERE id = $1 FOR SHARE",
		creation.AuthorId,
	).Scan(&nickname)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reply{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Author not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Reply{}, fmt.Errorf("failed to fetch author: %w", err)
	}
	if nickname == "" {
		return domain.Reply{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Set a nickname before posting",
			StatusCode: http.StatusBadRequest,
		}
	}

	var reply domain.Reply
	err = tx.QueryRow(`
        INSERT INTO replies (thread_id, author_id, author_nickname, content)
        VALUES ($1, $2, $3, $4)
        RETURNING id, thread_id, author_id, author_nickname, content, created
    `, creation.ThreadId, creation.AuthorId, nickname, creation.Content).Scan(
		&reply.Id, &reply.ThreadId, &reply.AuthorId, &reply.AuthorNickname, &reply.Content, &reply.CreatedAt,
	)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to insert reply: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reply, nil
}

func (s *Storage) DeleteReply(id domain.ReplyId, requester domain.UserId) (domain.Reply, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Reply{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var reply domain.Reply
	err = tx.QueryRow(`
        SELECT id, thread_id, author_id, author_nickname, content, created
        FROM replies
        WHERE id = $1
        FOR UPDATE
    `, id).Scan(
		&reply.Id, &reply.ThreadId, &reply.AuthorId, &reply.AuthorNickname, &reply.Content, &reply.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reply{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Reply not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Reply{}, fmt.Errorf("failed to fetch reply: %w", err)
	}
	if reply.AuthorId != requester {
		return domain.Reply{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Only the reply author may delete it",
			StatusCode: http.StatusForbidden,
		}
	}

	if _, err := tx.Exec("DELETE FROM replies WHERE id = $1", id); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to delete reply: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Reply{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reply, nil
}
