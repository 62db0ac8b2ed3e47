package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/campusboard/campusboard/internal/domain"
	internal_errors "github.com/campusboard/campusboard/internal/errors"
)

const threadColumns = "id, title, content, author_id, author_nickname, author_department, author_year, tags, status, created"

func scanThread(row *sql.Row) (domain.Thread, error) {
	var t domain.Thread
	err := row.Scan(
		&t.Id, &t.Title, &t.Content, &t.AuthorId, &t.AuthorNickname,
		&t.AuthorDepartment, &t.AuthorYear, &t.Tags, &t.Status, &t.CreatedAt,
	)
	return t, err
}

func (s *Storage) Threads() ([]domain.Thread, error) {
	rows, err := s.db.Query(fmt.Sprintf(`
        SELECT %s
        FROM threads
        ORDER BY created DESC
    `, threadColumns))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch threads: %w", err)
	}
	defer rows.Close()

	threads := []domain.Thread{}
	for rows.Next() {
		var t domain.Thread
		if err := rows.Scan(
			&t.Id, &t.Title, &t.Content, &t.AuthorId, &t.AuthorNickname,
			&t.AuthorDepartment, &t.AuthorYear, &t.Tags, &t.Status, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan thread: %w", err)
		}
		threads = append(threads, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return threads, nil
}

// CreateThread looks up the author and inserts the thread in one
// transaction, snapshotting the author's profile fields onto the row.
func (s *Storage) CreateThread(creation domain.ThreadCreationData) (domain.Thread, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// FOR SHARE keeps the snapshot stable against a concurrent profile update.
	var nickname, department, year string
	err = tx.QueryRow(
		"SELECT nickname, department, year FROM users WHERE id = $1 FOR SHARE",
		creation.AuthorId,
	).Scan(&nickname, &department, &year)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Author not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch author: %w", err)
	}
	if nickname == "" {
		return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Set a nickname before posting",
			StatusCode: http.StatusBadRequest,
		}
	}

	thread, err := scanThread(tx.QueryRow(fmt.Sprintf(`
        INSERT INTO threads (title, content, author_id, author_nickname, author_department, author_year, tags, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING %s
    `, threadColumns),
		creation.Title, creation.Content, creation.AuthorId,
		nickname, department, year, creation.Tags, domain.ThreadOpen,
	))
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Thread{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return thread, nil
}

// CloseThread enforces the forward-only open -> closed transition and
// restricts it to the thread's author.
func (s *Storage) CloseThread(id domain.ThreadId, requester domain.UserId) (domain.Thread, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var authorId domain.UserId
	var status domain.ThreadStatus
	err = tx.QueryRow(
		"SELECT author_id, status FROM threads WHERE id = $1 FOR UPDATE",
		id,
	).Scan(&authorId, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Thread not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	if authorId != requester {
		return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Only the thread author may close it",
			StatusCode: http.StatusForbidden,
		}
	}
	if status == domain.ThreadClosed {
		return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Thread is already closed",
			StatusCode: http.StatusConflict,
		}
	}

	thread, err := scanThread(tx.QueryRow(fmt.Sprintf(`
        UPDATE threads SET status = $2 WHERE id = $1
        RETURNING %s
    `, threadColumns), id, domain.ThreadClosed))
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to close thread: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Thread{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return thread, nil
}

// DeleteThread removes the thread's replies and then the thread itself
// in one transaction, so no reply is ever orphaned.
func (s *Storage) DeleteThread(id domain.ThreadId, requester domain.UserId) (domain.Thread, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return domain.Thread{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	thread, err := scanThread(tx.QueryRow(fmt.Sprintf(`
        SELECT %s FROM threads WHERE id = $1 FOR UPDATE
    `, threadColumns), id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
				Message:    "Thread not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}
	if thread.AuthorId != requester {
		return domain.Thread{}, &internal_errors.ErrorWithStatusCode{
			Message:    "Only the thread author may delete it",
			StatusCode: http.StatusForbidden,
		}
	}

	// Replies first: the schema has no cascading delete.
	if _, err := tx.Exec("DELETE FROM replies WHERE thread_id = $1", id); err != nil {
		return domain.Thread{}, fmt.Errorf("failed to delete replies: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM threads WHERE id = $1", id); err != nil {
		return domain.Thread{}, fmt.Errorf("failed to delete thread: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Thread{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return thread, nil
}
