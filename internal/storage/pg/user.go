package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/campusboard/campusboard/internal/domain"
	internal_errors "github.com/campusboard/campusboard/internal/errors"
)

const uniqueViolation = "23505"

func (s *Storage) SaveUser(user domain.User) error {
	skills := user.Skills
	if skills == nil {
		skills = domain.Skills{}
	}
	_, err := s.db.Exec(`
        INSERT INTO users (id, student_id, email, pass_hash, verified, verification_token, nickname, skills, department, year, account_type)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, user.Id, user.StudentId, user.Email, user.PassHash, user.Verified,
		user.VerificationToken, user.Nickname, skills, user.Department, user.Year, user.AccountType)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return &internal_errors.ErrorWithStatusCode{
				Message:    "Student id or email already registered",
				StatusCode: http.StatusConflict,
			}
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *Storage) UserByStudentId(studentId domain.StudentId) (domain.User, error) {
	var user domain.User
	var token sql.NullString
	err := s.db.QueryRow(`
        SELECT id, student_id, email, pass_hash, verified, verification_token,
               nickname, skills, department, year, account_type, created
        FROM users
        WHERE student_id = $1
    `, studentId).Scan(
		&user.Id, &user.StudentId, &user.Email, &user.PassHash, &user.Verified, &token,
		&user.Nickname, &user.Skills, &user.Department, &user.Year, &user.AccountType, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, &internal_errors.ErrorWithStatusCode{
				Message:    "User not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	user.VerificationToken = token.String
	return user, nil
}

// RedeemVerificationToken flips the verified flag and clears the token,
// making it single-use.
func (s *Storage) RedeemVerificationToken(token string) error {
	result, err := s.db.Exec(`
        UPDATE users
        SET verified = TRUE, verification_token = NULL
        WHERE verification_token = $1
    `, token)
	if err != nil {
		return fmt.Errorf("failed to redeem verification token: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "Invalid verification token",
			StatusCode: http.StatusBadRequest,
		}
	}
	return nil
}

func (s *Storage) ProfileView(userId domain.UserId) (domain.ProfileView, error) {
	var view domain.ProfileView
	err := s.db.QueryRow(`
        SELECT id, student_id, email, nickname, skills, department, year, account_type
        FROM users
        WHERE id = $1
    `, userId).Scan(
		&view.UserId, &view.StudentId, &view.Email, &view.Nickname,
		&view.Skills, &view.Department, &view.Year, &view.AccountType,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ProfileView{}, &internal_errors.ErrorWithStatusCode{
				Message:    "User not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.ProfileView{}, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return view, nil
}

func (s *Storage) UpdateProfile(userId domain.UserId, profile domain.Profile) (domain.ProfileView, error) {
	skills := profile.Skills
	if skills == nil {
		skills = domain.Skills{}
	}
	var view domain.ProfileView
	err := s.db.QueryRow(`
        UPDATE users
        SET nickname = $2, skills = $3, department = $4, year = $5
        WHERE id = $1
        RETURNING id, student_id, email, nickname, skills, department, year, account_type
    `, userId, profile.Nickname, skills, profile.Department, profile.Year).Scan(
		&view.UserId, &view.StudentId, &view.Email, &view.Nickname,
		&view.Skills, &view.Department, &view.Year, &view.AccountType,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ProfileView{}, &internal_errors.ErrorWithStatusCode{
				Message:    "User not found",
				StatusCode: http.StatusNotFound,
			}
		}
		return domain.ProfileView{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return view, nil
}
