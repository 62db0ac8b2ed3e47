package service

import (
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/campusboard/campusboard/internal/config"
	"github.com/campusboard/campusboard/internal/domain"
	"github.com/campusboard/campusboard/internal/errors"
	"github.com/campusboard/campusboard/internal/logger"
	"github.com/campusboard/campusboard/internal/service/utils"
	web "github.com/campusboard/campusboard/internal/utils"
)

type AuthService interface {
	Register(data domain.RegistrationData) error
	VerifyEmail(token string) error
	Login(creds domain.Credentials) (string, domain.ProfileView, error)
}

type Auth struct {
	storage AuthStorage
	email   Email
	jwt     Jwt
	cfg     *config.Public
}

type AuthStorage interface {
	SaveUser(user domain.User) error
	UserByStudentId(studentId domain.StudentId) (domain.User, error)
	RedeemVerificationToken(token string) error
}

type Email interface {
	Send(recipientEmail, subject, body string) error
	IsCorrect(email domain.Email) error
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

func NewAuth(storage AuthStorage, email Email, jwt Jwt, cfg *config.Public) *Auth {
	return &Auth{
		storage: storage,
		email:   email,
		jwt:     jwt,
		cfg:     cfg,
	}
}

// Register persists a new unverified user and mails a verification link.
func (a *Auth) Register(data domain.RegistrationData) error {
	email := strings.ToLower(data.Email)

	if err := a.email.IsCorrect(email); err != nil {
		return err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return err
	}

	accountType := data.AccountType
	if accountType == "" {
		accountType = domain.AccountStudent
	}

	user := domain.User{
		Id:                web.NewUserId(),
		StudentId:         strings.TrimSpace(data.StudentId),
		Email:             email,
		PassHash:          string(passHash),
		Verified:          false,
		VerificationToken: web.NewVerificationToken(),
		Nickname:          utils.CleanText(data.Nickname),
		Department:        utils.CleanText(data.Department),
		Year:              utils.CleanText(data.Year),
		AccountType:       accountType,
	}

	if err := a.storage.SaveUser(user); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/api/verify-email?token=%s", a.cfg.BaseURL, user.VerificationToken)
	emailBody := fmt.Sprintf(`
		Hello,

		Please confirm your email address by following the link below

		%s

		If you did not request this, please ignore this email.
	`, link)

	if err := a.email.Send(email, "Please confirm your email address", emailBody); err != nil {
		logger.Log.Error("failed to send verification email", "email", email, "error", err)
		return err
	}
	return nil
}

// VerifyEmail redeems a verification token. The token is single-use:
// redemption clears it from the user row.
func (a *Auth) VerifyEmail(token string) error {
	if strings.TrimSpace(token) == "" {
		return &errors.ErrorWithStatusCode{Message: "Missing verification token", StatusCode: http.StatusBadRequest}
	}
	return a.storage.RedeemVerificationToken(token)
}

// Login checks credentials and returns an access token plus the user's
// profile so the client can hydrate its local state.
func (a *Auth) Login(creds domain.Credentials) (string, domain.ProfileView, error) {
	user, err := a.storage.UserByStudentId(strings.TrimSpace(creds.StudentId))
	if err != nil {
		return "", domain.ProfileView{}, err
	}

	if !user.Verified {
		return "", domain.ProfileView{}, &errors.ErrorWithStatusCode{Message: "Email not verified", StatusCode: http.StatusForbidden}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(creds.Password)); err != nil {
		logger.Log.Debug("password verification failed", "student_id", creds.StudentId)
		return "", domain.ProfileView{}, &errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
	}

	token, err := a.jwt.NewToken(user)
	if err != nil {
		logger.Log.Error("failed to create jwt token", "user_id", user.Id, "error", err)
		return "", domain.ProfileView{}, err
	}

	view := domain.ProfileView{
		UserId:      user.Id,
		StudentId:   user.StudentId,
		Email:       user.Email,
		Nickname:    user.Nickname,
		Skills:      user.Skills,
		Department:  user.Department,
		Year:        user.Year,
		AccountType: user.AccountType,
	}
	return token, view, nil
}
