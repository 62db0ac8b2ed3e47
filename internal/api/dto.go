package api

import "github.com/campusboard/campusboard/internal/domain"

// Request DTOs

type RegisterRequest struct {
	StudentId   string `json:"studentId" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	Nickname    string `json:"nickname,omitempty"`
	Department  string `json:"department,omitempty"`
	Year        string `json:"year,omitempty"`
	AccountType string `json:"accountType,omitempty" validate:"omitempty,oneof=student professor"`
}

type LoginRequest struct {
	StudentId string `json:"studentId" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	Nickname   string        `json:"nickname"`
	Skills     domain.Skills `json:"skills"`
	Department string        `json:"department"`
	Year       string        `json:"year"`
}

type CreateThreadRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Tags    string `json:"tags,omitempty"`
}

type CreateReplyRequest struct {
	ThreadId domain.ThreadId `json:"threadId" validate:"required"`
	Content  string          `json:"content" validate:"required"`
}

// Response DTOs

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  domain.ProfileView `json:"user"`
}

type DeleteThreadResponse struct {
	Message       string        `json:"message"`
	DeletedThread domain.Thread `json:"deletedThread"`
}

type DeleteReplyResponse struct {
	Message      string       `json:"message"`
	DeletedReply domain.Reply `json:"deletedReply"`
}
