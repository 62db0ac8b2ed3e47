package domain

import "time"

type User struct {
	Id                UserId
	StudentId         StudentId
	Email             Email
	PassHash          string
	Verified          bool
	VerificationToken string
	Nickname          string
	Skills            Skills
	Department        string
	Year              string
	AccountType       AccountType
	CreatedAt         time.Time
}

// Profile is the mutable subset of a user's attributes.
type Profile struct {
	Nickname   string `json:"nickname"`
	Skills     Skills `json:"skills"`
	Department string `json:"department"`
	Year       string `json:"year"`
}

// ProfileView is the canonical shape returned by the profile endpoints.
type ProfileView struct {
	UserId      UserId      `json:"userId"`
	StudentId   StudentId   `json:"studentId"`
	Email       Email       `json:"email"`
	Nickname    string      `json:"nickname"`
	Skills      Skills      `json:"skills"`
	Department  string      `json:"department"`
	Year        string      `json:"year"`
	AccountType AccountType `json:"accountType"`
}

type Credentials struct {
	StudentId StudentId
	Password  Password
}

// RegistrationData travels handler -> service -> storage.
type RegistrationData struct {
	StudentId   StudentId
	Email       Email
	Password    Password
	Nickname    string
	Department  string
	Year        string
	AccountType AccountType
}
