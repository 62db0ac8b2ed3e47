package domain

import "github.com/lib/pq"

type (
	UserId    = string
	StudentId = string
	Email     = string
	Password  = string

	ThreadId = int64
	ReplyId  = int64

	// Skills is stored as a postgres text[] column.
	Skills = pq.StringArray
)

// AccountType gates which profile fields apply.
type AccountType = string

const (
	AccountStudent   AccountType = "student"
	AccountProfessor AccountType = "professor"
)

type ThreadStatus = string

const (
	ThreadOpen   ThreadStatus = "open"
	ThreadClosed ThreadStatus = "closed"
)
