package domain

import "time"

// Thread carries a denormalized snapshot of the author's profile taken
// at creation time. The snapshot never tracks later profile edits.
type Thread struct {
	Id               ThreadId     `json:"id"`
	Title            string       `json:"title"`
	Content          string       `json:"content"`
	AuthorId         UserId       `json:"authorId"`
	AuthorNickname   string       `json:"authorNickname"`
	AuthorDepartment string       `json:"authorDepartment"`
	AuthorYear       string       `json:"authorYear"`
	Tags             string       `json:"tags"`
	Status           ThreadStatus `json:"status"`
	CreatedAt        time.Time    `json:"createdAt"`
}

// ThreadCreationData travels handler -> service -> storage.
type ThreadCreationData struct {
	Title    string
	Content  string
	AuthorId UserId
	Tags     string
}
