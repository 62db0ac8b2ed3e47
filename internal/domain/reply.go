package domain

import "time"

type Reply struct {
	Id             ReplyId   `json:"id"`
	ThreadId       ThreadId  `json:"threadId"`
	AuthorId       UserId    `json:"authorId"`
	AuthorNickname string    `json:"authorNickname"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"createdAt"`
}

type ReplyCreationData struct {
	ThreadId ThreadId
	AuthorId UserId
	Content  string
}
