package domain

import (
	"time"

	"github.com/google/uuid"
)

type Chat struct {
	Uuid      uuid.UUID
	OwnerUuid uuid.UUID
	Name      string
	Source    string
	CreatedAt time.Time
	DeletedAt *time.Time
	Tags      []Tag
}

func (c *Chat) IsDeleted() bool {
	return c.DeletedAt != nil
}

// ChatFilter narrows a gallery listing. Zero value means no filtering.
type ChatFilter struct {
	Tag   string
	Query string
}

type Message struct {
	Uuid        uuid.UUID
	ChatUuid    uuid.UUID
	Author      string
	Body        string
	SentAt      time.Time
	Attachments []Attachment
}

type Attachment struct {
	Name string
	Mime string
	Size int64
}
