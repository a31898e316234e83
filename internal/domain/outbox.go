package domain

import (
	"time"

	"github.com/google/uuid"
)

const ImportTopic = "imports"

type Outbox struct {
	Id      int
	Topic   string
	Key     uuid.UUID
	Message []byte
	SentAt  *time.Time
}

// ImportEvent announces a finished import to downstream consumers.
type ImportEvent struct {
	JobUuid   uuid.UUID `json:"job_uuid"`
	ChatUuid  uuid.UUID `json:"chat_uuid"`
	OwnerUuid uuid.UUID `json:"owner_uuid"`
	Messages  int       `json:"messages"`
}
