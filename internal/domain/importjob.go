package domain

import (
	"time"

	"github.com/google/uuid"
)

type ImportStatus string

const (
	ImportQueued  ImportStatus = "queued"
	ImportRunning ImportStatus = "running"
	ImportDone    ImportStatus = "done"
	ImportFailed  ImportStatus = "failed"
)

type ImportJob struct {
	Uuid       uuid.UUID
	OwnerUuid  uuid.UUID
	Filename   string
	Status     ImportStatus
	Attempts   int
	Error      string
	ChatUuid   *uuid.UUID
	Messages   int
	CreatedAt  time.Time
	FinishedAt *time.Time
}

// ImportProgress is the live counter polled by clients while a job runs.
type ImportProgress struct {
	Processed int
	Total     int
}
