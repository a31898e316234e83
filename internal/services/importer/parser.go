package importer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/stuartcarroll/chatextract/internal/domain/errs"
)

// Export is the upload format produced by the supported chat exporters.
type Export struct {
	Name         string          `json:"name"`
	Source       string          `json:"source"`
	Participants []string        `json:"participants"`
	Messages     []ExportMessage `json:"messages"`
}

type ExportMessage struct {
	Author      string             `json:"author"`
	Body        string             `json:"body"`
	SentAt      time.Time          `json:"sent_at"`
	Attachments []ExportAttachment `json:"attachments"`
}

type ExportAttachment struct {
	Name string `json:"name"`
	Mime string `json:"mime"`
	Size int64  `json:"size"`
}

// ParseExport decodes and validates an uploaded conversation payload.
// Invalid payloads fail the job, not the upload, so validation errors wrap
// ErrImportBadPayload.
func ParseExport(data []byte) (*Export, error) {
	var export Export
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrImportBadPayload, err)
	}

	if len(export.Messages) == 0 {
		return nil, fmt.Errorf("%w: export contains no messages", errs.ErrImportBadPayload)
	}
	for i, m := range export.Messages {
		if m.Author == "" {
			return nil, fmt.Errorf("%w: message %d has no author", errs.ErrImportBadPayload, i)
		}
	}

	if export.Name == "" {
		export.Name = "Imported conversation"
	}

	return &export, nil
}
