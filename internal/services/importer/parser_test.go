package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stuartcarroll/chatextract/internal/domain/errs"
)

func TestParseExport(t *testing.T) {
	input := `{
		"name": "Family group",
		"source": "whatsapp",
		"participants": ["mum", "dad"],
		"messages": [
			{"author": "mum", "body": "hello", "sent_at": "2021-05-04T10:00:00Z"},
			{"author": "dad", "body": "photo", "sent_at": "2021-05-04T10:01:00Z",
			 "attachments": [{"name": "IMG_0001.jpg", "mime": "image/jpeg", "size": 120345}]}
		]
	}`

	export, err := ParseExport([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, "Family group", export.Name)
	assert.Equal(t, "whatsapp", export.Source)
	assert.Len(t, export.Messages, 2)
	assert.Len(t, export.Messages[1].Attachments, 1)
	assert.Equal(t, int64(120345), export.Messages[1].Attachments[0].Size)
}

func TestParseExport_defaultsName(t *testing.T) {
	input := `{"messages": [{"author": "mum", "body": "hi", "sent_at": "2021-05-04T10:00:00Z"}]}`

	export, err := ParseExport([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, "Imported conversation", export.Name)
}

func TestParseExport_invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not_json", input: `{{{`},
		{name: "no_messages", input: `{"name": "empty"}`},
		{name: "message_without_author", input: `{"messages": [{"body": "hi"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExport([]byte(tt.input))
			assert.ErrorIs(t, err, errs.ErrImportBadPayload)
		})
	}
}
