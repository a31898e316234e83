package importer

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/services/importer/mocks"
)

func passthroughTx(t *testing.T) *mocks.TxRunner {
	tx := mocks.NewTxRunner(t)
	tx.On("WithTx", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, tFunc func(ctx context.Context) error) error {
			return tFunc(ctx)
		},
	)
	return tx
}

func TestWorker_ProcessJob(t *testing.T) {
	payload := []byte(`{
		"name": "Family group",
		"source": "whatsapp",
		"messages": [
			{"author": "mum", "body": "hello", "sent_at": "2021-05-04T10:00:00Z"},
			{"author": "dad", "body": "hi", "sent_at": "2021-05-04T10:01:00Z"}
		]
	}`)
	job := &domain.ImportJob{Uuid: jobUuidTest, OwnerUuid: ownerUuidTest, Status: domain.ImportRunning}

	jobs := mocks.NewJobStorage(t)
	jobs.On("GetJobPayload", mock.Anything, jobUuidTest).Return(payload, nil).Once()
	jobs.On("MarkJobDone", mock.Anything, jobUuidTest, mock.Anything, 2).Return(nil).Once()

	var createdChat domain.Chat
	chats := mocks.NewChatWriter(t)
	chats.On("CreateChat", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, chat domain.Chat) error {
			createdChat = chat
			return nil
		},
	).Once()
	chats.On("CreateMessages", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	progress := mocks.NewProgressStore(t)
	progress.On("SetProgress", mock.Anything, jobUuidTest, domain.ImportProgress{Processed: 0, Total: 2}).Return(nil).Once()
	progress.On("SetProgress", mock.Anything, jobUuidTest, domain.ImportProgress{Processed: 2, Total: 2}).Return(nil).Once()

	notifier := mocks.NewImportNotifier(t)
	notifier.On("CreateImportOutbox", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, event domain.ImportEvent) error {
			assert.Equal(t, jobUuidTest, event.JobUuid)
			assert.Equal(t, ownerUuidTest, event.OwnerUuid)
			assert.Equal(t, 2, event.Messages)
			return nil
		},
	).Once()

	w := NewWorker(testLogger(), jobs, chats, progress, notifier, passthroughTx(t), time.Second)
	w.ProcessJob(context.TODO(), job)

	assert.Equal(t, "Family group", createdChat.Name)
	assert.Equal(t, "whatsapp", createdChat.Source)
	assert.Equal(t, ownerUuidTest, createdChat.OwnerUuid)
}

func TestWorker_ProcessJob_badPayload(t *testing.T) {
	job := &domain.ImportJob{Uuid: jobUuidTest, OwnerUuid: ownerUuidTest, Status: domain.ImportRunning}

	jobs := mocks.NewJobStorage(t)
	jobs.On("GetJobPayload", mock.Anything, jobUuidTest).Return([]byte(`{"name": "empty"}`), nil).Once()
	jobs.On("MarkJobFailed", mock.Anything, jobUuidTest, mock.Anything).Return(nil).Once()

	w := NewWorker(testLogger(), jobs, mocks.NewChatWriter(t), mocks.NewProgressStore(t), mocks.NewImportNotifier(t), mocks.NewTxRunner(t), time.Second)
	w.ProcessJob(context.TODO(), job)
}

func TestWorker_ProcessJob_storageFailureMarksFailed(t *testing.T) {
	payload := []byte(`{"messages": [{"author": "mum", "body": "hi", "sent_at": "2021-05-04T10:00:00Z"}]}`)
	job := &domain.ImportJob{Uuid: jobUuidTest, OwnerUuid: ownerUuidTest, Status: domain.ImportRunning}

	jobs := mocks.NewJobStorage(t)
	jobs.On("GetJobPayload", mock.Anything, jobUuidTest).Return(payload, nil).Once()
	jobs.On("MarkJobFailed", mock.Anything, jobUuidTest, mock.Anything).Return(nil).Once()

	chats := mocks.NewChatWriter(t)
	chats.On("CreateChat", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	progress := mocks.NewProgressStore(t)
	progress.On("SetProgress", mock.Anything, jobUuidTest, mock.Anything).Return(nil)

	w := NewWorker(testLogger(), jobs, chats, progress, mocks.NewImportNotifier(t), passthroughTx(t), time.Second)
	w.ProcessJob(context.TODO(), job)
}

func TestToMessage(t *testing.T) {
	chatUuid := uuid.New()
	sentAt := time.Date(2021, 5, 4, 10, 0, 0, 0, time.UTC)

	msg := toMessage(chatUuid, ExportMessage{
		Author: "mum",
		Body:   "photo",
		SentAt: sentAt,
		Attachments: []ExportAttachment{
			{Name: "IMG_0001.jpg", Mime: "image/jpeg", Size: 120345},
		},
	})

	assert.Equal(t, chatUuid, msg.ChatUuid)
	assert.Equal(t, "mum", msg.Author)
	assert.Equal(t, sentAt, msg.SentAt)
	assert.Len(t, msg.Attachments, 1)
	assert.NotEqual(t, uuid.Nil, msg.Uuid)
}
