package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/storage"
	"github.com/stuartcarroll/chatextract/internal/storage/postgres"
)

func newTestRepo(t *testing.T) (*postgres.Postgres, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return postgres.New(log, db), mock, func() { db.Close() }
}

func TestWithTx(t *testing.T) {
	repo, mock, closeDb := newTestRepo(t)
	defer closeDb()

	type mockBehavior func()

	sameError := errors.New("some error")

	testTable := []struct {
		name         string
		testFunc     func(context.Context) error
		expectErr    error
		mockBehavior mockBehavior
	}{
		{
			name:      "transaction_commited",
			testFunc:  func(ctx context.Context) error { return nil },
			expectErr: nil,
			mockBehavior: func() {
				mock.ExpectBegin()
				mock.ExpectCommit()
			},
		},
		{
			name:      "begin_errored",
			testFunc:  func(ctx context.Context) error { return nil },
			expectErr: storage.ErrInternal,
			mockBehavior: func() {
				mock.ExpectBegin().WillReturnError(errors.New("some error"))
			},
		},
		{
			name:      "fn_errored",
			testFunc:  func(ctx context.Context) error { return sameError },
			expectErr: sameError,
			mockBehavior: func() {
				mock.ExpectBegin()
				mock.ExpectRollback()
			},
		},
		{
			name:      "fn_errored_rollback_errored",
			testFunc:  func(ctx context.Context) error { return sameError },
			expectErr: storage.ErrInternal,
			mockBehavior: func() {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(errors.New("some error"))
			},
		},
		{
			name:      "fn_commit_errored",
			testFunc:  func(ctx context.Context) error { return nil },
			expectErr: storage.ErrInternal,
			mockBehavior: func() {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(errors.New("some error"))
			},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.mockBehavior()

			err := repo.WithTx(context.Background(), testCase.testFunc)

			assert.Equal(t, testCase.expectErr, err)

			mock.ExpectationsWereMet()
		})
	}
}

func TestCreateUser(t *testing.T) {
	repo, mock, closeDb := newTestRepo(t)
	defer closeDb()

	type args struct {
		context.Context
		domain.User
	}

	type mockBehavior func(args)

	sameUuid := uuid.New()

	testTable := []struct {
		name         string
		args         args
		expectUser   *domain.User
		expectErr    error
		mockBehavior mockBehavior
	}{
		{
			name: "user_created",
			args: args{
				context.Background(),
				domain.User{Uuid: sameUuid, Login: "test", PasswordHash: []byte("test"), Role: domain.RoleChatUser},
			},
			expectUser: &domain.User{Uuid: sameUuid, Login: "test", PasswordHash: []byte("test"), Role: domain.RoleChatUser},
			expectErr:  nil,
			mockBehavior: func(args args) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO users").
					WithArgs(args.Uuid, args.Login, args.PasswordHash, string(args.Role)).
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "got_internal_error",
			args: args{
				context.Background(),
				domain.User{Uuid: sameUuid, Login: "test", PasswordHash: []byte("test"), Role: domain.RoleChatUser},
			},
			expectUser: nil,
			expectErr:  storage.ErrInternal,
			mockBehavior: func(args args) {
				mock.ExpectBegin()
				mock.ExpectExec("INSERT INTO users").
					WithArgs(args.Uuid, args.Login, args.PasswordHash, string(args.Role)).
					WillReturnError(errors.New("some error"))
				mock.ExpectRollback()
			},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.mockBehavior(testCase.args)

			user, err := repo.CreateUser(testCase.args.Context, testCase.args.User)

			assert.Equal(t, testCase.expectUser, user)
			assert.Equal(t, testCase.expectErr, err)

			mock.ExpectationsWereMet()
		})
	}
}

func TestGetChat(t *testing.T) {
	repo, mock, closeDb := newTestRepo(t)
	defer closeDb()

	type mockBehavior func(chatUuid uuid.UUID)

	sameUuid := uuid.New()
	sameOwner := uuid.New()
	sameTime := time.Now()

	testTable := []struct {
		name         string
		chatUuid     uuid.UUID
		expectChat   *domain.Chat
		expectErr    error
		mockBehavior mockBehavior
	}{
		{
			name:     "got_chat_with_tags",
			chatUuid: sameUuid,
			expectChat: &domain.Chat{
				Uuid: sameUuid, OwnerUuid: sameOwner, Name: "holiday", Source: "whatsapp", CreatedAt: sameTime,
				Tags: []domain.Tag{{Id: 1, Name: "family", Color: "#ff0000"}},
			},
			expectErr: nil,
			mockBehavior: func(chatUuid uuid.UUID) {
				chatRows := sqlmock.NewRows([]string{"uuid", "owner_uuid", "name", "source", "created_at", "deleted_at"}).
					AddRow(sameUuid, sameOwner, "holiday", "whatsapp", sameTime, nil)
				tagRows := sqlmock.NewRows([]string{"id", "name", "color"}).
					AddRow(1, "family", "#ff0000")

				mock.ExpectBegin()
				mock.ExpectQuery("SELECT uuid, owner_uuid, name, source, created_at, deleted_at FROM chats").
					WithArgs(chatUuid).
					WillReturnRows(chatRows)
				mock.ExpectQuery("SELECT t.id, t.name, t.color FROM tags").
					WithArgs(chatUuid).
					WillReturnRows(tagRows)
				mock.ExpectCommit()
			},
		},
		{
			name:       "got_error_chat_not_found",
			chatUuid:   sameUuid,
			expectChat: nil,
			expectErr:  storage.ErrChatNotFound,
			mockBehavior: func(chatUuid uuid.UUID) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT uuid, owner_uuid, name, source, created_at, deleted_at FROM chats").
					WithArgs(chatUuid).
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
		},
		{
			name:       "got_internal_error",
			chatUuid:   sameUuid,
			expectChat: nil,
			expectErr:  storage.ErrInternal,
			mockBehavior: func(chatUuid uuid.UUID) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT uuid, owner_uuid, name, source, created_at, deleted_at FROM chats").
					WithArgs(chatUuid).
					WillReturnError(errors.New("some error"))
				mock.ExpectRollback()
			},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.mockBehavior(testCase.chatUuid)

			chat, err := repo.GetChat(context.Background(), testCase.chatUuid)

			assert.Equal(t, testCase.expectChat, chat)
			assert.Equal(t, testCase.expectErr, err)

			mock.ExpectationsWereMet()
		})
	}
}

func TestGrantExists(t *testing.T) {
	repo, mock, closeDb := newTestRepo(t)
	defer closeDb()

	type args struct {
		chatUuid  uuid.UUID
		principal domain.Principal
	}

	type mockBehavior func(args)

	sameChat := uuid.New()
	sameUser := uuid.New()

	testTable := []struct {
		name         string
		args         args
		expectExists bool
		expectErr    error
		mockBehavior mockBehavior
	}{
		{
			name:         "grant_exists",
			args:         args{chatUuid: sameChat, principal: domain.UserPrincipal(sameUser)},
			expectExists: true,
			expectErr:    nil,
			mockBehavior: func(args args) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(true)

				mock.ExpectBegin()
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(args.chatUuid, "User", args.principal.Uuid).
					WillReturnRows(rows)
				mock.ExpectCommit()
			},
		},
		{
			name:         "grant_missing",
			args:         args{chatUuid: sameChat, principal: domain.UserPrincipal(sameUser)},
			expectExists: false,
			expectErr:    nil,
			mockBehavior: func(args args) {
				rows := sqlmock.NewRows([]string{"exists"}).AddRow(false)

				mock.ExpectBegin()
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(args.chatUuid, "User", args.principal.Uuid).
					WillReturnRows(rows)
				mock.ExpectCommit()
			},
		},
		{
			name:         "got_internal_error",
			args:         args{chatUuid: sameChat, principal: domain.UserPrincipal(sameUser)},
			expectExists: false,
			expectErr:    storage.ErrInternal,
			mockBehavior: func(args args) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(args.chatUuid, "User", args.principal.Uuid).
					WillReturnError(errors.New("some error"))
				mock.ExpectRollback()
			},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.mockBehavior(testCase.args)

			exists, err := repo.GrantExists(context.Background(), testCase.args.chatUuid, testCase.args.principal)

			assert.Equal(t, testCase.expectExists, exists)
			assert.Equal(t, testCase.expectErr, err)

			mock.ExpectationsWereMet()
		})
	}
}

func TestClaimNextJob(t *testing.T) {
	repo, mock, closeDb := newTestRepo(t)
	defer closeDb()

	type mockBehavior func()

	sameUuid := uuid.New()
	sameOwner := uuid.New()
	sameTime := time.Now()

	jobColumns := []string{"uuid", "owner_uuid", "filename", "status", "attempts", "error", "chat_uuid", "messages", "created_at", "finished_at"}

	testTable := []struct {
		name         string
		expectJob    *domain.ImportJob
		expectErr    error
		mockBehavior mockBehavior
	}{
		{
			name: "job_claimed",
			expectJob: &domain.ImportJob{
				Uuid: sameUuid, OwnerUuid: sameOwner, Filename: "export.json",
				Status: domain.ImportRunning, Attempts: 1, CreatedAt: sameTime,
			},
			expectErr: nil,
			mockBehavior: func() {
				rows := sqlmock.NewRows(jobColumns).
					AddRow(sameUuid, sameOwner, "export.json", "running", 1, nil, nil, 0, sameTime, nil)

				mock.ExpectBegin()
				mock.ExpectQuery("UPDATE import_jobs SET status = 'running'").
					WillReturnRows(rows)
				mock.ExpectCommit()
			},
		},
		{
			name:      "queue_empty",
			expectJob: nil,
			expectErr: storage.ErrJobNotFound,
			mockBehavior: func() {
				mock.ExpectBegin()
				mock.ExpectQuery("UPDATE import_jobs SET status = 'running'").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.mockBehavior()

			job, err := repo.ClaimNextJob(context.Background())

			assert.Equal(t, testCase.expectJob, job)
			assert.Equal(t, testCase.expectErr, err)

			mock.ExpectationsWereMet()
		})
	}
}

func TestRequeueJob(t *testing.T) {
	repo, mock, closeDb := newTestRepo(t)
	defer closeDb()

	type mockBehavior func(jobUuid uuid.UUID)

	sameUuid := uuid.New()

	testTable := []struct {
		name         string
		expectErr    error
		mockBehavior mockBehavior
	}{
		{
			name:      "job_requeued",
			expectErr: nil,
			mockBehavior: func(jobUuid uuid.UUID) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE import_jobs SET status = 'queued'").
					WithArgs(jobUuid).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name:      "job_not_failed",
			expectErr: storage.ErrJobNotFound,
			mockBehavior: func(jobUuid uuid.UUID) {
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE import_jobs SET status = 'queued'").
					WithArgs(jobUuid).
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.mockBehavior(sameUuid)

			err := repo.RequeueJob(context.Background(), sameUuid)

			assert.Equal(t, testCase.expectErr, err)

			mock.ExpectationsWereMet()
		})
	}
}

func TestGetNextOutbox(t *testing.T) {
	repo, mock, closeDb := newTestRepo(t)
	defer closeDb()

	type mockBehavior func()

	sameKey := uuid.New()

	testTable := []struct {
		name         string
		expectOutbox *domain.Outbox
		expectErr    error
		mockBehavior mockBehavior
	}{
		{
			name: "got_outbox",
			expectOutbox: &domain.Outbox{
				Id: 1, Topic: domain.ImportTopic, Key: sameKey, Message: []byte(`{"messages":10}`),
			},
			expectErr: nil,
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "topic", "key", "message", "sent_at"}).
					AddRow(1, domain.ImportTopic, sameKey, []byte(`{"messages":10}`), nil)

				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id, topic, key, message, sent_at FROM outbox").
					WillReturnRows(rows)
				mock.ExpectCommit()
			},
		},
		{
			name:         "got_error_no_outbox",
			expectOutbox: nil,
			expectErr:    storage.ErrNoOutbox,
			mockBehavior: func() {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT id, topic, key, message, sent_at FROM outbox").
					WillReturnError(sql.ErrNoRows)
				mock.ExpectRollback()
			},
		},
	}

	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.mockBehavior()

			outbox, err := repo.GetNextOutbox(context.Background())

			assert.Equal(t, testCase.expectOutbox, outbox)
			assert.Equal(t, testCase.expectErr, err)

			mock.ExpectationsWereMet()
		})
	}
}
