package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/stuartcarroll/chatextract/internal/domain"
)

type AuthProvider interface {
	Register(ctx context.Context, login, password string) (*domain.User, error)
	Login(ctx context.Context, login, password string) (domain.Tokens, error)
	Refresh(ctx context.Context, refreshToken string) (domain.Tokens, error)
}

type ArchiveProvider interface {
	ListChats(ctx context.Context, user *domain.User, filter domain.ChatFilter) ([]domain.Chat, error)
	GetChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID) (*domain.Chat, error)
	ChatMessages(ctx context.Context, user *domain.User, chatUuid uuid.UUID) ([]domain.Message, error)
	RenameChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID, name string) error
	DeleteChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID) error
	RestoreChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID) error
	PurgeChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID) error
	SetChatTags(ctx context.Context, user *domain.User, chatUuid uuid.UUID, tagIds []int) error
	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error)
	UpdateTag(ctx context.Context, tag domain.Tag) error
	DeleteTag(ctx context.Context, tagId int) error
}

type ImportProvider interface {
	Enqueue(ctx context.Context, user *domain.User, filename string, payload []byte) (*domain.ImportJob, error)
	Job(ctx context.Context, user *domain.User, jobUuid uuid.UUID) (*domain.ImportJob, *domain.ImportProgress, error)
	Jobs(ctx context.Context, user *domain.User) ([]domain.ImportJob, error)
	Retry(ctx context.Context, user *domain.User, jobUuid uuid.UUID) (*domain.ImportJob, error)
}

// Handler carries shared dependencies for all HTTP handlers.
type Handler struct {
	auth      AuthProvider
	archive   ArchiveProvider
	imports   ImportProvider
	maxUpload int64
}

func NewHandler(auth AuthProvider, archive ArchiveProvider, imports ImportProvider, maxUpload int64) *Handler {
	return &Handler{auth: auth, archive: archive, imports: imports, maxUpload: maxUpload}
}

// JSON sends a JSON response with the given status code.
func (h *Handler) JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends a JSON error response with the given status code.
func (h *Handler) Error(w http.ResponseWriter, status int, message string) {
	h.JSON(w, status, map[string]string{"error": message})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
