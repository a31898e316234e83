package archive

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/pkg/logger/sl"
	"github.com/stuartcarroll/chatextract/internal/services/policy"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

type ChatStorage interface {
	GetChat(ctx context.Context, chatUuid uuid.UUID) (*domain.Chat, error)
	ListVisibleChats(ctx context.Context, userUuid uuid.UUID, filter domain.ChatFilter) ([]domain.Chat, error)
	GetChatMessages(ctx context.Context, chatUuid uuid.UUID) ([]domain.Message, error)
	RenameChat(ctx context.Context, chatUuid uuid.UUID, name string) error
	SoftDeleteChat(ctx context.Context, chatUuid uuid.UUID) error
	RestoreChat(ctx context.Context, chatUuid uuid.UUID) error
	ForceDeleteChat(ctx context.Context, chatUuid uuid.UUID) error
	SetChatTags(ctx context.Context, chatUuid uuid.UUID, tagIds []int) error
}

type TagStorage interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error)
	UpdateTag(ctx context.Context, tag domain.Tag) error
	DeleteTag(ctx context.Context, tagId int) error
}

var (
	ErrInternal         = errors.New("internal error")
	ErrPermissionDenied = errors.New("have no permission for this operation")
	ErrChatNotFound     = errors.New("chat not found")
	ErrTagNotFound      = errors.New("tag not found")
)

// ArchiveService is the glue between the HTTP layer and storage: every
// per-chat call goes through the policy before touching anything.
type ArchiveService struct {
	log *slog.Logger

	policy      *policy.ChatPolicy
	chatStorage ChatStorage
	tagStorage  TagStorage
}

func New(log *slog.Logger, chatPolicy *policy.ChatPolicy, chatStorage ChatStorage, tagStorage TagStorage) *ArchiveService {
	return &ArchiveService{log: log, policy: chatPolicy, chatStorage: chatStorage, tagStorage: tagStorage}
}

func (s *ArchiveService) ListChats(ctx context.Context, user *domain.User, filter domain.ChatFilter) ([]domain.Chat, error) {
	const op = "archive.ListChats"
	log := s.log.With(slog.String("op", op))

	if !s.policy.ViewAny(user) {
		return nil, ErrPermissionDenied
	}

	chats, err := s.chatStorage.ListVisibleChats(ctx, user.Uuid, filter)
	if err != nil {
		log.Error("failed to list chats", sl.Err(err))
		return nil, ErrInternal
	}
	return chats, nil
}

// visibleChat loads a chat and applies the view decision. A denied view
// reads the same as a missing chat so strangers can't probe for uuids.
func (s *ArchiveService) visibleChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID) (*domain.Chat, error) {
	chat, err := s.chatStorage.GetChat(ctx, chatUuid)
	if err != nil {
		if errors.Is(err, storage.ErrChatNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, ErrInternal
	}

	ok, err := s.policy.View(ctx, user, chat)
	if err != nil {
		return nil, ErrInternal
	}
	if !ok {
		return nil, ErrChatNotFound
	}

	// Soft-deleted chats stay visible to their owner only, so shared
	// users don't see a chat its owner chose to remove.
	if chat.IsDeleted() && chat.OwnerUuid != user.Uuid {
		return nil, ErrChatNotFound
	}

	return chat, nil
}

func (s *ArchiveService) GetChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID) (*domain.Chat, error) {
	return s.visibleChat(ctx, user, chatUuid)
}

func (s *ArchiveService) ChatMessages(ctx context.Context, user *domain.User, chatUuid uuid.UUID) ([]domain.Message, error) {
	const op = "archive.ChatMessages"
	log := s.log.With(slog.String("op", op))

	if _, err := s.visibleChat(ctx, user, chatUuid); err != nil {
		return nil, err
	}

	messages, err := s.chatStorage.GetChatMessages(ctx, chatUuid)
	if err != nil {
		log.Error("failed to load messages", sl.Err(err))
		return nil, ErrInternal
	}
	return messages, nil
}

// ownedChat loads a chat and applies an owner-only decision for the given
// mutating operation.
func (s *ArchiveService) ownedChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID, decide func(*domain.User, *domain.Chat) bool) (*domain.Chat, error) {
	chat, err := s.chatStorage.GetChat(ctx, chatUuid)
	if err != nil {
		if errors.Is(err, storage.ErrChatNotFound) {
			return nil, ErrChatNotFound
		}
		return nil, ErrInternal
	}
	if !decide(user, chat) {
		return nil, ErrPermissionDenied
	}
	return chat, nil
}

func (s *ArchiveService) RenameChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID, name string) error {
	const op = "archive.RenameChat"
	log := s.log.With(slog.String("op", op))

	if _, err := s.ownedChat(ctx, user, chatUuid, s.policy.Update); err != nil {
		return err
	}
	if err := s.chatStorage.RenameChat(ctx, chatUuid, name); err != nil {
		log.Error("failed to rename chat", sl.Err(err))
		return ErrInternal
	}
	return nil
}

func (s *ArchiveService) DeleteChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID) error {
	const op = "archive.DeleteChat"
	log := s.log.With(slog.String("op", op))

	if _, err := s.ownedChat(ctx, user, chatUuid, s.policy.Delete); err != nil {
		return err
	}
	if err := s.chatStorage.SoftDeleteChat(ctx, chatUuid); err != nil {
		log.Error("failed to delete chat", sl.Err(err))
		return ErrInternal
	}
	return nil
}

func (s *ArchiveService) RestoreChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID) error {
	const op = "archive.RestoreChat"
	log := s.log.With(slog.String("op", op))

	if _, err := s.ownedChat(ctx, user, chatUuid, s.policy.Restore); err != nil {
		return err
	}
	if err := s.chatStorage.RestoreChat(ctx, chatUuid); err != nil {
		log.Error("failed to restore chat", sl.Err(err))
		return ErrInternal
	}
	return nil
}

func (s *ArchiveService) PurgeChat(ctx context.Context, user *domain.User, chatUuid uuid.UUID) error {
	const op = "archive.PurgeChat"
	log := s.log.With(slog.String("op", op))

	if _, err := s.ownedChat(ctx, user, chatUuid, s.policy.ForceDelete); err != nil {
		return err
	}
	if err := s.chatStorage.ForceDeleteChat(ctx, chatUuid); err != nil {
		log.Error("failed to purge chat", sl.Err(err))
		return ErrInternal
	}
	return nil
}

func (s *ArchiveService) SetChatTags(ctx context.Context, user *domain.User, chatUuid uuid.UUID, tagIds []int) error {
	const op = "archive.SetChatTags"
	log := s.log.With(slog.String("op", op))

	if _, err := s.ownedChat(ctx, user, chatUuid, s.policy.Update); err != nil {
		return err
	}
	if err := s.chatStorage.SetChatTags(ctx, chatUuid, tagIds); err != nil {
		if errors.Is(err, storage.ErrTagNotFound) {
			return ErrTagNotFound
		}
		log.Error("failed to set chat tags", sl.Err(err))
		return ErrInternal
	}
	return nil
}

func (s *ArchiveService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	tags, err := s.tagStorage.ListTags(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return tags, nil
}

func (s *ArchiveService) CreateTag(ctx context.Context, tag domain.Tag) (*domain.Tag, error) {
	created, err := s.tagStorage.CreateTag(ctx, tag)
	if err != nil {
		return nil, ErrInternal
	}
	return created, nil
}

func (s *ArchiveService) UpdateTag(ctx context.Context, tag domain.Tag) error {
	err := s.tagStorage.UpdateTag(ctx, tag)
	if errors.Is(err, storage.ErrTagNotFound) {
		return ErrTagNotFound
	}
	if err != nil {
		return ErrInternal
	}
	return nil
}

func (s *ArchiveService) DeleteTag(ctx context.Context, tagId int) error {
	err := s.tagStorage.DeleteTag(ctx, tagId)
	if errors.Is(err, storage.ErrTagNotFound) {
		return ErrTagNotFound
	}
	if err != nil {
		return ErrInternal
	}
	return nil
}
