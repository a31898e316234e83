package archive

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/services/archive/mocks"
	"github.com/stuartcarroll/chatextract/internal/services/policy"
	policymocks "github.com/stuartcarroll/chatextract/internal/services/policy/mocks"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

var (
	ownerUuidTest = uuid.MustParse("8ee4e645-b894-4477-820b-48381e10677f")
	otherUuidTest = uuid.MustParse("30d88aa9-b8a5-4cfb-af4b-c043278e111e")
	chatUuidTest  = uuid.MustParse("5b2384d1-8f37-4a52-a3d0-93a2f6a3f1f1")

	ownerTest = domain.User{Uuid: ownerUuidTest, Login: "owner", Role: domain.RoleChatUser}
	otherTest = domain.User{Uuid: otherUuidTest, Login: "other", Role: domain.RoleChatUser}
)

type fixture struct {
	chats       *mocks.ChatStorage
	tags        *mocks.TagStorage
	grants      *policymocks.GrantStore
	memberships *policymocks.MembershipStore
	service     *ArchiveService
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		chats:       mocks.NewChatStorage(t),
		tags:        mocks.NewTagStorage(t),
		grants:      policymocks.NewGrantStore(t),
		memberships: policymocks.NewMembershipStore(t),
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f.service = New(log, policy.New(f.grants, f.memberships), f.chats, f.tags)
	return f
}

func chatOwnedByOwner() *domain.Chat {
	return &domain.Chat{Uuid: chatUuidTest, OwnerUuid: ownerUuidTest, Name: "family", CreatedAt: time.Now()}
}

func TestArchiveService_GetChat(t *testing.T) {
	tests := []struct {
		name    string
		user    *domain.User
		setup   func(f *fixture)
		wantErr error
	}{
		{
			name: "owner_sees_own_chat",
			user: &ownerTest,
			setup: func(f *fixture) {
				f.chats.On("GetChat", mock.Anything, chatUuidTest).Return(chatOwnedByOwner(), nil).Once()
			},
		},
		{
			name: "grantee_sees_shared_chat",
			user: &otherTest,
			setup: func(f *fixture) {
				f.chats.On("GetChat", mock.Anything, chatUuidTest).Return(chatOwnedByOwner(), nil).Once()
				f.grants.On("GrantExists", mock.Anything, chatUuidTest, domain.UserPrincipal(otherUuidTest)).Return(true, nil).Once()
			},
		},
		{
			name: "stranger_gets_not_found",
			user: &otherTest,
			setup: func(f *fixture) {
				f.chats.On("GetChat", mock.Anything, chatUuidTest).Return(chatOwnedByOwner(), nil).Once()
				f.grants.On("GrantExists", mock.Anything, chatUuidTest, domain.UserPrincipal(otherUuidTest)).Return(false, nil).Once()
				f.memberships.On("LegacyMemberExists", mock.Anything, chatUuidTest, otherUuidTest).Return(false, nil).Once()
			},
			wantErr: ErrChatNotFound,
		},
		{
			name: "missing_chat",
			user: &ownerTest,
			setup: func(f *fixture) {
				f.chats.On("GetChat", mock.Anything, chatUuidTest).Return(nil, storage.ErrChatNotFound).Once()
			},
			wantErr: ErrChatNotFound,
		},
		{
			name: "deleted_chat_hidden_from_grantee",
			user: &otherTest,
			setup: func(f *fixture) {
				deleted := chatOwnedByOwner()
				now := time.Now()
				deleted.DeletedAt = &now
				f.chats.On("GetChat", mock.Anything, chatUuidTest).Return(deleted, nil).Once()
				f.grants.On("GrantExists", mock.Anything, chatUuidTest, domain.UserPrincipal(otherUuidTest)).Return(true, nil).Once()
			},
			wantErr: ErrChatNotFound,
		},
		{
			name: "deleted_chat_visible_to_owner",
			user: &ownerTest,
			setup: func(f *fixture) {
				deleted := chatOwnedByOwner()
				now := time.Now()
				deleted.DeletedAt = &now
				f.chats.On("GetChat", mock.Anything, chatUuidTest).Return(deleted, nil).Once()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			chat, err := f.service.GetChat(context.TODO(), tt.user, chatUuidTest)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, chatUuidTest, chat.Uuid)
		})
	}
}

func TestArchiveService_ChatMessages(t *testing.T) {
	f := newFixture(t)
	f.chats.On("GetChat", mock.Anything, chatUuidTest).Return(chatOwnedByOwner(), nil).Once()
	f.chats.On("GetChatMessages", mock.Anything, chatUuidTest).Return([]domain.Message{
		{Uuid: uuid.New(), ChatUuid: chatUuidTest, Author: "mum", Body: "hello"},
	}, nil).Once()

	messages, err := f.service.ChatMessages(context.TODO(), &ownerTest, chatUuidTest)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}

// A grantee can read a chat but must never be able to mutate it.
func TestArchiveService_mutationsDeniedForGrantee(t *testing.T) {
	tests := []struct {
		name string
		call func(s *ArchiveService) error
	}{
		{name: "rename", call: func(s *ArchiveService) error {
			return s.RenameChat(context.TODO(), &otherTest, chatUuidTest, "new name")
		}},
		{name: "delete", call: func(s *ArchiveService) error {
			return s.DeleteChat(context.TODO(), &otherTest, chatUuidTest)
		}},
		{name: "restore", call: func(s *ArchiveService) error {
			return s.RestoreChat(context.TODO(), &otherTest, chatUuidTest)
		}},
		{name: "purge", call: func(s *ArchiveService) error {
			return s.PurgeChat(context.TODO(), &otherTest, chatUuidTest)
		}},
		{name: "set_tags", call: func(s *ArchiveService) error {
			return s.SetChatTags(context.TODO(), &otherTest, chatUuidTest, []int{1})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.chats.On("GetChat", mock.Anything, chatUuidTest).Return(chatOwnedByOwner(), nil).Once()

			err := tt.call(f.service)
			assert.ErrorIs(t, err, ErrPermissionDenied)
		})
	}
}

func TestArchiveService_mutationsAllowedForOwner(t *testing.T) {
	f := newFixture(t)
	f.chats.On("GetChat", mock.Anything, chatUuidTest).Return(chatOwnedByOwner(), nil).Times(4)
	f.chats.On("RenameChat", mock.Anything, chatUuidTest, "renamed").Return(nil).Once()
	f.chats.On("SoftDeleteChat", mock.Anything, chatUuidTest).Return(nil).Once()
	f.chats.On("RestoreChat", mock.Anything, chatUuidTest).Return(nil).Once()
	f.chats.On("ForceDeleteChat", mock.Anything, chatUuidTest).Return(nil).Once()

	assert.NoError(t, f.service.RenameChat(context.TODO(), &ownerTest, chatUuidTest, "renamed"))
	assert.NoError(t, f.service.DeleteChat(context.TODO(), &ownerTest, chatUuidTest))
	assert.NoError(t, f.service.RestoreChat(context.TODO(), &ownerTest, chatUuidTest))
	assert.NoError(t, f.service.PurgeChat(context.TODO(), &ownerTest, chatUuidTest))
}

func TestArchiveService_ListChats(t *testing.T) {
	f := newFixture(t)
	filter := domain.ChatFilter{Tag: "family", Query: "mum"}
	f.chats.On("ListVisibleChats", mock.Anything, ownerUuidTest, filter).Return([]domain.Chat{*chatOwnedByOwner()}, nil).Once()

	chats, err := f.service.ListChats(context.TODO(), &ownerTest, filter)
	require.NoError(t, err)
	assert.Len(t, chats, 1)
}

func TestArchiveService_tagLifecycle(t *testing.T) {
	f := newFixture(t)
	f.tags.On("CreateTag", mock.Anything, domain.Tag{Name: "family", Color: "#ff0000"}).
		Return(&domain.Tag{Id: 1, Name: "family", Color: "#ff0000"}, nil).Once()
	f.tags.On("ListTags", mock.Anything).Return([]domain.Tag{{Id: 1, Name: "family", Color: "#ff0000"}}, nil).Once()
	f.tags.On("UpdateTag", mock.Anything, domain.Tag{Id: 1, Name: "friends", Color: "#00ff00"}).Return(nil).Once()
	f.tags.On("DeleteTag", mock.Anything, 1).Return(nil).Once()

	created, err := f.service.CreateTag(context.TODO(), domain.Tag{Name: "family", Color: "#ff0000"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Id)

	tags, err := f.service.ListTags(context.TODO())
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	assert.NoError(t, f.service.UpdateTag(context.TODO(), domain.Tag{Id: 1, Name: "friends", Color: "#00ff00"}))
	assert.NoError(t, f.service.DeleteTag(context.TODO(), 1))
}

func TestArchiveService_tagNotFound(t *testing.T) {
	f := newFixture(t)
	f.tags.On("UpdateTag", mock.Anything, domain.Tag{Id: 9}).Return(storage.ErrTagNotFound).Once()

	err := f.service.UpdateTag(context.TODO(), domain.Tag{Id: 9})
	assert.ErrorIs(t, err, ErrTagNotFound)
}
