package policy

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/services/policy/mocks"
)

var (
	ownerUuidTest = uuid.MustParse("8ee4e645-b894-4477-820b-48381e10677f")
	otherUuidTest = uuid.MustParse("30d88aa9-b8a5-4cfb-af4b-c043278e111e")
	chatUuidTest  = uuid.MustParse("5b2384d1-8f37-4a52-a3d0-93a2f6a3f1f1")

	ownerTest = domain.User{Uuid: ownerUuidTest, Login: "owner", Role: domain.RoleChatUser}
	otherTest = domain.User{Uuid: otherUuidTest, Login: "other", Role: domain.RoleChatUser}
	chatTest  = domain.Chat{Uuid: chatUuidTest, OwnerUuid: ownerUuidTest, Name: "family"}
)

type mockArgs struct {
	methodName string
	arguments  []any
	returning  []any
}

func newMockPolicy(t *testing.T, grantMocks, memberMocks []mockArgs) *ChatPolicy {
	grants := mocks.NewGrantStore(t)
	for _, m := range grantMocks {
		grants.On(m.methodName, m.arguments...).Return(m.returning...).Once()
	}
	memberships := mocks.NewMembershipStore(t)
	for _, m := range memberMocks {
		memberships.On(m.methodName, m.arguments...).Return(m.returning...).Once()
	}
	return New(grants, memberships)
}

func TestChatPolicy_View(t *testing.T) {
	tests := []struct {
		name        string
		user        *domain.User
		chat        *domain.Chat
		grantMocks  []mockArgs
		memberMocks []mockArgs
		want        bool
		wantErr     bool
	}{
		{
			name: "owner_without_grants_or_legacy_rows",
			user: &ownerTest,
			chat: &chatTest,
			want: true,
		},
		{
			name: "granted_user",
			user: &otherTest,
			chat: &chatTest,
			grantMocks: []mockArgs{
				{methodName: "GrantExists", arguments: []any{mock.Anything, chatUuidTest, domain.UserPrincipal(otherUuidTest)}, returning: []any{true, nil}},
			},
			want: true,
		},
		{
			name: "legacy_member_only",
			user: &otherTest,
			chat: &chatTest,
			grantMocks: []mockArgs{
				{methodName: "GrantExists", arguments: []any{mock.Anything, chatUuidTest, domain.UserPrincipal(otherUuidTest)}, returning: []any{false, nil}},
			},
			memberMocks: []mockArgs{
				{methodName: "LegacyMemberExists", arguments: []any{mock.Anything, chatUuidTest, otherUuidTest}, returning: []any{true, nil}},
			},
			want: true,
		},
		{
			name: "stranger",
			user: &otherTest,
			chat: &chatTest,
			grantMocks: []mockArgs{
				{methodName: "GrantExists", arguments: []any{mock.Anything, chatUuidTest, domain.UserPrincipal(otherUuidTest)}, returning: []any{false, nil}},
			},
			memberMocks: []mockArgs{
				{methodName: "LegacyMemberExists", arguments: []any{mock.Anything, chatUuidTest, otherUuidTest}, returning: []any{false, nil}},
			},
			want: false,
		},
		{
			name: "anonymous",
			user: nil,
			chat: &chatTest,
			want: false,
		},
		{
			name: "grant_store_error_propagates",
			user: &otherTest,
			chat: &chatTest,
			grantMocks: []mockArgs{
				{methodName: "GrantExists", arguments: []any{mock.Anything, chatUuidTest, domain.UserPrincipal(otherUuidTest)}, returning: []any{false, errors.New("store is down")}},
			},
			want:    false,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newMockPolicy(t, tt.grantMocks, tt.memberMocks)
			got, err := p.View(context.TODO(), tt.user, tt.chat)
			if (err != nil) != tt.wantErr {
				t.Errorf("ChatPolicy.View() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// A user who is both owner and grantee is allowed via ownership: the grant
// store must never be consulted.
func TestChatPolicy_View_ownerShortCircuits(t *testing.T) {
	grants := mocks.NewGrantStore(t)
	memberships := mocks.NewMembershipStore(t)
	p := New(grants, memberships)

	got, err := p.View(context.TODO(), &ownerTest, &chatTest)
	require.NoError(t, err)
	assert.True(t, got)
	grants.AssertNotCalled(t, "GrantExists")
	memberships.AssertNotCalled(t, "LegacyMemberExists")
}

// A stored group grant must stay inert: view only ever asks the grant store
// about user principals, so a group row can never match.
func TestChatPolicy_View_groupGrantsAreInert(t *testing.T) {
	grants := mocks.NewGrantStore(t)
	grants.On("GrantExists", mock.Anything, chatUuidTest, domain.UserPrincipal(otherUuidTest)).Return(false, nil).Once()
	memberships := mocks.NewMembershipStore(t)
	memberships.On("LegacyMemberExists", mock.Anything, chatUuidTest, otherUuidTest).Return(false, nil).Once()
	p := New(grants, memberships)

	got, err := p.View(context.TODO(), &otherTest, &chatTest)
	require.NoError(t, err)
	assert.False(t, got)
	for _, call := range grants.Calls {
		principal := call.Arguments.Get(2).(domain.Principal)
		assert.Equal(t, domain.PrincipalUser, principal.Kind)
	}
}

func TestChatPolicy_mutatingOpsAreOwnerOnlyAndInLockStep(t *testing.T) {
	tests := []struct {
		name string
		user *domain.User
		chat *domain.Chat
		want bool
	}{
		{name: "owner", user: &ownerTest, chat: &chatTest, want: true},
		{name: "granted_or_legacy_user", user: &otherTest, chat: &chatTest, want: false},
		{name: "anonymous", user: nil, chat: &chatTest, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newMockPolicy(t, nil, nil)
			assert.Equal(t, tt.want, p.Update(tt.user, tt.chat))
			assert.Equal(t, tt.want, p.Delete(tt.user, tt.chat))
			assert.Equal(t, tt.want, p.Restore(tt.user, tt.chat))
			assert.Equal(t, tt.want, p.ForceDelete(tt.user, tt.chat))
		})
	}
}

func TestChatPolicy_ViewAnyAndCreate(t *testing.T) {
	p := newMockPolicy(t, nil, nil)

	assert.True(t, p.ViewAny(&ownerTest))
	assert.True(t, p.ViewAny(&otherTest))
	assert.False(t, p.ViewAny(nil))

	assert.True(t, p.Create(&ownerTest))
	assert.True(t, p.Create(&otherTest))
	assert.False(t, p.Create(nil))
}
