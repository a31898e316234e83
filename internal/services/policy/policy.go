package policy

import (
	"context"

	"github.com/google/uuid"

	"github.com/stuartcarroll/chatextract/internal/domain"
)

// GrantStore answers whether an explicit access grant exists for a chat.
type GrantStore interface {
	GrantExists(ctx context.Context, chatUuid uuid.UUID, principal domain.Principal) (bool, error)
}

// MembershipStore answers whether a legacy chat_user pivot row exists.
// It is consulted for view decisions only.
type MembershipStore interface {
	LegacyMemberExists(ctx context.Context, chatUuid uuid.UUID, userUuid uuid.UUID) (bool, error)
}

// Group grants are recorded in storage but stay inert until group
// membership resolution is implemented. Flipping this on without a
// GroupUser lookup would hand out access on a type tag alone.
const groupGrantsEnabled = false

// ChatPolicy decides per-operation authorization for a (user, chat) pair.
// Decisions are pure: the only reads are point lookups against the grant
// and membership stores, and nothing is cached between calls.
type ChatPolicy struct {
	grants      GrantStore
	memberships MembershipStore
}

func New(grants GrantStore, memberships MembershipStore) *ChatPolicy {
	return &ChatPolicy{grants: grants, memberships: memberships}
}

// ViewAny permits listing for every authenticated user. Filtering to
// visible chats happens in the queries, not here.
func (p *ChatPolicy) ViewAny(user *domain.User) bool {
	return user != nil
}

// Create permits every authenticated user: there is no resource yet to
// restrict against.
func (p *ChatPolicy) Create(user *domain.User) bool {
	return user != nil
}

// View permits the owner, then explicitly granted users, then legacy
// members, short-circuiting on the first match. Ownership goes first
// because it is the cheapest check.
func (p *ChatPolicy) View(ctx context.Context, user *domain.User, chat *domain.Chat) (bool, error) {
	if user == nil || chat == nil {
		return false, nil
	}

	if chat.OwnerUuid == user.Uuid {
		return true, nil
	}

	granted, err := p.grants.GrantExists(ctx, chat.Uuid, domain.UserPrincipal(user.Uuid))
	if err != nil {
		return false, err
	}
	if granted {
		return true, nil
	}

	if groupGrantsEnabled {
		// Resolving the user's groups and checking group principals
		// belongs here once GroupUser membership exists.
		_ = domain.PrincipalGroup
	}

	member, err := p.memberships.LegacyMemberExists(ctx, chat.Uuid, user.Uuid)
	if err != nil {
		return false, err
	}
	return member, nil
}

// Update is owner-only. Grants and legacy memberships never confer
// mutation rights.
func (p *ChatPolicy) Update(user *domain.User, chat *domain.Chat) bool {
	return user != nil && chat != nil && chat.OwnerUuid == user.Uuid
}

// Delete is owner-only, same rule as Update.
func (p *ChatPolicy) Delete(user *domain.User, chat *domain.Chat) bool {
	return p.Update(user, chat)
}

// Restore is owner-only, same rule as Update.
func (p *ChatPolicy) Restore(user *domain.User, chat *domain.Chat) bool {
	return p.Update(user, chat)
}

// ForceDelete is owner-only, same rule as Update.
func (p *ChatPolicy) ForceDelete(user *domain.User, chat *domain.Chat) bool {
	return p.Update(user, chat)
}
