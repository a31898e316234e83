package gate

import (
	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/domain/errs"
)

// ChatUserGate is the coarse role check run before any chat feature is
// reached. It is a pure predicate over the current principal and must be
// re-evaluated on every request: roles can change between requests.
type ChatUserGate struct {
}

func New() *ChatUserGate {
	return &ChatUserGate{}
}

// Allow permits admins and chat users. Anonymous principals and view_only
// accounts are denied with the fixed access message.
func (g *ChatUserGate) Allow(user *domain.User) error {
	if user == nil {
		return errs.ErrAccessDenied
	}
	if user.IsAdmin() || user.IsChatUser() {
		return nil
	}
	return errs.ErrAccessDenied
}
