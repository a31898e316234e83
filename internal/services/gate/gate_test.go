package gate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/domain/errs"
)

func TestChatUserGate_Allow(t *testing.T) {
	tests := []struct {
		name    string
		user    *domain.User
		wantErr bool
	}{
		{
			name:    "anonymous",
			user:    nil,
			wantErr: true,
		},
		{
			name:    "view_only",
			user:    &domain.User{Uuid: uuid.New(), Role: domain.RoleViewOnly},
			wantErr: true,
		},
		{
			name:    "chat_user",
			user:    &domain.User{Uuid: uuid.New(), Role: domain.RoleChatUser},
			wantErr: false,
		},
		{
			name:    "admin",
			user:    &domain.User{Uuid: uuid.New(), Role: domain.RoleAdmin},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			err := g.Allow(tt.user)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrAccessDenied)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChatUserGate_deniedMessage(t *testing.T) {
	g := New()
	err := g.Allow(nil)
	assert.EqualError(t, err, "Access denied. This feature requires chat user or admin privileges.")
}
