package domain

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleChatUser Role = "chat_user"
	RoleViewOnly Role = "view_only"
)

type User struct {
	Uuid         uuid.UUID
	Login        string
	PasswordHash []byte
	Role         Role
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsChatUser() bool {
	return u.Role == RoleChatUser
}

type Tokens struct {
	AccessToken  string
	RefreshToken string
}

type UserCtxKey struct {
}
