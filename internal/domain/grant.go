package domain

import "github.com/google/uuid"

type PrincipalKind string

const (
	PrincipalUser PrincipalKind = "User"
	// PrincipalGroup is stored but never evaluated: group membership
	// resolution is not implemented yet.
	PrincipalGroup PrincipalKind = "Group"
)

// Principal identifies who a grant is for. Only user principals confer
// access today.
type Principal struct {
	Kind PrincipalKind
	Uuid uuid.UUID
}

func UserPrincipal(userUuid uuid.UUID) Principal {
	return Principal{Kind: PrincipalUser, Uuid: userUuid}
}

// AccessGrant gives a non-owner principal read access to a chat. Grants
// never confer mutation rights.
type AccessGrant struct {
	ChatUuid  uuid.UUID
	Principal Principal
}

// LegacyMembership is the deprecated chat_user pivot, kept for
// backward-compatible read access. New code must not write to it.
type LegacyMembership struct {
	ChatUuid uuid.UUID
	UserUuid uuid.UUID
}
