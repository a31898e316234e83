package auth

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
	"golang.org/x/crypto/bcrypt"

	"github.com/stuartcarroll/chatextract/internal/domain"
	"github.com/stuartcarroll/chatextract/internal/domain/errs"
	"github.com/stuartcarroll/chatextract/internal/services/auth/mocks"
	"github.com/stuartcarroll/chatextract/internal/storage"
)

var (
	userUuidTest = uuid.MustParse("8ee4e645-b894-4477-820b-48381e10677f")
	jwtTest      = JwtParams{AccessTtl: time.Minute, RefreshTtl: time.Hour, Secret: []byte("secret")}
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestAuthService_Register(t *testing.T) {
	userStorage := mocks.NewUserStorage(t)
	userStorage.On("CreateUser", mock.Anything, mock.Anything).Return(
		func(ctx context.Context, user domain.User) *domain.User { return &user },
		nil,
	).Once()

	a := New(testLogger(), userStorage, jwtTest)

	user, err := a.Register(context.TODO(), "alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Login)
	assert.Equal(t, domain.RoleChatUser, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword(user.PasswordHash, []byte("hunter2")))
}

func TestAuthService_Register_duplicate(t *testing.T) {
	userStorage := mocks.NewUserStorage(t)
	userStorage.On("CreateUser", mock.Anything, mock.Anything).Return(nil, storage.ErrUserAlreadyExists).Once()

	a := New(testLogger(), userStorage, jwtTest)

	_, err := a.Register(context.TODO(), "alice", "hunter2")
	assert.ErrorIs(t, err, errs.ErrUserAlreadyExists)
}

func TestAuthService_Login(t *testing.T) {
	passHash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := domain.User{Uuid: userUuidTest, Login: "alice", PasswordHash: passHash, Role: domain.RoleChatUser}

	tests := []struct {
		name     string
		password string
		stored   *domain.User
		getErr   error
		wantErr  error
	}{
		{
			name:     "success",
			password: "hunter2",
			stored:   &user,
		},
		{
			name:     "wrong_password",
			password: "letmein",
			stored:   &user,
			wantErr:  errs.ErrInvalidCreds,
		},
		{
			name:     "unknown_login",
			password: "hunter2",
			getErr:   storage.ErrUserNotFound,
			wantErr:  errs.ErrInvalidCreds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userStorage := mocks.NewUserStorage(t)
			userStorage.On("GetUserByLogin", mock.Anything, "alice").Return(tt.stored, tt.getErr).Once()
			if tt.wantErr == nil {
				userStorage.On("UpsertRefreshToken", mock.Anything, userUuidTest, mock.Anything).Return(nil).Once()
			}

			a := New(testLogger(), userStorage, jwtTest)

			tokens, err := a.Login(context.TODO(), "alice", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, tokens.AccessToken)
			assert.NotEmpty(t, tokens.RefreshToken)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	passHash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	user := domain.User{Uuid: userUuidTest, Login: "alice", PasswordHash: passHash, Role: domain.RoleChatUser}

	userStorage := mocks.NewUserStorage(t)
	userStorage.On("GetUserByLogin", mock.Anything, "alice").Return(&user, nil).Once()
	userStorage.On("UpsertRefreshToken", mock.Anything, userUuidTest, mock.Anything).Return(nil).Once()
	userStorage.On("GetUserByUuid", mock.Anything, userUuidTest).Return(&user, nil).Once()

	a := New(testLogger(), userStorage, jwtTest)

	tokens, err := a.Login(context.TODO(), "alice", "hunter2")
	require.NoError(t, err)

	got, err := a.Authenticate(context.TODO(), tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userUuidTest, got.Uuid)
}

func TestAuthService_Authenticate_garbageToken(t *testing.T) {
	userStorage := mocks.NewUserStorage(t)
	a := New(testLogger(), userStorage, jwtTest)

	_, err := a.Authenticate(context.TODO(), "not-a-token")
	assert.ErrorIs(t, err, errs.ErrInvalidCreds)
}
