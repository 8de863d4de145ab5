package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"quizportal/cache"
	"quizportal/repositories"
	svcmocks "quizportal/services/mocks"
	"quizportal/testutil"
)

const testSecret = "test-secret"

func newAuthService(t *testing.T) (*AuthService, *svcmocks.MockSessionStore) {
	ctrl := gomock.NewController(t)
	sessions := svcmocks.NewMockSessionStore(ctrl)
	users := repositories.NewGormStore(testutil.NewDB(t)).Users()
	return NewAuthService(users, sessions, testSecret, time.Hour), sessions
}

func TestAuthServiceRegister(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "  Staff@Example.com ", "hunter22")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "staff@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	_, err = svc.Register(ctx, "staff@example.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthServiceLogin(t *testing.T) {
	svc, sessions := newAuthService(t)
	ctx := context.Background()
	user, err := svc.Register(ctx, "staff@example.com", "hunter22")
	require.NoError(t, err)

	var savedID string
	sessions.EXPECT().Save(gomock.Any(), gomock.Any(), user.ID, time.Hour).
		DoAndReturn(func(_ context.Context, sid string, _ uint, _ time.Duration) error {
			savedID = sid
			return nil
		})

	token, err := svc.Login(ctx, "STAFF@example.com", "hunter22")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, savedID, claims.ID)
	assert.Equal(t, strconv.FormatUint(uint64(user.ID), 10), claims.Subject)
}

func TestAuthServiceLoginFailures(t *testing.T) {
	svc, sessions := newAuthService(t)
	ctx := context.Background()
	_, err := svc.Register(ctx, "staff@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "staff@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	sessions.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	_, err = svc.Login(ctx, "staff@example.com", "hunter22")
	assert.EqualError(t, err, "redis down")
}

func TestAuthServiceAuthenticate(t *testing.T) {
	svc, sessions := newAuthService(t)
	ctx := context.Background()

	token, err := svc.signToken("sid-1", 7)
	require.NoError(t, err)

	testCases := []struct {
		name    string
		token   string
		mock    func()
		wantID  uint
		wantErr error
	}{
		{
			name:  "live session",
			token: token,
			mock: func() {
				sessions.EXPECT().Get(gomock.Any(), "sid-1").Return(uint(7), nil)
			},
			wantID: 7,
		},
		{
			name:  "expired session",
			token: token,
			mock: func() {
				sessions.EXPECT().Get(gomock.Any(), "sid-1").Return(uint(0), cache.ErrSessionNotFound)
			},
			wantErr: ErrNotAuthenticated,
		},
		{
			name:  "session owned by someone else",
			token: token,
			mock: func() {
				sessions.EXPECT().Get(gomock.Any(), "sid-1").Return(uint(8), nil)
			},
			wantErr: ErrNotAuthenticated,
		},
		{
			name:    "garbage token",
			token:   "not-a-jwt",
			mock:    func() {},
			wantErr: ErrNotAuthenticated,
		},
		{
			name:    "empty token",
			mock:    func() {},
			wantErr: ErrNotAuthenticated,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock()
			id, err := svc.Authenticate(ctx, tc.token)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestAuthServiceAuthenticateRejectsForeignSecret(t *testing.T) {
	svc, _ := newAuthService(t)
	other := NewAuthService(nil, nil, "another-secret", time.Hour)
	token, err := other.signToken("sid-1", 7)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestAuthServiceLogout(t *testing.T) {
	svc, sessions := newAuthService(t)
	ctx := context.Background()

	token, err := svc.signToken("sid-9", 3)
	require.NoError(t, err)
	sessions.EXPECT().Delete(gomock.Any(), "sid-9").Return(nil)
	assert.NoError(t, svc.Logout(ctx, token))

	assert.NoError(t, svc.Logout(ctx, "garbage"))
}
