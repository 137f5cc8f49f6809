package user

import (
	"context"
	"testing"

	"github.com/payflow/backend/internal/domain/shared"
	"github.com/payflow/backend/internal/domain/user"
	"github.com/payflow/backend/internal/domain/user/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username valueobject.Username) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username valueobject.Username) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(raw string) (string, error) {
	args := m.Called(raw)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Verify(hashed, raw string) bool {
	args := m.Called(hashed, raw)
	return args.Bool(0)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) IssueToken(u *user.User) (string, error) {
	args := m.Called(u)
	return args.String(0), args.Error(1)
}

func testUser(t *testing.T, username string, enabled bool) *user.User {
	t.Helper()
	id, err := valueobject.NewUserID(1)
	require.NoError(t, err)
	name, err := valueobject.NewUsername(username)
	require.NoError(t, err)
	password, err := valueobject.NewHashedPassword("$2a$10$stored-hash")
	require.NoError(t, err)
	return user.Reconstitute(id, name, password, []user.Role{user.RoleUser}, enabled)
}

func TestAuthService_Register(t *testing.T) {
	repo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenIssuer)
	svc := NewAuthService(repo, hasher, tokens)

	saved := testUser(t, "alice", true)
	repo.On("ExistsByUsername", mock.Anything, mock.AnythingOfType("valueobject.Username")).Return(false, nil)
	hasher.On("Hash", "secret123").Return("$2a$10$stored-hash", nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*user.User")).Return(saved, nil)
	tokens.On("IssueToken", saved).Return("signed.jwt.token", nil)

	result, err := svc.Register(context.Background(), RegisterCommand{Username: "Alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", result.Token)
	assert.Equal(t, "alice", result.Username)
	repo.AssertExpectations(t)
	hasher.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	repo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenIssuer)
	svc := NewAuthService(repo, hasher, tokens)

	repo.On("ExistsByUsername", mock.Anything, mock.AnythingOfType("valueobject.Username")).Return(true, nil)

	_, err := svc.Register(context.Background(), RegisterCommand{Username: "alice", Password: "secret123"})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "USERNAME_TAKEN", domainErr.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantCode string
	}{
		{name: "empty username", username: "", password: "secret123", wantCode: "INVALID_USERNAME"},
		{name: "username too short", username: "ab", password: "secret123", wantCode: "INVALID_USERNAME"},
		{name: "empty password", username: "alice", password: "", wantCode: "INVALID_PASSWORD"},
		{name: "password too short", username: "alice", password: "12345", wantCode: "INVALID_PASSWORD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			svc := NewAuthService(repo, new(MockPasswordHasher), new(MockTokenIssuer))

			_, err := svc.Register(context.Background(), RegisterCommand{Username: tt.username, Password: tt.password})
			require.Error(t, err)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tt.wantCode, domainErr.Code)
			repo.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	repo := new(MockUserRepository)
	hasher := new(MockPasswordHasher)
	tokens := new(MockTokenIssuer)
	svc := NewAuthService(repo, hasher, tokens)

	u := testUser(t, "alice", true)
	repo.On("FindByUsername", mock.Anything, u.Username()).Return(u, nil)
	hasher.On("Verify", "$2a$10$stored-hash", "secret123").Return(true)
	tokens.On("IssueToken", u).Return("signed.jwt.token", nil)

	result, err := svc.Authenticate(context.Background(), LoginCommand{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", result.Token)
	assert.Equal(t, "alice", result.Username)
}

func TestAuthService_Authenticate_BadCredentials(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := NewAuthService(repo, new(MockPasswordHasher), new(MockTokenIssuer))

		repo.On("FindByUsername", mock.Anything, mock.AnythingOfType("valueobject.Username")).
			Return(nil, shared.ErrNotFound)

		_, err := svc.Authenticate(context.Background(), LoginCommand{Username: "nobody", Password: "secret123"})
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("invalid username shape", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), new(MockPasswordHasher), new(MockTokenIssuer))

		_, err := svc.Authenticate(context.Background(), LoginCommand{Username: "", Password: "secret123"})
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		hasher := new(MockPasswordHasher)
		svc := NewAuthService(repo, hasher, new(MockTokenIssuer))

		u := testUser(t, "alice", true)
		repo.On("FindByUsername", mock.Anything, u.Username()).Return(u, nil)
		hasher.On("Verify", "$2a$10$stored-hash", "wrong").Return(false)

		_, err := svc.Authenticate(context.Background(), LoginCommand{Username: "alice", Password: "wrong"})
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		repo := new(MockUserRepository)
		hasher := new(MockPasswordHasher)
		svc := NewAuthService(repo, hasher, new(MockTokenIssuer))

		u := testUser(t, "alice", false)
		repo.On("FindByUsername", mock.Anything, u.Username()).Return(u, nil)

		_, err := svc.Authenticate(context.Background(), LoginCommand{Username: "alice", Password: "secret123"})
		assert.ErrorIs(t, err, ErrBadCredentials)
	})
}
