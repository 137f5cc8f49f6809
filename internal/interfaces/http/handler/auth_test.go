package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appuser "github.com/payflow/backend/internal/application/user"
	"github.com/payflow/backend/internal/domain/shared"
	"github.com/payflow/backend/internal/domain/user"
	"github.com/payflow/backend/internal/domain/user/valueobject"
	"github.com/payflow/backend/internal/infrastructure/auth"
	"github.com/payflow/backend/internal/infrastructure/config"
	"github.com/payflow/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username valueobject.Username) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username valueobject.Username) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func setupAuthRouter(repo user.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "payflow-test",
	})
	h := NewAuthHandler(appuser.NewAuthService(repo, auth.NewBcryptHasher(), jwtService))

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	return r
}

func doAuthRequest(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, dto.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestAuthHandler_Register(t *testing.T) {
	repo := new(mockUserRepo)
	r := setupAuthRouter(repo)

	id, err := valueobject.NewUserID(1)
	require.NoError(t, err)
	username, err := valueobject.NewUsername("alice")
	require.NoError(t, err)
	password, err := valueobject.NewHashedPassword("$2a$10$stored-hash")
	require.NoError(t, err)
	saved := user.Reconstitute(id, username, password, []user.Role{user.RoleUser}, true)

	repo.On("ExistsByUsername", mock.Anything, mock.AnythingOfType("valueobject.Username")).
		Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*user.User")).
		Return(saved, nil)

	w, resp := doAuthRequest(t, r, "/auth/register", `{"username":"alice","password":"secret123"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "alice", data["username"])
	assert.NotEmpty(t, data["token"])
}

func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	repo := new(mockUserRepo)
	r := setupAuthRouter(repo)

	repo.On("ExistsByUsername", mock.Anything, mock.AnythingOfType("valueobject.Username")).
		Return(true, nil)

	w, resp := doAuthRequest(t, r, "/auth/register", `{"username":"alice","password":"secret123"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "USERNAME_TAKEN", resp.Error.Code)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	repo := new(mockUserRepo)
	r := setupAuthRouter(repo)

	w, resp := doAuthRequest(t, r, "/auth/register", `{"username":"alice"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, resp.Success)
	repo.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login(t *testing.T) {
	repo := new(mockUserRepo)
	r := setupAuthRouter(repo)

	hasher := auth.NewBcryptHasher()
	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)

	id, err := valueobject.NewUserID(1)
	require.NoError(t, err)
	username, err := valueobject.NewUsername("alice")
	require.NoError(t, err)
	password, err := valueobject.NewHashedPassword(hash)
	require.NoError(t, err)
	u := user.Reconstitute(id, username, password, []user.Role{user.RoleUser}, true)

	repo.On("FindByUsername", mock.Anything, username).Return(u, nil)

	w, resp := doAuthRequest(t, r, "/auth/login", `{"username":"alice","password":"secret123"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "alice", data["username"])
	assert.NotEmpty(t, data["token"])
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	repo := new(mockUserRepo)
	r := setupAuthRouter(repo)

	repo.On("FindByUsername", mock.Anything, mock.AnythingOfType("valueobject.Username")).
		Return(nil, shared.ErrNotFound)

	w, resp := doAuthRequest(t, r, "/auth/login", `{"username":"nobody","password":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "BAD_CREDENTIALS", resp.Error.Code)
}
