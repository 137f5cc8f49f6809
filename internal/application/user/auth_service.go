package user

import (
	"context"

	"github.com/payflow/backend/internal/domain/shared"
	"github.com/payflow/backend/internal/domain/user"
	"github.com/payflow/backend/internal/domain/user/valueobject"
)

// PasswordHasher hashes raw passwords and verifies them against stored
// hashes. Implemented by infrastructure/auth.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Verify(hashed, raw string) bool
}

// TokenIssuer issues signed access tokens for authenticated users.
// Implemented by infrastructure/auth.
type TokenIssuer interface {
	IssueToken(u *user.User) (string, error)
}

// RegisterCommand carries the inputs for creating an account.
type RegisterCommand struct {
	Username string
	Password string
}

// LoginCommand carries the inputs for authenticating an account.
type LoginCommand struct {
	Username string
	Password string
}

// AuthResult carries the issued token for a registered or authenticated user.
type AuthResult struct {
	Token    string
	Username string
}

// ErrBadCredentials is returned for any username/password mismatch. The
// message stays deliberately vague.
var ErrBadCredentials = shared.NewDataError("BAD_CREDENTIALS", "Invalid username or password")

// AuthService registers and authenticates users, issuing JWT access tokens.
type AuthService struct {
	repo   user.Repository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(repo user.Repository, hasher PasswordHasher, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates an account and signs the new user in.
func (s *AuthService) Register(ctx context.Context, cmd RegisterCommand) (AuthResult, error) {
	username, err := valueobject.NewUsername(cmd.Username)
	if err != nil {
		return AuthResult{}, err
	}
	if _, err := valueobject.NewPassword(cmd.Password); err != nil {
		return AuthResult{}, err
	}

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return AuthResult{}, err
	}
	if exists {
		return AuthResult{}, shared.NewDataError("USERNAME_TAKEN", "Username already exists")
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return AuthResult{}, err
	}
	password, err := valueobject.NewHashedPassword(hash)
	if err != nil {
		return AuthResult{}, err
	}

	saved, err := s.repo.Save(ctx, user.New(username, password))
	if err != nil {
		return AuthResult{}, err
	}

	token, err := s.tokens.IssueToken(saved)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, Username: saved.Username().Value()}, nil
}

// Authenticate verifies credentials and issues a token.
func (s *AuthService) Authenticate(ctx context.Context, cmd LoginCommand) (AuthResult, error) {
	username, err := valueobject.NewUsername(cmd.Username)
	if err != nil {
		return AuthResult{}, ErrBadCredentials
	}

	u, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == shared.ErrNotFound {
			return AuthResult{}, ErrBadCredentials
		}
		return AuthResult{}, err
	}

	if !u.Enabled() || !s.hasher.Verify(u.Password().Value(), cmd.Password) {
		return AuthResult{}, ErrBadCredentials
	}

	token, err := s.tokens.IssueToken(u)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, Username: u.Username().Value()}, nil
}
