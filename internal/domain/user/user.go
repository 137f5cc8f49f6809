package user

import (
	"github.com/payflow/backend/internal/domain/user/valueobject"
)

// Role represents an access role granted to a user
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// IsValid checks if the role is a valid Role
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// User is the aggregate root for an operator account. Accounts are created
// enabled with the USER role; password content is hashed before it reaches
// this aggregate.
type User struct {
	id       valueobject.UserID
	username valueobject.Username
	password valueobject.Password
	roles    []Role
	enabled  bool
}

// New creates an enabled user with the USER role and no identifier.
func New(username valueobject.Username, password valueobject.Password) *User {
	return &User{
		username: username,
		password: password,
		roles:    []Role{RoleUser},
		enabled:  true,
	}
}

// Reconstitute rebuilds a user from persisted state.
func Reconstitute(id valueobject.UserID, username valueobject.Username, password valueobject.Password, roles []Role, enabled bool) *User {
	return &User{
		id:       id,
		username: username,
		password: password,
		roles:    roles,
		enabled:  enabled,
	}
}

// ID returns the user identifier. IsZero is true until first save.
func (u *User) ID() valueobject.UserID { return u.id }

// Username returns the login name.
func (u *User) Username() valueobject.Username { return u.username }

// Password returns the stored password hash.
func (u *User) Password() valueobject.Password { return u.password }

// Roles returns the granted roles.
func (u *User) Roles() []Role { return u.roles }

// Enabled reports whether the account may authenticate.
func (u *User) Enabled() bool { return u.enabled }

// AssignID records the identifier issued by the persistence layer.
func (u *User) AssignID(id valueobject.UserID) {
	u.id = id
}
