package models

import (
	"strings"
	"time"

	"github.com/payflow/backend/internal/domain/user"
	"github.com/payflow/backend/internal/domain/user/valueobject"
)

// UserModel is the persistence model for the User aggregate root.
// Roles are stored as a comma-separated list.
type UserModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"type:varchar(50);not null;uniqueIndex"`
	Password  string `gorm:"type:varchar(100);not null"`
	Roles     string `gorm:"type:varchar(100);not null;default:'USER'"`
	Enabled   bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User aggregate.
func (m *UserModel) ToDomain() (*user.User, error) {
	id, err := valueobject.NewUserID(m.ID)
	if err != nil {
		return nil, err
	}
	username, err := valueobject.NewUsername(m.Username)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.NewHashedPassword(m.Password)
	if err != nil {
		return nil, err
	}

	var roles []user.Role
	for _, r := range strings.Split(m.Roles, ",") {
		role := user.Role(strings.TrimSpace(r))
		if role.IsValid() {
			roles = append(roles, role)
		}
	}
	if len(roles) == 0 {
		roles = []user.Role{user.RoleUser}
	}

	return user.Reconstitute(id, username, password, roles, m.Enabled), nil
}

// FromDomain populates the persistence model from a domain User aggregate.
func (m *UserModel) FromDomain(u *user.User) {
	m.ID = u.ID().Value()
	m.Username = u.Username().Value()
	m.Password = u.Password().Value()
	m.Enabled = u.Enabled()

	roles := make([]string, len(u.Roles()))
	for i, r := range u.Roles() {
		roles[i] = r.String()
	}
	m.Roles = strings.Join(roles, ",")
}
