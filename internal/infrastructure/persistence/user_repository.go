package persistence

import (
	"context"
	"errors"

	"github.com/payflow/backend/internal/domain/shared"
	"github.com/payflow/backend/internal/domain/user"
	"github.com/payflow/backend/internal/domain/user/valueobject"
	"github.com/payflow/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormUserRepository implements user.Repository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GormUserRepository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Save creates or updates a user. On first save the generated identifier
// is assigned to the aggregate.
func (r *GormUserRepository) Save(ctx context.Context, u *user.User) (*user.User, error) {
	var model models.UserModel
	model.FromDomain(u)

	tx := r.db.WithContext(ctx)
	if model.ID != 0 {
		// The model is rebuilt from the aggregate, so created_at is zero
		// here and must not be written on updates.
		tx = tx.Omit("CreatedAt")
	}
	if err := tx.Save(&model).Error; err != nil {
		return nil, err
	}

	if u.ID().IsZero() {
		id, err := valueobject.NewUserID(model.ID)
		if err != nil {
			return nil, err
		}
		u.AssignID(id)
	}
	return u, nil
}

// FindByUsername finds a user by login name
func (r *GormUserRepository) FindByUsername(ctx context.Context, username valueobject.Username) (*user.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).First(&model, "username = ?", username.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// ExistsByUsername checks if a login name is already taken
func (r *GormUserRepository) ExistsByUsername(ctx context.Context, username valueobject.Username) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("username = ?", username.Value()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
