package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lalindra-code/clearBillCopy/internal/model"
)

// UserRepository is the data access boundary for accounts. Emails are
// matched exactly as stored; callers lower-case before lookups.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByResetToken(ctx context.Context, token string, now time.Time) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	IncrementInvoiceCount(ctx context.Context, id string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return GetDB(ctx, r.db).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByResetToken only matches unexpired tokens; an expired token is
// indistinguishable from an unknown one.
func (r *userRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*model.User, error) {
	var user model.User
	err := GetDB(ctx, r.db).
		First(&user, "reset_token = ? AND reset_token_expiry > ?", token, now).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	return GetDB(ctx, r.db).Save(user).Error
}

func (r *userRepository) IncrementInvoiceCount(ctx context.Context, id string) error {
	return GetDB(ctx, r.db).Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("invoice_count", gorm.Expr("invoice_count + 1")).Error
}
