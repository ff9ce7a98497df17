package repository

import (
	"Revu/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type UserRepo interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByNickname(ctx context.Context, nickname string) (*model.User, error)
	UpdateEmail(ctx context.Context, tx *gorm.DB, id uint64, email string) error
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint64) error
}

type UserRepoImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepo {
	return &UserRepoImpl{
		db: db,
	}
}

func (s UserRepoImpl) Create(ctx context.Context, user *model.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s UserRepoImpl) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s UserRepoImpl) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s UserRepoImpl) GetByNickname(ctx context.Context, nickname string) (*model.User, error) {
	var user model.User
	err := s.db.WithContext(ctx).Where("nickname = ?", nickname).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s UserRepoImpl) UpdateEmail(ctx context.Context, tx *gorm.DB, id uint64, email string) error {
	return tx.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("email", email).Error
}

func (s UserRepoImpl) SoftDelete(ctx context.Context, tx *gorm.DB, id uint64) error {
	return tx.WithContext(ctx).Delete(&model.User{}, id).Error
}
