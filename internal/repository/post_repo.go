package repository

import (
	"Revu/internal/model"
	"Revu/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// PostRepo is the post row store. Mutations that belong to a larger logical
// operation take the caller's transaction handle; they never open their own.
type PostRepo interface {
	Create(ctx context.Context, tx *gorm.DB, post *model.Post) error
	GetByID(ctx context.Context, id uint64) (*model.Post, error)
	GetWithRelations(ctx context.Context, id uint64) (*model.Post, error)
	Update(ctx context.Context, tx *gorm.DB, post *model.Post) error
	MarkDeleted(ctx context.Context, tx *gorm.DB, id uint64) error
	SoftDelete(ctx context.Context, tx *gorm.DB, id uint64) error
	IncrementViewCount(ctx context.Context, id uint64) error
	ListPublished(ctx context.Context, limit, offset int) ([]*model.Post, error)
	ListByUserAndStatus(ctx context.Context, userID uint64, status int8) ([]*model.Post, error)
	ListIDsByUser(ctx context.Context, userID uint64) ([]uint64, error)
	SoftDeleteByUser(ctx context.Context, tx *gorm.DB, userID uint64) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) Create(ctx context.Context, tx *gorm.DB, post *model.Post) error {
	return tx.WithContext(ctx).Create(post).Error
}

func (s PostRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Preload("Files").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) GetWithRelations(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Estimation").
		Preload("Files").
		Preload("Reactions").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Update writes the mutable columns explicitly so nil pointers clear their
// columns instead of being skipped as zero values.
func (s PostRepoImpl) Update(ctx context.Context, tx *gorm.DB, post *model.Post) error {
	return tx.WithContext(ctx).Model(post).
		Select("title", "content", "status", "category_id", "estimation_id", "posted_at").
		Updates(post).Error
}

func (s PostRepoImpl) MarkDeleted(ctx context.Context, tx *gorm.DB, id uint64) error {
	return tx.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("status", consts.PostStatusDeleted).Error
}

func (s PostRepoImpl) SoftDelete(ctx context.Context, tx *gorm.DB, id uint64) error {
	return tx.WithContext(ctx).Delete(&model.Post{}, id).Error
}

func (s PostRepoImpl) IncrementViewCount(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (s PostRepoImpl) ListPublished(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Preload("Estimation").
		Preload("Files").
		Where("status = ?", consts.PostStatusPublished).
		Order("posted_at DESC").
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) ListByUserAndStatus(ctx context.Context, userID uint64, status int8) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Files").
		Where("user_id = ? AND status = ?", userID, status).
		Order("updated_at DESC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s PostRepoImpl) ListIDsByUser(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("user_id = ?", userID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s PostRepoImpl) SoftDeleteByUser(ctx context.Context, tx *gorm.DB, userID uint64) error {
	err := tx.WithContext(ctx).Model(&model.Post{}).
		Where("user_id = ?", userID).
		Update("status", consts.PostStatusDeleted).Error
	if err != nil {
		return err
	}
	return tx.WithContext(ctx).Model(&model.Post{}).
		Where("user_id = ?", userID).
		Update("deleted_at", time.Now()).Error
}
