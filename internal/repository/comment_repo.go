package repository

import (
	"Revu/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type CommentRepo interface {
	Create(ctx context.Context, comment *model.Comment) error
	GetByID(ctx context.Context, id uint64) (*model.Comment, error)
	// ListByPost includes soft-deleted rows so threads keep their shape;
	// deleted nodes are masked by the formatter, not dropped.
	ListByPost(ctx context.Context, postID uint64) ([]model.Comment, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Comment, error)
	SoftDelete(ctx context.Context, id uint64) error
	SoftDeleteByUser(ctx context.Context, tx *gorm.DB, userID uint64) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{
		db: db,
	}
}

func (s CommentRepoImpl) Create(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s CommentRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (s CommentRepoImpl) ListByPost(ctx context.Context, postID uint64) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.WithContext(ctx).Unscoped().
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s CommentRepoImpl) ListByUser(ctx context.Context, userID uint64) ([]model.Comment, error) {
	var comments []model.Comment
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s CommentRepoImpl) SoftDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}

func (s CommentRepoImpl) SoftDeleteByUser(ctx context.Context, tx *gorm.DB, userID uint64) error {
	return tx.WithContext(ctx).Model(&model.Comment{}).
		Where("user_id = ?", userID).
		Update("deleted_at", time.Now()).Error
}
