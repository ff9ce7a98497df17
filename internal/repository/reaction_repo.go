package repository

import (
	"Revu/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ReactionRepo interface {
	Create(ctx context.Context, reaction *model.Reaction) error
	// UpdateSymbol is the losing path of a concurrent add: the unique
	// (post_id, user_id) row already exists, so overwrite its symbol and
	// revive it if it was soft-deleted.
	UpdateSymbol(ctx context.Context, postID, userID, symbolID uint64) error
	GetByPostAndUser(ctx context.Context, postID, userID uint64) (*model.Reaction, error)
	SoftDeleteByPostAndUser(ctx context.Context, postID, userID uint64) error
	SoftDeleteByPost(ctx context.Context, tx *gorm.DB, postID uint64) error
	SoftDeleteByUser(ctx context.Context, tx *gorm.DB, userID uint64) error
}

type ReactionRepoImpl struct {
	db *gorm.DB
}

func NewReactionRepository(db *gorm.DB) ReactionRepo {
	return &ReactionRepoImpl{
		db: db,
	}
}

func (s ReactionRepoImpl) Create(ctx context.Context, reaction *model.Reaction) error {
	return s.db.WithContext(ctx).Create(reaction).Error
}

func (s ReactionRepoImpl) UpdateSymbol(ctx context.Context, postID, userID, symbolID uint64) error {
	return s.db.WithContext(ctx).Unscoped().Model(&model.Reaction{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Updates(map[string]interface{}{
			"symbol_id":  symbolID,
			"deleted_at": nil,
		}).Error
}

func (s ReactionRepoImpl) GetByPostAndUser(ctx context.Context, postID, userID uint64) (*model.Reaction, error) {
	var reaction model.Reaction
	err := s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		First(&reaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

func (s ReactionRepoImpl) SoftDeleteByPostAndUser(ctx context.Context, postID, userID uint64) error {
	return s.db.WithContext(ctx).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Delete(&model.Reaction{}).Error
}

func (s ReactionRepoImpl) SoftDeleteByPost(ctx context.Context, tx *gorm.DB, postID uint64) error {
	return tx.WithContext(ctx).Model(&model.Reaction{}).
		Where("post_id = ?", postID).
		Update("deleted_at", time.Now()).Error
}

func (s ReactionRepoImpl) SoftDeleteByUser(ctx context.Context, tx *gorm.DB, userID uint64) error {
	return tx.WithContext(ctx).Model(&model.Reaction{}).
		Where("user_id = ?", userID).
		Update("deleted_at", time.Now()).Error
}
