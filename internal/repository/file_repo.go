package repository

import (
	"Revu/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// FileRepo is the uploaded-file row store consumed by the attachment
// reconciler. Lookup and mutation methods take the surrounding transaction
// handle so link/purge decisions and the post row write see the same state.
type FileRepo interface {
	Create(ctx context.Context, file *model.UploadedFile) error
	GetByURL(ctx context.Context, tx *gorm.DB, url string) (*model.UploadedFile, error)
	SetPostID(ctx context.Context, tx *gorm.DB, fileID, postID uint64) error
	ListOrphansByUser(ctx context.Context, tx *gorm.DB, userID uint64) ([]model.UploadedFile, error)
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint64) ([]model.UploadedFile, error)
	ListOrphansOlderThan(ctx context.Context, cutoff time.Time) ([]model.UploadedFile, error)
	SoftDelete(ctx context.Context, tx *gorm.DB, ids []uint64) error
	HardDelete(ctx context.Context, tx *gorm.DB, ids []uint64) error
}

type FileRepoImpl struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepo {
	return &FileRepoImpl{
		db: db,
	}
}

func (s FileRepoImpl) Create(ctx context.Context, file *model.UploadedFile) error {
	return s.db.WithContext(ctx).Create(file).Error
}

func (s FileRepoImpl) GetByURL(ctx context.Context, tx *gorm.DB, url string) (*model.UploadedFile, error) {
	var file model.UploadedFile
	err := tx.WithContext(ctx).Where("url = ?", url).First(&file).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func (s FileRepoImpl) SetPostID(ctx context.Context, tx *gorm.DB, fileID, postID uint64) error {
	return tx.WithContext(ctx).Model(&model.UploadedFile{}).
		Where("id = ?", fileID).
		Update("post_id", postID).Error
}

func (s FileRepoImpl) ListOrphansByUser(ctx context.Context, tx *gorm.DB, userID uint64) ([]model.UploadedFile, error) {
	var files []model.UploadedFile
	err := tx.WithContext(ctx).
		Where("user_id = ? AND post_id IS NULL", userID).
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s FileRepoImpl) ListByUser(ctx context.Context, tx *gorm.DB, userID uint64) ([]model.UploadedFile, error) {
	var files []model.UploadedFile
	err := tx.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s FileRepoImpl) ListOrphansOlderThan(ctx context.Context, cutoff time.Time) ([]model.UploadedFile, error) {
	var files []model.UploadedFile
	err := s.db.WithContext(ctx).
		Where("post_id IS NULL AND created_at < ?", cutoff).
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s FileRepoImpl) SoftDelete(ctx context.Context, tx *gorm.DB, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Delete(&model.UploadedFile{}, ids).Error
}

func (s FileRepoImpl) HardDelete(ctx context.Context, tx *gorm.DB, ids []uint64) error {
	if len(ids) == 0 {
		return nil
	}
	return tx.WithContext(ctx).Unscoped().Delete(&model.UploadedFile{}, ids).Error
}
