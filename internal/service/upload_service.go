package service

import (
	"Revu/internal/api/dto"
	"Revu/internal/model"
	"Revu/internal/pkg/consts"
	"Revu/internal/pkg/redis"
	"Revu/internal/pkg/storage"
	"Revu/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

// UploadService keeps post↔file links consistent: it registers fresh uploads
// as orphans, links submitted URLs to a post inside the caller's transaction,
// and purges files nothing references anymore. The blob delete itself runs
// outside the relational transaction's guarantees; a rollback after a purge
// leaves a row pointing at a missing blob, which the sweep job later clears.
type UploadService interface {
	RegisterUpload(ctx context.Context, file *model.UploadedFile, meta *dto.MediaTempMetadata) error
	ComputeDeletionSet(existing []model.UploadedFile, newLinks []string) []model.UploadedFile
	LinkFiles(ctx context.Context, tx *gorm.DB, postID uint64, urls []string) error
	PurgeOrphans(ctx context.Context, tx *gorm.DB, userID uint64) error
	PurgeOwned(ctx context.Context, tx *gorm.DB, userID uint64) error
	Purge(ctx context.Context, tx *gorm.DB, files []model.UploadedFile) error
	SweepExpiredOrphans(ctx context.Context, olderThan time.Duration) (int, error)
	PublicURL(key string) string
}

type uploadServiceImpl struct {
	db       *gorm.DB
	fileRepo repository.FileRepo
	store    storage.Store
}

func NewUploadService(db *gorm.DB, fileRepo repository.FileRepo, store storage.Store) UploadService {
	return &uploadServiceImpl{
		db:       db,
		fileRepo: fileRepo,
		store:    store,
	}
}

func (s *uploadServiceImpl) RegisterUpload(ctx context.Context, file *model.UploadedFile, meta *dto.MediaTempMetadata) error {
	if err := s.fileRepo.Create(ctx, file); err != nil {
		return err
	}

	if redis.Rdb != nil {
		raw, err := json.Marshal(meta)
		if err == nil {
			_ = redis.HSet(ctx, consts.MediaTempKey, file.URL, string(raw))
		}
	}
	return nil
}

// ComputeDeletionSet schedules for purge every currently linked file whose
// URL is absent from the new submission. A nil submission drops them all.
func (s *uploadServiceImpl) ComputeDeletionSet(existing []model.UploadedFile, newLinks []string) []model.UploadedFile {
	if len(newLinks) == 0 {
		return existing
	}

	keep := make(map[string]struct{}, len(newLinks))
	for _, url := range newLinks {
		keep[url] = struct{}{}
	}

	var doomed []model.UploadedFile
	for _, file := range existing {
		if _, ok := keep[file.URL]; !ok {
			doomed = append(doomed, file)
		}
	}
	return doomed
}

// LinkFiles attaches each URL's file row to the post. A URL already linked
// to a different post is a consistency defect and fails the transaction; a
// URL already linked to this post is skipped.
func (s *uploadServiceImpl) LinkFiles(ctx context.Context, tx *gorm.DB, postID uint64, urls []string) error {
	var linked []string
	for _, url := range urls {
		file, err := s.fileRepo.GetByURL(ctx, tx, url)
		if err != nil {
			return err
		}
		if file == nil {
			return ErrFileNotExist
		}

		if file.PostID != nil {
			if *file.PostID != postID {
				log.ErrorContext(ctx, "file already linked to another post",
					"url", url, "post_id", postID, "linked_post_id", *file.PostID)
				return ErrFileConflict
			}
			continue
		}

		if err = s.fileRepo.SetPostID(ctx, tx, file.ID, postID); err != nil {
			return err
		}
		linked = append(linked, url)
	}

	s.clearTempMeta(ctx, linked)
	return nil
}

// PurgeOrphans removes the user's unattached files, the residue of aborted
// or superseded submissions.
func (s *uploadServiceImpl) PurgeOrphans(ctx context.Context, tx *gorm.DB, userID uint64) error {
	orphans, err := s.fileRepo.ListOrphansByUser(ctx, tx, userID)
	if err != nil {
		return err
	}
	return s.Purge(ctx, tx, orphans)
}

// PurgeOwned removes every file the user still owns, linked or not. Used by
// account removal after the owning posts are deleted.
func (s *uploadServiceImpl) PurgeOwned(ctx context.Context, tx *gorm.DB, userID uint64) error {
	files, err := s.fileRepo.ListByUser(ctx, tx, userID)
	if err != nil {
		return err
	}
	return s.Purge(ctx, tx, files)
}

// Purge deletes blobs first, then the rows: hard delete for never-attached
// orphans, soft delete for rows that were detached from a post.
func (s *uploadServiceImpl) Purge(ctx context.Context, tx *gorm.DB, files []model.UploadedFile) error {
	if len(files) == 0 {
		return nil
	}

	keys := make([]string, 0, len(files))
	var orphanIDs, detachedIDs []uint64
	for _, file := range files {
		keys = append(keys, file.URL)
		if file.PostID == nil {
			orphanIDs = append(orphanIDs, file.ID)
		} else {
			detachedIDs = append(detachedIDs, file.ID)
		}
	}

	if err := s.store.DeleteMany(ctx, keys); err != nil {
		return err
	}

	if err := s.fileRepo.HardDelete(ctx, tx, orphanIDs); err != nil {
		return err
	}
	if err := s.fileRepo.SoftDelete(ctx, tx, detachedIDs); err != nil {
		return err
	}

	s.clearTempMeta(ctx, keys)
	return nil
}

// SweepExpiredOrphans purges orphans older than the cutoff; run from cron.
func (s *uploadServiceImpl) SweepExpiredOrphans(ctx context.Context, olderThan time.Duration) (int, error) {
	files, err := s.fileRepo.ListOrphansOlderThan(ctx, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	if len(files) == 0 {
		return 0, nil
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Purge(ctx, tx, files)
	})
	if err != nil {
		return 0, err
	}
	return len(files), nil
}

func (s *uploadServiceImpl) PublicURL(key string) string {
	return s.store.PublicURL(key)
}

func (s *uploadServiceImpl) clearTempMeta(ctx context.Context, urls []string) {
	if redis.Rdb == nil || len(urls) == 0 {
		return
	}
	if err := redis.HDel(ctx, consts.MediaTempKey, urls...); err != nil {
		log.WarnContext(ctx, "failed to clear media temp metadata", "err", err)
	}
}
