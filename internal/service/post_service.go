package service

import (
	"Revu/internal/api/dto"
	"Revu/internal/model"
	"Revu/internal/pkg/consts"
	"Revu/internal/pkg/util"
	"Revu/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// maxCreateAttempts bounds the lock-wait-timeout retry on post creation.
// Only creation retries; every other operation surfaces its first error.
const maxCreateAttempts = 3

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, in *dto.FeedPublishDTO) (*dto.FeedDTO, error)
	CreateDraft(ctx context.Context, userID uint64, in *dto.FeedDraftDTO) (*dto.FeedDTO, error)
	UpdatePost(ctx context.Context, userID uint64, in *dto.FeedPublishUpdateDTO) (*dto.FeedDTO, error)
	UpdateDraft(ctx context.Context, userID uint64, in *dto.FeedDraftUpdateDTO) (*dto.FeedDTO, error)
	GetPost(ctx context.Context, viewerID uint64, postID uint64) (*dto.FeedDTO, error)
	ListPublished(ctx context.Context, page, pageSize int) ([]*dto.FeedDTO, error)
	ListDrafts(ctx context.Context, userID uint64) ([]*dto.FeedDTO, error)
	DeletePost(ctx context.Context, userID uint64, postID uint64) error
}

type postServiceImpl struct {
	db           *gorm.DB
	postRepo     repository.PostRepo
	reactionRepo repository.ReactionRepo
	catalogRepo  repository.CatalogRepo
	uploadSvc    UploadService
}

func NewPostService(db *gorm.DB, postRepo repository.PostRepo, reactionRepo repository.ReactionRepo, catalogRepo repository.CatalogRepo, uploadSvc UploadService) PostService {
	return &postServiceImpl{
		db:           db,
		postRepo:     postRepo,
		reactionRepo: reactionRepo,
		catalogRepo:  catalogRepo,
		uploadSvc:    uploadSvc,
	}
}

// CreatePost publishes a new post. The row insert, file linking and orphan
// purge share one transaction; a lock wait timeout rolls back and the whole
// operation is retried with a revalidated payload and a fresh transaction.
func (s *postServiceImpl) CreatePost(ctx context.Context, userID uint64, in *dto.FeedPublishDTO) (*dto.FeedDTO, error) {
	build := func() (*model.Post, error) {
		if err := s.validatePublish(ctx, &in.CategoryID, &in.EstimationID); err != nil {
			return nil, err
		}
		if err := util.ValidateDTO(in); err != nil {
			return nil, err
		}
		now := time.Now()
		return &model.Post{
			UserID:       userID,
			Title:        &in.Title,
			Content:      in.Content,
			Status:       consts.PostStatusPublished,
			CategoryID:   &in.CategoryID,
			EstimationID: &in.EstimationID,
			PostedAt:     &now,
		}, nil
	}
	return s.createWithRetry(ctx, userID, build, in.FileLinks)
}

// CreateDraft autosaves a partial post. PostedAt stays nil until publication.
func (s *postServiceImpl) CreateDraft(ctx context.Context, userID uint64, in *dto.FeedDraftDTO) (*dto.FeedDTO, error) {
	build := func() (*model.Post, error) {
		if err := util.ValidateDTO(in); err != nil {
			return nil, err
		}
		return &model.Post{
			UserID:       userID,
			Title:        in.Title,
			Content:      in.Content,
			Status:       consts.PostStatusDraft,
			CategoryID:   in.CategoryID,
			EstimationID: in.EstimationID,
		}, nil
	}
	return s.createWithRetry(ctx, userID, build, in.FileLinks)
}

func (s *postServiceImpl) createWithRetry(ctx context.Context, userID uint64, build func() (*model.Post, error), fileLinks []string) (*dto.FeedDTO, error) {
	var post *model.Post
	for attempt := 1; ; attempt++ {
		var err error
		post, err = build()
		if err != nil {
			return nil, err
		}

		err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := s.postRepo.Create(ctx, tx, post); err != nil {
				return err
			}
			if err := s.uploadSvc.LinkFiles(ctx, tx, post.ID, fileLinks); err != nil {
				return err
			}
			return s.uploadSvc.PurgeOrphans(ctx, tx, userID)
		})
		if err == nil {
			break
		}

		if repository.IsLockWaitTimeout(err) {
			if attempt < maxCreateAttempts {
				log.WarnContext(ctx, "post create hit lock wait timeout, retrying",
					"attempt", attempt, "user_id", userID)
				continue
			}
			log.ErrorContext(ctx, "post create retries exhausted", "user_id", userID, "err", err)
			return nil, ErrTransaction
		}
		return nil, err
	}

	return s.reload(ctx, post.ID)
}

// UpdatePost handles the draft→published and published→published transitions
// with full validation. File links are reconciled against the post's current
// files inside the same transaction as the row update.
func (s *postServiceImpl) UpdatePost(ctx context.Context, userID uint64, in *dto.FeedPublishUpdateDTO) (*dto.FeedDTO, error) {
	post, err := s.loadOwned(ctx, userID, in.PostID)
	if err != nil {
		return nil, err
	}

	if err = s.validatePublish(ctx, &in.CategoryID, &in.EstimationID); err != nil {
		return nil, err
	}
	if err = util.ValidateDTO(&in.FeedPublishDTO); err != nil {
		return nil, err
	}

	post.Title = &in.Title
	post.Content = in.Content
	post.CategoryID = &in.CategoryID
	post.EstimationID = &in.EstimationID
	if post.Status == consts.PostStatusDraft {
		// draft→published sets the publication time; on a published post it
		// stays untouched.
		now := time.Now()
		post.PostedAt = &now
	}
	post.Status = consts.PostStatusPublished

	if err = s.reconcileAndUpdate(ctx, post, in.FileLinks); err != nil {
		return nil, err
	}
	return s.reload(ctx, post.ID)
}

// UpdateDraft handles the draft→draft transition. A published post cannot
// move back to draft.
func (s *postServiceImpl) UpdateDraft(ctx context.Context, userID uint64, in *dto.FeedDraftUpdateDTO) (*dto.FeedDTO, error) {
	post, err := s.loadOwned(ctx, userID, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.Status != consts.PostStatusDraft {
		return nil, ErrParamInvalid
	}

	if err = util.ValidateDTO(&in.FeedDraftDTO); err != nil {
		return nil, err
	}

	post.Title = in.Title
	post.Content = in.Content
	post.CategoryID = in.CategoryID
	post.EstimationID = in.EstimationID

	if err = s.reconcileAndUpdate(ctx, post, in.FileLinks); err != nil {
		return nil, err
	}
	return s.reload(ctx, post.ID)
}

func (s *postServiceImpl) reconcileAndUpdate(ctx context.Context, post *model.Post, fileLinks []string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		doomed := s.uploadSvc.ComputeDeletionSet(post.Files, fileLinks)
		if err := s.uploadSvc.Purge(ctx, tx, doomed); err != nil {
			return err
		}
		if err := s.uploadSvc.LinkFiles(ctx, tx, post.ID, fileLinks); err != nil {
			return err
		}
		return s.postRepo.Update(ctx, tx, post)
	})
}

// GetPost applies the status visibility rules: drafts are visible only to
// their owner, deleted posts to nobody. A published read bumps the view
// counter once per call, with no de-duplication.
func (s *postServiceImpl) GetPost(ctx context.Context, viewerID uint64, postID uint64) (*dto.FeedDTO, error) {
	post, err := s.postRepo.GetWithRelations(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status == consts.PostStatusDeleted {
		return nil, ErrPostNotFound
	}

	switch post.Status {
	case consts.PostStatusDraft:
		if post.UserID != viewerID {
			return nil, ErrPostNotFound
		}
	case consts.PostStatusPublished:
		if err = s.postRepo.IncrementViewCount(ctx, postID); err != nil {
			log.WarnContext(ctx, "failed to increment view count", "post_id", postID, "err", err)
		}
		post.ViewCount++
	}

	return s.toFeedDTO(post)
}

func (s *postServiceImpl) ListPublished(ctx context.Context, page, pageSize int) ([]*dto.FeedDTO, error) {
	posts, err := s.postRepo.ListPublished(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return s.batchToFeedDTO(posts)
}

// ListDrafts is the "in-progress" listing; untitled drafts get a generated
// placeholder title derived from their last save time.
func (s *postServiceImpl) ListDrafts(ctx context.Context, userID uint64) ([]*dto.FeedDTO, error) {
	posts, err := s.postRepo.ListByUserAndStatus(ctx, userID, consts.PostStatusDraft)
	if err != nil {
		return nil, err
	}
	return s.batchToFeedDTO(posts)
}

// DeletePost detaches and purges the post's files, soft-deletes its
// reactions, marks it deleted and soft-deletes the row, all in one
// transaction.
func (s *postServiceImpl) DeletePost(ctx context.Context, userID uint64, postID uint64) error {
	post, err := s.loadOwned(ctx, userID, postID)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.uploadSvc.Purge(ctx, tx, post.Files); err != nil {
			return err
		}
		if err := s.reactionRepo.SoftDeleteByPost(ctx, tx, postID); err != nil {
			return err
		}
		if err := s.postRepo.MarkDeleted(ctx, tx, postID); err != nil {
			return err
		}
		return s.postRepo.SoftDelete(ctx, tx, postID)
	})
}

// loadOwned fetches a live post and enforces ownership before any write.
func (s *postServiceImpl) loadOwned(ctx context.Context, userID, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status == consts.PostStatusDeleted {
		return nil, ErrPostNotFound
	}
	if post.UserID != userID {
		return nil, UnauthorizedError
	}
	return post, nil
}

func (s *postServiceImpl) validatePublish(ctx context.Context, categoryID, estimationID *uint64) error {
	ok, err := s.catalogRepo.CategoryExists(ctx, *categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrParamInvalid
	}
	ok, err = s.catalogRepo.EstimationExists(ctx, *estimationID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrParamInvalid
	}
	return nil
}

func (s *postServiceImpl) reload(ctx context.Context, postID uint64) (*dto.FeedDTO, error) {
	post, err := s.postRepo.GetWithRelations(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return s.toFeedDTO(post)
}

func (s *postServiceImpl) toFeedDTO(post *model.Post) (*dto.FeedDTO, error) {
	out := &dto.FeedDTO{}
	if err := copier.Copy(out, post); err != nil {
		return nil, err
	}

	if post.Title != nil {
		out.Title = *post.Title
	} else if post.Status == consts.PostStatusDraft {
		out.Title = post.UpdatedAt.Format(consts.TempTitleTimeLayout) + consts.TempTitleSuffix
	}

	if post.User.ID > 0 {
		out.Nickname = post.User.Nickname
	}
	if post.Category != nil {
		out.Category = post.Category.Name
	}
	if post.Estimation != nil {
		out.Estimation = post.Estimation.Name
	}

	out.Files = make([]*dto.FileDTO, 0, len(post.Files))
	for _, file := range post.Files {
		out.Files = append(out.Files, &dto.FileDTO{
			ID:       file.ID,
			URL:      s.uploadSvc.PublicURL(file.URL),
			IsImage:  file.IsImage,
			FileName: file.FileName,
			FileSize: file.FileSize,
		})
	}

	return out, nil
}

func (s *postServiceImpl) batchToFeedDTO(posts []*model.Post) ([]*dto.FeedDTO, error) {
	out := make([]*dto.FeedDTO, len(posts))
	for i, post := range posts {
		item, err := s.toFeedDTO(post)
		if err != nil {
			return nil, err
		}
		out[i] = item
	}
	return out, nil
}
