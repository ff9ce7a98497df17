package service

import (
	"Revu/internal/model"
	"Revu/internal/pkg/consts"
	"Revu/internal/repository"
	"context"
	log "log/slog"
)

type ReactionService interface {
	// React adds the user's reaction to a post. Uniqueness per
	// (post, user) is enforced by the store's unique constraint; the losing
	// side of a concurrent add detects the conflict and falls back to an
	// update of the existing row.
	React(ctx context.Context, userID, postID, symbolID uint64) error
	RemoveReaction(ctx context.Context, userID, postID uint64) error
}

type reactionServiceImpl struct {
	reactionRepo repository.ReactionRepo
	catalogRepo  repository.CatalogRepo
	postRepo     repository.PostRepo
}

func NewReactionService(reactionRepo repository.ReactionRepo, catalogRepo repository.CatalogRepo, postRepo repository.PostRepo) ReactionService {
	return &reactionServiceImpl{
		reactionRepo: reactionRepo,
		catalogRepo:  catalogRepo,
		postRepo:     postRepo,
	}
}

func (s *reactionServiceImpl) React(ctx context.Context, userID, postID, symbolID uint64) error {
	ok, err := s.catalogRepo.SymbolExists(ctx, symbolID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrParamInvalid
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil || post.Status != consts.PostStatusPublished {
		return ErrPostNotFound
	}

	err = s.reactionRepo.Create(ctx, &model.Reaction{
		UserID:   userID,
		PostID:   postID,
		SymbolID: symbolID,
	})
	if err != nil {
		if repository.IsDuplicateKey(err) {
			log.InfoContext(ctx, "reaction exists, updating symbol",
				"post_id", postID, "user_id", userID)
			return s.reactionRepo.UpdateSymbol(ctx, postID, userID, symbolID)
		}
		return err
	}
	return nil
}

func (s *reactionServiceImpl) RemoveReaction(ctx context.Context, userID, postID uint64) error {
	reaction, err := s.reactionRepo.GetByPostAndUser(ctx, postID, userID)
	if err != nil {
		return err
	}
	if reaction == nil {
		return ErrParamInvalid
	}
	return s.reactionRepo.SoftDeleteByPostAndUser(ctx, postID, userID)
}
