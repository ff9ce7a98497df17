package service

import (
	"Revu/internal/api/dto"
	"Revu/internal/model"
	"Revu/internal/pkg/consts"
	"Revu/internal/repository"
	"context"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID uint64, in *dto.CreateCommentDTO) error
	// ListComments returns the post's comment tree redacted for the viewer.
	// viewerID 0 means anonymous: every private comment is masked.
	ListComments(ctx context.Context, viewerID uint64, postID uint64) ([]*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID uint64, commentID uint64) error
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
}

func NewCommentService(commentRepo repository.CommentRepo, postRepo repository.PostRepo) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (s *commentServiceImpl) CreateComment(ctx context.Context, userID uint64, in *dto.CreateCommentDTO) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post == nil || post.Status != consts.PostStatusPublished {
		return ErrPostNotFound
	}

	if in.ParentID != nil {
		parent, err := s.commentRepo.GetByID(ctx, *in.ParentID)
		if err != nil {
			return err
		}
		if parent == nil {
			return ErrCommentNotFound
		}
		if parent.PostID != in.PostID {
			return ErrParentMismatch
		}
	}

	return s.commentRepo.Create(ctx, &model.Comment{
		PostID:    in.PostID,
		UserID:    userID,
		ParentID:  in.ParentID,
		Content:   in.Content,
		IsPrivate: in.IsPrivate,
	})
}

func (s *commentServiceImpl) ListComments(ctx context.Context, viewerID uint64, postID uint64) ([]*dto.CommentDTO, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || post.Status != consts.PostStatusPublished {
		return nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	return FormatComments(comments, viewerID, post.UserID), nil
}

func (s *commentServiceImpl) DeleteComment(ctx context.Context, userID uint64, commentID uint64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.UserID != userID {
		return UnauthorizedError
	}
	return s.commentRepo.SoftDelete(ctx, commentID)
}

// FormatComments builds the redacted comment tree from a flat, id-indexed
// collection. It is a pure transform with no persistence side effects.
//
// For a top-level comment the context owner is the post's owner; for a reply
// it is the immediate parent comment's owner. Visibility does not inherit
// further down the thread: each reply is judged only against its own parent.
func FormatComments(comments []model.Comment, viewerID, postOwnerID uint64) []*dto.CommentDTO {
	children := make(map[uint64][]*model.Comment)
	var roots []*model.Comment
	for i := range comments {
		c := &comments[i]
		if c.ParentID == nil {
			roots = append(roots, c)
		} else {
			children[*c.ParentID] = append(children[*c.ParentID], c)
		}
	}

	var format func(c *model.Comment, contextOwnerID uint64) *dto.CommentDTO
	format = func(c *model.Comment, contextOwnerID uint64) *dto.CommentDTO {
		out := formatNode(c, viewerID, contextOwnerID)
		for _, child := range children[c.ID] {
			// context owner for the children is this comment's author
			out.Replies = append(out.Replies, format(child, c.UserID))
		}
		return out
	}

	result := make([]*dto.CommentDTO, 0, len(roots))
	for _, root := range roots {
		result = append(result, format(root, postOwnerID))
	}
	return result
}

func formatNode(c *model.Comment, viewerID, contextOwnerID uint64) *dto.CommentDTO {
	userID := c.UserID
	var nickname *string
	if c.User.ID > 0 {
		nickname = &c.User.Nickname
	}

	out := &dto.CommentDTO{
		ID:        c.ID,
		UserID:    &userID,
		Nickname:  nickname,
		Content:   c.Content,
		IsPrivate: c.IsPrivate,
		CreatedAt: c.CreatedAt,
		Replies:   []*dto.CommentDTO{},
	}

	// Deletion wins over privacy: a deleted private comment renders the
	// deleted marker, author intact.
	if c.DeletedAt.Valid {
		out.IsDeleted = true
		out.Content = consts.DeletedCommentContent
		return out
	}

	if c.IsPrivate && viewerID != c.UserID && viewerID != contextOwnerID {
		out.Content = consts.PrivateCommentContent
		out.UserID = nil
		out.Nickname = nil
	}

	return out
}
