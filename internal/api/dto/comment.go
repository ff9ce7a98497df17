package dto

import "time"

type CreateCommentDTO struct {
	PostID    uint64  `json:"postId" binding:"required"`
	ParentID  *uint64 `json:"parentId"`
	Content   string  `json:"content" binding:"required" validate:"required,max=1000"`
	IsPrivate bool    `json:"isPrivate"`
}

// CommentDTO is a formatted comment node. UserID and Nickname are nil when
// the viewer is not allowed to see the author of a private comment.
type CommentDTO struct {
	ID        uint64        `json:"id"`
	UserID    *uint64       `json:"userId"`
	Nickname  *string       `json:"nickname"`
	Content   string        `json:"content"`
	IsPrivate bool          `json:"isPrivate"`
	IsDeleted bool          `json:"isDeleted"`
	CreatedAt time.Time     `json:"createdAt"`
	Replies   []*CommentDTO `json:"replies"`
}
