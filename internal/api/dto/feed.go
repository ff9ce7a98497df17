package dto

import "time"

// FeedPublishDTO is the full-validation input variant: publishing requires
// every field the reader-facing card renders.
type FeedPublishDTO struct {
	Title        string   `json:"title" binding:"required" validate:"required,min=1,max=30"`
	Content      string   `json:"content" binding:"required" validate:"required,max=10000"`
	CategoryID   uint64   `json:"categoryId" binding:"required" validate:"required"`
	EstimationID uint64   `json:"estimationId" binding:"required" validate:"required"`
	FileLinks    []string `json:"fileLinks"`
}

// FeedDraftDTO is the partial input variant used by autosave: everything but
// content may be absent.
type FeedDraftDTO struct {
	Title        *string  `json:"title" validate:"omitempty,max=30"`
	Content      string   `json:"content" validate:"max=10000"`
	CategoryID   *uint64  `json:"categoryId"`
	EstimationID *uint64  `json:"estimationId"`
	FileLinks    []string `json:"fileLinks"`
}

type FeedPublishUpdateDTO struct {
	PostID uint64 `json:"postId" binding:"required"`
	FeedPublishDTO
}

type FeedDraftUpdateDTO struct {
	PostID uint64 `json:"postId" binding:"required"`
	FeedDraftDTO
}

type FeedDTO struct {
	ID         uint64     `json:"id"`
	UserID     uint64     `json:"userId"`
	Nickname   string     `json:"nickname"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Status     int8       `json:"status"`
	Category   string     `json:"category,omitempty"`
	Estimation string     `json:"estimation,omitempty"`
	PostedAt   *time.Time `json:"postedAt"`
	ViewCount  uint64     `json:"viewCount"`
	Files      []*FileDTO `json:"files"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type FeedListDTO struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}
