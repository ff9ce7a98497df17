package model

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID           uint64         `gorm:"primaryKey"`
	UserID       uint64         `gorm:"not null;index:idx_user_id" json:"user_id"`
	Title        *string        `gorm:"type:varchar(255)" json:"title"`
	Content      string         `gorm:"type:text;not null" json:"content"`
	Status       int8           `gorm:"not null;default:0;index:idx_status" json:"status"` // 0:draft, 1:published, 2:deleted
	CategoryID   *uint64        `json:"category_id"`
	EstimationID *uint64        `json:"estimation_id"`
	PostedAt     *time.Time     `json:"posted_at"`
	ViewCount    uint64         `gorm:"not null;default:0" json:"view_count"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	User       User           `gorm:"foreignKey:UserID;references:ID"`
	Category   *Category      `gorm:"foreignKey:CategoryID;references:ID"`
	Estimation *Estimation    `gorm:"foreignKey:EstimationID;references:ID"`
	Files      []UploadedFile `gorm:"foreignKey:PostID;references:ID"`
	Comments   []Comment      `gorm:"foreignKey:PostID;references:ID"`
	Reactions  []Reaction     `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
