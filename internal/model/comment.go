package model

import (
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint64         `gorm:"primaryKey"`
	PostID    uint64         `gorm:"not null;index:idx_post_id" json:"post_id"`
	UserID    uint64         `gorm:"not null" json:"user_id"`
	ParentID  *uint64        `gorm:"index:idx_parent_id" json:"parent_id"` // nil means top-level comment
	Content   string         `gorm:"type:varchar(1000);not null" json:"content"`
	IsPrivate bool           `gorm:"type:tinyint(1);not null;default:0" json:"is_private"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}
