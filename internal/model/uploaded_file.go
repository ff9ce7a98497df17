package model

import (
	"time"

	"gorm.io/gorm"
)

// UploadedFile is created as an orphan (PostID nil) at upload time and linked
// to a post during the post write that references its URL.
type UploadedFile struct {
	ID        uint64         `gorm:"primaryKey"`
	UserID    uint64         `gorm:"not null;index:idx_uploaded_files_user_id" json:"user_id"`
	PostID    *uint64        `gorm:"index:idx_uploaded_files_post_id" json:"post_id"`
	URL       string         `gorm:"type:varchar(512);not null;uniqueIndex:idx_url" json:"url"`
	IsImage   bool           `gorm:"type:tinyint(1);not null;default:0" json:"is_image"`
	FileName  string         `gorm:"type:varchar(255);not null" json:"file_name"`
	FileSize  string         `gorm:"type:varchar(30);not null" json:"file_size"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UploadedFile) TableName() string {
	return "uploaded_files"
}
