package model

import (
	"time"

	"gorm.io/gorm"
)

type Reaction struct {
	ID        uint64         `gorm:"primaryKey"`
	UserID    uint64         `gorm:"not null;uniqueIndex:idx_post_user" json:"user_id"`
	PostID    uint64         `gorm:"not null;uniqueIndex:idx_post_user,priority:1" json:"post_id"`
	SymbolID  uint64         `gorm:"not null" json:"symbol_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"`

	Symbol Symbol `gorm:"foreignKey:SymbolID;references:ID"`
}

func (Reaction) TableName() string {
	return "reactions"
}
