package model

// Lookup catalogs referenced by posts and reactions. Rows are seeded once and
// served read-only.

type Category struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

// Estimation is the per-post rating catalog (good / soso / bad).
type Estimation struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
}

func (Estimation) TableName() string {
	return "estimations"
}

// Symbol is the reaction-type catalog (like, cool, ...).
type Symbol struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
}

func (Symbol) TableName() string {
	return "symbols"
}
