package domain

import "time"

// BaseModel is the common base struct for all persisted entities.
// It replaces gorm.Model to avoid the implicit soft delete behavior of DeletedAt.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageRequest holds 1-based pagination parameters for list queries.
type PageRequest struct {
	PageIndex int
	PageSize  int
}
