package models

import (
	"time"
)

// BaseModel provides common fields for all catalog entities with integer primary keys
type BaseModel struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
