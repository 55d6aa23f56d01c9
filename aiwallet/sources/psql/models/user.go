package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is the external identity every wallet, transaction and chat hangs off.
type User struct {
	ID        string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	Username  string    `json:"username" gorm:"type:varchar(255);not null;uniqueIndex"`
	Email     string    `json:"email" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
