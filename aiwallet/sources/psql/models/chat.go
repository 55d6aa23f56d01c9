package models

import (
	"time"

	"gorm.io/datatypes"
)

const DefaultChatTitle = "New Chat"

type Chat struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"userId" gorm:"type:varchar(36);not null;index"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null;default:'New Chat'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Chat) TableName() string {
	return "chats"
}

type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message belongs to exactly one Chat and never changes after insert.
type Message struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	ChatID    uint           `json:"chatId" gorm:"not null;index"`
	Chat      *Chat          `json:"-" gorm:"foreignKey:ChatID;references:ID;constraint:OnDelete:CASCADE"`
	Role      MessageRole    `json:"role" gorm:"type:varchar(16);not null"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	Metadata  datatypes.JSON `json:"metadata"`
	CreatedAt time.Time      `json:"createdAt"`
}

func (Message) TableName() string {
	return "messages"
}
