package dao

import (
	"aiwallet/aiwallet/sources/psql/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ChatStore persists chats and their messages.
type ChatStore interface {
	GetChats(ctx context.Context, userID string) ([]models.Chat, error)
	GetChat(ctx context.Context, chatID uint) (*models.Chat, error)
	CreateChat(ctx context.Context, userID, title string) (*models.Chat, error)
	GetChatMessages(ctx context.Context, chatID uint) ([]models.Message, error)
	AddMessage(ctx context.Context, msg *models.Message) (*models.Message, error)
}

type ChatMessageDAO struct {
	DB *gorm.DB
}

func NewChatMessageDAO(db *gorm.DB) *ChatMessageDAO {
	return &ChatMessageDAO{DB: db}
}

func (dao *ChatMessageDAO) GetChats(ctx context.Context, userID string) ([]models.Chat, error) {
	chats := []models.Chat{}
	err := dao.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at desc").Order("id desc").
		Find(&chats).Error
	if err != nil {
		return nil, fmt.Errorf("get chats: %w", err)
	}
	return chats, nil
}

func (dao *ChatMessageDAO) GetChat(ctx context.Context, chatID uint) (*models.Chat, error) {
	var chat models.Chat
	err := dao.DB.WithContext(ctx).First(&chat, chatID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get chat %d: %w", chatID, err)
	}
	return &chat, nil
}

func (dao *ChatMessageDAO) CreateChat(ctx context.Context, userID, title string) (*models.Chat, error) {
	if title == "" {
		title = models.DefaultChatTitle
	}
	chat := models.Chat{UserID: userID, Title: title}
	if err := dao.DB.WithContext(ctx).Create(&chat).Error; err != nil {
		return nil, translateErr("create chat", err)
	}
	return &chat, nil
}

func (dao *ChatMessageDAO) GetChatMessages(ctx context.Context, chatID uint) ([]models.Message, error) {
	msgs := []models.Message{}
	err := dao.DB.WithContext(ctx).
		Where("chat_id = ?", chatID).
		Order("created_at asc").Order("id asc").
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("get messages for chat %d: %w", chatID, err)
	}
	return msgs, nil
}

// AddMessage inserts msg and moves the parent chat's updated_at to the
// message's created_at in the same database transaction.
func (dao *ChatMessageDAO) AddMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	err := dao.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return translateErr("save message", err)
		}
		res := tx.Model(&models.Chat{}).Where("id = ?", msg.ChatID).UpdateColumn("updated_at", msg.CreatedAt)
		if res.Error != nil {
			return fmt.Errorf("touch chat %d: %w", msg.ChatID, res.Error)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}
