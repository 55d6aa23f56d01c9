package controllers

import (
	"aiwallet/aiwallet/agents/configs"
	"aiwallet/aiwallet/sources/psql/dao"
	"aiwallet/aiwallet/sources/psql/models"
	"aiwallet/aiwallet/utils/apperr"
	"aiwallet/aiwallet/utils/jsonutils"
	"aiwallet/aiwallet/utils/logging"
	"aiwallet/aiwallet/utils/types"
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	chatTitleLength = 30
	previewType     = "transaction_preview"
)

// ReplyGenerator is the language-model collaborator.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// PortfolioDescriber renders the user's holdings as prompt context.
type PortfolioDescriber interface {
	Describe(ctx context.Context, userID string) string
}

type ChatController struct {
	chats     dao.ChatStore
	assistant ReplyGenerator
	cfg       *configs.AssistantConfig
	portfolio PortfolioDescriber
}

func NewChatController(chats dao.ChatStore, assistant ReplyGenerator, cfg *configs.AssistantConfig) *ChatController {
	return &ChatController{chats: chats, assistant: assistant, cfg: cfg}
}

// WithPortfolio appends the user's portfolio to every system prompt.
func (c *ChatController) WithPortfolio(p PortfolioDescriber) *ChatController {
	c.portfolio = p
	return c
}

func (c *ChatController) ListChats(ctx context.Context, userID string) ([]models.Chat, error) {
	return c.chats.GetChats(ctx, userID)
}

// GetMessages returns a chat's messages oldest first. Chats owned by another
// user are reported as not found.
func (c *ChatController) GetMessages(ctx context.Context, userID string, chatID uint) ([]models.Message, error) {
	if _, err := c.ownedChat(ctx, userID, chatID); err != nil {
		return nil, err
	}
	return c.chats.GetChatMessages(ctx, chatID)
}

// Send records the user's message, asks the assistant for a reply and
// records that too. A new chat titled after the message is opened when
// req.ChatID is nil. If the assistant fails, the user message stays recorded.
func (c *ChatController) Send(ctx context.Context, userID string, req types.ChatRequest) (*types.ChatResponse, error) {
	defer logging.LogDuration(ctx, "chat_send")()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var chatID uint
	if req.ChatID != nil {
		chat, err := c.ownedChat(ctx, userID, *req.ChatID)
		if err != nil {
			return nil, err
		}
		chatID = chat.ID
	} else {
		chat, err := c.chats.CreateChat(ctx, userID, chatTitle(req.Message))
		if err != nil {
			return nil, err
		}
		chatID = chat.ID
	}

	userMsg, err := c.chats.AddMessage(ctx, &models.Message{
		ChatID:  chatID,
		Role:    models.RoleUser,
		Content: req.Message,
	})
	if err != nil {
		return nil, err
	}

	reply, err := c.assistant.GenerateReply(ctx, c.systemPrompt(ctx, userID), req.Message)
	if err != nil {
		logging.ErrorLogger.Error("assistant reply failed",
			zap.Uint("chat_id", chatID), zap.String("user_id", userID), zap.Error(err))
		return nil, apperr.Unavailable("generate reply", err)
	}
	if strings.TrimSpace(reply) == "" {
		reply = c.cfg.FallbackReply
	}

	aiMsg, err := c.chats.AddMessage(ctx, &models.Message{
		ChatID:   chatID,
		Role:     models.RoleAssistant,
		Content:  reply,
		Metadata: transactionPreview(reply),
	})
	if err != nil {
		return nil, err
	}

	return &types.ChatResponse{ChatID: chatID, Message: userMsg, Response: aiMsg}, nil
}

func (c *ChatController) systemPrompt(ctx context.Context, userID string) string {
	if c.portfolio == nil {
		return c.cfg.SystemPrompt
	}
	extra := c.portfolio.Describe(ctx, userID)
	if extra == "" {
		return c.cfg.SystemPrompt
	}
	return c.cfg.SystemPrompt + "\n\n" + extra
}

func (c *ChatController) ownedChat(ctx context.Context, userID string, chatID uint) (*models.Chat, error) {
	chat, err := c.chats.GetChat(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if chat == nil || chat.UserID != userID {
		return nil, apperr.NotFound("Chat")
	}
	return chat, nil
}

// chatTitle is the first 30 characters of the opening message plus "...".
func chatTitle(message string) string {
	runes := []rune(message)
	if len(runes) > chatTitleLength {
		runes = runes[:chatTitleLength]
	}
	return string(runes) + "..."
}

// transactionPreview returns the structured preview the assistant emitted,
// or nil. Previews are only stored; nothing executes them.
func transactionPreview(reply string) datatypes.JSON {
	obj := jsonutils.ExtractObject(reply)
	if obj == nil || obj["type"] != previewType {
		return nil
	}
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}
