package types

import (
	"aiwallet/aiwallet/sources/psql/models"
	"aiwallet/aiwallet/utils/apperr"
	"strings"
)

// ChatRequest is the body of POST /api/chat/send.
type ChatRequest struct {
	Message string `json:"message"`
	ChatID  *uint  `json:"chatId,omitempty"`
}

// Validate rejects blank messages before anything is written.
func (r ChatRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return apperr.Invalid("message", "message is required")
	}
	if r.ChatID != nil && *r.ChatID == 0 {
		return apperr.Invalid("chatId", "chatId must be a positive integer")
	}
	return nil
}

type ChatResponse struct {
	ChatID   uint            `json:"chatId"`
	Message  *models.Message `json:"message"`
	Response *models.Message `json:"response"`
}
