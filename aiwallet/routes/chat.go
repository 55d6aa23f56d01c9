package routes

import (
	"aiwallet/aiwallet/config"
	"aiwallet/aiwallet/controllers"
	"aiwallet/aiwallet/middlewares"
	"aiwallet/aiwallet/utils/apperr"
	"aiwallet/aiwallet/utils/logging"
	"aiwallet/aiwallet/utils/types"
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ChatsRoutes serves chat history.
func ChatsRoutes(ctrl *controllers.ChatController, secret string) chi.Router {
	r := chi.NewRouter()
	r.Use(middlewares.AuthMiddleware(secret))

	r.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
		chats, err := ctrl.ListChats(r.Context(), middlewares.UserID(r.Context()))
		if err != nil {
			return nil, 0, err
		}
		return chats, http.StatusOK, nil
	}))

	r.Get("/{id}/messages", handleJSON(func(r *http.Request) (any, int, error) {
		id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id == 0 {
			return nil, 0, apperr.Invalid("id", "chat id must be a positive integer")
		}
		msgs, err := ctrl.GetMessages(r.Context(), middlewares.UserID(r.Context()), uint(id))
		if err != nil {
			return nil, 0, err
		}
		return msgs, http.StatusOK, nil
	}))
	return r
}

// ChatRoutes serves POST /send and the /ws socket. Both share one per-user
// send budget when rdb is set.
func ChatRoutes(ctrl *controllers.ChatController, cfg config.Config, rdb *redis.Client) chi.Router {
	limiter := middlewares.NewLimiter(rdb, cfg.ChatRateLimit, cfg.ChatRateWindow, cfg.ChatRateBlock, "chat_send")
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middleware.Timeout(cfg.RequestTimeout))
		gr.Use(middlewares.AuthMiddleware(cfg.JWTSecret))
		gr.Use(middlewares.RateLimiter(limiter))

		gr.Post("/send", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.ChatRequest
			if err := decodeJSON(r, &req); err != nil {
				return nil, 0, err
			}
			resp, err := ctrl.Send(r.Context(), middlewares.UserID(r.Context()), req)
			if err != nil {
				return nil, 0, err
			}
			return resp, http.StatusOK, nil
		}))
	})

	// Browsers cannot set headers on a websocket handshake, so the first
	// frame carries the token instead.
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: cfg.CORSAllowOrigin})
		if err != nil {
			return
		}
		defer conn.CloseNow()
		serveChatSocket(r.Context(), conn, ctrl, cfg.JWTSecret, limiter)
	})
	return r
}

func serveChatSocket(ctx context.Context, conn *websocket.Conn, ctrl *controllers.ChatController, secret string, limiter *middlewares.Limiter) {
	var hello struct {
		Token string `json:"token"`
	}
	if err := wsjson.Read(ctx, conn, &hello); err != nil {
		conn.Close(websocket.StatusUnsupportedData, "expected token frame")
		return
	}
	userID, err := middlewares.ParseUserID(secret, hello.Token)
	if err != nil {
		wsjson.Write(ctx, conn, types.ErrorResponse{Message: "Unauthorized"})
		conn.Close(websocket.StatusPolicyViolation, "invalid token")
		return
	}

	for {
		typ, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == -1 {
				logging.AppLogger.Info("chat socket closed", zap.String("user_id", userID), zap.Error(err))
			}
			return
		}
		if typ != websocket.MessageText {
			conn.Close(websocket.StatusUnsupportedData, "text frames only")
			return
		}

		reply := chatFrameReply(ctx, ctrl, limiter, userID, data)
		if err := wsjson.Write(ctx, conn, reply); err != nil {
			return
		}
	}
}

// chatFrameReply handles one socket frame the way POST /send handles a
// request: same rate limit, same error logging.
func chatFrameReply(ctx context.Context, ctrl *controllers.ChatController, limiter *middlewares.Limiter, userID string, data []byte) interface{} {
	d, err := limiter.Allow(ctx, middlewares.UserClientID(userID))
	if err != nil {
		logging.ErrorLogger.Error("rate limiter unavailable", zap.String("user_id", userID), zap.Error(err))
	}
	if !d.Allowed {
		return types.ErrorResponse{Message: middlewares.TooManyRequestsMessage(d.RetryAfter)}
	}

	var req types.ChatRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return types.ErrorResponse{Message: "invalid JSON frame"}
	}
	resp, err := ctrl.Send(ctx, userID, req)
	if err != nil {
		status, msg := apperr.Status(err)
		if status >= http.StatusInternalServerError {
			logging.ErrorLogger.Error("chat socket send failed",
				zap.Int("status", status),
				zap.String("user_id", userID),
				zap.String("trace_id", logging.TraceID(ctx)),
				zap.Error(err),
			)
		}
		return types.ErrorResponse{Message: msg}
	}
	return resp
}
