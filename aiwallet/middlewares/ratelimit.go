package middlewares

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	httputils "aiwallet/aiwallet/utils/http"
	"aiwallet/aiwallet/utils/logging"
	"aiwallet/aiwallet/utils/types"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Limiter allows limit hits per window for each client, then blocks the
// client for blockDuration. Counters live in Redis so every instance shares
// them.
type Limiter struct {
	rdb           *redis.Client
	limit         int
	window        time.Duration
	blockDuration time.Duration
	keyPrefix     string
}

// Decision is the outcome of one Limiter.Allow call.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	Reset      time.Duration
	RetryAfter time.Duration
}

// NewLimiter returns nil when rdb is nil. A nil Limiter allows everything.
func NewLimiter(rdb *redis.Client, limit int, window, blockDuration time.Duration, keyPrefix string) *Limiter {
	if rdb == nil {
		return nil
	}
	return &Limiter{rdb: rdb, limit: limit, window: window, blockDuration: blockDuration, keyPrefix: keyPrefix}
}

// Allow counts one hit for client. On a Redis error the decision still says
// whether to serve: counting failures allow, a failed block write denies.
func (l *Limiter) Allow(ctx context.Context, client string) (Decision, error) {
	if l == nil {
		return Decision{Allowed: true}, nil
	}
	key := l.keyPrefix + ":" + client
	blockKey := key + ":blocked"
	open := Decision{Allowed: true, Limit: l.limit}

	blocked, err := l.rdb.Get(ctx, blockKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return open, fmt.Errorf("read block %s: %w", blockKey, err)
	}
	if blocked == "1" {
		ttl, err := l.rdb.TTL(ctx, blockKey).Result()
		if err != nil || ttl < 0 {
			ttl = l.blockDuration
		}
		return Decision{Limit: l.limit, RetryAfter: ttl}, nil
	}

	// INCR and TTL run in one MULTI so a counter is never read without its
	// expiry state.
	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	if _, err := l.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, key)
		ttl = p.TTL(ctx, key)
		return nil
	}); err != nil {
		return open, fmt.Errorf("count %s: %w", key, err)
	}

	// A counter without expiry would never reset. Set it whenever it is
	// missing, not only on the first hit.
	reset := ttl.Val()
	if reset < 0 {
		if err := l.rdb.Expire(ctx, key, l.window).Err(); err != nil {
			return open, fmt.Errorf("expire %s: %w", key, err)
		}
		reset = l.window
	}

	count := incr.Val()
	if count > int64(l.limit) {
		denied := Decision{Limit: l.limit, RetryAfter: l.blockDuration}
		if err := l.rdb.Set(ctx, blockKey, "1", l.blockDuration).Err(); err != nil {
			return denied, fmt.Errorf("block %s: %w", key, err)
		}
		logging.AppLogger.Warn("client rate limited", zap.String("key", key), zap.Int64("count", count))
		return denied, nil
	}
	return Decision{Allowed: true, Limit: l.limit, Remaining: l.limit - int(count), Reset: reset}, nil
}

// RateLimiter applies l per client. Clients are keyed by user id when the
// request is authenticated and by IP otherwise. A nil Limiter or a Redis
// counting failure lets the request through.
func RateLimiter(l *Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if l == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d, err := l.Allow(r.Context(), clientID(r))
			if err != nil {
				logging.ErrorLogger.Error("rate limiter unavailable", zap.String("client", clientID(r)), zap.Error(err))
			}
			if !d.Allowed {
				tooManyRequests(w, d.RetryAfter)
				return
			}
			if err == nil {
				w.Header().Set("X-RateLimit-Limit", strconv.Itoa(d.Limit))
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(d.Remaining))
				w.Header().Set("X-RateLimit-Reset", strconv.Itoa(int(d.Reset.Seconds())))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserClientID is the limiter key for an authenticated user.
func UserClientID(userID string) string {
	return "uid:" + userID
}

func clientID(r *http.Request) string {
	if userID := UserID(r.Context()); userID != "" {
		return UserClientID(userID)
	}
	ip := r.Header.Get("X-Forwarded-For")
	if ip == "" {
		ip = r.RemoteAddr
	}
	return "ip:" + strings.TrimSpace(strings.Split(ip, ",")[0])
}

// TooManyRequestsMessage is the client-facing text for a blocked client.
func TooManyRequestsMessage(retryAfter time.Duration) string {
	return "Too Many Requests. Try again in " + retryAfter.String()
}

func tooManyRequests(w http.ResponseWriter, retryAfter time.Duration) {
	w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
	httputils.WriteJSON(w, http.StatusTooManyRequests, types.ErrorResponse{
		Message: TooManyRequestsMessage(retryAfter),
	})
}
