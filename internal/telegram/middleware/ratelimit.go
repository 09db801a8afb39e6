package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/futig/rfp-backend/internal/telegram/render"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	warningInterval   = 30 * time.Second
	cleanupInterval   = 10 * time.Minute
	inactiveThreshold = time.Hour
)

// Sender delivers the rate limit and panic notices
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type userLimit struct {
	limiter       *rate.Limiter
	lastSeen      time.Time
	lastWarningAt time.Time
}

// RateLimiterMiddleware drops updates from users above their per-minute budget
type RateLimiterMiddleware struct {
	mu     sync.Mutex
	limits map[int64]*userLimit
	every  rate.Limit
	burst  int
	now    func() time.Time
	logger *zap.Logger
	sender Sender
}

func NewRateLimiterMiddleware(
	requestsPerMinute int,
	burst int,
	logger *zap.Logger,
	sender Sender,
) *RateLimiterMiddleware {
	return &RateLimiterMiddleware{
		limits: make(map[int64]*userLimit),
		every:  rate.Every(time.Minute / time.Duration(requestsPerMinute)),
		burst:  burst,
		now:    time.Now,
		logger: logger,
		sender: sender,
	}
}

func (rl *RateLimiterMiddleware) Handle(update tgbotapi.Update, next func(tgbotapi.Update)) {
	userID, chatID, ok := updateOrigin(update)
	if !ok {
		next(update)
		return
	}

	allowed, warn := rl.allow(userID)
	if !allowed {
		rl.logger.Warn("rate limit exceeded",
			zap.Int64("user_id", userID),
			zap.Int64("chat_id", chatID),
		)
		if warn {
			rl.sendWarning(chatID)
		}
		return
	}

	next(update)
}

// allow reports whether the user may proceed and, if not, whether to warn them
func (rl *RateLimiterMiddleware) allow(userID int64) (bool, bool) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	limit, exists := rl.limits[userID]
	if !exists {
		limit = &userLimit{limiter: rate.NewLimiter(rl.every, rl.burst)}
		rl.limits[userID] = limit
	}
	limit.lastSeen = now

	if limit.limiter.AllowN(now, 1) {
		return true, false
	}

	if now.Sub(limit.lastWarningAt) < warningInterval {
		return false, false
	}
	limit.lastWarningAt = now
	return false, true
}

func (rl *RateLimiterMiddleware) sendWarning(chatID int64) {
	if _, err := rl.sender.Send(tgbotapi.NewMessage(chatID, render.ErrRateLimited)); err != nil {
		rl.logger.Error("failed to send rate limit warning",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
	}
}

// RunCleanup forgets inactive users until ctx is done
func (rl *RateLimiterMiddleware) RunCleanup(ctx context.Context) {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.cleanup()
		}
	}
}

func (rl *RateLimiterMiddleware) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for userID, limit := range rl.limits {
		if now.Sub(limit.lastSeen) > inactiveThreshold {
			delete(rl.limits, userID)
			rl.logger.Debug("cleaned up inactive user from rate limiter",
				zap.Int64("user_id", userID),
			)
		}
	}
}

// updateOrigin returns the user and chat of messages and callback queries
func updateOrigin(update tgbotapi.Update) (int64, int64, bool) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID, update.Message.Chat.ID, true
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.From.ID, update.CallbackQuery.Message.Chat.ID, true
	default:
		return 0, 0, false
	}
}
