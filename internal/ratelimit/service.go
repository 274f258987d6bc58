package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
	"webcall-server/internal/observability"

	"github.com/google/uuid"
)

const window = time.Minute

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool
	Limit        int
	Remaining    int
	ResetAt      time.Time
	RetryAfterMs int64
}

// WindowStore keeps per-key request timestamps in a shared backend.
type WindowStore interface {
	IsEnabled() bool
	CountWindow(ctx context.Context, key string, sinceMs int64) (int64, error)
	AddToWindow(ctx context.Context, key string, scoreMs int64, member string, ttl time.Duration) error
}

// Service enforces a sliding one-minute window per key. It uses the shared
// store when one is configured and falls back to process memory otherwise.
type Service struct {
	shared WindowStore
	logger *observability.Logger
	now    func() time.Time

	mu    sync.Mutex
	local map[string][]time.Time
}

func NewService(shared WindowStore, logger *observability.Logger) *Service {
	return &Service{
		shared: shared,
		logger: logger,
		now:    time.Now,
		local:  make(map[string][]time.Time),
	}
}

// CheckRateLimit records a request for key if it fits within limit.
func (s *Service) CheckRateLimit(ctx context.Context, key string, limit int) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rate_limit_key", Value: key},
		observability.Field{Key: "rate_limit", Value: limit},
	)

	if s.shared != nil && s.shared.IsEnabled() {
		result, err := s.checkShared(ctx, key, limit)
		if err == nil {
			return result, nil
		}
		s.logger.Warn(ctx, "shared rate limit check failed, falling back to memory",
			observability.Field{Key: "error", Value: err.Error()})
	}
	return s.checkLocal(key, limit), nil
}

func (s *Service) checkShared(ctx context.Context, key string, limit int) (Result, error) {
	now := s.now()
	count, err := s.shared.CountWindow(ctx, key, now.Add(-window).UnixMilli())
	if err != nil {
		return Result{}, err
	}

	if int(count) >= limit {
		return Result{
			Allowed:      false,
			Limit:        limit,
			ResetAt:      now.Add(window),
			RetryAfterMs: window.Milliseconds(),
		}, nil
	}

	member := fmt.Sprintf("%d-%s", now.UnixNano(), uuid.New().String())
	if err := s.shared.AddToWindow(ctx, key, now.UnixMilli(), member, 2*window); err != nil {
		return Result{}, err
	}

	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: max(0, limit-int(count)-1),
		ResetAt:   now.Add(window),
	}, nil
}

func (s *Service) checkLocal(key string, limit int) Result {
	now := s.now()
	cutoff := now.Add(-window)

	s.mu.Lock()
	defer s.mu.Unlock()

	hits := s.local[key]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= limit {
		s.local[key] = kept
		resetAt := kept[0].Add(window)
		return Result{
			Allowed:      false,
			Limit:        limit,
			ResetAt:      resetAt,
			RetryAfterMs: resetAt.Sub(now).Milliseconds(),
		}
	}

	kept = append(kept, now)
	s.local[key] = kept
	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - len(kept),
		ResetAt:   kept[0].Add(window),
	}
}
