package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
	"webcall-server/internal/clients/redis"
	"webcall-server/internal/observability"
)

const (
	receptionistStatusKey = "receptionist:active"
	activeAgentKey        = "receptionist:active_agent"
)

// KeyValue is the subset of the Redis client used by RedisStore.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, expiration time.Duration) error
}

// RedisStore keeps settings in Redis so every server instance sees the same
// receptionist status and active agent.
type RedisStore struct {
	kv     KeyValue
	logger *observability.Logger
}

func NewRedisStore(kv KeyValue, logger *observability.Logger) *RedisStore {
	return &RedisStore{kv: kv, logger: logger}
}

func (s *RedisStore) GetReceptionistStatus(ctx context.Context) (bool, error) {
	val, err := s.kv.Get(ctx, receptionistStatusKey)
	if errors.Is(err, redis.ErrKeyNotFound) {
		return true, nil
	}
	if err != nil {
		s.logger.Error(ctx, "failed to read receptionist status", err)
		return false, fmt.Errorf("failed to read receptionist status: %w", err)
	}

	active, err := strconv.ParseBool(val)
	if err != nil {
		s.logger.Warn(ctx, "ignoring malformed receptionist status", observability.Field{Key: "value", Value: val})
		return true, nil
	}
	return active, nil
}

func (s *RedisStore) SetReceptionistStatus(ctx context.Context, active bool) error {
	if err := s.kv.Set(ctx, receptionistStatusKey, strconv.FormatBool(active), 0); err != nil {
		s.logger.Error(ctx, "failed to write receptionist status", err)
		return fmt.Errorf("failed to write receptionist status: %w", err)
	}
	return nil
}

func (s *RedisStore) GetActiveAgent(ctx context.Context) (ActiveAgent, error) {
	val, err := s.kv.Get(ctx, activeAgentKey)
	if errors.Is(err, redis.ErrKeyNotFound) {
		return ActiveAgent{}, ErrNotFound
	}
	if err != nil {
		s.logger.Error(ctx, "failed to read active agent", err)
		return ActiveAgent{}, fmt.Errorf("failed to read active agent: %w", err)
	}

	var agent ActiveAgent
	if err := json.Unmarshal([]byte(val), &agent); err != nil {
		return ActiveAgent{}, fmt.Errorf("failed to decode active agent: %w", err)
	}
	return agent, nil
}

func (s *RedisStore) SetActiveAgent(ctx context.Context, agent ActiveAgent) error {
	data, err := json.Marshal(agent)
	if err != nil {
		return fmt.Errorf("failed to encode active agent: %w", err)
	}
	if err := s.kv.Set(ctx, activeAgentKey, string(data), 0); err != nil {
		s.logger.Error(ctx, "failed to write active agent", err)
		return fmt.Errorf("failed to write active agent: %w", err)
	}
	return nil
}
