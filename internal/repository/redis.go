package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/lcasviana/chess/internal/cherrors"
	"github.com/lcasviana/chess/internal/domain/match"
)

const matchKeyPrefix = "match:"

// RedisMatchStore keeps active matches in Redis so they survive service
// restarts.
type RedisMatchStore struct {
	log   *zap.SugaredLogger
	redis *redis.Client
}

func NewRedisMatchStore(log *zap.SugaredLogger, client *redis.Client) *RedisMatchStore {
	return &RedisMatchStore{
		log:   log,
		redis: client,
	}
}

func matchKey(id string) string {
	return matchKeyPrefix + id
}

func (s *RedisMatchStore) Save(ctx context.Context, m *match.Match) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal match %s: %w", m.ID, err)
	}
	if err := s.redis.Set(ctx, matchKey(m.ID), data, 0).Err(); err != nil {
		s.log.Errorf("failed to save match %s: %v", m.ID, err)
		return err
	}
	return nil
}

func (s *RedisMatchStore) Get(ctx context.Context, id string) (*match.Match, error) {
	data, err := s.redis.Get(ctx, matchKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, cherrors.ErrMatchNotFound
	} else if err != nil {
		s.log.Errorf("failed to load match %s: %v", id, err)
		return nil, err
	}

	var m match.Match
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return nil, fmt.Errorf("unmarshal match %s: %w", id, err)
	}
	return &m, nil
}

func (s *RedisMatchStore) Delete(ctx context.Context, id string) error {
	deleted, err := s.redis.Del(ctx, matchKey(id)).Result()
	if err != nil {
		s.log.Errorf("failed to delete match %s: %v", id, err)
		return err
	}
	if deleted == 0 {
		return cherrors.ErrMatchNotFound
	}
	return nil
}

func (s *RedisMatchStore) List(ctx context.Context) ([]*match.Match, error) {
	keys, err := s.redis.Keys(ctx, matchKeyPrefix+"*").Result()
	if err != nil {
		s.log.Errorf("failed to list matches: %v", err)
		return nil, err
	}

	result := make([]*match.Match, 0, len(keys))
	for _, key := range keys {
		m, err := s.Get(ctx, key[len(matchKeyPrefix):])
		if errors.Is(err, cherrors.ErrMatchNotFound) {
			continue
		} else if err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, nil
}
