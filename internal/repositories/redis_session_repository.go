package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"

	apperrors "taskboard.com/taskboard/internal/errors"
	"taskboard.com/taskboard/internal/session"
)

// RedisSessionRepository keeps each session as a JSON string under
// prefix+id. Expiry is left to redis.
type RedisSessionRepository struct {
	client rueidis.Client
	prefix string
}

func NewRedisSessionRepository(client rueidis.Client, prefix string) *RedisSessionRepository {
	return &RedisSessionRepository{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisSessionRepository) key(id string) string {
	return r.prefix + id
}

func (r *RedisSessionRepository) Get(ctx context.Context, id string) (session.State, error) {
	cmd := r.client.B().Get().Key(r.key(id)).Build()
	data, err := r.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return session.State{}, apperrors.ErrSessionNotFound
		}
		return session.State{}, err
	}

	var state session.State
	if err := json.Unmarshal(data, &state); err != nil {
		return session.State{}, err
	}
	return state, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, id string, state session.State, ttl time.Duration) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}

	seconds := int64(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	cmd := r.client.B().Set().Key(r.key(id)).Value(string(data)).ExSeconds(seconds).Build()
	return r.client.Do(ctx, cmd).Error()
}

func (r *RedisSessionRepository) Delete(ctx context.Context, id string) error {
	cmd := r.client.B().Del().Key(r.key(id)).Build()
	return r.client.Do(ctx, cmd).Error()
}
