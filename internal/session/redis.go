package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bookingform/config"
	"bookingform/internal/domain"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(cfg config.RedisConfig, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

// NewRedisStoreWithClient wires an existing client, used by tests.
func NewRedisStoreWithClient(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, form *domain.FormState) error {
	payload, err := json.Marshal(form)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, formKey(form.Token), payload, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, token string) (*domain.FormState, error) {
	data, err := s.client.Get(ctx, formKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var form domain.FormState
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, err
	}
	return &form, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, formKey(token)).Err()
}

func formKey(token string) string {
	return fmt.Sprintf("form:session:%s", token)
}

var _ Store = (*RedisStore)(nil)
