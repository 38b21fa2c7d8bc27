package draft

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"flightdesk/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "flightdesk:draft:"

// RedisStore keeps drafts in Redis with a TTL so abandoned sessions expire.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &RedisStore{Client: client, TTL: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (Itinerary, error) {
	raw, err := s.Client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Itinerary{}, domain.NotFoundError{Resource: "draft"}
		}
		return Itinerary{}, domain.InternalError{Msg: "gagal baca draft", Err: err}
	}

	var it Itinerary
	if err := json.Unmarshal(raw, &it); err != nil {
		return Itinerary{}, domain.InternalError{Msg: "draft korup", Err: err}
	}
	return it, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, it Itinerary) error {
	if sessionID == "" {
		return domain.ValidationError{Field: "session_id", Msg: "session id kosong"}
	}
	raw, err := json.Marshal(it)
	if err != nil {
		return domain.InternalError{Msg: "gagal encode draft", Err: err}
	}
	if err := s.Client.Set(ctx, keyPrefix+sessionID, raw, s.TTL).Err(); err != nil {
		return domain.InternalError{Msg: "gagal simpan draft", Err: err}
	}
	return nil
}

func (s *RedisStore) Reset(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return domain.InternalError{Msg: "gagal reset draft", Err: err}
	}
	return nil
}
