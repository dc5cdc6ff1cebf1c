package services

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// RedisOTPStore keeps login codes in Redis so they survive restarts and
// expire server-side. Keys live under otp:<mobile> with the shared TTL.
type RedisOTPStore struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisOTPStore(addr string, db int) *RedisOTPStore {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	return &RedisOTPStore{
		client: client,
		ctx:    context.Background(),
	}
}

// Ping verifies the Redis connection at startup.
func (s *RedisOTPStore) Ping() error {
	return s.client.Ping(s.ctx).Err()
}

func (s *RedisOTPStore) Put(mobile, code string) error {
	return s.client.Set(s.ctx, otpKey(mobile), code, OTPTTL).Err()
}

func (s *RedisOTPStore) Verify(mobile, code string) (bool, error) {
	stored, err := s.client.Get(s.ctx, otpKey(mobile)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if stored != code {
		return false, nil
	}

	// single use: consume on success
	if err := s.client.Del(s.ctx, otpKey(mobile)).Err(); err != nil {
		return false, err
	}
	return true, nil
}

func otpKey(mobile string) string {
	return "otp:" + mobile
}
