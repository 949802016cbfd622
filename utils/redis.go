package utils

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"venuebook/models"
)

const redisTimeout = 5 * time.Second

// OpenRedisPool initializes a Redis connection pool
func OpenRedisPool(dsn string) (*redis.Client, error) {
	opt, err := redis.ParseURL(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	opt.PoolSize = 20
	opt.MinIdleConns = 2
	opt.DialTimeout = 5 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()
	if err = client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

// RedisOTPStore keeps each pending code in an "otp:<email>" hash holding
// the code and its deadline. The key expires with the code.
type RedisOTPStore struct {
	client *redis.Client
}

func NewRedisOTPStore(client *redis.Client) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

func otpKey(email string) string {
	return "otp:" + email
}

func (s *RedisOTPStore) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	session := models.OTPSession{Code: code, ExpiresAt: time.Now().Add(ttl)}
	key := otpKey(email)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]any{
			"code":       session.Code,
			"expires_at": session.ExpiresAt.Format(time.RFC3339Nano),
		})
		pipe.PExpire(ctx, key, ttl)
		return nil
	})
	return err
}

func (s *RedisOTPStore) Consume(ctx context.Context, email, code string) error {
	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	key := otpKey(email)
	err := s.client.Watch(ctx, func(tx *redis.Tx) error {
		fields, err := tx.HGetAll(ctx, key).Result()
		if err != nil {
			return err
		}
		session, ok := sessionFromHash(fields)
		if !ok {
			return ErrOTPNotFound
		}

		expired := session.Expired(time.Now())
		if !expired && session.Code != code {
			return ErrOTPMismatch
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			return nil
		})
		if err == nil && expired {
			return ErrOTPNotFound
		}
		return err
	}, key)

	// the key changed between read and delete: another request consumed
	// or replaced the code
	if errors.Is(err, redis.TxFailedErr) {
		return ErrOTPNotFound
	}
	return err
}

// sessionFromHash reads a stored hash. Hashes without a code or with an
// unreadable deadline count as missing.
func sessionFromHash(fields map[string]string) (models.OTPSession, bool) {
	code, ok := fields["code"]
	if !ok {
		return models.OTPSession{}, false
	}
	expiresAt, err := time.Parse(time.RFC3339Nano, fields["expires_at"])
	if err != nil {
		return models.OTPSession{}, false
	}
	return models.OTPSession{Code: code, ExpiresAt: expiresAt}, true
}
