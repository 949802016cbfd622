package utils_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"venuebook/utils"
)

func newRedisStore(t *testing.T) (*utils.RedisOTPStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return utils.NewRedisOTPStore(client), mr
}

func TestRedisOTPStore(t *testing.T) {
	otpStoreContract(t, func(t *testing.T) utils.OTPStore {
		store, _ := newRedisStore(t)
		return store
	})
}

func TestRedisOTPStore_SetExpiresKeyWithCode(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	email := gofakeit.Email()
	key := "otp:" + email

	require.NoError(t, store.Set(ctx, email, "987654", 10*time.Minute))

	assert.Equal(t, 10*time.Minute, mr.TTL(key))
	assert.Equal(t, "987654", mr.HGet(key, "code"))

	require.NoError(t, store.Consume(ctx, email, "987654"))
	assert.False(t, mr.Exists(key))
}

func TestRedisOTPStore_MismatchKeepsKey(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	email := gofakeit.Email()

	require.NoError(t, store.Set(ctx, email, "987654", 10*time.Minute))

	assert.ErrorIs(t, store.Consume(ctx, email, "000000"), utils.ErrOTPMismatch)
	assert.True(t, mr.Exists("otp:"+email))
	assert.Equal(t, 10*time.Minute, mr.TTL("otp:"+email))
}

func TestRedisOTPStore_Expired(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	email := gofakeit.Email()

	require.NoError(t, store.Set(ctx, email, "123456", time.Minute))
	mr.FastForward(2 * time.Minute)

	assert.ErrorIs(t, store.Consume(ctx, email, "123456"), utils.ErrOTPNotFound)
}

// miniredis only expires keys on FastForward, so the key outlives its
// deadline here and the stored expires_at has to reject the code.
func TestRedisOTPStore_DeadlinePassedBeforeKeyExpiry(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	email := gofakeit.Email()

	require.NoError(t, store.Set(ctx, email, "123456", 20*time.Millisecond))
	time.Sleep(50 * time.Millisecond)
	require.True(t, mr.Exists("otp:"+email))

	assert.ErrorIs(t, store.Consume(ctx, email, "123456"), utils.ErrOTPNotFound)
	assert.False(t, mr.Exists("otp:"+email))
}

func TestRedisOTPStore_UnreadableHash(t *testing.T) {
	ctx := context.Background()
	store, mr := newRedisStore(t)
	email := gofakeit.Email()

	mr.HSet("otp:"+email, "code", "123456")

	assert.ErrorIs(t, store.Consume(ctx, email, "123456"), utils.ErrOTPNotFound)
}

func TestRedisOTPStore_ConnectionError(t *testing.T) {
	store, mr := newRedisStore(t)
	mr.Close()

	err := store.Consume(context.Background(), gofakeit.Email(), "123456")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, utils.ErrOTPNotFound)
}

func TestOpenRedisPool(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := utils.OpenRedisPool("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	defer client.Close()

	_, err = utils.OpenRedisPool("not a url")
	assert.Error(t, err)
}
