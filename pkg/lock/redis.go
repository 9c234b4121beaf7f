package lock

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/hotelerr"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RoomLocker serializes the conflict-check-then-insert sequence per room, so
// two overlapping bookings for the same room cannot both pass the
// availability check.
type RoomLocker interface {
	Acquire(ctx context.Context, roomNumber string) (release func(), err error)
}

type RedisLocker struct {
	client   *redis.Client
	ttl      time.Duration
	log      *zap.Logger
	newToken func() string
}

func NewRedisLocker(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisLocker {
	return &RedisLocker{
		client:   client,
		ttl:      ttl,
		log:      log.With(zap.String("component", "room_lock")),
		newToken: uuid.NewString,
	}
}

func leaseKey(roomNumber string) string {
	return "room-lease:" + roomNumber
}

// Acquire takes a short lease on the room. The lease carries a token so a
// release after TTL expiry cannot drop a lease owned by someone else.
func (l *RedisLocker) Acquire(ctx context.Context, roomNumber string) (func(), error) {
	key := leaseKey(roomNumber)
	token := l.newToken()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, hotelerr.Internalf(err, "acquire lease for room %s", roomNumber)
	}
	if !ok {
		return nil, hotelerr.Conflictf("room %s is being booked by another request", roomNumber)
	}

	release := func() {
		current, err := l.client.Get(context.Background(), key).Result()
		if err != nil || current != token {
			return
		}
		if err := l.client.Del(context.Background(), key).Err(); err != nil {
			l.log.Warn("Failed to release room lease",
				zap.Error(err),
				zap.String("room_number", roomNumber),
			)
		}
	}

	return release, nil
}

// NewRedisClient builds the shared redis client from config values.
func NewRedisClient(host, port string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
		DB:   0,
	})
}
