package checkin

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store holds the ephemeral per-event check-in set. Entries have no
// durability guarantee; the attendance table is the durable record.
type Store interface {
	Enabled() bool
	CheckIn(ctx context.Context, eventID, studentID uint, at time.Time) (added bool, err error)
	CheckOut(ctx context.Context, eventID, studentID uint) (removed bool, err error)
	Count(ctx context.Context, eventID uint) (int64, error)
	Members(ctx context.Context, eventID uint) (map[uint]time.Time, error)
	Reset(ctx context.Context, eventID uint) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore wraps a go-redis client. A nil client means the
// key-value store is not configured and every call reports disabled.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func checkedInKey(eventID uint) string {
	return fmt.Sprintf("event:%d:checkedIn", eventID)
}

func checkInTimesKey(eventID uint) string {
	return fmt.Sprintf("event:%d:checkInTimes", eventID)
}

func (s *redisStore) Enabled() bool {
	return s.client != nil
}

// CheckIn is idempotent: SADD of an existing member is a no-op and the
// original check-in time is kept.
func (s *redisStore) CheckIn(ctx context.Context, eventID, studentID uint, at time.Time) (bool, error) {
	member := strconv.FormatUint(uint64(studentID), 10)
	added, err := s.client.SAdd(ctx, checkedInKey(eventID), member).Result()
	if err != nil {
		return false, err
	}
	if added == 0 {
		return false, nil
	}
	err = s.client.HSet(ctx, checkInTimesKey(eventID), member, at.Format(time.RFC3339)).Err()
	return true, err
}

func (s *redisStore) CheckOut(ctx context.Context, eventID, studentID uint) (bool, error) {
	member := strconv.FormatUint(uint64(studentID), 10)
	removed, err := s.client.SRem(ctx, checkedInKey(eventID), member).Result()
	if err != nil {
		return false, err
	}
	if removed == 0 {
		return false, nil
	}
	err = s.client.HDel(ctx, checkInTimesKey(eventID), member).Err()
	return true, err
}

func (s *redisStore) Count(ctx context.Context, eventID uint) (int64, error) {
	return s.client.SCard(ctx, checkedInKey(eventID)).Result()
}

func (s *redisStore) Members(ctx context.Context, eventID uint) (map[uint]time.Time, error) {
	ids, err := s.client.SMembers(ctx, checkedInKey(eventID)).Result()
	if err != nil {
		return nil, err
	}
	times, err := s.client.HGetAll(ctx, checkInTimesKey(eventID)).Result()
	if err != nil {
		return nil, err
	}

	members := make(map[uint]time.Time, len(ids))
	for _, raw := range ids {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			continue
		}
		var at time.Time
		if ts, ok := times[raw]; ok {
			at, _ = time.Parse(time.RFC3339, ts)
		}
		members[uint(id)] = at
	}
	return members, nil
}

// Reset clears both keys for an event, typically between services.
func (s *redisStore) Reset(ctx context.Context, eventID uint) error {
	return s.client.Del(ctx, checkedInKey(eventID), checkInTimesKey(eventID)).Err()
}
