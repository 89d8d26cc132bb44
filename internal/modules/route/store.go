// README: Leg-estimate cache backed by Redis.
package route

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const legKeyPrefix = "route:leg:"

// cachedLeg is the serialized form of one Directions result.
type cachedLeg struct {
	DurationSec int64  `json:"duration_sec"`
	Distance    string `json:"distance"`
}

type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(redis *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: redis, ttl: ttl}
}

func legKey(origin, destination string) string {
	sum := sha1.Sum([]byte(origin + "|" + destination))
	return legKeyPrefix + hex.EncodeToString(sum[:])
}

// GetLeg returns a cached estimate, or ok=false on a miss. Cache errors are
// treated as misses; the caller falls through to the Directions API.
func (s *Store) GetLeg(ctx context.Context, origin, destination string) (time.Duration, string, bool) {
	raw, err := s.redis.Get(ctx, legKey(origin, destination)).Bytes()
	if err != nil {
		return 0, "", false
	}
	var leg cachedLeg
	if err := json.Unmarshal(raw, &leg); err != nil {
		return 0, "", false
	}
	return time.Duration(leg.DurationSec) * time.Second, leg.Distance, true
}

func (s *Store) SetLeg(ctx context.Context, origin, destination string, dur time.Duration, distance string) error {
	raw, err := json.Marshal(cachedLeg{DurationSec: int64(dur / time.Second), Distance: distance})
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, legKey(origin, destination), raw, s.ttl).Err()
}
