// README: Optional Redis cache for generated itineraries.
package planner

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store caches generated itineraries so an identical trip request within the
// TTL skips the LLM call. A nil *Store disables caching entirely; the engine
// itself stays stateless either way.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore returns a Store backed by the given Redis client.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// cacheKey hashes the normalized trip parameters. Hashing keeps arbitrary
// user input out of the key space.
func cacheKey(req TripRequest) string {
	raw := strings.ToLower(fmt.Sprintf("%s|%s|%d|%s",
		strings.TrimSpace(req.Origin), strings.TrimSpace(req.Destination), req.TripDays, req.StartDate))
	sum := sha256.Sum256([]byte(raw))
	return "yatra:itinerary:" + hex.EncodeToString(sum[:])
}

// GetItinerary returns the cached prose for req, or "" on a miss. A miss is
// not an error; Redis failures are, so the caller can log them.
func (s *Store) GetItinerary(ctx context.Context, req TripRequest) (string, error) {
	if s == nil || s.rdb == nil {
		return "", nil
	}
	val, err := s.rdb.Get(ctx, cacheKey(req)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("itinerary cache get: %w", err)
	}
	return val, nil
}

// PutItinerary stores the prose for req under the configured TTL.
func (s *Store) PutItinerary(ctx context.Context, req TripRequest, text string) error {
	if s == nil || s.rdb == nil {
		return nil
	}
	if err := s.rdb.Set(ctx, cacheKey(req), text, s.ttl).Err(); err != nil {
		return fmt.Errorf("itinerary cache set: %w", err)
	}
	return nil
}
