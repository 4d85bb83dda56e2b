package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/tournament-progression/models"
	"github.com/redis/go-redis/v9"
)

const DefaultStandingsTTL = 10 * time.Minute

// RedisStandings caches ranked group tables under standings:group:<id>,
// tagged with the group version they were computed from.
type RedisStandings struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStandings(client *redis.Client, ttl time.Duration) *RedisStandings {
	if ttl <= 0 {
		ttl = DefaultStandingsTTL
	}
	return &RedisStandings{client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and checks the connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return client, nil
}

func standingsKey(groupID int) string {
	return fmt.Sprintf("standings:group:%d", groupID)
}

// standingsEntry is the cached value: the table plus the group version it
// was ranked from.
type standingsEntry struct {
	Version   int64               `json:"version"`
	Standings []models.RankedTeam `json:"standings"`
}

func encodeStandings(version int64, standings []models.RankedTeam) ([]byte, error) {
	data, err := json.Marshal(standingsEntry{Version: version, Standings: standings})
	if err != nil {
		return nil, fmt.Errorf("marshaling standings: %w", err)
	}
	return data, nil
}

// decodeStandings reports ok=false when the entry belongs to another version.
func decodeStandings(data []byte, version int64) ([]models.RankedTeam, bool, error) {
	var entry standingsEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("unmarshaling standings: %w", err)
	}
	if entry.Version != version {
		return nil, false, nil
	}
	return entry.Standings, true, nil
}

// GetStandings returns ok=false on a cache miss or a stale entry.
func (c *RedisStandings) GetStandings(ctx context.Context, groupID int, version int64) ([]models.RankedTeam, bool, error) {
	data, err := c.client.Get(ctx, standingsKey(groupID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return decodeStandings(data, version)
}

func (c *RedisStandings) SetStandings(ctx context.Context, groupID int, version int64, standings []models.RankedTeam) error {
	data, err := encodeStandings(version, standings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, standingsKey(groupID), data, c.ttl).Err()
}

func (c *RedisStandings) InvalidateStandings(ctx context.Context, groupIDs ...int) error {
	if len(groupIDs) == 0 {
		return nil
	}
	keys := make([]string, len(groupIDs))
	for i, id := range groupIDs {
		keys[i] = standingsKey(id)
	}
	return c.client.Del(ctx, keys...).Err()
}
