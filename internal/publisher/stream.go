package publisher

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/fortuna/services/player-stats/pkg/models"
)

// StreamPublisher publishes season average snapshots to Redis streams
type StreamPublisher struct {
	client *redis.Client
}

// NewStreamPublisher creates a new stream publisher
func NewStreamPublisher(client *redis.Client) *StreamPublisher {
	return &StreamPublisher{
		client: client,
	}
}

// StreamKey returns the per-player averages stream
func StreamKey(player string) string {
	return fmt.Sprintf("stats.averages.%s", player)
}

// PublishSnapshot appends a snapshot to the player's stream and returns the entry ID
func (p *StreamPublisher) PublishSnapshot(ctx context.Context, snapshot *models.SeasonSnapshot) (string, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("marshaling season snapshot: %w", err)
	}

	id, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: StreamKey(snapshot.Player),
		Values: map[string]interface{}{
			"data":   string(data),
			"player": snapshot.Player,
			"games":  strconv.Itoa(snapshot.Games),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("publishing season snapshot: %w", err)
	}
	return id, nil
}
