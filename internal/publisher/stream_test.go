package publisher_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/fortuna/services/player-stats/internal/gamelog"
	"github.com/fortuna/services/player-stats/internal/publisher"
	"github.com/fortuna/services/player-stats/pkg/models"
)

func newTestPublisher(t *testing.T) (*publisher.StreamPublisher, *redis.Client, *miniredis.Miniredis) {
	mini := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	t.Cleanup(func() {
		client.Close()
	})
	return publisher.NewStreamPublisher(client), client, mini
}

func TestPublishSnapshot(t *testing.T) {
	pub, client, _ := newTestPublisher(t)
	ctx := context.Background()

	log := gamelog.New()
	log.AppendGame(models.GameRecord{
		Date:                time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC),
		Points:              19,
		FieldGoalsMade:      6,
		FieldGoalsAttempted: 13,
		Rebounds:            11,
	})
	log.DeriveShootingPercentages()

	snapshot := &models.SeasonSnapshot{
		Player:    "branco",
		Games:     log.Len(),
		Averages:  log.GetAverages().Entries(),
		UpdatedAt: time.Date(2024, 10, 16, 0, 0, 0, 0, time.UTC),
	}

	id, err := pub.PublishSnapshot(ctx, snapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == "" {
		t.Fatal("expected a stream entry ID")
	}

	entries, err := client.XRange(ctx, "stats.averages.branco", "-", "+").Result()
	if err != nil {
		t.Fatalf("reading stream: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 stream entry, got %d", len(entries))
	}

	values := entries[0].Values
	if values["player"] != "branco" {
		t.Errorf("expected player 'branco', got %v", values["player"])
	}
	if values["games"] != "1" {
		t.Errorf("expected games '1', got %v", values["games"])
	}

	raw, ok := values["data"].(string)
	if !ok {
		t.Fatalf("expected data to be a string, got %T", values["data"])
	}

	var got models.SeasonSnapshot
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if len(got.Averages) != len(gamelog.Keys()) {
		t.Fatalf("expected %d averages, got %d", len(gamelog.Keys()), len(got.Averages))
	}

	byKey := make(map[string]*float64, len(got.Averages))
	for _, e := range got.Averages {
		byKey[e.Key] = e.Value
	}
	if v := byKey["FG%"]; v == nil || *v != 46.2 {
		t.Errorf("expected FG%% 46.2, got %v", v)
	}
	if v := byKey["3P%"]; v != nil {
		t.Errorf("expected undefined 3P%% to publish as null, got %v", *v)
	}
}

func TestPublishSnapshot_RedisDown(t *testing.T) {
	pub, _, mini := newTestPublisher(t)
	mini.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := pub.PublishSnapshot(ctx, &models.SeasonSnapshot{Player: "branco"})
	if err == nil {
		t.Error("expected error when Redis is unreachable")
	}
}

func TestStreamKey(t *testing.T) {
	if got := publisher.StreamKey("branco"); got != "stats.averages.branco" {
		t.Errorf("expected 'stats.averages.branco', got '%s'", got)
	}
}
