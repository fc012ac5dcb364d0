package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/fortuna/services/player-stats/internal/charts"
	"github.com/fortuna/services/player-stats/internal/config"
	"github.com/fortuna/services/player-stats/internal/gamelog"
	"github.com/fortuna/services/player-stats/internal/logging"
	"github.com/fortuna/services/player-stats/internal/publisher"
	"github.com/fortuna/services/player-stats/pkg/contracts"
	"github.com/fortuna/services/player-stats/pkg/models"
)

const (
	trendChartFile    = "scoring_trend.html"
	shootingChartFile = "shooting_percentages.html"
	publishTimeout    = 5 * time.Second
)

func main() {
	cfg := config.LoadConfig()

	logger, err := logging.NewLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	stats := gamelog.New()
	stats.AppendGame(models.GameRecord{
		Date:                   time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
		Opponent:               "Romao Rodrigues Branco",
		IsHome:                 true,
		Points:                 19,
		FieldGoalsMade:         6,
		FieldGoalsAttempted:    13,
		ThreePointersMade:      2,
		ThreePointersAttempted: 4,
		FreeThrowsMade:         1,
		FreeThrowsAttempted:    2,
		Rebounds:               11,
		Assists:                1,
		Steals:                 2,
	})
	stats.DeriveShootingPercentages()

	for _, g := range stats.Games() {
		logger.Debug("game_recorded", "stats", gamelog.DisplayStats(g))
	}

	averages := stats.GetAverages()
	if err := writeAverages(os.Stdout, averages); err != nil {
		logger.Error("writing averages failed", "error", err)
		os.Exit(1)
	}

	if cfg.ChartsEnabled() {
		if err := writeCharts(cfg.Charts.Dir, charts.NewEChartsRenderer(), stats); err != nil {
			logger.Error("writing charts failed", "error", err)
			os.Exit(1)
		}
		logger.Info("charts written", "dir", cfg.Charts.Dir)
	}

	if cfg.PublishEnabled() {
		if err := publishAverages(cfg, stats, logger); err != nil {
			logger.Error("publishing averages failed", "error", err)
			os.Exit(1)
		}
	}
}

// writeAverages prints the season averages report, one key per line
func writeAverages(w io.Writer, averages gamelog.Averages) error {
	if _, err := fmt.Fprintln(w, "Season Averages:"); err != nil {
		return err
	}
	for key, v := range averages.All() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", key, formatAverage(v)); err != nil {
			return err
		}
	}
	return nil
}

func formatAverage(v float64) string {
	if math.IsNaN(v) {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", v)
}

// writeCharts renders both charts into dir
func writeCharts(dir string, renderer contracts.ChartRenderer, stats *gamelog.GameLog) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating chart dir: %w", err)
	}

	if err := writeChartFile(filepath.Join(dir, trendChartFile), func(w io.Writer) error {
		return renderer.RenderScoringTrend(w, stats.ScoringTrendSeries())
	}); err != nil {
		return err
	}

	return writeChartFile(filepath.Join(dir, shootingChartFile), func(w io.Writer) error {
		return renderer.RenderShootingBars(w, stats.ShootingPercentageBarSeries())
	})
}

func writeChartFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func publishAverages(cfg *config.Config, stats *gamelog.GameLog, logger *slog.Logger) error {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return fmt.Errorf("parsing Redis URL: %w", err)
	}

	redisClient := redis.NewClient(opts)
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connecting to Redis: %w", err)
	}

	id, err := publisher.NewStreamPublisher(redisClient).PublishSnapshot(ctx, &models.SeasonSnapshot{
		Player:    cfg.Player.Name,
		Games:     stats.Len(),
		Averages:  stats.GetAverages().Entries(),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	logger.Info("season averages published", "stream", publisher.StreamKey(cfg.Player.Name), "id", id)
	return nil
}
