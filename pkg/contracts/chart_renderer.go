package contracts

import (
	"io"
	"iter"
	"time"

	"github.com/fortuna/services/player-stats/pkg/models"
)

// ChartRenderer turns game log series into a chart artifact.
// Implementations never hold a reference back into the log.
type ChartRenderer interface {
	// Line chart of points per game, one point per (date, points) pair
	RenderScoringTrend(w io.Writer, series iter.Seq2[time.Time, int]) error

	// Bar chart of season shooting averages, annotated above each bar
	RenderShootingBars(w io.Writer, bars []models.Bar) error
}
