package gamelog

import (
	"iter"
	"time"

	"github.com/fortuna/services/player-stats/pkg/models"
)

// GameLog is the ordered list of games recorded for one player.
// Records stay in insertion order; they are never re-sorted by date.
type GameLog struct {
	games []models.GameRecord
}

// New creates an empty game log
func New() *GameLog {
	return &GameLog{}
}

// AppendGame adds a game to the end of the log.
// Shooting percentages on the new record stay unset until the next
// DeriveShootingPercentages call. Counts are not validated.
func (l *GameLog) AppendGame(game models.GameRecord) {
	game.Shooting = nil
	l.games = append(l.games, game)
}

// DeriveShootingPercentages recomputes FG%, 3P% and FT% for every record
func (l *GameLog) DeriveShootingPercentages() {
	for i := range l.games {
		g := &l.games[i]
		g.Shooting = &models.ShootingPercentages{
			FieldGoal:  models.PercentageOf(g.FieldGoalsMade, g.FieldGoalsAttempted),
			ThreePoint: models.PercentageOf(g.ThreePointersMade, g.ThreePointersAttempted),
			FreeThrow:  models.PercentageOf(g.FreeThrowsMade, g.FreeThrowsAttempted),
		}
	}
}

// Len returns the number of recorded games
func (l *GameLog) Len() int {
	return len(l.games)
}

// Games returns a copy of the records in insertion order
func (l *GameLog) Games() []models.GameRecord {
	out := make([]models.GameRecord, len(l.games))
	for i, g := range l.games {
		if g.Shooting != nil {
			s := *g.Shooting
			g.Shooting = &s
		}
		out[i] = g
	}
	return out
}

// ScoringTrendSeries yields (date, points) for each game in insertion order.
// The sequence reads the log lazily and can be ranged over repeatedly.
func (l *GameLog) ScoringTrendSeries() iter.Seq2[time.Time, int] {
	return func(yield func(time.Time, int) bool) {
		for _, g := range l.games {
			if !yield(g.Date, g.Points) {
				return
			}
		}
	}
}

// ShootingPercentageBarSeries returns the FG%, 3P% and FT% season averages
// as bars, annotated for display above each bar
func (l *GameLog) ShootingPercentageBarSeries() []models.Bar {
	avg := l.GetAverages()
	bars := make([]models.Bar, 0, len(shootingKeys))
	for _, key := range shootingKeys {
		v, _ := avg.Get(key)
		bars = append(bars, models.Bar{
			Label:      key,
			Value:      v,
			Annotation: annotate(v),
		})
	}
	return bars
}

func annotate(v float64) string {
	p := models.Percentage(v)
	if !p.Valid() {
		return ""
	}
	return p.String()
}
