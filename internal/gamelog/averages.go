package gamelog

import (
	"iter"
	"math"

	"github.com/fortuna/services/player-stats/pkg/models"
)

// Season average keys
const (
	KeyPPG = "PPG"
	KeyFG  = "FG%"
	Key3P  = "3P%"
	KeyFT  = "FT%"
	KeyRPG = "RPG"
	KeyAPG = "APG"
	KeySPG = "SPG"
)

var (
	keys         = []string{KeyPPG, KeyFG, Key3P, KeyFT, KeyRPG, KeyAPG, KeySPG}
	shootingKeys = []string{KeyFG, Key3P, KeyFT}
)

// Keys returns every season average key in display order
func Keys() []string {
	return append([]string(nil), keys...)
}

// ShootingKeys returns the percentage average keys in bar chart order
func ShootingKeys() []string {
	return append([]string(nil), shootingKeys...)
}

// Averages holds per-game season averages. NaN means undefined.
type Averages struct {
	PPG   float64
	FGPct float64
	TPPct float64
	FTPct float64
	RPG   float64
	APG   float64
	SPG   float64
}

// Get returns the average for key; ok is false for unknown keys
func (a Averages) Get(key string) (float64, bool) {
	switch key {
	case KeyPPG:
		return a.PPG, true
	case KeyFG:
		return a.FGPct, true
	case Key3P:
		return a.TPPct, true
	case KeyFT:
		return a.FTPct, true
	case KeyRPG:
		return a.RPG, true
	case KeyAPG:
		return a.APG, true
	case KeySPG:
		return a.SPG, true
	}
	return math.NaN(), false
}

// All yields (key, value) pairs in display order
func (a Averages) All() iter.Seq2[string, float64] {
	return func(yield func(string, float64) bool) {
		for _, key := range keys {
			v, _ := a.Get(key)
			if !yield(key, v) {
				return
			}
		}
	}
}

// GetAverages computes the mean of each tracked stat over the log.
// Undefined percentages are left out of both sum and count; a column with
// no defined values, or an empty log, averages to NaN.
func (l *GameLog) GetAverages() Averages {
	var points, rebounds, assists, steals mean
	var fg, tp, ft mean

	for _, g := range l.games {
		points.add(float64(g.Points))
		rebounds.add(float64(g.Rebounds))
		assists.add(float64(g.Assists))
		steals.add(float64(g.Steals))

		if g.Shooting == nil {
			continue
		}
		fg.addPercentage(g.Shooting.FieldGoal)
		tp.addPercentage(g.Shooting.ThreePoint)
		ft.addPercentage(g.Shooting.FreeThrow)
	}

	return Averages{
		PPG:   points.value(),
		FGPct: fg.value(),
		TPPct: tp.value(),
		FTPct: ft.value(),
		RPG:   rebounds.value(),
		APG:   assists.value(),
		SPG:   steals.value(),
	}
}

// Entries converts the averages to published form, undefined as nil
func (a Averages) Entries() []models.AverageEntry {
	entries := make([]models.AverageEntry, 0, len(keys))
	for key, v := range a.All() {
		entry := models.AverageEntry{Key: key}
		if !math.IsNaN(v) {
			val := v
			entry.Value = &val
		}
		entries = append(entries, entry)
	}
	return entries
}

// mean accumulates a running arithmetic mean over defined values
type mean struct {
	sum   float64
	count int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.count++
}

func (m *mean) addPercentage(p models.Percentage) {
	if !p.Valid() {
		return
	}
	m.add(p.Float64())
}

func (m mean) value() float64 {
	if m.count == 0 {
		return math.NaN()
	}
	return m.sum / float64(m.count)
}
