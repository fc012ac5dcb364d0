package models

import "time"

// Bar is one labelled bar of a bar chart
type Bar struct {
	Label      string  `json:"label"`      // "FG%", "3P%", "FT%"
	Value      float64 `json:"value"`      // NaN when undefined
	Annotation string  `json:"annotation"` // "46.2%", empty when undefined
}

// SeasonSnapshot is the published view of a player's season averages
type SeasonSnapshot struct {
	Player    string         `json:"player"`
	Games     int            `json:"games"`
	Averages  []AverageEntry `json:"averages"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// AverageEntry is one keyed season average; nil Value means undefined
type AverageEntry struct {
	Key   string   `json:"key"`
	Value *float64 `json:"value"`
}
