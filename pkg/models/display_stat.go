package models

// DisplayStat provides formatted stat display info
// Renderers use this to show a game line without knowing stat semantics
type DisplayStat struct {
	Label    string `json:"label"`    // "PTS", "FG", "FG%"
	Value    string `json:"value"`    // "19", "6-13", "46.2%"
	Category string `json:"category"` // "Scoring", "Shooting"
}
