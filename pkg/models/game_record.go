package models

import "time"

// GameRecord is one game played by the tracked player
type GameRecord struct {
	Date     time.Time `json:"date"`
	Opponent string    `json:"opponent"`
	IsHome   bool      `json:"is_home"`

	Points                 int `json:"points"`
	FieldGoalsMade         int `json:"field_goals_made"`
	FieldGoalsAttempted    int `json:"field_goals_attempted"`
	ThreePointersMade      int `json:"three_pointers_made"`
	ThreePointersAttempted int `json:"three_pointers_attempted"`
	FreeThrowsMade         int `json:"free_throws_made"`
	FreeThrowsAttempted    int `json:"free_throws_attempted"`
	Rebounds               int `json:"rebounds"`
	Assists                int `json:"assists"`
	Steals                 int `json:"steals"`

	// Nil until shooting percentages have been derived for this record
	Shooting *ShootingPercentages `json:"shooting,omitempty"`
}

// ShootingPercentages holds the derived per-game shooting splits
type ShootingPercentages struct {
	FieldGoal  Percentage `json:"fg_percentage"`
	ThreePoint Percentage `json:"three_percentage"`
	FreeThrow  Percentage `json:"ft_percentage"`
}

// HomeAway returns "home" or "away"
func (g GameRecord) HomeAway() string {
	if g.IsHome {
		return "home"
	}
	return "away"
}
