package gamelog

import (
	"fmt"

	"github.com/fortuna/services/player-stats/pkg/models"
)

// DisplayStats converts a game to formatted display stats.
// Percentage rows show "N/A" until derived or when there were no attempts.
func DisplayStats(g models.GameRecord) []models.DisplayStat {
	fg, tp, ft := models.UndefinedPercentage(), models.UndefinedPercentage(), models.UndefinedPercentage()
	if g.Shooting != nil {
		fg, tp, ft = g.Shooting.FieldGoal, g.Shooting.ThreePoint, g.Shooting.FreeThrow
	}

	return []models.DisplayStat{
		{Label: "DATE", Value: g.Date.Format("2006-01-02"), Category: "Game"},
		{Label: "OPP", Value: g.Opponent, Category: "Game"},
		{Label: "H/A", Value: g.HomeAway(), Category: "Game"},
		{Label: "PTS", Value: fmt.Sprintf("%d", g.Points), Category: "Scoring"},
		{Label: "REB", Value: fmt.Sprintf("%d", g.Rebounds), Category: "Rebounding"},
		{Label: "AST", Value: fmt.Sprintf("%d", g.Assists), Category: "Playmaking"},
		{Label: "STL", Value: fmt.Sprintf("%d", g.Steals), Category: "Defense"},
		{Label: "FG", Value: madeAttempted(g.FieldGoalsMade, g.FieldGoalsAttempted), Category: "Shooting"},
		{Label: "FG%", Value: fg.String(), Category: "Shooting"},
		{Label: "3PT", Value: madeAttempted(g.ThreePointersMade, g.ThreePointersAttempted), Category: "Shooting"},
		{Label: "3P%", Value: tp.String(), Category: "Shooting"},
		{Label: "FT", Value: madeAttempted(g.FreeThrowsMade, g.FreeThrowsAttempted), Category: "Shooting"},
		{Label: "FT%", Value: ft.String(), Category: "Shooting"},
	}
}

// madeAttempted formats shooting as "10-18"
func madeAttempted(made, attempted int) string {
	return fmt.Sprintf("%d-%d", made, attempted)
}
