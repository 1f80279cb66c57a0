package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/wordrush/internal/model"
)

// NoScoresText is shown in place of an empty leaderboard.
const NoScoresText = "No high scores yet."

const maxNameWidth = 24

var leaderboardColumns = []column{
	{title: "#", rightAlign: true},
	{title: "Name", maxWidth: maxNameWidth},
	{title: "Score", rightAlign: true},
	{title: "Date"},
}

// LeaderboardRows formats entries as rank, name, score and date cells.
func LeaderboardRows(entries []model.LeaderboardEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []string{
			fmt.Sprintf("%d.", i+1),
			e.Name,
			fmt.Sprintf("%d", e.Score),
			e.Date,
		})
	}
	return rows
}

// RenderLeaderboard prints the leaderboard as an aligned table.
func RenderLeaderboard(w io.Writer, entries []model.LeaderboardEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, NoScoresText)
		return err
	}
	for _, line := range formatTable(leaderboardColumns, LeaderboardRows(entries)) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
