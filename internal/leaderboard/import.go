package leaderboard

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/verte-zerg/wordrush/internal/model"
)

// ParseExport reads a high-score export: a JSON array of {name, score, date}
// objects, or an object holding such an array under "typingHighScores".
// Scores stored as strings are accepted; rows without a name are skipped.
func ParseExport(data []byte) ([]model.LeaderboardEntry, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("export is not valid JSON")
	}
	res := gjson.ParseBytes(data)
	if res.IsObject() {
		res = res.Get(StorageKey)
		if res.Type == gjson.String {
			// Raw localStorage dumps keep the list as an encoded string.
			res = gjson.Parse(res.Str)
		}
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("export does not contain a score list")
	}
	var out []model.LeaderboardEntry
	res.ForEach(func(_, v gjson.Result) bool {
		name := strings.TrimSpace(v.Get("name").String())
		if name == "" {
			return true
		}
		out = append(out, model.LeaderboardEntry{
			Name:  name,
			Score: int(v.Get("score").Int()),
			Date:  v.Get("date").String(),
		})
		return true
	})
	return out, nil
}
