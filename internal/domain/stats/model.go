package stats

import "fmt"

// PlayerMatchLine is one player's statistical line for one match. A
// player has at most one line per match.
type PlayerMatchLine struct {
	ID                int64
	PlayerID          int64
	MatchID           int64
	TeamID            int64
	Started           bool
	Minutes           int
	Goals             int
	Assists           int
	Tackles           int
	ShotsTotal        int
	Offsides          int
	YellowCards       int
	RedCards          int
	FoulsCommitted    int
	DribblesAttempted int
	PassingAccuracy   float64
}

func (l PlayerMatchLine) Validate() error {
	if l.PlayerID <= 0 {
		return fmt.Errorf("stat line player id is required")
	}
	if l.MatchID <= 0 {
		return fmt.Errorf("stat line match id is required")
	}
	if l.TeamID <= 0 {
		return fmt.Errorf("stat line team id is required")
	}
	if l.Minutes < 0 || l.Minutes > 130 {
		return fmt.Errorf("stat line minutes out of range: %d", l.Minutes)
	}
	for name, v := range map[string]int{
		"goals":              l.Goals,
		"assists":            l.Assists,
		"tackles":            l.Tackles,
		"shots_total":        l.ShotsTotal,
		"offsides":           l.Offsides,
		"yellow_cards":       l.YellowCards,
		"red_cards":          l.RedCards,
		"fouls_committed":    l.FoulsCommitted,
		"dribbles_attempted": l.DribblesAttempted,
	} {
		if v < 0 {
			return fmt.Errorf("stat line %s must not be negative", name)
		}
	}
	if l.PassingAccuracy < 0 || l.PassingAccuracy > 100 {
		return fmt.Errorf("stat line passing accuracy out of range: %v", l.PassingAccuracy)
	}

	return nil
}
