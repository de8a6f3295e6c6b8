package match

// Record represents one finished match. A Record only exists fully
// populated: ParseLine either returns a valid value or an error.
type Record struct {
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Team1      string `json:"team1" validate:"required"`
	Score1     int    `json:"score1" validate:"gte=0"`
	Team2      string `json:"team2" validate:"required"`
	Score2     int    `json:"score2" validate:"gte=0"`
	Stadium    string `json:"stadium" validate:"required"`
	Attendance int    `json:"attendance" validate:"gt=0"`
}

func (r Record) TotalGoals() int {
	return r.Score1 + r.Score2
}

// IsDraw reports whether the match has no winner.
func (r Record) IsDraw() bool {
	return r.Score1 == r.Score2
}

// Winner returns the winning and losing team names. ok is false for a
// drawn match.
func (r Record) Winner() (winner, loser string, ok bool) {
	switch {
	case r.Score1 > r.Score2:
		return r.Team1, r.Team2, true
	case r.Score2 > r.Score1:
		return r.Team2, r.Team1, true
	default:
		return "", "", false
	}
}

// Involves reports whether the team played in this match on either side.
func (r Record) Involves(team string) bool {
	return r.Team1 == team || r.Team2 == team
}
