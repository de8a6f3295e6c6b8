package standings

// TeamStats holds the cumulative season counters for one team. Values
// are derived from a match set in a single aggregation pass and never
// mutated afterwards.
type TeamStats struct {
	Points        int `json:"points"`
	MatchesPlayed int `json:"matches_played"`
	Wins          int `json:"wins"`
	Draws         int `json:"draws"`
	Losses        int `json:"losses"`
	GoalsFor      int `json:"goals_for"`
	GoalsAgainst  int `json:"goals_against"`
	GoalDiff      int `json:"goal_diff"`
	HomePoints    int `json:"home_points"`
	AwayPoints    int `json:"away_points"`
	// WinStreak counts consecutive wins ending at the team's most
	// recent chronological match.
	WinStreak int `json:"win_streak"`
	// AvgAttendance is the mean attendance across the team's matches,
	// rounded to 2 decimals.
	AvgAttendance float64 `json:"avg_attendance"`
}

// Row is one line of the ranked standings table. Tied teams share a
// rank and the next distinct group takes its 1-based position, so rank
// values may skip (competition ranking).
type Row struct {
	Rank     int    `json:"rank"`
	Team     string `json:"team"`
	Points   int    `json:"points"`
	GoalDiff int    `json:"goal_diff"`
}

// TieBreaker identifies one ranking criterion. All criteria sort
// descending (best first).
type TieBreaker int

const (
	ByPoints TieBreaker = iota
	ByGoalDiff
	ByGoalsFor
	ByWins
)

// DefaultTieBreakers is the standard cascading order.
func DefaultTieBreakers() []TieBreaker {
	return []TieBreaker{ByPoints, ByGoalDiff, ByGoalsFor}
}

// ParseTieBreaker maps a configuration name to its criterion.
func ParseTieBreaker(name string) (TieBreaker, bool) {
	switch name {
	case "points":
		return ByPoints, true
	case "goal_diff":
		return ByGoalDiff, true
	case "goals_for":
		return ByGoalsFor, true
	case "wins":
		return ByWins, true
	default:
		return 0, false
	}
}

func (t TieBreaker) String() string {
	switch t {
	case ByPoints:
		return "points"
	case ByGoalDiff:
		return "goal_diff"
	case ByGoalsFor:
		return "goals_for"
	case ByWins:
		return "wins"
	default:
		return "unknown"
	}
}

// value extracts the criterion's sort key from a stats record.
func (t TieBreaker) value(stats TeamStats) int {
	switch t {
	case ByPoints:
		return stats.Points
	case ByGoalDiff:
		return stats.GoalDiff
	case ByGoalsFor:
		return stats.GoalsFor
	case ByWins:
		return stats.Wins
	default:
		return 0
	}
}
