package report

import "github.com/matchday/tournament-analytics/internal/domain/match"

// Upset is a decisive match won by the team ranked numerically worse
// than its opponent.
type Upset struct {
	Match      match.Record `json:"match"`
	WinnerRank int          `json:"winner_rank"`
	LoserRank  int          `json:"loser_rank"`
}

// Report is an analytics snapshot derived from records, team stats and
// standings. A degenerate input produces a Report with neutral values
// rather than an error.
type Report struct {
	TournamentLeader       string             `json:"tournament_leader"`
	MostGoalsMatch         match.Record       `json:"most_goals_match"`
	HighestAttendanceMatch match.Record       `json:"highest_attendance_match"`
	MostEfficientTeam      string             `json:"most_efficient_team"`
	BiggestUpset           *Upset             `json:"biggest_upset"`
	GoalDistribution       map[int]int        `json:"goal_distribution"`
	AttendanceByTeam       map[string]float64 `json:"attendance_by_team"`
}

func emptyReport() Report {
	return Report{
		GoalDistribution: map[int]int{},
		AttendanceByTeam: map[string]float64{},
	}
}
