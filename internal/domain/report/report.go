package report

import (
	"math"
	"sort"

	"github.com/matchday/tournament-analytics/internal/domain/match"
	"github.com/matchday/tournament-analytics/internal/domain/standings"
)

// Build derives the analytics report. When any input is empty the
// result carries neutral placeholders instead of failing.
//
// Maximum selections (most goals, highest attendance, most efficient
// team) deliberately keep the first maximum seen: downstream consumers
// depend on the earliest-wins tie behavior.
func Build(records []match.Record, stats map[string]standings.TeamStats, rows []standings.Row) Report {
	if len(records) == 0 || len(stats) == 0 || len(rows) == 0 {
		return emptyReport()
	}

	rankByTeam := make(map[string]int, len(rows))
	for _, row := range rows {
		rankByTeam[row.Team] = row.Rank
	}

	out := emptyReport()
	out.TournamentLeader = rows[0].Team
	out.MostGoalsMatch = firstMax(records, match.Record.TotalGoals)
	out.HighestAttendanceMatch = firstMax(records, func(r match.Record) int { return r.Attendance })
	out.MostEfficientTeam = mostEfficientTeam(stats)
	out.BiggestUpset = biggestUpset(records, rankByTeam)

	for _, record := range records {
		out.GoalDistribution[record.TotalGoals()]++
	}
	for team, teamStats := range stats {
		out.AttendanceByTeam[team] = teamStats.AvgAttendance
	}

	return out
}

func firstMax(records []match.Record, key func(match.Record) int) match.Record {
	best := records[0]
	bestKey := key(best)
	for _, record := range records[1:] {
		if k := key(record); k > bestKey {
			best = record
			bestKey = k
		}
	}
	return best
}

// Efficiency is points per match, rounded to 2 decimals before
// comparison. Teams are visited in sorted-name order so the
// first-max-wins policy stays deterministic over a Go map.
func mostEfficientTeam(stats map[string]standings.TeamStats) string {
	teams := make([]string, 0, len(stats))
	for team := range stats {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	best := ""
	bestEfficiency := -1.0
	for _, team := range teams {
		teamStats := stats[team]
		if teamStats.MatchesPlayed == 0 {
			continue
		}
		efficiency := round2(float64(teamStats.Points) / float64(teamStats.MatchesPlayed))
		if efficiency > bestEfficiency {
			bestEfficiency = efficiency
			best = team
		}
	}
	return best
}

func biggestUpset(records []match.Record, rankByTeam map[string]int) *Upset {
	var best *Upset
	maxGap := -1

	for _, record := range records {
		winner, loser, decisive := record.Winner()
		if !decisive {
			continue
		}
		winnerRank, winnerRanked := rankByTeam[winner]
		loserRank, loserRanked := rankByTeam[loser]
		if !winnerRanked || !loserRanked {
			continue
		}
		if winnerRank <= loserRank {
			continue
		}
		if gap := winnerRank - loserRank; gap > maxGap {
			maxGap = gap
			best = &Upset{
				Match:      record,
				WinnerRank: winnerRank,
				LoserRank:  loserRank,
			}
		}
	}
	return best
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
