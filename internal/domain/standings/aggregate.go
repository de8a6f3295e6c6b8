package standings

import (
	"math"
	"sort"

	"github.com/matchday/tournament-analytics/internal/domain/match"
)

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

type teamEntry struct {
	date   string
	isHome bool
	record match.Record
}

// Aggregate folds a match set into per-team cumulative stats. Input
// order does not matter: matches are processed chronologically, with
// input order preserved among same-date matches. The result is
// recomputed fresh on every call.
func Aggregate(records []match.Record) map[string]TeamStats {
	if len(records) == 0 {
		return map[string]TeamStats{}
	}

	sorted := make([]match.Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	entriesByTeam := make(map[string][]teamEntry)
	for _, record := range sorted {
		entriesByTeam[record.Team1] = append(entriesByTeam[record.Team1], teamEntry{
			date:   record.Date,
			isHome: true,
			record: record,
		})
		entriesByTeam[record.Team2] = append(entriesByTeam[record.Team2], teamEntry{
			date:   record.Date,
			isHome: false,
			record: record,
		})
	}

	out := make(map[string]TeamStats, len(entriesByTeam))
	for team, entries := range entriesByTeam {
		out[team] = foldEntries(entries)
	}
	return out
}

func foldEntries(entries []teamEntry) TeamStats {
	var stats TeamStats
	totalAttendance := 0

	for _, entry := range entries {
		teamScore, opponentScore := sideScores(entry)

		stats.MatchesPlayed++
		stats.GoalsFor += teamScore
		stats.GoalsAgainst += opponentScore
		totalAttendance += entry.record.Attendance

		switch {
		case teamScore > opponentScore:
			stats.Wins++
			stats.Points += pointsPerWin
			if entry.isHome {
				stats.HomePoints += pointsPerWin
			} else {
				stats.AwayPoints += pointsPerWin
			}
		case teamScore == opponentScore:
			stats.Draws++
			stats.Points += pointsPerDraw
			if entry.isHome {
				stats.HomePoints += pointsPerDraw
			} else {
				stats.AwayPoints += pointsPerDraw
			}
		default:
			stats.Losses++
		}
	}

	stats.GoalDiff = stats.GoalsFor - stats.GoalsAgainst

	// Most recent match first; stop at the first non-win.
	for i := len(entries) - 1; i >= 0; i-- {
		teamScore, opponentScore := sideScores(entries[i])
		if teamScore <= opponentScore {
			break
		}
		stats.WinStreak++
	}

	if stats.MatchesPlayed > 0 {
		stats.AvgAttendance = round2(float64(totalAttendance) / float64(stats.MatchesPlayed))
	}

	return stats
}

func sideScores(entry teamEntry) (teamScore, opponentScore int) {
	if entry.isHome {
		return entry.record.Score1, entry.record.Score2
	}
	return entry.record.Score2, entry.record.Score1
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
