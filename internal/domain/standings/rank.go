package standings

import "sort"

// Rank orders teams into a standings table by the cascading criteria
// list, each criterion descending. A nil or empty order falls back to
// DefaultTieBreakers. Teams left equal on every criterion share the
// rank of their group head; the next distinct team takes its 1-based
// position, so ranks skip after a tie group.
//
// Map iteration order is randomized in Go, so teams are extracted in
// sorted-name order before the stable sort. That makes remaining ties
// deterministic and re-ranking idempotent.
func Rank(stats map[string]TeamStats, order []TieBreaker) []Row {
	if len(stats) == 0 {
		return []Row{}
	}
	if len(order) == 0 {
		order = DefaultTieBreakers()
	}

	teams := make([]string, 0, len(stats))
	for team := range stats {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	sort.SliceStable(teams, func(i, j int) bool {
		left, right := stats[teams[i]], stats[teams[j]]
		for _, criterion := range order {
			lv, rv := criterion.value(left), criterion.value(right)
			if lv != rv {
				return lv > rv
			}
		}
		return false
	})

	rows := make([]Row, 0, len(teams))
	currentRank := 1
	for i, team := range teams {
		if i > 0 && !tied(stats[teams[i-1]], stats[team], order) {
			currentRank = i + 1
		}
		teamStats := stats[team]
		rows = append(rows, Row{
			Rank:     currentRank,
			Team:     team,
			Points:   teamStats.Points,
			GoalDiff: teamStats.GoalDiff,
		})
	}
	return rows
}

func tied(left, right TeamStats, order []TieBreaker) bool {
	for _, criterion := range order {
		if criterion.value(left) != criterion.value(right) {
			return false
		}
	}
	return true
}
