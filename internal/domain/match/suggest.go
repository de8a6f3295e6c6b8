package match

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// TeamNames returns the distinct team names across the records, sorted.
func TeamNames(records []Record) []string {
	seen := make(map[string]struct{}, len(records)*2)
	for _, record := range records {
		seen[record.Team1] = struct{}{}
		seen[record.Team2] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SuggestTeam returns the closest known team name for a query that
// matched no record, or "" when nothing is close enough. Useful for
// surfacing typos in filter criteria.
func SuggestTeam(query string, records []Record) string {
	if query == "" {
		return ""
	}

	names := TeamNames(records)
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}
