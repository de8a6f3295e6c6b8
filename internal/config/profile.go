package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/matchday/tournament-analytics/internal/domain/match"
	"github.com/matchday/tournament-analytics/internal/domain/standings"
)

// Profile is a reusable analysis preset loaded from YAML: match
// filters plus the standings tie-break order.
type Profile struct {
	Name        string         `yaml:"name"`
	Filters     map[string]any `yaml:"filters"`
	TieBreakers []string       `yaml:"tie_breakers"`
}

// LoadProfile reads and decodes a profile file.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("read profile: %w", err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return Profile{}, fmt.Errorf("decode profile %s: %w", path, err)
	}
	return profile, nil
}

// Criteria converts the profile's filter map to match criteria.
func (p Profile) Criteria() match.Criteria {
	return match.CriteriaFromMap(p.Filters)
}

// TieBreakOrder resolves the configured tie-break names. An empty list
// means the standard order.
func (p Profile) TieBreakOrder() ([]standings.TieBreaker, error) {
	if len(p.TieBreakers) == 0 {
		return standings.DefaultTieBreakers(), nil
	}

	order := make([]standings.TieBreaker, 0, len(p.TieBreakers))
	for _, name := range p.TieBreakers {
		criterion, ok := standings.ParseTieBreaker(name)
		if !ok {
			return nil, fmt.Errorf("unknown tie-break criterion %q", name)
		}
		order = append(order, criterion)
	}
	return order, nil
}
