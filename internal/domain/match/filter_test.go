package match

import (
	"reflect"
	"testing"
)

func filterFixtures() []Record {
	return []Record{
		{Date: "2024-01-05", Team1: "Alpha", Score1: 2, Team2: "Beta", Score2: 0, Stadium: "Arena", Attendance: 1200},
		{Date: "2024-01-12", Team1: "Gamma", Score1: 1, Team2: "Alpha", Score2: 1, Stadium: "City Ground", Attendance: 800},
		{Date: "2024-02-02", Team1: "Beta", Score1: 3, Team2: "Gamma", Score2: 2, Stadium: "Arena", Attendance: 4500},
		{Date: "2024-02-20", Team1: "Alpha", Score1: 0, Team2: "Gamma", Score2: 4, Stadium: "National Arena", Attendance: 15000},
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	minAtt := 1000
	maxAtt := 5000
	minGoals := 3

	tests := []struct {
		name      string
		criteria  Criteria
		wantDates []string
	}{
		{
			name:      "no criteria keeps everything",
			criteria:  Criteria{},
			wantDates: []string{"2024-01-05", "2024-01-12", "2024-02-02", "2024-02-20"},
		},
		{
			name:      "team matches either side",
			criteria:  Criteria{Team: "Alpha"},
			wantDates: []string{"2024-01-05", "2024-01-12", "2024-02-20"},
		},
		{
			name:      "date range",
			criteria:  Criteria{DateFrom: "2024-01-10", DateTo: "2024-02-10"},
			wantDates: []string{"2024-01-12", "2024-02-02"},
		},
		{
			name:      "attendance bounds inclusive",
			criteria:  Criteria{MinAttendance: &minAtt, MaxAttendance: &maxAtt},
			wantDates: []string{"2024-01-05", "2024-02-02"},
		},
		{
			name:      "min total goals",
			criteria:  Criteria{MinTotalGoals: &minGoals},
			wantDates: []string{"2024-02-02", "2024-02-20"},
		},
		{
			name:      "stadium exact",
			criteria:  Criteria{Stadium: "Arena"},
			wantDates: []string{"2024-01-05", "2024-02-02"},
		},
		{
			name:      "combined",
			criteria:  Criteria{Team: "Gamma", Stadium: "Arena"},
			wantDates: []string{"2024-02-02"},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(filterFixtures(), tc.criteria)
			dates := make([]string, 0, len(got))
			for _, record := range got {
				dates = append(dates, record.Date)
			}
			if !reflect.DeepEqual(dates, tc.wantDates) {
				t.Fatalf("unexpected filter result: got=%v want=%v", dates, tc.wantDates)
			}
		})
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	t.Parallel()

	got := Filter(nil, Criteria{Team: "Alpha"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d records", len(got))
	}
}

// Applying two criteria sequentially must equal applying them combined.
func TestFilter_Composition(t *testing.T) {
	t.Parallel()

	minGoals := 2
	first := Criteria{Team: "Gamma"}
	second := Criteria{MinTotalGoals: &minGoals}
	combined := Criteria{Team: "Gamma", MinTotalGoals: &minGoals}

	sequential := Filter(Filter(filterFixtures(), first), second)
	oneShot := Filter(filterFixtures(), combined)

	if !reflect.DeepEqual(sequential, oneShot) {
		t.Fatalf("composition mismatch: sequential=%v combined=%v", sequential, oneShot)
	}
}

func TestCriteriaFromMap(t *testing.T) {
	t.Parallel()

	criteria := CriteriaFromMap(map[string]any{
		"team":            "Alpha",
		"min_attendance":  1000,
		"max_attendance":  float64(5000),
		"min_total_goals": int64(3),
		"stadium":         "Arena",
		"referee":         "ignored",
	})

	if criteria.Team != "Alpha" || criteria.Stadium != "Arena" {
		t.Fatalf("unexpected string criteria: %+v", criteria)
	}
	if criteria.MinAttendance == nil || *criteria.MinAttendance != 1000 {
		t.Fatalf("unexpected min attendance: %+v", criteria.MinAttendance)
	}
	if criteria.MaxAttendance == nil || *criteria.MaxAttendance != 5000 {
		t.Fatalf("unexpected max attendance: %+v", criteria.MaxAttendance)
	}
	if criteria.MinTotalGoals == nil || *criteria.MinTotalGoals != 3 {
		t.Fatalf("unexpected min total goals: %+v", criteria.MinTotalGoals)
	}
}

func TestSuggestTeam(t *testing.T) {
	t.Parallel()

	records := filterFixtures()

	if got := SuggestTeam("alpha", records); got != "Alpha" {
		t.Fatalf("unexpected suggestion: %q", got)
	}
	if got := SuggestTeam("", records); got != "" {
		t.Fatalf("expected no suggestion for empty query, got %q", got)
	}
}
