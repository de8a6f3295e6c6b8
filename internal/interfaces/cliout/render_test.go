package cliout

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/matchday/tournament-analytics/internal/domain/match"
	"github.com/matchday/tournament-analytics/internal/domain/report"
	"github.com/matchday/tournament-analytics/internal/domain/standings"
	"github.com/matchday/tournament-analytics/internal/usecase"
)

func renderFixture() usecase.Analysis {
	records := []match.Record{
		{Date: "2024-03-01", Team1: "Alpha", Score1: 2, Team2: "Beta", Score2: 0, Stadium: "Arena", Attendance: 500},
		{Date: "2024-03-08", Team1: "Beta", Score1: 1, Team2: "Alpha", Score2: 1, Stadium: "Dome", Attendance: 300},
	}
	return usecase.Analysis{
		Records: records,
		Stats: map[string]standings.TeamStats{
			"Alpha": {Points: 4, MatchesPlayed: 2, Wins: 1, Draws: 1, GoalsFor: 3, GoalsAgainst: 1, GoalDiff: 2},
			"Beta":  {Points: 1, MatchesPlayed: 2, Draws: 1, Losses: 1, GoalsFor: 1, GoalsAgainst: 3, GoalDiff: -2},
		},
		Standings: []standings.Row{
			{Rank: 1, Team: "Alpha", Points: 4, GoalDiff: 2},
			{Rank: 2, Team: "Beta", Points: 1, GoalDiff: -2},
		},
		Report: report.Report{
			TournamentLeader:       "Alpha",
			MostGoalsMatch:         records[0],
			HighestAttendanceMatch: records[0],
			MostEfficientTeam:      "Alpha",
			GoalDistribution:       map[int]int{2: 2},
			AttendanceByTeam:       map[string]float64{"Alpha": 400, "Beta": 400},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, renderFixture(), 1); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded Result
	if err := sonic.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(decoded.Records) != 2 || len(decoded.Standings) != 2 {
		t.Fatalf("unexpected payload shape: %+v", decoded)
	}
	if decoded.Standings[0].Team != "Alpha" || decoded.Standings[0].Rank != 1 {
		t.Fatalf("unexpected leading row: %+v", decoded.Standings[0])
	}
	if decoded.Report.TournamentLeader != "Alpha" {
		t.Fatalf("unexpected report leader: %q", decoded.Report.TournamentLeader)
	}
	if decoded.SkippedLines != 1 {
		t.Fatalf("unexpected skipped count: %d", decoded.SkippedLines)
	}
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := WriteTable(&buf, renderFixture()); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Rank", "Alpha", "Beta", "Leader:", "Most efficient:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table output missing %q:\n%s", want, out)
		}
	}
	// Alpha's row shows rank, points and signed goal difference.
	if !strings.Contains(out, "   1  Alpha") {
		t.Fatalf("leading row not rendered:\n%s", out)
	}
	if !strings.Contains(out, "+2") || !strings.Contains(out, "-2") {
		t.Fatalf("goal differences not signed:\n%s", out)
	}
}

func TestWriteTable_NoReportBlockWithoutLeader(t *testing.T) {
	t.Parallel()

	analysis := renderFixture()
	analysis.Report = report.Report{}

	var buf bytes.Buffer
	if err := WriteTable(&buf, analysis); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	if strings.Contains(buf.String(), "Leader:") {
		t.Fatalf("report block rendered without data:\n%s", buf.String())
	}
}

func TestWriteSkipped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	skipped := []usecase.SkippedLine{
		{Index: 2, Line: "bad line", Err: errors.New("invalid match format")},
	}
	if err := WriteSkipped(&buf, skipped); err != nil {
		t.Fatalf("WriteSkipped: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "line 3") || !strings.Contains(out, "bad line") {
		t.Fatalf("skipped output incomplete:\n%s", out)
	}

	buf.Reset()
	if err := WriteSkipped(&buf, nil); err != nil {
		t.Fatalf("WriteSkipped(nil): %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty skip list")
	}
}
