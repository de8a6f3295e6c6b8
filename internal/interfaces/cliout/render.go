// Package cliout renders analysis results for the command line, as
// machine-readable JSON or a human-readable standings table.
package cliout

import (
	"fmt"
	"io"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/matchday/tournament-analytics/internal/domain/match"
	"github.com/matchday/tournament-analytics/internal/domain/report"
	"github.com/matchday/tournament-analytics/internal/domain/standings"
	"github.com/matchday/tournament-analytics/internal/usecase"
)

// Result is the full JSON payload of one analysis run.
type Result struct {
	Records      []match.Record                 `json:"records"`
	Standings    []standings.Row                `json:"standings"`
	Stats        map[string]standings.TeamStats `json:"stats"`
	Report       report.Report                  `json:"report"`
	SkippedLines int                            `json:"skipped_lines"`
}

// WriteJSON streams the analysis as indented JSON.
func WriteJSON(w io.Writer, analysis usecase.Analysis, skipped int) error {
	payload := Result{
		Records:      analysis.Records,
		Standings:    analysis.Standings,
		Stats:        analysis.Stats,
		Report:       analysis.Report,
		SkippedLines: skipped,
	}

	encoder := sonic.ConfigDefault.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}
	return nil
}

// WriteTable prints the standings table followed by the report
// highlights.
func WriteTable(w io.Writer, analysis usecase.Analysis) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	teamWidth := len("Team")
	for _, row := range analysis.Standings {
		if len(row.Team) > teamWidth {
			teamWidth = len(row.Team)
		}
	}

	fmt.Fprintf(buf, "%4s  %-*s  %6s  %5s  %4s  %4s  %4s  %5s\n",
		"Rank", teamWidth, "Team", "Points", "GD", "W", "D", "L", "Strk")
	for _, row := range analysis.Standings {
		stats := analysis.Stats[row.Team]
		fmt.Fprintf(buf, "%4d  %-*s  %6d  %+5d  %4d  %4d  %4d  %5d\n",
			row.Rank, teamWidth, row.Team, row.Points, row.GoalDiff,
			stats.Wins, stats.Draws, stats.Losses, stats.WinStreak)
	}

	rep := analysis.Report
	if rep.TournamentLeader != "" {
		buf.WriteString("\n")
		fmt.Fprintf(buf, "Leader:          %s\n", rep.TournamentLeader)
		fmt.Fprintf(buf, "Most goals:      %s\n", formatMatch(rep.MostGoalsMatch))
		fmt.Fprintf(buf, "Best attendance: %s (%d)\n",
			formatMatch(rep.HighestAttendanceMatch), rep.HighestAttendanceMatch.Attendance)
		fmt.Fprintf(buf, "Most efficient:  %s\n", rep.MostEfficientTeam)
		if rep.BiggestUpset != nil {
			fmt.Fprintf(buf, "Biggest upset:   %s (rank %d beat rank %d)\n",
				formatMatch(rep.BiggestUpset.Match),
				rep.BiggestUpset.WinnerRank, rep.BiggestUpset.LoserRank)
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	return nil
}

// formatMatch renders a match in the same shape as the input lines,
// e.g. "Alpha (2:0) Beta".
func formatMatch(r match.Record) string {
	return fmt.Sprintf("%s (%d:%d) %s", r.Team1, r.Score1, r.Score2, r.Team2)
}

// WriteSkipped lists rejected input lines with their reasons.
func WriteSkipped(w io.Writer, skipped []usecase.SkippedLine) error {
	if len(skipped) == 0 {
		return nil
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fmt.Fprintf(buf, "Skipped %d line(s):\n", len(skipped))
	for _, line := range skipped {
		fmt.Fprintf(buf, "  line %d: %v: %s\n", line.Index+1, line.Err, strings.TrimSpace(line.Line))
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write skipped lines: %w", err)
	}
	return nil
}
