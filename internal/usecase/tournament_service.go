package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/matchday/tournament-analytics/internal/domain/match"
	"github.com/matchday/tournament-analytics/internal/domain/report"
	"github.com/matchday/tournament-analytics/internal/domain/standings"
	"github.com/matchday/tournament-analytics/internal/platform/logging"
)

const defaultParseWorkers = 8

// TournamentService runs the analysis pipeline: parse, filter,
// aggregate, rank, report. Each stage is pure; the service only adds
// orchestration, logging and batch parsing.
type TournamentService struct {
	logger     *logging.Logger
	maxWorkers int
}

func NewTournamentService(logger *logging.Logger) *TournamentService {
	if logger == nil {
		logger = logging.Default()
	}
	return &TournamentService{
		logger:     logger,
		maxWorkers: defaultParseWorkers,
	}
}

// SetMaxWorkers overrides the parse pool size. Values below one keep
// the current setting.
func (s *TournamentService) SetMaxWorkers(n int) {
	if n > 0 {
		s.maxWorkers = n
	}
}

// SkippedLine records one raw line that failed to parse, so callers can
// report it without aborting the batch.
type SkippedLine struct {
	Index int
	Line  string
	Err   error
}

type ParseResult struct {
	Records []match.Record
	Skipped []SkippedLine
}

// Analysis bundles the outputs of one full pipeline run.
type Analysis struct {
	Records   []match.Record
	Stats     map[string]standings.TeamStats
	Standings []standings.Row
	Report    report.Report
}

// ParseLines parses raw lines concurrently. Lines are independent, so
// failures are collected per line instead of failing the batch; record
// order follows input order regardless of worker scheduling.
func (s *TournamentService) ParseLines(ctx context.Context, lines []string) (ParseResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ParseLines")
	defer span.End()

	if len(lines) == 0 {
		return ParseResult{Records: []match.Record{}}, nil
	}

	workerCount := s.maxWorkers
	if workerCount <= 0 {
		workerCount = defaultParseWorkers
	}
	if workerCount > len(lines) {
		workerCount = len(lines)
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ParseResult{}, fmt.Errorf("create parse worker pool: %w", err)
	}
	defer pool.Release()

	records := make([]match.Record, len(lines))
	parseErrs := make([]error, len(lines))

	var workers sync.WaitGroup
	for i, line := range lines {
		i, line := i, line
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			records[i], parseErrs[i] = match.ParseLine(line)
		}); err != nil {
			workers.Done()
			return ParseResult{}, fmt.Errorf("submit line to worker pool: %w", err)
		}
	}
	workers.Wait()

	result := ParseResult{Records: make([]match.Record, 0, len(lines))}
	for i := range lines {
		if parseErrs[i] != nil {
			s.logger.WarnContext(ctx, "skipping unparsable line",
				"index", i,
				"line", lines[i],
				"error", parseErrs[i],
			)
			result.Skipped = append(result.Skipped, SkippedLine{
				Index: i,
				Line:  lines[i],
				Err:   parseErrs[i],
			})
			continue
		}
		result.Records = append(result.Records, records[i])
	}

	s.logger.InfoContext(ctx, "parsed match lines",
		"total", len(lines),
		"parsed", len(result.Records),
		"skipped", len(result.Skipped),
	)
	return result, nil
}

// Analyze applies the filter and derives stats, standings and the
// report. A nil tie-break order uses the default cascade.
func (s *TournamentService) Analyze(ctx context.Context, records []match.Record, criteria match.Criteria, order []standings.TieBreaker) Analysis {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Analyze")
	defer span.End()

	filtered := match.Filter(records, criteria)
	if criteria.Team != "" && len(filtered) == 0 {
		if suggestion := match.SuggestTeam(criteria.Team, records); suggestion != "" && suggestion != criteria.Team {
			s.logger.WarnContext(ctx, "team filter matched nothing",
				"team", criteria.Team,
				"closest_known_team", suggestion,
			)
		}
	}

	stats := standings.Aggregate(filtered)
	rows := standings.Rank(stats, order)
	analysisReport := report.Build(filtered, stats, rows)

	s.logger.InfoContext(ctx, "analysis complete",
		"matches", len(filtered),
		"teams", len(stats),
	)

	return Analysis{
		Records:   filtered,
		Stats:     stats,
		Standings: rows,
		Report:    analysisReport,
	}
}
