package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-andiamo/splitter"
	"github.com/joho/godotenv"
	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v2"

	"github.com/matchday/tournament-analytics/internal/config"
	"github.com/matchday/tournament-analytics/internal/domain/match"
	"github.com/matchday/tournament-analytics/internal/domain/standings"
	"github.com/matchday/tournament-analytics/internal/interfaces/cliout"
	"github.com/matchday/tournament-analytics/internal/platform/logging"
	"github.com/matchday/tournament-analytics/internal/usecase"
)

const (
	inputFlag    = "input"
	profileFlag  = "profile"
	formatFlag   = "format"
	filterFlag   = "filter"
	tieBreakFlag = "tie-break"
	lineFlag     = "line"

	formatJSON  = "json"
	formatTable = "table"
)

var build string
var semanticVersion = "v1.0.0" + build

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	app := &cli.App{
		Name:    "tournament",
		Usage:   "Analyze tournament match results: standings, stats and highlights",
		Version: semanticVersion,
		Commands: []*cli.Command{
			analyzeCommand(cfg, logger),
			checkCommand(logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func analyzeCommand(cfg config.Config, logger *logging.Logger) *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Parse match files and print standings and the analytics report",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     inputFlag,
				Aliases:  []string{"i"},
				Usage:    "Path to a match results file, one match per line (repeatable)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    profileFlag,
				Aliases: []string{"p"},
				Usage:   "Path to a YAML analysis profile with filters and tie-break order",
			},
			&cli.StringFlag{
				Name:    formatFlag,
				Aliases: []string{"f"},
				Usage:   "Output format: json or table",
				Value:   formatTable,
			},
			&cli.StringFlag{
				Name:  filterFlag,
				Usage: `Space-separated key=value filters, e.g. 'team="Alpha FC" min_attendance=1000'`,
			},
			&cli.StringSliceFlag{
				Name:  tieBreakFlag,
				Usage: "Tie-break criteria in order: points, goal_diff, goals_for, wins",
			},
		},
		Action: func(c *cli.Context) error {
			return runAnalyze(c, cfg, logger)
		},
	}
}

func checkCommand(logger *logging.Logger) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate a single raw match line and print the parsed record",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     lineFlag,
				Aliases:  []string{"l"},
				Usage:    "Raw match line to validate",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			record, err := match.ParseLine(c.String(lineFlag))
			if err != nil {
				return err
			}
			logger.Info("line parsed", "team1", record.Team1, "team2", record.Team2)
			return cliout.WriteJSON(os.Stdout, usecase.Analysis{
				Records:   []match.Record{record},
				Stats:     map[string]standings.TeamStats{},
				Standings: []standings.Row{},
			}, 0)
		},
	}
}

func runAnalyze(c *cli.Context, cfg config.Config, logger *logging.Logger) error {
	format := strings.ToLower(c.String(formatFlag))
	if format != formatJSON && format != formatTable {
		return fmt.Errorf("unknown format %q: valid values are %s, %s", format, formatJSON, formatTable)
	}

	criteria, order, err := resolveAnalysisOptions(c)
	if err != nil {
		return err
	}

	lines, err := readInputFiles(c.Context, c.StringSlice(inputFlag))
	if err != nil {
		return err
	}

	service := usecase.NewTournamentService(logger)
	service.SetMaxWorkers(cfg.ParseWorkers)

	parsed, err := service.ParseLines(c.Context, lines)
	if err != nil {
		return err
	}
	analysis := service.Analyze(c.Context, parsed.Records, criteria, order)

	switch format {
	case formatJSON:
		return cliout.WriteJSON(os.Stdout, analysis, len(parsed.Skipped))
	default:
		if err := cliout.WriteSkipped(os.Stderr, parsed.Skipped); err != nil {
			return err
		}
		return cliout.WriteTable(os.Stdout, analysis)
	}
}

// resolveAnalysisOptions merges the profile file with command-line
// overrides. Flags win over the profile.
func resolveAnalysisOptions(c *cli.Context) (match.Criteria, []standings.TieBreaker, error) {
	var criteria match.Criteria
	var order []standings.TieBreaker

	if path := c.String(profileFlag); path != "" {
		profile, err := config.LoadProfile(path)
		if err != nil {
			return match.Criteria{}, nil, err
		}
		criteria = profile.Criteria()
		order, err = profile.TieBreakOrder()
		if err != nil {
			return match.Criteria{}, nil, err
		}
	}

	if raw := c.String(filterFlag); raw != "" {
		values, err := parseFilterExpr(raw)
		if err != nil {
			return match.Criteria{}, nil, err
		}
		criteria = match.CriteriaFromMap(values)
	}

	if names := c.StringSlice(tieBreakFlag); len(names) > 0 {
		order = order[:0]
		for _, name := range names {
			criterion, ok := standings.ParseTieBreaker(name)
			if !ok {
				return match.Criteria{}, nil, fmt.Errorf("unknown tie-break criterion %q", name)
			}
			order = append(order, criterion)
		}
	}

	return criteria, order, nil
}

// parseFilterExpr splits a filter expression on spaces, keeping quoted
// values intact, and decodes each part as key=value.
func parseFilterExpr(raw string) (map[string]any, error) {
	spaceSplitter, err := splitter.NewSplitter(' ', splitter.DoubleQuotes)
	if err != nil {
		return nil, fmt.Errorf("build filter splitter: %w", err)
	}
	parts, err := spaceSplitter.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("split filter expression: %w", err)
	}

	values := make(map[string]any, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		key, value, found := strings.Cut(part, "=")
		if !found {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", part)
		}
		cleaned := strings.Trim(strings.TrimSpace(value), `"`)
		if n, err := strconv.Atoi(cleaned); err == nil {
			values[key] = n
		} else {
			values[key] = cleaned
		}
	}
	return values, nil
}

// readInputFiles loads every input file concurrently and returns the
// non-empty lines in file order.
func readInputFiles(ctx context.Context, paths []string) ([]string, error) {
	perFile := make([][]string, len(paths))
	readers := pool.New().WithErrors().WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		readers.Go(func(context.Context) error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read input %s: %w", path, err)
			}
			lines := make([]string, 0)
			for _, line := range strings.Split(string(data), "\n") {
				if strings.TrimSpace(line) != "" {
					lines = append(lines, line)
				}
			}
			perFile[i] = lines
			return nil
		})
	}
	if err := readers.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, 0)
	for _, lines := range perFile {
		out = append(out, lines...)
	}
	return out, nil
}
