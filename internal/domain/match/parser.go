package match

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

// Sentinel error kinds for a single raw line. ErrFormat covers
// structural failures (segment count, date syntax, teams/score shape),
// ErrValidation covers semantic ones (empty names, bad numbers). Both
// are terminal for the line; the caller decides whether to skip it or
// abort the batch.
var (
	ErrFormat     = crerr.New("invalid match format")
	ErrValidation = crerr.New("invalid match data")
)

const (
	segmentSeparator = " | "
	dateLayout       = "2006-01-02"
)

// Lazy prefix binds the score block to the first parenthesized pair
// split by a single colon, so team names may themselves contain
// parentheses.
var teamsScoreRegex = regexp.MustCompile(`^\s*(.*?)\s*\(([^:]+):([^)]+)\)\s*(.*?)\s*$`)

var validate = validator.New()

// ParseLine turns one raw delimited line into a validated Record.
//
// The expected layout is:
//
//	YYYY-MM-DD | Team1 (X:Y) Team2 | Stadium | Attendance
//
// It never returns a partially populated Record.
func ParseLine(line string) (Record, error) {
	parts := strings.Split(line, segmentSeparator)
	if len(parts) != 4 {
		return Record{}, fmt.Errorf("%w: expected 4 parts separated by %q", ErrFormat, segmentSeparator)
	}

	dateStr, teamsStr, stadiumStr, attendanceStr := parts[0], parts[1], parts[2], parts[3]

	if _, err := time.Parse(dateLayout, dateStr); err != nil {
		return Record{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", ErrFormat, dateStr)
	}

	groups := teamsScoreRegex.FindStringSubmatch(teamsStr)
	if groups == nil {
		return Record{}, fmt.Errorf("%w: expected 'Team1 (X:Y) Team2', got %q", ErrFormat, teamsStr)
	}

	team1 := strings.TrimSpace(groups[1])
	team2 := strings.TrimSpace(groups[4])
	stadium := strings.TrimSpace(stadiumStr)
	if team1 == "" || team2 == "" || stadium == "" {
		return Record{}, fmt.Errorf("%w: team names and stadium cannot be empty", ErrValidation)
	}

	score1, err1 := strconv.Atoi(strings.TrimSpace(groups[2]))
	score2, err2 := strconv.Atoi(strings.TrimSpace(groups[3]))
	if err1 != nil || err2 != nil || score1 < 0 || score2 < 0 {
		return Record{}, fmt.Errorf("%w: scores must be non-negative integers", ErrValidation)
	}

	attendance, err := strconv.Atoi(strings.TrimSpace(attendanceStr))
	if err != nil || attendance <= 0 {
		return Record{}, fmt.Errorf("%w: attendance must be a positive integer", ErrValidation)
	}

	record := Record{
		Date:       dateStr,
		Team1:      team1,
		Score1:     score1,
		Team2:      team2,
		Score2:     score2,
		Stadium:    stadium,
		Attendance: attendance,
	}

	if err := validate.Struct(record); err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	return record, nil
}
