package match

// Criteria narrows a record set. Zero-valued fields are inactive; set
// fields compose by logical AND. Dates compare lexicographically, which
// is ordering-correct for zero-padded ISO dates.
type Criteria struct {
	// Team keeps matches where either side equals the given name.
	Team string
	// DateFrom / DateTo are inclusive bounds on the match date.
	DateFrom string
	DateTo   string
	// MinAttendance / MaxAttendance are inclusive bounds on attendance.
	MinAttendance *int
	MaxAttendance *int
	// MinTotalGoals keeps matches where Score1+Score2 >= the bound.
	MinTotalGoals *int
	// Stadium keeps matches played at the exact stadium name.
	Stadium string
}

func (c Criteria) matches(r Record) bool {
	if c.Team != "" && !r.Involves(c.Team) {
		return false
	}
	if c.DateFrom != "" && r.Date < c.DateFrom {
		return false
	}
	if c.DateTo != "" && r.Date > c.DateTo {
		return false
	}
	if c.MinAttendance != nil && r.Attendance < *c.MinAttendance {
		return false
	}
	if c.MaxAttendance != nil && r.Attendance > *c.MaxAttendance {
		return false
	}
	if c.MinTotalGoals != nil && r.TotalGoals() < *c.MinTotalGoals {
		return false
	}
	if c.Stadium != "" && r.Stadium != c.Stadium {
		return false
	}
	return true
}

// Filter returns the records satisfying every set criterion, preserving
// input order. An empty input yields an empty slice.
func Filter(records []Record, criteria Criteria) []Record {
	out := make([]Record, 0, len(records))
	for _, record := range records {
		if criteria.matches(record) {
			out = append(out, record)
		}
	}
	return out
}

// CriteriaFromMap builds Criteria from a loosely-typed configuration
// mapping. Unrecognized keys are ignored. Numeric values may arrive as
// int or float64 depending on the decoder that produced the map.
func CriteriaFromMap(values map[string]any) Criteria {
	var criteria Criteria
	for key, value := range values {
		switch key {
		case "team":
			criteria.Team, _ = value.(string)
		case "date_from":
			criteria.DateFrom, _ = value.(string)
		case "date_to":
			criteria.DateTo, _ = value.(string)
		case "min_attendance":
			if n, ok := asInt(value); ok {
				criteria.MinAttendance = &n
			}
		case "max_attendance":
			if n, ok := asInt(value); ok {
				criteria.MaxAttendance = &n
			}
		case "min_total_goals":
			if n, ok := asInt(value); ok {
				criteria.MinTotalGoals = &n
			}
		case "stadium":
			criteria.Stadium, _ = value.(string)
		}
	}
	return criteria
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
