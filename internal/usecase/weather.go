package usecase

import (
	"fmt"
	"math"
)

const (
	weekLength       = 7
	hotDayThreshold  = 25.0
	coldDayThreshold = 10.0
)

// WeekSummary is the statistics for one week of temperature readings.
type WeekSummary struct {
	HotDays        int
	ColdDays       int
	AverageTemp    float64
	MaxTemp        float64
	MinTemp        float64
	Recommendation string
}

// AnalyzeWeek summarizes exactly seven daily temperature readings.
func AnalyzeWeek(temperatures []float64) (WeekSummary, error) {
	if len(temperatures) != weekLength {
		return WeekSummary{}, fmt.Errorf("%w: expected %d daily readings, got %d", ErrInvalidInput, weekLength, len(temperatures))
	}

	summary := WeekSummary{
		MaxTemp: temperatures[0],
		MinTemp: temperatures[0],
	}

	sum := 0.0
	for _, temp := range temperatures {
		sum += temp
		if temp >= hotDayThreshold {
			summary.HotDays++
		}
		if temp < coldDayThreshold {
			summary.ColdDays++
		}
		summary.MaxTemp = math.Max(summary.MaxTemp, temp)
		summary.MinTemp = math.Min(summary.MinTemp, temp)
	}
	summary.AverageTemp = math.Round(sum/weekLength*100) / 100

	switch {
	case summary.HotDays >= 3:
		summary.Recommendation = "hot week, drink plenty of water"
	case summary.ColdDays >= 3:
		summary.Recommendation = "cold week, dress warmly"
	default:
		summary.Recommendation = "moderate week, good weather for a walk"
	}

	return summary, nil
}
