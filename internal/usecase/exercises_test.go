package usecase

import (
	"errors"
	"math"
	"testing"
)

func TestAnalyzeText(t *testing.T) {
	t.Parallel()

	stats, err := AnalyzeText("Go is fun. Go is fast! Really fun?", 2)
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}

	if stats.TotalWords != 8 {
		t.Fatalf("total words: got=%d want=8", stats.TotalWords)
	}
	if stats.TotalSentences != 3 {
		t.Fatalf("total sentences: got=%d want=3", stats.TotalSentences)
	}
	if stats.LongestWord != "really" {
		t.Fatalf("longest word: got=%q want=%q", stats.LongestWord, "really")
	}
	if stats.ShortestWord != "go" {
		t.Fatalf("shortest word: got=%q want=%q", stats.ShortestWord, "go")
	}
	if stats.UniqueWords != 5 {
		t.Fatalf("unique words: got=%d want=5", stats.UniqueWords)
	}
	if stats.WordFrequency["go"] != 2 || stats.WordFrequency["fun"] != 2 {
		t.Fatalf("unexpected frequency map: %v", stats.WordFrequency)
	}

	if len(stats.TopWords) != 3 {
		t.Fatalf("top words length: got=%d want=3", len(stats.TopWords))
	}
	// Ties resolve by first occurrence: go and is appear before fun.
	if stats.TopWords[0].Word != "go" || stats.TopWords[1].Word != "is" || stats.TopWords[2].Word != "fun" {
		t.Fatalf("unexpected top words: %+v", stats.TopWords)
	}
	if stats.UniquePercentage != 62.5 {
		t.Fatalf("unique percentage: got=%v want=62.5", stats.UniquePercentage)
	}
}

func TestAnalyzeText_MinWordLengthAndEmpty(t *testing.T) {
	t.Parallel()

	stats, err := AnalyzeText("a bb ccc dddd", 3)
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	if stats.TotalWords != 2 || stats.ShortestWord != "ccc" || stats.LongestWord != "dddd" {
		t.Fatalf("min length filter not applied: %+v", stats)
	}
	if stats.AverageWordLength != 3.5 {
		t.Fatalf("average word length: got=%v want=3.5", stats.AverageWordLength)
	}

	if _, err := AnalyzeText("   \n\t ", 1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for blank text, got %v", err)
	}
}

func TestAnalyzeWeek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		temperatures   []float64
		hotDays        int
		coldDays       int
		averageTemp    float64
		maxTemp        float64
		minTemp        float64
		recommendation string
	}{
		{
			name:           "hot week",
			temperatures:   []float64{26, 28, 30.5, 24, 25, 18, 20},
			hotDays:        4,
			coldDays:       0,
			averageTemp:    24.5,
			maxTemp:        30.5,
			minTemp:        18,
			recommendation: "hot week, drink plenty of water",
		},
		{
			name:           "cold week",
			temperatures:   []float64{5, 8, 9.9, 12, 15, 11, 13},
			hotDays:        0,
			coldDays:       3,
			averageTemp:    10.56,
			maxTemp:        15,
			minTemp:        5,
			recommendation: "cold week, dress warmly",
		},
		{
			name:           "moderate week",
			temperatures:   []float64{15, 16, 17, 18, 19, 20, 21},
			hotDays:        0,
			coldDays:       0,
			averageTemp:    18,
			maxTemp:        21,
			minTemp:        15,
			recommendation: "moderate week, good weather for a walk",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			summary, err := AnalyzeWeek(tc.temperatures)
			if err != nil {
				t.Fatalf("AnalyzeWeek: %v", err)
			}
			if summary.HotDays != tc.hotDays || summary.ColdDays != tc.coldDays {
				t.Fatalf("day counts: got hot=%d cold=%d want hot=%d cold=%d",
					summary.HotDays, summary.ColdDays, tc.hotDays, tc.coldDays)
			}
			if summary.AverageTemp != tc.averageTemp {
				t.Fatalf("average: got=%v want=%v", summary.AverageTemp, tc.averageTemp)
			}
			if summary.MaxTemp != tc.maxTemp || summary.MinTemp != tc.minTemp {
				t.Fatalf("extremes: got max=%v min=%v want max=%v min=%v",
					summary.MaxTemp, summary.MinTemp, tc.maxTemp, tc.minTemp)
			}
			if summary.Recommendation != tc.recommendation {
				t.Fatalf("recommendation: got=%q want=%q", summary.Recommendation, tc.recommendation)
			}
		})
	}
}

func TestAnalyzeWeek_WrongLength(t *testing.T) {
	t.Parallel()

	if _, err := AnalyzeWeek([]float64{1, 2, 3}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for short week, got %v", err)
	}
	if _, err := AnalyzeWeek(nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for nil readings, got %v", err)
	}
}

func TestAnalyzePurchases(t *testing.T) {
	t.Parallel()

	summary, err := AnalyzePurchases(
		[]string{"keyboard", "monitor", "mouse"},
		[]float64{3500, 12000, 800},
		DefaultDiscountThreshold,
	)
	if err != nil {
		t.Fatalf("AnalyzePurchases: %v", err)
	}

	if summary.Total != 16300 {
		t.Fatalf("total: got=%v want=16300", summary.Total)
	}
	if summary.MostExpensive != "monitor" {
		t.Fatalf("most expensive: got=%q want=%q", summary.MostExpensive, "monitor")
	}
	if math.Abs(summary.Average-5433.33) > 1e-9 {
		t.Fatalf("average: got=%v want=5433.33", summary.Average)
	}
	if !summary.DiscountApplied || summary.FinalTotal != 14670 {
		t.Fatalf("discount: applied=%v final=%v", summary.DiscountApplied, summary.FinalTotal)
	}
}

func TestAnalyzePurchases_NoDiscountAndErrors(t *testing.T) {
	t.Parallel()

	summary, err := AnalyzePurchases([]string{"pen", "pad"}, []float64{120, 380}, DefaultDiscountThreshold)
	if err != nil {
		t.Fatalf("AnalyzePurchases: %v", err)
	}
	if summary.DiscountApplied || summary.FinalTotal != 500 {
		t.Fatalf("unexpected discount on small basket: %+v", summary)
	}
	// First item keeps the crown on a price tie.
	tied, err := AnalyzePurchases([]string{"tea", "coffee"}, []float64{250, 250}, DefaultDiscountThreshold)
	if err != nil {
		t.Fatalf("AnalyzePurchases: %v", err)
	}
	if tied.MostExpensive != "tea" {
		t.Fatalf("tie policy: got=%q want=%q", tied.MostExpensive, "tea")
	}

	errCases := []struct {
		name   string
		items  []string
		prices []float64
	}{
		{"empty", nil, nil},
		{"length mismatch", []string{"a"}, []float64{1, 2}},
		{"negative price", []string{"a", "b"}, []float64{10, -1}},
	}
	for _, tc := range errCases {
		if _, err := AnalyzePurchases(tc.items, tc.prices, DefaultDiscountThreshold); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("%s: expected invalid input, got %v", tc.name, err)
		}
	}
}
