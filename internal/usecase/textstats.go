package usecase

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var (
	wordRegex     = regexp.MustCompile(`[a-zA-Zа-яА-Я]+`)
	sentenceRegex = regexp.MustCompile(`[.!?]+`)
)

type WordCount struct {
	Word  string
	Count int
}

// TextStats summarizes one text: word and sentence counts, extremes,
// frequency and uniqueness.
type TextStats struct {
	TotalWords        int
	TotalSentences    int
	TotalCharacters   int
	LongestWord       string
	ShortestWord      string
	WordFrequency     map[string]int
	TopWords          []WordCount
	UniqueWords       int
	UniquePercentage  float64
	AverageWordLength float64
}

const topWordsLimit = 3

// AnalyzeText computes text statistics over words of at least
// minWordLength characters. Whitespace-only text is rejected.
func AnalyzeText(text string, minWordLength int) (TextStats, error) {
	if strings.TrimSpace(text) == "" {
		return TextStats{}, fmt.Errorf("%w: text cannot be empty", ErrInvalidInput)
	}

	words := make([]string, 0)
	for _, word := range wordRegex.FindAllString(strings.ToLower(text), -1) {
		if utf8.RuneCountInString(word) >= minWordLength {
			words = append(words, word)
		}
	}

	sentences := 0
	for _, part := range sentenceRegex.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			sentences++
		}
	}

	stats := TextStats{
		TotalWords:      len(words),
		TotalSentences:  sentences,
		TotalCharacters: utf8.RuneCountInString(text),
		WordFrequency:   make(map[string]int, len(words)),
	}

	firstSeen := make(map[string]int, len(words))
	totalLength := 0
	for i, word := range words {
		length := utf8.RuneCountInString(word)
		totalLength += length

		if stats.LongestWord == "" || length > utf8.RuneCountInString(stats.LongestWord) {
			stats.LongestWord = word
		}
		if stats.ShortestWord == "" || length < utf8.RuneCountInString(stats.ShortestWord) {
			stats.ShortestWord = word
		}

		if _, seen := firstSeen[word]; !seen {
			firstSeen[word] = i
		}
		stats.WordFrequency[word]++
	}

	// Count descending, first occurrence breaking ties.
	top := make([]WordCount, 0, len(stats.WordFrequency))
	for word, count := range stats.WordFrequency {
		top = append(top, WordCount{Word: word, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return firstSeen[top[i].Word] < firstSeen[top[j].Word]
	})
	if len(top) > topWordsLimit {
		top = top[:topWordsLimit]
	}
	stats.TopWords = top

	stats.UniqueWords = len(stats.WordFrequency)
	if stats.TotalWords > 0 {
		stats.UniquePercentage = float64(stats.UniqueWords) / float64(stats.TotalWords) * 100
		stats.AverageWordLength = float64(totalLength) / float64(stats.TotalWords)
	}

	return stats, nil
}
