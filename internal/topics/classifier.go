package topics

import (
	"sort"
	"strings"
	"unicode"
)

// TopicScore is one topic's score against a piece of problem text.
type TopicScore struct {
	Topic Topic
	Score float64
}

// Result is the outcome of a topic classification. Alternatives carries
// the runner-up topics for diagnostics, highest score first.
type Result struct {
	Topic        Topic
	Confidence   float64
	Alternatives []TopicScore
}

// maxAlternatives caps how many runner-ups are reported.
const maxAlternatives = 3

// ClassifyText maps free-form problem text to a topic using weighted
// keyword scoring with priority tie-breaking. Empty or unmatched text
// returns TopicUnknown. Never fails.
func ClassifyText(text string) Result {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return Result{Topic: TopicUnknown}
	}

	var scored []TopicScore
	total := 0.0
	for topic, spec := range keywordTable {
		matches := 0
		for _, kw := range spec.Keywords {
			matches += matchCount(tokens, kw)
		}
		if matches == 0 {
			continue
		}
		score := float64(matches) * spec.Weight * priorityBoost(spec.Priority)
		scored = append(scored, TopicScore{Topic: topic, Score: score})
		total += score
	}

	if len(scored) == 0 {
		return Result{Topic: TopicUnknown}
	}

	// Highest score wins. Exact ties break toward the more specific
	// topic (lower priority number), then topic name for determinism.
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		pi := keywordTable[scored[i].Topic].Priority
		pj := keywordTable[scored[j].Topic].Priority
		if pi != pj {
			return pi < pj
		}
		return scored[i].Topic < scored[j].Topic
	})

	alts := scored[1:]
	if len(alts) > maxAlternatives {
		alts = alts[:maxAlternatives]
	}

	return Result{
		Topic:        scored[0].Topic,
		Confidence:   scored[0].Score / total,
		Alternatives: alts,
	}
}

// tokenize lowercases text and splits it into letter/digit runs.
// Everything else (punctuation, operators, whitespace) is a boundary.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// matchCount counts occurrences of keyword in the token stream.
// Multi-word keywords match as consecutive token phrases.
func matchCount(tokens []string, keyword string) int {
	phrase := tokenize(keyword)
	if len(phrase) == 0 {
		return 0
	}

	count := 0
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		matched := true
		for j, p := range phrase {
			if tokens[i+j] != p {
				matched = false
				break
			}
		}
		if matched {
			count++
		}
	}
	return count
}
