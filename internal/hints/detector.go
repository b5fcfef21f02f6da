package hints

import (
	"strings"
	"unicode"
)

// strugglePhrases match as consecutive token sequences in learner text.
var strugglePhrases = [][]string{
	{"i", "don", "t", "know"},
	{"don", "t", "understand"},
	{"dont", "know"},
	{"dont", "understand"},
	{"no", "idea"},
	{"give", "up"},
	{"i", "m", "lost"},
	{"im", "lost"},
	{"makes", "no", "sense"},
	{"what", "do", "i", "do"},
	{"too", "hard"},
}

// struggleWords match as single tokens.
var struggleWords = map[string]bool{
	"stuck":     true,
	"confused":  true,
	"confusing": true,
	"help":      true,
	"lost":      true,
}

// DetectStruggle scans one learner turn for struggle phrases.
// Matching is token-based so "help" never fires inside "helpful".
func DetectStruggle(text string) bool {
	tokens := struggleTokens(text)
	for _, tok := range tokens {
		if struggleWords[tok] {
			return true
		}
	}
	for _, phrase := range strugglePhrases {
		if containsPhrase(tokens, phrase) {
			return true
		}
	}
	return false
}

func struggleTokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func containsPhrase(tokens, phrase []string) bool {
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		matched := true
		for j, p := range phrase {
			if tokens[i+j] != p {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}
