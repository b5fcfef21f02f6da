package topics

import "testing"

func TestClassifyText_SpecificBeatsGeneric(t *testing.T) {
	// Both "quadratic" and "inequality" match; the more specific
	// inequalities topic must win the tie-break.
	r := ClassifyText("Solve the quadratic inequality x² - 5x + 6 > 0")
	if r.Topic != TopicInequalities {
		t.Errorf("Topic = %s, want %s", r.Topic, TopicInequalities)
	}
}

func TestClassifyText_Basics(t *testing.T) {
	tests := []struct {
		text string
		want Topic
	}{
		{"Solve the quadratic equation x² + 3x - 4 = 0", TopicQuadraticEquations},
		{"Find the derivative of f(x) = 3x²", TopicCalculus},
		{"Solve the system of equations: 2x + y = 7, x - y = 2", TopicSystemsOfEquations},
		{"Simplify the rational expression (x²-1)/(x-1) to lowest terms", TopicRationalExpressions},
		{"Find the area of a rectangle with width 4 and height 9", TopicGeometry},
		{"Evaluate sin(30°) + cos(60°)", TopicTrigonometry},
		{"Expand the binomial (x+2)³", TopicPolynomials},
		{"Find the slope of the line through (1,2) and (3,8)", TopicLinearEquations},
		{"Solve for x: log(x) + log(x-3) = 1", TopicExponentials},
	}

	for _, tt := range tests {
		r := ClassifyText(tt.text)
		if r.Topic != tt.want {
			t.Errorf("ClassifyText(%q) = %s, want %s", tt.text, r.Topic, tt.want)
		}
	}
}

func TestClassifyText_WordBoundaries(t *testing.T) {
	// "sin" must not match inside "using", "tan" not inside "important".
	r := ClassifyText("Using the important substitution method, solve the pair of simultaneous equations")
	if r.Topic != TopicSystemsOfEquations {
		t.Errorf("Topic = %s, want %s", r.Topic, TopicSystemsOfEquations)
	}
	for _, alt := range r.Alternatives {
		if alt.Topic == TopicTrigonometry {
			t.Error("trigonometry matched via substring, want word-boundary matching")
		}
	}
}

func TestClassifyText_NoMatchReturnsUnknown(t *testing.T) {
	for _, text := range []string{"", "   ", "qwerty asdf zxcv"} {
		r := ClassifyText(text)
		if r.Topic != TopicUnknown {
			t.Errorf("ClassifyText(%q) = %s, want unknown", text, r.Topic)
		}
		if r.Confidence != 0 {
			t.Errorf("Confidence = %f, want 0 for unmatched text", r.Confidence)
		}
	}
}

func TestClassifyText_ConfidenceAndAlternatives(t *testing.T) {
	r := ClassifyText("Solve the quadratic inequality x² - 5x + 6 > 0")

	if r.Confidence <= 0 || r.Confidence > 1 {
		t.Errorf("Confidence = %f, want in (0,1]", r.Confidence)
	}
	if len(r.Alternatives) == 0 {
		t.Fatal("expected at least one alternative")
	}
	if r.Alternatives[0].Topic != TopicQuadraticEquations {
		t.Errorf("first alternative = %s, want quadratic-equations", r.Alternatives[0].Topic)
	}
	for i := 1; i < len(r.Alternatives); i++ {
		if r.Alternatives[i].Score > r.Alternatives[i-1].Score {
			t.Error("alternatives not sorted by descending score")
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("Solve: 2x+1 = 7, right?")
	want := []string{"solve", "2x", "1", "7", "right"}
	if len(tokens) != len(want) {
		t.Fatalf("tokenize = %v, want %v", tokens, want)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, tokens[i], want[i])
		}
	}
}

func TestMatchCount_Phrases(t *testing.T) {
	tokens := tokenize("what is the rate of change of the rate of change")
	if got := matchCount(tokens, "rate of change"); got != 2 {
		t.Errorf("matchCount = %d, want 2", got)
	}
	if got := matchCount(tokens, "rate of decay"); got != 0 {
		t.Errorf("matchCount = %d, want 0", got)
	}
}

func TestKeywordTable_AllTopicsKnown(t *testing.T) {
	for topic := range keywordTable {
		if !Known(topic) {
			t.Errorf("keyword table references unknown topic %s", topic)
		}
	}
}
