package hints

import "testing"

func TestDetectStruggle(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"I'm stuck", true},
		{"i don't know what to do", true},
		{"I dont understand this step", true},
		{"no idea where to start", true},
		{"this makes no sense", true},
		{"can you help", true},
		{"I am so confused", true},
		{"this is too hard", true},
		{"I want to give up", true},
		{"STUCK", true},

		{"x equals 4", false},
		{"subtract 3 from both sides", false},
		{"that was helpful", false},
		{"the glossary entry", false},
		{"I know the answer", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := DetectStruggle(tt.text); got != tt.want {
			t.Errorf("DetectStruggle(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
