package topics

import "testing"

func TestSameGroup(t *testing.T) {
	tests := []struct {
		a, b Topic
		want bool
	}{
		{TopicLinearEquations, TopicSystemsOfEquations, true},
		{TopicLinearEquations, TopicQuadraticEquations, true},
		{TopicQuadraticEquations, TopicRationalExpressions, true},
		{TopicFunctions, TopicExponentials, true},
		{TopicLinearEquations, TopicCalculus, false},
		{TopicInequalities, TopicQuadraticEquations, false},
		{TopicTrigonometry, TopicGeometry, false},
		{TopicWordProblems, TopicWordProblems, true},
	}

	for _, tt := range tests {
		if got := SameGroup(tt.a, tt.b); got != tt.want {
			t.Errorf("SameGroup(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestGroupOf_UnknownTopicIsSingleton(t *testing.T) {
	if SameGroup(TopicUnknown, TopicLinearEquations) {
		t.Error("unknown topic should not interfere with taxonomy topics")
	}
}

func TestGroupOf_EveryTopicHasGroup(t *testing.T) {
	for _, topic := range All() {
		if _, ok := interferenceGroups[topic]; !ok {
			t.Errorf("topic %s missing from interference table", topic)
		}
	}
}
