package topics

// Topic is a fixed-taxonomy subject label used for scheduling and analytics.
type Topic string

const (
	TopicLinearEquations     Topic = "linear-equations"
	TopicQuadraticEquations  Topic = "quadratic-equations"
	TopicSystemsOfEquations  Topic = "systems-of-equations"
	TopicRationalExpressions Topic = "rational-expressions"
	TopicInequalities        Topic = "inequalities"
	TopicPolynomials         Topic = "polynomials"
	TopicFunctions           Topic = "functions"
	TopicExponentials        Topic = "exponentials-logarithms"
	TopicTrigonometry        Topic = "trigonometry"
	TopicGeometry            Topic = "geometry"
	TopicCalculus            Topic = "calculus"
	TopicWordProblems        Topic = "word-problems"

	// TopicUnknown is the designated default when classification fails.
	TopicUnknown Topic = "unknown"
)

// All returns every schedulable topic in display order.
// TopicUnknown is excluded; it is a classification fallback, not a
// practice subject.
func All() []Topic {
	return []Topic{
		TopicLinearEquations,
		TopicQuadraticEquations,
		TopicSystemsOfEquations,
		TopicRationalExpressions,
		TopicInequalities,
		TopicPolynomials,
		TopicFunctions,
		TopicExponentials,
		TopicTrigonometry,
		TopicGeometry,
		TopicCalculus,
		TopicWordProblems,
	}
}

// Known reports whether t is part of the taxonomy (TopicUnknown included).
func Known(t Topic) bool {
	if t == TopicUnknown {
		return true
	}
	for _, known := range All() {
		if t == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable name for a topic.
func DisplayName(t Topic) string {
	switch t {
	case TopicLinearEquations:
		return "Linear Equations"
	case TopicQuadraticEquations:
		return "Quadratic Equations"
	case TopicSystemsOfEquations:
		return "Systems of Equations"
	case TopicRationalExpressions:
		return "Rational Expressions"
	case TopicInequalities:
		return "Inequalities"
	case TopicPolynomials:
		return "Polynomials"
	case TopicFunctions:
		return "Functions"
	case TopicExponentials:
		return "Exponentials & Logarithms"
	case TopicTrigonometry:
		return "Trigonometry"
	case TopicGeometry:
		return "Geometry"
	case TopicCalculus:
		return "Calculus"
	case TopicWordProblems:
		return "Word Problems"
	case TopicUnknown:
		return "Unknown"
	default:
		return string(t)
	}
}
