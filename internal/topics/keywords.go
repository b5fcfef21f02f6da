package topics

// keywordSpec describes how one topic is scored against problem text.
// Weight reflects keyword informativeness. Priority ranks specificity:
// lower numbers are more specific and receive a larger score boost, so
// "quadratic inequality" lands on inequalities rather than
// quadratic-equations even though both topics match one keyword.
type keywordSpec struct {
	Keywords []string
	Weight   float64
	Priority int
}

// maxPriority is the least-specific priority rank in the table.
const maxPriority = 5

// specificityStep is the per-rank boost increment.
const specificityStep = 0.25

// priorityBoost converts a priority rank into a score multiplier.
// Rank 1 → 2.0, rank 5 → 1.0.
func priorityBoost(priority int) float64 {
	if priority < 1 {
		priority = 1
	}
	if priority > maxPriority {
		priority = maxPriority
	}
	return 1.0 + specificityStep*float64(maxPriority-priority)
}

// keywordTable is the tuned keyword/weight/priority table.
//
// Multi-word entries match as token phrases. All matching is
// word-boundary aware; "sin" never matches inside "using".
var keywordTable = map[Topic]keywordSpec{
	TopicInequalities: {
		Priority: 1,
		Weight:   1.0,
		Keywords: []string{
			"inequality", "inequalities",
			"greater than", "less than",
			"at least", "at most",
		},
	},
	TopicSystemsOfEquations: {
		Priority: 1,
		Weight:   1.0,
		Keywords: []string{
			"system of equations", "systems of equations",
			"simultaneous", "substitution method", "elimination",
		},
	},
	TopicRationalExpressions: {
		Priority: 1,
		Weight:   1.0,
		Keywords: []string{
			"rational expression", "rational equation",
			"denominator", "numerator", "lowest terms",
		},
	},
	TopicQuadraticEquations: {
		Priority: 2,
		Weight:   1.0,
		Keywords: []string{
			"quadratic", "parabola", "discriminant", "vertex",
			"complete the square", "quadratic formula",
		},
	},
	TopicCalculus: {
		Priority: 2,
		Weight:   1.0,
		Keywords: []string{
			"derivative", "integral", "differentiate", "integrate",
			"limit", "limits", "rate of change", "antiderivative",
		},
	},
	TopicTrigonometry: {
		Priority: 2,
		Weight:   1.0,
		Keywords: []string{
			"sin", "cos", "tan", "sine", "cosine", "tangent",
			"radians", "trigonometric", "unit circle",
		},
	},
	TopicExponentials: {
		Priority: 2,
		Weight:   1.0,
		Keywords: []string{
			"exponential", "logarithm", "logarithmic", "log", "ln",
			"half life", "decay",
		},
	},
	TopicPolynomials: {
		Priority: 3,
		Weight:   1.0,
		Keywords: []string{
			"polynomial", "binomial", "trinomial", "monomial",
			"degree", "expand", "factor",
		},
	},
	TopicFunctions: {
		Priority: 3,
		Weight:   1.0,
		Keywords: []string{
			"function", "domain", "range", "inverse", "composition",
			"evaluate f",
		},
	},
	TopicGeometry: {
		Priority: 3,
		Weight:   1.0,
		Keywords: []string{
			"area", "perimeter", "volume", "circle", "rectangle",
			"triangle", "angle", "radius", "circumference",
		},
	},
	TopicLinearEquations: {
		Priority: 4,
		Weight:   1.0,
		Keywords: []string{
			"linear", "slope", "intercept", "solve for x",
			"solve for y", "equation of a line",
		},
	},
	TopicWordProblems: {
		Priority: 5,
		Weight:   0.8,
		Keywords: []string{
			"how many", "how much", "altogether", "in total",
			"per hour", "miles per", "costs",
		},
	},
}
