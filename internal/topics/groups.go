package topics

// Group identifies a set of topics similar enough that practicing them
// back-to-back harms discrimination and retention.
type Group string

const (
	GroupEquationSolving  Group = "equation-solving"
	GroupInequalities     Group = "inequalities-group"
	GroupPolynomialOps    Group = "polynomial-operations"
	GroupFunctionAnalysis Group = "function-analysis"
	GroupCalculus         Group = "calculus-group"
	GroupTrigonometry     Group = "trigonometry-group"
	GroupGeometry         Group = "geometry-group"
	GroupWordProblems     Group = "word-problems-group"
)

// interferenceGroups is the static topic → group table. Read-only.
var interferenceGroups = map[Topic]Group{
	TopicLinearEquations:     GroupEquationSolving,
	TopicQuadraticEquations:  GroupEquationSolving,
	TopicSystemsOfEquations:  GroupEquationSolving,
	TopicRationalExpressions: GroupEquationSolving,
	TopicInequalities:        GroupInequalities,
	TopicPolynomials:         GroupPolynomialOps,
	TopicFunctions:           GroupFunctionAnalysis,
	TopicExponentials:        GroupFunctionAnalysis,
	TopicCalculus:            GroupCalculus,
	TopicTrigonometry:        GroupTrigonometry,
	TopicGeometry:            GroupGeometry,
	TopicWordProblems:        GroupWordProblems,
}

// GroupOf returns the interference group for a topic. Topics outside the
// table (including TopicUnknown) get their own singleton group so they
// never interfere with anything.
func GroupOf(t Topic) Group {
	if g, ok := interferenceGroups[t]; ok {
		return g
	}
	return Group(t)
}

// SameGroup reports whether two topics belong to the same interference
// group. A topic always interferes with itself.
func SameGroup(a, b Topic) bool {
	if a == b {
		return true
	}
	return GroupOf(a) == GroupOf(b)
}
