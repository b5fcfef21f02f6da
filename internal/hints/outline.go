package hints

import "fmt"

// HintLevels is the number of escalating hints carried by every step.
const HintLevels = 3

// Step is one action in a solution approach, with escalating hints.
type Step struct {
	Action         string             `json:"action"`
	Reasoning      string             `json:"reasoning"`
	Hints          [HintLevels]string `json:"hints"`
	KeyConcepts    []string           `json:"key_concepts,omitempty"`
	CommonMistakes []string           `json:"common_mistakes,omitempty"`
}

// Approach is one valid multi-step solution path.
type Approach struct {
	Name  string `json:"name,omitempty"`
	Steps []Step `json:"steps"`
}

// Outline is the pre-computed decomposition of one problem into one or
// more solution approaches. Produced before dialogue begins and
// read-only afterward.
type Outline struct {
	ProblemText string     `json:"problem_text,omitempty"`
	Approaches  []Approach `json:"approaches"`
}

// Approach returns the approach at index i, or nil when out of range.
func (o *Outline) Approach(i int) *Approach {
	if o == nil || i < 0 || i >= len(o.Approaches) {
		return nil
	}
	return &o.Approaches[i]
}

// Step returns the step at (approach, step), or nil when out of range.
func (o *Outline) Step(approach, step int) *Step {
	a := o.Approach(approach)
	if a == nil || step < 0 || step >= len(a.Steps) {
		return nil
	}
	return &a.Steps[step]
}

// StepCount returns the number of steps in the given approach, 0 when
// out of range.
func (o *Outline) StepCount(approach int) int {
	a := o.Approach(approach)
	if a == nil {
		return 0
	}
	return len(a.Steps)
}

// Validate checks structural invariants: at least one approach, every
// approach has at least one step, every step has an action and all
// three hints.
func (o *Outline) Validate() error {
	if o == nil || len(o.Approaches) == 0 {
		return fmt.Errorf("outline has no approaches")
	}
	for ai, a := range o.Approaches {
		if len(a.Steps) == 0 {
			return fmt.Errorf("approach %d has no steps", ai)
		}
		for si, s := range a.Steps {
			if s.Action == "" {
				return fmt.Errorf("approach %d step %d has no action", ai, si)
			}
			for hi, h := range s.Hints {
				if h == "" {
					return fmt.Errorf("approach %d step %d missing hint %d", ai, si, hi+1)
				}
			}
		}
	}
	return nil
}
