package outlinegen

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutoriz/internal/topics"
)

const systemPrompt = `You are a math tutor preparing to guide a student through a problem.

Rules:
- Decompose the problem into one or more valid solution approaches.
- Each approach is an ordered list of steps. Each step has an action, the
  reasoning behind it, and exactly three hints of increasing directness:
  hint 1 is a nudge in the right direction, hint 2 names the operation to
  perform, hint 3 shows the worked computation for that step.
- Use plain ASCII text for all math. No LaTeX, no Unicode symbols. Use /
  for fractions, * for multiplication, and standard operators.
- List the key concepts a student must know for each step, and the common
  mistakes students make on it.
- Prefer the approach a teacher would show first. Alternative approaches
  come after it.
- Never reveal the final answer in hints 1 or 2.`

// buildUserMessage constructs the user message for one problem.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Problem: %s\n", input.ProblemText)
	if input.Topic != "" && input.Topic != topics.TopicUnknown {
		fmt.Fprintf(&b, "Topic: %s\n", topics.DisplayName(input.Topic))
	}
	if input.StudentContext != "" {
		b.WriteString("\nStudent context:\n")
		b.WriteString(input.StudentContext)
		b.WriteString("\n")
	}

	return b.String()
}
