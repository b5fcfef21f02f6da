package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutoriz/internal/outlinegen"
	"github.com/abhisek/tutoriz/internal/topics"
	"github.com/spf13/cobra"
)

var outlineCmd = &cobra.Command{
	Use:   "outline <problem text>",
	Short: "Generate a solution outline for a problem (developer tool)",
	Long: `Decompose a problem into solution approaches, steps, and escalating
hints using the configured LLM provider. Stateless: no schedules are touched,
though the LLM call is logged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := providerFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}

		gen := outlinegen.New(provider, outlinegen.DefaultConfig())
		outline, err := gen.Generate(ctx, outlinegen.GenerateInput{
			ProblemText: text,
			Topic:       topics.ClassifyText(text).Topic,
		})
		if err != nil {
			return fmt.Errorf("generate outline: %w", err)
		}

		fmt.Println(outline.ProblemText)
		for ai, a := range outline.Approaches {
			name := a.Name
			if name == "" {
				name = fmt.Sprintf("Approach %d", ai+1)
			}
			fmt.Printf("\n── %s ──\n", name)
			for si, s := range a.Steps {
				fmt.Printf("%d. %s\n", si+1, s.Action)
				fmt.Printf("   why: %s\n", s.Reasoning)
				for hi, h := range s.Hints {
					fmt.Printf("   hint %d: %s\n", hi+1, h)
				}
			}
		}
		return nil
	},
}
