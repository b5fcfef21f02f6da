package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutoriz/internal/topics"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <problem text>",
	Short: "Classify a problem into a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		semantic, _ := cmd.Flags().GetBool("semantic")
		text := strings.Join(args, " ")

		var res topics.Result
		if semantic {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			res = newService(ctx, st, true).ClassifyProblem(ctx, text)
		} else {
			res = topics.ClassifyText(text)
		}

		fmt.Printf("Topic:      %s (%s)\n", topics.DisplayName(res.Topic), res.Topic)
		fmt.Printf("Confidence: %.2f\n", res.Confidence)
		for _, alt := range res.Alternatives {
			fmt.Printf("  also: %-26s %.2f\n", topics.DisplayName(alt.Topic), alt.Score)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().Bool("semantic", false, "Use LLM classification (falls back to keywords)")
}
