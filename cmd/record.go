package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutoriz/internal/mastery"
	"github.com/abhisek/tutoriz/internal/topics"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <problem text>",
	Short: "Record a completed problem attempt",
	Long: `Record one completed attempt: classifies the problem into a topic,
grades the attempt, and advances the topic's review schedule.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		turns, _ := cmd.Flags().GetInt("turns")
		steps, _ := cmd.Flags().GetInt("steps")
		approach, _ := cmd.Flags().GetInt("approach")
		hintsUsed, _ := cmd.Flags().GetInt("hints")
		incorrect, _ := cmd.Flags().GetInt("incorrect")
		clarifications, _ := cmd.Flags().GetInt("clarifications")
		sessionID, _ := cmd.Flags().GetString("session")
		semantic, _ := cmd.Flags().GetBool("semantic")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := newService(ctx, st, semantic)

		attempt := mastery.Attempt{
			ProblemText:   strings.Join(args, " "),
			TurnsTaken:    turns,
			StepCount:     steps,
			ApproachIndex: approach,
		}
		if hintsUsed > 0 || incorrect > 0 || clarifications > 0 {
			attempt.Struggle = &mastery.StruggleData{
				HintsRequested:        hintsUsed,
				IncorrectAttempts:     incorrect,
				ClarificationRequests: clarifications,
			}
		}

		res, err := svc.RecordAttempt(ctx, sessionID, attempt)
		if err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}

		fmt.Printf("Topic:       %s\n", topics.DisplayName(res.Topic))
		fmt.Printf("Level:       %s\n", res.Level)
		fmt.Printf("Strength:    %.2f\n", res.Schedule.Strength)
		fmt.Printf("Ease:        %.2f\n", res.Schedule.EaseFactor)
		fmt.Printf("Interval:    %dd\n", res.Schedule.IntervalDays)
		fmt.Printf("Next review: %s\n", res.Schedule.NextReview.Local().Format("2006-01-02"))
		return nil
	},
}

func init() {
	recordCmd.Flags().Int("turns", 1, "Dialogue turns the attempt took")
	recordCmd.Flags().Int("steps", 1, "Steps in the solution outline used")
	recordCmd.Flags().Int("approach", 0, "Index of the solution approach used")
	recordCmd.Flags().Int("hints", 0, "Hints the learner needed")
	recordCmd.Flags().Int("incorrect", 0, "Incorrect intermediate answers")
	recordCmd.Flags().Int("clarifications", 0, "Clarification requests")
	recordCmd.Flags().String("session", "", "Session ID the attempt belongs to")
	recordCmd.Flags().Bool("semantic", false, "Use LLM classification (falls back to keywords)")
}
