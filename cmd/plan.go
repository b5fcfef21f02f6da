package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/tutoriz/internal/topics"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a practice session",
	Long: `Build a practice plan from the current review schedules: overdue
topics first, then weak topics, then variety fill, with interference-prone
topic pairs kept apart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetInt64("seed")
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := newService(ctx, st, false)

		sp, err := svc.PlanSession(ctx, count, seed)
		if err != nil {
			return fmt.Errorf("plan session: %w", err)
		}

		if len(sp.Plan.Slots) == 0 {
			fmt.Println("Nothing to practice yet. Record some attempts first.")
			return nil
		}

		fmt.Printf("Session %s\n\n", sp.SessionID)
		fmt.Printf("%-3s  %-26s  %-8s  %8s  %s\n", "#", "Topic", "Reason", "Strength", "Overdue")
		fmt.Println(strings.Repeat("─", 60))

		for i, slot := range sp.Plan.Slots {
			overdue := ""
			if slot.OverdueDays > 0 {
				overdue = fmt.Sprintf("%.1fd", slot.OverdueDays)
			}
			fmt.Printf("%-3d  %-26s  %-8s  %8.2f  %s\n",
				i+1, topics.DisplayName(slot.Topic), slot.Reason, slot.Strength, overdue)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().IntP("count", "n", 0, "Number of topics to plan (default 5)")
	planCmd.Flags().Int64("seed", 0, "Shuffle seed (0 = time-derived)")
}
