package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/abhisek/tutoriz/internal/topics"
	"github.com/spf13/cobra"
)

var (
	statsTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	statsDue   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F43F5E"))
	statsOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	statsDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show review schedules and attempt counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		svc := newService(ctx, st, false)

		schedules, err := svc.Schedules(ctx)
		if err != nil {
			return fmt.Errorf("load schedules: %w", err)
		}
		if len(schedules) == 0 {
			fmt.Println("No schedules yet. Record some attempts first.")
			return nil
		}

		sort.Slice(schedules, func(i, j int) bool {
			return schedules[i].NextReview.Before(schedules[j].NextReview)
		})

		now := time.Now()
		events := st.EventRepo()

		fmt.Println(statsTitle.Render("Topic Schedules"))
		fmt.Printf("%-26s  %8s  %5s  %8s  %8s  %-12s  %s\n",
			"Topic", "Strength", "Ease", "Interval", "Attempts", "Next Review", "")
		fmt.Println(statsDim.Render(strings.Repeat("─", 84)))

		for _, s := range schedules {
			attempts, err := events.AttemptCount(ctx, string(s.Topic))
			if err != nil {
				return fmt.Errorf("count attempts: %w", err)
			}

			status := statsOK.Render("scheduled")
			if s.IsDue(now) {
				status = statsDue.Render(fmt.Sprintf("due (%.1fd)", s.OverdueDays(now)))
			}

			fmt.Printf("%-26s  %8.2f  %5.2f  %7dd  %8d  %-12s  %s\n",
				topics.DisplayName(s.Topic),
				s.Strength,
				s.EaseFactor,
				s.IntervalDays,
				attempts,
				s.NextReview.Local().Format("2006-01-02"),
				status,
			)
		}
		return nil
	},
}
