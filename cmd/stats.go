package cmd

import (
	"fmt"
	"time"

	"github.com/rnwolfe/studyplan/internal/analytics"
	"github.com/rnwolfe/studyplan/internal/ui"
	"github.com/spf13/cobra"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Completion, streak, productivity and study time",
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 7, "Study time window in days")
}

func runStats(cmd *cobra.Command, _ []string) error {
	if statsDays <= 0 {
		return fmt.Errorf("--days must be positive, got %d", statsDays)
	}

	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	now := time.Now()
	all, err := s.tasks.All(ctx, s.userID)
	if err != nil {
		return err
	}
	subjects, err := s.subjects.List(ctx, s.userID)
	if err != nil {
		return err
	}
	dates, err := s.progress.StudyDates(ctx, s.userID)
	if err != nil {
		return err
	}
	score, err := s.engine().ProductivityScore(ctx, s.userID)
	if err != nil {
		return err
	}

	completion := analytics.Completion(all, subjects, now)
	streak := analytics.ComputeStreak(dates, now)

	ui.Header(ui.IconStar + " Progress")
	fmt.Println()
	ui.Kv("Tasks", fmt.Sprintf("%d done / %d total", completion.Completed, completion.Total))
	ui.Kv("Completion", fmt.Sprintf("%s %.0f%%", ui.Bar(completion.CompletionRate, 20), completion.CompletionRate))
	if completion.Overdue > 0 {
		ui.Kv("Overdue", ui.Error.Render(fmt.Sprintf("%d", completion.Overdue)))
	}
	ui.Kv("Streak", fmt.Sprintf("%s %d days (best %d)", ui.IconFire, streak.Current, streak.Longest))
	ui.Kv("Productivity", fmt.Sprintf("%.1f / 100", score))

	if len(completion.BySubject) > 0 {
		fmt.Println()
		fmt.Println(ui.Muted.Render("  By subject (least complete first)"))
		for _, sc := range completion.BySubject {
			fmt.Printf("  %-20s %s %3.0f%% %s\n", sc.Name, ui.Bar(sc.CompletionRate, 20), sc.CompletionRate,
				ui.Muted.Render(fmt.Sprintf("(%d/%d)", sc.Completed, sc.Total)))
		}
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	from := today.AddDate(0, 0, -(statsDays - 1))
	total, err := s.progress.TotalMinutes(ctx, s.userID, from, today)
	if err != nil {
		return err
	}
	daily, err := s.progress.DailyMinutes(ctx, s.userID, from)
	if err != nil {
		return err
	}
	bySubject, err := s.progress.SubjectMinutes(ctx, s.userID, from, today)
	if err != nil {
		return err
	}
	studied := analytics.StudyTime(total, daily, bySubject)

	ui.Header(fmt.Sprintf("%sLast %d days", ui.IconClock, statsDays))
	fmt.Println()
	ui.Kv("Studied", ui.Minutes(studied.TotalMinutes))
	if len(studied.Daily) > 0 {
		ui.Kv("Daily avg", ui.Minutes(studied.TotalMinutes/statsDays))
		fmt.Println()
		for _, d := range studied.Daily {
			fmt.Printf("  %s %s\n", ui.Muted.Render(d.Date.Format("Mon Jan 2")), ui.Minutes(d.Minutes))
		}
	}
	if len(studied.BySubject) > 0 {
		fmt.Println()
		for _, st := range studied.BySubject {
			fmt.Printf("  %-20s %s %3.0f%% %s\n", st.Name, ui.Bar(st.Percent, 20), st.Percent,
				ui.Muted.Render(ui.Minutes(st.Minutes)))
		}
	}
	fmt.Println()
	return nil
}
