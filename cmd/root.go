package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/rnwolfe/studyplan/internal/config"
	"github.com/rnwolfe/studyplan/internal/planner"
	"github.com/rnwolfe/studyplan/internal/tips"
	"github.com/rnwolfe/studyplan/internal/ui"
	"github.com/rnwolfe/studyplan/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "studyplan",
	Short: "Plan what to study next",
	Long:  `studyplan turns your study tasks and a daily time budget into an agenda you can actually get through.`,
	RunE:  runDashboard,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(subjectCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// commandContext returns the command's context, or a background context when
// a run function is called directly.
func commandContext(cmd *cobra.Command) context.Context {
	if cmd != nil && cmd.Context() != nil {
		return cmd.Context()
	}
	return context.Background()
}

// runDashboard shows the at-a-glance status when you just type `studyplan`.
func runDashboard(cmd *cobra.Command, _ []string) error {
	if !config.Initialized() {
		fmt.Println(ui.Greet(""))
		fmt.Println()
		fmt.Println("  Looks like this is your first time. Let's set things up!")
		fmt.Println()
		fmt.Printf("  Run %s to get started.\n", ui.Accent.Render("studyplan init"))
		fmt.Println()
		return nil
	}

	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Println(ui.Greet(s.cfg.User.Name))
	fmt.Println()

	now := time.Now()
	all, err := s.tasks.All(ctx, s.userID)
	if err != nil {
		return err
	}
	open, overdue := 0, 0
	for _, t := range all {
		if t.Completed {
			continue
		}
		open++
		if t.IsOverdue(now) {
			overdue++
		}
	}

	summary := fmt.Sprintf("%d open", open)
	if overdue > 0 {
		summary += ui.Error.Render(fmt.Sprintf(" (%d overdue!)", overdue))
	}
	ui.Kv("Tasks", summary)

	eng := s.engine()
	streak, err := eng.Streak(ctx, s.userID)
	if err != nil {
		return err
	}
	ui.Kv("Streak", fmt.Sprintf("%s %d days", ui.IconFire, streak))

	plan, err := eng.DailySchedule(ctx, s.userID, planner.ScheduleRequest{
		Strategy: s.cfg.Schedule.StrategyOrDefault(),
		MaxHours: s.cfg.Schedule.MaxHoursOrDefault(),
	})
	if err != nil {
		return err
	}
	ui.Kv("Today", fmt.Sprintf("%d tasks planned (%s)", len(plan.Tasks), plan.Strategy))
	ui.Kv("Version", version.Short())

	switch {
	case overdue > 0:
		ui.Tip("`studyplan plan --strategy overdue` to catch up.")
	case len(all) == 0:
		ui.Tip("`studyplan task add \"read chapter 1\" --subject math --due 2024-09-01` to add work.")
	default:
		ui.Tip(tips.Daily(now))
	}
	fmt.Println()
	return nil
}
