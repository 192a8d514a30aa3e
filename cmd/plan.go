package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rnwolfe/studyplan/internal/config"
	"github.com/rnwolfe/studyplan/internal/planner"
	"github.com/rnwolfe/studyplan/internal/task"
	"github.com/rnwolfe/studyplan/internal/tui"
	"github.com/rnwolfe/studyplan/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// strategyValue is a pflag.Value that normalizes a strategy name. Unknown
// names resolve to balanced, the same as the engine does.
type strategyValue struct {
	name string
}

var _ pflag.Value = (*strategyValue)(nil)

func (v *strategyValue) String() string { return v.name }

func (v *strategyValue) Set(s string) error {
	v.name = planner.ParseStrategy(s).String()
	return nil
}

func (v *strategyValue) Type() string { return "strategy" }

// or returns the flag value, or fallback when the flag was not given.
func (v *strategyValue) or(fallback string) string {
	if v.name == "" {
		return fallback
	}
	return v.name
}

var (
	planDate        string
	planStrategy    strategyValue
	planHours       int
	planInteractive bool
	planPerSubject  int
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build today's study agenda",
	Long: `Build a study agenda from your pending tasks and a daily time budget.

Strategies:
  balanced   combined priority and deadline urgency (default)
  deadline   tasks due within 3 days of the day, soonest first
  priority   highest priority first, then soonest due
  overdue    overdue tasks first, then upcoming

Every task is budgeted at 60 minutes.`,
	RunE: runPlanToday,
}

var planTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Plan a single day",
	RunE:  runPlanToday,
}

var planWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Plan seven days",
	Long: `Plan seven consecutive days. Each day is planned from the same pool of
pending tasks, so urgent work can show up on several days until it is done.

With -i in a terminal, browse the week interactively:
  h / l        Previous / next day
  j / k        Move down / up
  x / space    Mark task done
  q / Ctrl+C   Quit and save`,
	RunE: runPlanWeek,
}

var planSuggestCmd = &cobra.Command{
	Use:   "suggest [n]",
	Short: "What should you work on right now?",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlanSuggest,
}

var planBalanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "A few tasks from every subject, soonest first",
	RunE:  runPlanBalance,
}

func init() {
	planCmd.AddCommand(planTodayCmd)
	planCmd.AddCommand(planWeekCmd)
	planCmd.AddCommand(planSuggestCmd)
	planCmd.AddCommand(planBalanceCmd)

	for _, c := range []*cobra.Command{planCmd, planTodayCmd, planWeekCmd} {
		c.Flags().Var(&planStrategy, "strategy", "Strategy: balanced, deadline, priority, overdue")
		c.Flags().IntVar(&planHours, "hours", 0, "Hours available per day (default from config, max 16)")
	}
	for _, c := range []*cobra.Command{planCmd, planTodayCmd} {
		c.Flags().StringVar(&planDate, "date", "", "Day to plan (YYYY-MM-DD, default today)")
	}
	planWeekCmd.Flags().StringVar(&planDate, "start", "", "First day (YYYY-MM-DD, default today)")
	planWeekCmd.Flags().BoolVarP(&planInteractive, "interactive", "i", false, "Browse the week in a full-screen view")
	planBalanceCmd.Flags().IntVar(&planPerSubject, "per-subject", 0, "Tasks per subject (default from config)")
}

// scheduleRequest builds a request from flags, falling back to config.
func scheduleRequest(cfg *config.Config) (planner.ScheduleRequest, error) {
	req := planner.ScheduleRequest{
		Strategy: planStrategy.or(cfg.Schedule.StrategyOrDefault()),
		MaxHours: planHours,
	}
	if req.MaxHours == 0 {
		req.MaxHours = cfg.Schedule.MaxHoursOrDefault()
	}
	if planDate != "" {
		d, err := time.ParseInLocation(task.DateFormat, planDate, time.Local)
		if err != nil {
			return req, fmt.Errorf("invalid date %q — use YYYY-MM-DD", planDate)
		}
		req.Date = d
	}
	return req, nil
}

func runPlanToday(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	req, err := scheduleRequest(s.cfg)
	if err != nil {
		return err
	}
	plan, err := s.engine().DailySchedule(ctx, s.userID, req)
	if err != nil {
		return err
	}
	names, err := s.subjects.Names(ctx, s.userID)
	if err != nil {
		return err
	}

	printDayPlan(plan, names, time.Now())
	if len(plan.Tasks) > 0 {
		ui.Tip("`studyplan progress log <id> <minutes>` as you go.")
		fmt.Println()
	}
	return nil
}

func runPlanWeek(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	req, err := scheduleRequest(s.cfg)
	if err != nil {
		return err
	}
	week, err := s.engine().WeeklySchedule(ctx, s.userID, req)
	if err != nil {
		return err
	}
	names, err := s.subjects.Names(ctx, s.userID)
	if err != nil {
		return err
	}

	now := time.Now()
	if planInteractive && tui.IsTTY() {
		done, err := tui.RunWeek(week, names, now)
		if err != nil {
			return err
		}
		for _, id := range done {
			if err := s.tasks.SetCompleted(ctx, s.userID, id, true); err != nil {
				return err
			}
		}
		if len(done) > 0 {
			ui.Ok(fmt.Sprintf("Marked %d done: %s", len(done), joinIDs(done)))
		}
		return nil
	}

	for _, day := range week {
		printDayPlan(day, names, now)
	}
	return nil
}

func runPlanSuggest(cmd *cobra.Command, args []string) error {
	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	limit := s.cfg.Schedule.SuggestLimitOrDefault()
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("%q is not a positive count", args[0])
		}
		limit = n
	}

	tasks, err := s.engine().SuggestPriorityTasks(ctx, s.userID, limit)
	if err != nil {
		return err
	}
	names, err := s.subjects.Names(ctx, s.userID)
	if err != nil {
		return err
	}

	ui.Header(ui.IconStar + " Up next")
	fmt.Println()
	if len(tasks) == 0 {
		fmt.Println(ui.Muted.Render("  All caught up."))
	}
	now := time.Now()
	for _, t := range tasks {
		fmt.Println(renderTask(t, names, now))
	}
	fmt.Println()
	return nil
}

func runPlanBalance(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	per := planPerSubject
	if per <= 0 {
		per = s.cfg.Schedule.TasksPerSubjectOrDefault()
	}

	tasks, err := s.engine().BalanceLoad(ctx, s.userID, per)
	if err != nil {
		return err
	}
	names, err := s.subjects.Names(ctx, s.userID)
	if err != nil {
		return err
	}

	ui.Header(fmt.Sprintf("%s Balanced load (%d per subject)", ui.IconBook, per))
	fmt.Println()
	if len(tasks) == 0 {
		fmt.Println(ui.Muted.Render("  Nothing pending."))
	}
	now := time.Now()
	for _, t := range tasks {
		fmt.Println(renderTask(t, names, now))
	}
	fmt.Println()
	return nil
}
