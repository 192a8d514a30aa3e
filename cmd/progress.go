package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rnwolfe/studyplan/internal/task"
	"github.com/rnwolfe/studyplan/internal/ui"
	"github.com/spf13/cobra"
)

var (
	progressDate  string
	progressNote  string
	progressLimit int
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"p"},
	Short:   "Log and review study sessions",
	RunE:    runProgressList,
}

var progressLogCmd = &cobra.Command{
	Use:   "log <task-id> <minutes>",
	Short: "Record minutes studied on a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runProgressLog,
}

var progressListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show recent study sessions",
	RunE:    runProgressList,
}

func init() {
	progressCmd.AddCommand(progressLogCmd)
	progressCmd.AddCommand(progressListCmd)

	progressLogCmd.Flags().StringVar(&progressDate, "date", "", "Day studied (YYYY-MM-DD, default today)")
	progressLogCmd.Flags().StringVarP(&progressNote, "note", "n", "", "What you covered")
	for _, c := range []*cobra.Command{progressCmd, progressListCmd} {
		c.Flags().IntVarP(&progressLimit, "limit", "l", 20, "Maximum entries to show")
	}
}

func runProgressLog(cmd *cobra.Command, args []string) error {
	taskID, err := parseTaskID(args[0])
	if err != nil {
		return err
	}
	minutes, err := strconv.Atoi(args[1])
	if err != nil || minutes <= 0 {
		return fmt.Errorf("%q is not a positive number of minutes", args[1])
	}

	date := time.Now()
	if progressDate != "" {
		date, err = time.ParseInLocation(task.DateFormat, progressDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q — use YYYY-MM-DD", progressDate)
		}
	}

	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	t, err := s.ownedTask(ctx, taskID)
	if err != nil {
		return err
	}
	if _, err := s.progress.Log(ctx, s.userID, taskID, minutes, date, progressNote); err != nil {
		return err
	}

	fmt.Printf("  %s Logged %s on %s\n", ui.Success.Render("✓"), ui.Accent.Render(ui.Minutes(minutes)), t.Title)

	streak, err := s.engine().Streak(ctx, s.userID)
	if err != nil {
		return err
	}
	if streak > 1 {
		fmt.Printf("  %s %s\n", ui.IconFire, ui.Muted.Render(fmt.Sprintf("%d day streak", streak)))
	}
	fmt.Println()
	return nil
}

func runProgressList(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	entries, err := s.progress.List(ctx, s.userID)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println(ui.Muted.Render("  No study sessions logged yet."))
		ui.Tip("`studyplan progress log <task-id> <minutes>` after you study.")
		fmt.Println()
		return nil
	}
	if progressLimit > 0 && len(entries) > progressLimit {
		entries = entries[:progressLimit]
	}

	all, err := s.tasks.All(ctx, s.userID)
	if err != nil {
		return err
	}
	titles := make(map[int]string, len(all))
	for _, t := range all {
		titles[t.ID] = t.Title
	}

	ui.Header(ui.IconClock + "Study sessions")
	fmt.Println()
	for _, p := range entries {
		line := fmt.Sprintf("  %s %7s  %s", ui.Muted.Render(p.Date.Format("Mon Jan 2")), ui.Minutes(p.Minutes), titles[p.TaskID])
		if p.Note != "" {
			line += ui.Muted.Render(" · " + p.Note)
		}
		fmt.Println(line)
	}
	fmt.Println()
	return nil
}
