package cmd

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/rnwolfe/studyplan/internal/planner"
	"github.com/rnwolfe/studyplan/internal/task"
	"github.com/rnwolfe/studyplan/internal/ui"
	"github.com/spf13/cobra"
)

var taskCmd = &cobra.Command{
	Use:     "task",
	Aliases: []string{"t"},
	Short:   "Add, list and complete study tasks",
	RunE:    runTaskList,
}

var (
	taskSubject  string
	taskDue      string
	taskPriority string
	taskEvery    string
	taskUntil    string
	taskDesc     string

	taskSort     string
	taskShowAll  bool
	taskListSubj string
)

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskShowCmd)
	taskCmd.AddCommand(taskDoneCmd)
	taskCmd.AddCommand(taskUndoCmd)
	taskCmd.AddCommand(taskRmCmd)
	taskCmd.AddCommand(taskExpandCmd)

	taskAddCmd.Flags().StringVarP(&taskSubject, "subject", "s", "", "Subject name or ID (required)")
	taskAddCmd.Flags().StringVarP(&taskDue, "due", "d", "", `Due date: YYYY-MM-DD or "YYYY-MM-DD HH:MM" (required)`)
	taskAddCmd.Flags().StringVarP(&taskPriority, "priority", "p", "med", "Priority: low, med, high")
	taskAddCmd.Flags().StringVar(&taskEvery, "every", "", "Repeat: daily, weekly, biweekly, monthly")
	taskAddCmd.Flags().StringVar(&taskUntil, "until", "", "Last date a repeat may fall on")
	taskAddCmd.Flags().StringVar(&taskDesc, "desc", "", "Longer description")
	_ = taskAddCmd.MarkFlagRequired("subject")
	_ = taskAddCmd.MarkFlagRequired("due")

	for _, c := range []*cobra.Command{taskCmd, taskListCmd} {
		c.Flags().StringVar(&taskSort, "sort", string(planner.OrderDueAsc), "Sort key: "+orderNames())
		c.Flags().BoolVarP(&taskShowAll, "all", "a", false, "Include completed tasks")
		c.Flags().StringVarP(&taskListSubj, "subject", "s", "", "Only tasks in this subject")
	}
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a study task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	RunE:    runTaskList,
}

var taskShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one task in detail",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskShow,
}

var taskDoneCmd = &cobra.Command{
	Use:     "done <id>",
	Aliases: []string{"x"},
	Short:   "Mark a task complete",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskDone,
}

var taskUndoCmd = &cobra.Command{
	Use:   "undo <id>",
	Short: "Mark a task incomplete again",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskUndo,
}

var taskRmCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"remove"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskRm,
}

var taskExpandCmd = &cobra.Command{
	Use:   "expand <id>",
	Short: "Create the future occurrences of a recurring task",
	Long: `Create one task per repeat of a recurring task, from the first repeat after
its due date up to and including its --until date. The original task is left as is.`,
	Args: cobra.ExactArgs(1),
	RunE: runTaskExpand,
}

func orderNames() string {
	names := make([]string, 0, len(planner.Orders()))
	for _, o := range planner.Orders() {
		names = append(names, string(o))
	}
	return strings.Join(names, ", ")
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return fmt.Errorf("task title cannot be empty")
	}

	prio, err := task.ParsePriority(taskPriority)
	if err != nil {
		return err
	}
	due, err := task.ParseDue(taskDue, time.Local)
	if err != nil {
		return err
	}

	t := task.Task{
		Title:       title,
		Description: taskDesc,
		Due:         due,
		Priority:    prio,
	}
	if taskEvery != "" {
		freq, err := task.ParseFrequency(taskEvery)
		if err != nil {
			return err
		}
		t.Recurring = true
		t.Frequency = freq
	}
	if taskUntil != "" {
		if !t.Recurring {
			return fmt.Errorf("--until needs --every")
		}
		end, err := task.ParseDue(taskUntil, time.Local)
		if err != nil {
			return err
		}
		t.RecurrenceEnd = &end
	}

	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	sub, err := s.subjects.Resolve(ctx, s.userID, taskSubject)
	if err != nil {
		return fmt.Errorf("%w — use %s to see subjects", err, ui.Accent.Render("studyplan subject list"))
	}
	t.UserID = s.userID
	t.SubjectID = sub.ID

	id, err := s.tasks.Add(ctx, t)
	if err != nil {
		return err
	}

	fmt.Printf("  %s Added %s %s\n", ui.Success.Render("✓"), prio.Icon(), ui.Accent.Render(fmt.Sprintf("#%d", id)))
	fmt.Printf("    %s %s\n", title, ui.Tag.Render(sub.Name))
	fmt.Printf("    Due: %s\n", ui.Muted.Render(due.Format("Mon, Jan 2 15:04")))
	if t.Recurring {
		repeat := t.Frequency.Label()
		if t.RecurrenceEnd != nil {
			repeat += " until " + t.RecurrenceEnd.Format("Jan 2")
		}
		fmt.Printf("    Repeats: %s\n", ui.Muted.Render(repeat))
	}
	fmt.Println()
	return nil
}

func runTaskList(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := task.ListOptions{ShowDone: taskShowAll}
	if taskListSubj != "" {
		sub, err := s.subjects.Resolve(ctx, s.userID, taskListSubj)
		if err != nil {
			return err
		}
		opts.SubjectID = sub.ID
	}

	tasks, err := s.tasks.List(ctx, s.userID, opts)
	if err != nil {
		return err
	}
	if len(tasks) == 0 {
		fmt.Println(ui.Muted.Render("  No tasks."))
		ui.Tip("`studyplan task add <title> --subject <name> --due YYYY-MM-DD` to add one.")
		fmt.Println()
		return nil
	}

	now := time.Now()
	if err := planner.SortTasks(tasks, taskSort, now); err != nil {
		if !errors.Is(err, planner.ErrUnknownSortKey) {
			return err
		}
		log.Printf("warning: %v, showing tasks unsorted", err)
	}

	names, err := s.subjects.Names(ctx, s.userID)
	if err != nil {
		return err
	}

	ui.Header(fmt.Sprintf("%s Tasks (%d)", ui.IconBook, len(tasks)))
	fmt.Println()
	for _, t := range tasks {
		fmt.Println(renderTask(t, names, now))
	}
	fmt.Println()
	return nil
}

func runTaskShow(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	t, err := s.ownedTask(ctx, id)
	if err != nil {
		return err
	}
	sub, err := s.subjects.Get(ctx, s.userID, t.SubjectID)
	if err != nil {
		return err
	}
	minutes, err := s.progress.MinutesByTask(ctx, s.userID)
	if err != nil {
		return err
	}

	now := time.Now()
	status := "pending"
	switch {
	case t.Completed:
		status = "done"
	case t.IsOverdue(now):
		status = "overdue"
	}

	ui.Header(fmt.Sprintf("#%d %s", t.ID, t.Title))
	fmt.Println()
	ui.Kv("Subject", sub.Name)
	ui.Kv("Priority", t.Priority.String())
	ui.Kv("Due", t.Due.Format("Mon, Jan 2 2006 15:04"))
	ui.Kv("Status", status)
	if !t.Completed {
		ui.Kv("Urgency", fmt.Sprintf("%d", planner.UrgencyScore(*t, now)))
	}
	ui.Kv("Studied", ui.Minutes(minutes[t.ID]))
	if t.Recurring {
		repeat := t.Frequency.Label()
		if t.RecurrenceEnd != nil {
			repeat += " until " + t.RecurrenceEnd.Format("Jan 2 2006")
		}
		ui.Kv("Repeats", repeat)
	}
	if t.Description != "" {
		fmt.Println()
		fmt.Println("  " + t.Description)
	}
	fmt.Println()
	return nil
}

func runTaskDone(cmd *cobra.Command, args []string) error {
	return setTaskCompleted(cmd, args, true)
}

func runTaskUndo(cmd *cobra.Command, args []string) error {
	return setTaskCompleted(cmd, args, false)
}

func setTaskCompleted(cmd *cobra.Command, args []string, done bool) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	t, err := s.ownedTask(ctx, id)
	if err != nil {
		return err
	}
	if err := s.tasks.SetCompleted(ctx, s.userID, id, done); err != nil {
		return err
	}

	if done {
		fmt.Printf("  %s Done! %s\n", ui.Success.Render("✓"), ui.Muted.Render(t.Title))
	} else {
		fmt.Printf("  %s Reopened %s\n", ui.Success.Render("✓"), ui.Muted.Render(t.Title))
	}
	fmt.Println()
	return nil
}

func runTaskRm(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.tasks.Delete(ctx, s.userID, id); err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Removed #%d", id))
	return nil
}

func runTaskExpand(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	ids, err := s.engine().ExpandRecurrence(ctx, s.userID, id)
	if len(ids) > 0 {
		ui.Ok(fmt.Sprintf("Created %d occurrences: %s", len(ids), joinIDs(ids)))
	}
	switch {
	case errors.Is(err, planner.ErrAccessDenied):
		return fmt.Errorf("task #%d: %w", id, task.ErrNotFound)
	case errors.Is(err, planner.ErrInvalidRecurrenceEndDate):
		return fmt.Errorf("task #%d has no valid --until date: %w", id, err)
	case err != nil:
		return err
	}
	if len(ids) == 0 {
		ui.Inf("No repeats fall before the end date.")
	}
	return nil
}
