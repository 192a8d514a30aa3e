package cmd

import (
	"fmt"
	"strings"

	"github.com/rnwolfe/studyplan/internal/task"
	"github.com/rnwolfe/studyplan/internal/ui"
	"github.com/spf13/cobra"
)

var subjectPriority string

var subjectCmd = &cobra.Command{
	Use:     "subject",
	Aliases: []string{"sub"},
	Short:   "Manage the subjects you study",
	RunE:    runSubjectList,
}

var subjectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a subject",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSubjectAdd,
}

var subjectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List subjects with their open task counts",
	RunE:    runSubjectList,
}

func init() {
	subjectCmd.AddCommand(subjectAddCmd)
	subjectCmd.AddCommand(subjectListCmd)

	subjectAddCmd.Flags().StringVarP(&subjectPriority, "priority", "p", "med", "Priority: low, med, high")
}

func runSubjectAdd(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	prio, err := task.ParsePriority(subjectPriority)
	if err != nil {
		return err
	}

	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	id, err := s.subjects.Add(ctx, s.userID, name, prio)
	if err != nil {
		return err
	}

	fmt.Printf("  %s Added subject %s %s %s\n", ui.Success.Render("✓"), prio.Icon(),
		ui.Accent.Render(fmt.Sprintf("#%d", id)), ui.Tag.Render(strings.TrimSpace(name)))
	fmt.Println()
	return nil
}

func runSubjectList(cmd *cobra.Command, _ []string) error {
	ctx := commandContext(cmd)
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.Close()

	subjects, err := s.subjects.List(ctx, s.userID)
	if err != nil {
		return err
	}
	if len(subjects) == 0 {
		fmt.Println(ui.Muted.Render("  No subjects yet."))
		ui.Tip("`studyplan subject add <name>` to add one.")
		fmt.Println()
		return nil
	}

	pending, err := s.tasks.Pending(ctx, s.userID)
	if err != nil {
		return err
	}
	open := make(map[int]int)
	for _, t := range pending {
		open[t.SubjectID]++
	}

	ui.Header(ui.IconBook + " Subjects")
	fmt.Println()
	for _, sub := range subjects {
		fmt.Printf("  %s %s %-24s %s\n",
			ui.Muted.Render(fmt.Sprintf("#%-3d", sub.ID)),
			sub.Priority.Icon(),
			sub.Name,
			ui.Muted.Render(fmt.Sprintf("%d open", open[sub.ID])),
		)
	}
	fmt.Println()
	return nil
}
