package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/studyplan/internal/planner"
	"github.com/rnwolfe/studyplan/internal/task"
	"github.com/rnwolfe/studyplan/internal/ui"
)

// WeekModel is a Bubbletea model for browsing a seven-day plan. Marking a
// task done is recorded in Completed for the caller to persist on exit.
type WeekModel struct {
	days     [planner.DaysPerWeek]planner.DayPlan
	subjects map[int]string
	now      time.Time

	day    int
	cursor int

	// Completed holds task IDs marked done, in the order they were marked.
	Completed []int
	done      map[int]bool

	width    int
	height   int
	quitting bool
}

// NewWeekModel creates a WeekModel over a weekly plan.
func NewWeekModel(days [planner.DaysPerWeek]planner.DayPlan, subjects map[int]string, now time.Time) *WeekModel {
	return &WeekModel{
		days:     days,
		subjects: subjects,
		now:      now,
		done:     make(map[int]bool),
		width:    80,
		height:   24,
	}
}

// RunWeek launches the weekly plan browser and returns the IDs of tasks the
// user marked done.
func RunWeek(days [planner.DaysPerWeek]planner.DayPlan, subjects map[int]string, now time.Time) ([]int, error) {
	m := NewWeekModel(days, subjects, now)
	result, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("week tui: %w", err)
	}
	return result.(*WeekModel).Completed, nil
}

func (m *WeekModel) Init() tea.Cmd {
	return nil
}

func (m *WeekModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *WeekModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.days[m.day].Tasks

	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "l", "right", "tab":
		if m.day < planner.DaysPerWeek-1 {
			m.day++
			m.cursor = 0
		}

	case "h", "left", "shift+tab":
		if m.day > 0 {
			m.day--
			m.cursor = 0
		}

	case "j", "down":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "x", " ", "enter":
		if len(tasks) == 0 {
			break
		}
		id := tasks[m.cursor].ID
		if m.done[id] {
			break
		}
		m.done[id] = true
		m.Completed = append(m.Completed, id)
	}
	return m, nil
}

func (m *WeekModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	b.WriteString(m.renderTabs() + "\n\n")

	plan := m.days[m.day]
	header := fmt.Sprintf("  %s%s", ui.IconPlan, plan.Date.Format("Monday, Jan 2"))
	b.WriteString(ui.Title.Render(header))
	b.WriteString(ui.Muted.Render(fmt.Sprintf("  %s · %s budget", plan.Strategy, ui.Minutes(plan.Budget))) + "\n\n")

	if len(plan.Tasks) == 0 {
		b.WriteString("  " + ui.Muted.Render("Nothing scheduled.") + "\n")
	}
	used := 0
	for i, t := range plan.Tasks {
		used += planner.EstimateMinutes(t)
		b.WriteString(m.renderTask(t, i == m.cursor) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(fmt.Sprintf("  %d tasks · %s planned · %d marked done", len(plan.Tasks), ui.Minutes(used), len(m.Completed))) + "\n")
	b.WriteString(ui.Muted.Render("  h/l day · j/k move · x done · q quit") + "\n")
	return b.String()
}

func (m *WeekModel) renderTabs() string {
	active := lipgloss.NewStyle().Foreground(ui.Chalk).Background(ui.Board).Bold(true).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(ui.Dim).Padding(0, 1)

	tabs := make([]string, 0, planner.DaysPerWeek)
	for i, d := range m.days {
		label := fmt.Sprintf("%s %d", d.Date.Format("Mon"), len(d.Tasks))
		if i == m.day {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, inactive.Render(label))
		}
	}
	return "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *WeekModel) renderTask(t task.Task, selected bool) string {
	pointer := "  "
	titleStyle := lipgloss.NewStyle()
	if selected {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		titleStyle = titleStyle.Foreground(ui.Pencil).Bold(true)
	}

	marker := " "
	title := titleStyle.Render(t.Title)
	if m.done[t.ID] {
		marker = ui.Success.Render("✓")
		title = ui.Muted.Render(t.Title)
	}

	line := fmt.Sprintf("  %s %s %s %s %s", pointer, marker,
		ui.Muted.Render(fmt.Sprintf("#%-3d", t.ID)), t.Priority.Icon(), title)
	if name, ok := m.subjects[t.SubjectID]; ok {
		line += " " + ui.Tag.Render(name)
	}
	if t.IsOverdue(m.now) {
		line += ui.Error.Render(fmt.Sprintf(" (overdue: %s)", t.Due.Format("Jan 2")))
	} else {
		line += ui.Muted.Render(fmt.Sprintf(" (due %s)", t.Due.Format("Jan 2 15:04")))
	}
	return line
}
