// Package tips holds the rotating command tips shown on the dashboard.
package tips

import "time"

var all = []string{
	"`studyplan plan --strategy deadline` to see only what is due in the next three days.",
	"`studyplan plan --hours 3` to plan a lighter day.",
	"`studyplan plan week -i` to walk the week and tick tasks off as you go.",
	"`studyplan plan suggest 3` for the three tasks that need you most.",
	"`studyplan plan balance` to give every subject some attention today.",
	"`studyplan task add \"flashcards\" -s spanish -d 2024-09-01 --every week` to repeat a task weekly.",
	"`studyplan task expand <id>` to create every future occurrence of a recurring task.",
	"`studyplan task --sort smart` to list overdue and high-priority work first.",
	"`studyplan task --all` to include completed tasks in the list.",
	"`studyplan task undo <id>` to reopen a task you marked done by mistake.",
	"`studyplan progress log <id> 45` to record a 45-minute session.",
	"`studyplan stats --days 30` to see a month of study time.",
	"`studyplan subject add physics -p high` to weight a subject's new tasks.",
	"`studyplan config set schedule.strategy priority` to change the default strategy.",
	"`studyplan config set schedule.max_hours 4` to change the default daily budget.",
	"`studyplan config list` to see every setting and its default.",
}

// All returns all tips in the pool.
func All() []string {
	return all
}

// Daily returns a deterministic tip for the given day.
func Daily(t time.Time) string {
	return all[t.YearDay()%len(all)]
}
