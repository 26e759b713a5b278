package daykeep

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TaskKind is the scheduling family of a task.
type TaskKind int

const (
	// TaskDaily repeats every day.
	TaskDaily TaskKind = iota
	// TaskWeekend repeats on Saturdays and Sundays.
	TaskWeekend
	// TaskDayOfWeek repeats on one weekday (Monday through Friday).
	TaskDayOfWeek
)

// TaskType is a closed variant: daily, weekend, or a single weekday.
type TaskType struct {
	Kind    TaskKind
	Weekday time.Weekday // meaningful only for TaskDayOfWeek
}

func DailyTask() TaskType   { return TaskType{Kind: TaskDaily} }
func WeekendTask() TaskType { return TaskType{Kind: TaskWeekend} }
func DayOfWeekTask(w time.Weekday) TaskType {
	return TaskType{Kind: TaskDayOfWeek, Weekday: w}
}

func (t TaskType) String() string {
	switch t.Kind {
	case TaskDaily:
		return "daily"
	case TaskWeekend:
		return "weekend"
	case TaskDayOfWeek:
		return strings.ToLower(t.Weekday.String())
	default:
		return "unknown"
	}
}

// Label is the human-readable section label for the task's type.
func (t TaskType) Label() string {
	switch t.Kind {
	case TaskDaily:
		return "Recurring Daily Tasks"
	case TaskWeekend:
		return "Weekend Tasks"
	default:
		return "Day-of-Week Tasks"
	}
}

// ParseTaskType parses "daily", "weekend", or a weekday name (Monday to
// Friday; weekend days belong to the weekend kind).
func ParseTaskType(s string) (TaskType, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "daily":
		return DailyTask(), nil
	case "weekend":
		return WeekendTask(), nil
	case "monday", "tuesday", "wednesday", "thursday", "friday":
		for w := time.Monday; w <= time.Friday; w++ {
			if strings.ToLower(w.String()) == v {
				return DayOfWeekTask(w), nil
			}
		}
	}
	return TaskType{}, fmt.Errorf("unknown task type %q", s)
}

func (t TaskType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TaskType) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParseTaskType(str)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Task is a tracked to-do item.
type Task struct {
	ID          int64    `json:"id"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	DueDate     *int64   `json:"dueDate,omitempty"`
	Type        TaskType `json:"taskType"`
	CreatedAt   int64    `json:"createdAt"`
}

// Overdue reports whether the task is pending with a due date in the past.
func (t Task) Overdue(now time.Time) bool {
	return !t.Completed && t.DueDate != nil && *t.DueDate < now.UnixNano()
}
