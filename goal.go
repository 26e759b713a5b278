package daykeep

// Goal is a long-running objective with a 0-100 progress gauge.
type Goal struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Progress    int64  `json:"progress"`
	TargetDate  *int64 `json:"targetDate,omitempty"`
}

// Completed reports whether the goal reached full progress.
func (g Goal) Completed() bool { return g.Progress >= 100 }
