package models

type TaskStatus string

const (
	TaskPlanned    TaskStatus = "planned"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// TimeSession is a single tracked work interval on a task. A session with no
// end instant is "open"; a task has at most one open session at a time.
type TimeSession struct {
	ID         string `json:"id"`
	StartedAt  int64  `json:"started_at"`            // epoch milliseconds
	EndedAt    *int64 `json:"ended_at,omitempty"`    // epoch milliseconds, nil while open
	DurationMs *int64 `json:"duration_ms,omitempty"` // EndedAt - StartedAt
	StartClock string `json:"start_clock"`           // HH:MM wall clock captured at open
	EndClock   string `json:"end_clock,omitempty"`   // HH:MM wall clock captured at close
}

// Open reports whether the session has not been closed yet.
func (s TimeSession) Open() bool {
	return s.EndedAt == nil
}

type Task struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Date         string        `json:"date"`                 // YYYY-MM-DD
	StartTime    string        `json:"start_time,omitempty"` // HH:MM display field
	EndTime      string        `json:"end_time,omitempty"`   // HH:MM display field
	Status       TaskStatus    `json:"status"`
	Priority     TaskPriority  `json:"priority"`
	Tags         []string      `json:"tags,omitempty"`
	ProjectID    string        `json:"project_id,omitempty"`
	EstimatedMin int           `json:"estimated_min,omitempty"`
	Sessions     []TimeSession `json:"sessions,omitempty"`
	CreatedAt    string        `json:"created_at"` // RFC3339
}

// OpenSession returns a pointer to the task's open session, or nil when every
// session is closed.
func (t *Task) OpenSession() *TimeSession {
	for i := range t.Sessions {
		if t.Sessions[i].Open() {
			return &t.Sessions[i]
		}
	}
	return nil
}
