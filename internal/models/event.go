package models

type EventType string

const (
	EventReminder    EventType = "reminder"
	EventMeeting     EventType = "meeting"
	EventCall        EventType = "call"
	EventTask        EventType = "task"
	EventWorkout     EventType = "workout"
	EventWork        EventType = "work"
	EventDevelopment EventType = "development"
	EventOther       EventType = "other"
)

// EventTypes lists every recognized calendar event type.
var EventTypes = []EventType{
	EventReminder, EventMeeting, EventCall, EventTask,
	EventWorkout, EventWork, EventDevelopment, EventOther,
}

type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`       // YYYY-MM-DD
	StartTime   string    `json:"start_time"` // HH:MM
	EndTime     string    `json:"end_time,omitempty"`
	Description string    `json:"description,omitempty"`
	Type        EventType `json:"type"`
	CreatedAt   string    `json:"created_at"` // RFC3339
}
