package models

// StateVersion is the current version of the persisted state tree. Version 1
// was the unversioned full blob; version 0 denotes the legacy narrow export
// shape (tasks + settings only). Older blobs are upgraded on load by the
// migration package.
const StateVersion = 2

// State is the full persisted state tree. Collections are ordered slices:
// entities keep insertion order and are keyed implicitly by their id.
type State struct {
	Version   int               `json:"version"`
	Settings  Settings          `json:"settings"`
	Tasks     []Task            `json:"tasks"`
	Projects  []Project         `json:"projects"`
	Events    []CalendarEvent   `json:"events"`
	Notes     []Note            `json:"notes"`
	Payments  []Payment         `json:"payments"`
	Expenses  []Expense         `json:"expenses"`
	Resources []ProjectResource `json:"resources"`
}

// NewState returns an empty state tree at the current version with default
// settings.
func NewState() State {
	return State{
		Version:   StateVersion,
		Settings:  DefaultSettings(),
		Tasks:     []Task{},
		Projects:  []Project{},
		Events:    []CalendarEvent{},
		Notes:     []Note{},
		Payments:  []Payment{},
		Expenses:  []Expense{},
		Resources: []ProjectResource{},
	}
}

// Clone returns a deep copy of the state tree.
func (s State) Clone() State {
	out := s
	out.Tasks = make([]Task, len(s.Tasks))
	for i, t := range s.Tasks {
		out.Tasks[i] = t
		out.Tasks[i].Tags = append([]string(nil), t.Tags...)
		out.Tasks[i].Sessions = make([]TimeSession, len(t.Sessions))
		for j, sess := range t.Sessions {
			out.Tasks[i].Sessions[j] = sess
			if sess.EndedAt != nil {
				end := *sess.EndedAt
				out.Tasks[i].Sessions[j].EndedAt = &end
			}
			if sess.DurationMs != nil {
				dur := *sess.DurationMs
				out.Tasks[i].Sessions[j].DurationMs = &dur
			}
		}
	}
	out.Projects = append([]Project(nil), s.Projects...)
	out.Events = append([]CalendarEvent(nil), s.Events...)
	out.Notes = make([]Note, len(s.Notes))
	for i, n := range s.Notes {
		out.Notes[i] = n
		out.Notes[i].Tags = append([]string(nil), n.Tags...)
	}
	out.Payments = append([]Payment(nil), s.Payments...)
	out.Expenses = append([]Expense(nil), s.Expenses...)
	out.Resources = append([]ProjectResource(nil), s.Resources...)
	return out
}
