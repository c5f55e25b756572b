package store

import (
	"sort"

	"github.com/julianstephens/tempo/internal/models"
)

// Derived queries. All of these are linear scans over the in-memory
// collections, which is fine at single-user scale.

// TasksOn returns the tasks scheduled for the given date (YYYY-MM-DD).
func (s *Store) TasksOn(date string) ([]models.Task, error) {
	tasks, err := s.provider.GetAllTasks()
	if err != nil {
		return nil, err
	}

	var out []models.Task
	for _, t := range tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out, nil
}

// TasksForProject returns the tasks referencing the given project.
func (s *Store) TasksForProject(projectID string) ([]models.Task, error) {
	tasks, err := s.provider.GetAllTasks()
	if err != nil {
		return nil, err
	}

	var out []models.Task
	for _, t := range tasks {
		if t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

// TasksWithTag returns the tasks carrying the given tag.
func (s *Store) TasksWithTag(tag string) ([]models.Task, error) {
	tasks, err := s.provider.GetAllTasks()
	if err != nil {
		return nil, err
	}

	var out []models.Task
	for _, t := range tasks {
		for _, tg := range t.Tags {
			if tg == tag {
				out = append(out, t)
				break
			}
		}
	}
	return out, nil
}

// EventsOn returns the calendar events for the given date.
func (s *Store) EventsOn(date string) ([]models.CalendarEvent, error) {
	events, err := s.provider.GetAllEvents()
	if err != nil {
		return nil, err
	}

	var out []models.CalendarEvent
	for _, e := range events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

// NotesWithTag returns the notes carrying the given tag.
func (s *Store) NotesWithTag(tag string) ([]models.Note, error) {
	notes, err := s.provider.GetAllNotes()
	if err != nil {
		return nil, err
	}

	var out []models.Note
	for _, n := range notes {
		for _, tg := range n.Tags {
			if tg == tag {
				out = append(out, n)
				break
			}
		}
	}
	return out, nil
}

// AllTags returns every tag used by tasks and notes, deduplicated and
// sorted.
func (s *Store) AllTags() ([]string, error) {
	tasks, err := s.provider.GetAllTasks()
	if err != nil {
		return nil, err
	}
	notes, err := s.provider.GetAllNotes()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, t := range tasks {
		for _, tag := range t.Tags {
			seen[tag] = struct{}{}
		}
	}
	for _, n := range notes {
		for _, tag := range n.Tags {
			seen[tag] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for tag := range seen {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags, nil
}

// Categories returns every project category in use, deduplicated and
// sorted. Empty categories are skipped.
func (s *Store) Categories() ([]string, error) {
	projects, err := s.provider.GetAllProjects()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, p := range projects {
		if p.Category != "" {
			seen[p.Category] = struct{}{}
		}
	}

	categories := make([]string, 0, len(seen))
	for c := range seen {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	return categories, nil
}

// PaymentsForProject returns the payments recorded against the project.
func (s *Store) PaymentsForProject(projectID string) ([]models.Payment, error) {
	payments, err := s.provider.GetAllPayments()
	if err != nil {
		return nil, err
	}

	var out []models.Payment
	for _, p := range payments {
		if p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}

// ExpensesForProject returns the expenses recorded against the project.
func (s *Store) ExpensesForProject(projectID string) ([]models.Expense, error) {
	expenses, err := s.provider.GetAllExpenses()
	if err != nil {
		return nil, err
	}

	var out []models.Expense
	for _, e := range expenses {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out, nil
}

// ResourcesForProject returns the resources attached to the project.
func (s *Store) ResourcesForProject(projectID string) ([]models.ProjectResource, error) {
	resources, err := s.provider.GetAllResources()
	if err != nil {
		return nil, err
	}

	var out []models.ProjectResource
	for _, r := range resources {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out, nil
}

// FinanceSummary aggregates a project's payments and expenses per currency.
type FinanceSummary struct {
	Received map[string]float64 // currency -> total payments
	Spent    map[string]float64 // currency -> total expenses
}

// ProjectFinance folds the project's payments and expenses into per-currency
// totals.
func (s *Store) ProjectFinance(projectID string) (FinanceSummary, error) {
	summary := FinanceSummary{
		Received: make(map[string]float64),
		Spent:    make(map[string]float64),
	}

	payments, err := s.PaymentsForProject(projectID)
	if err != nil {
		return FinanceSummary{}, err
	}
	for _, p := range payments {
		summary.Received[p.Currency] += p.Amount
	}

	expenses, err := s.ExpensesForProject(projectID)
	if err != nil {
		return FinanceSummary{}, err
	}
	for _, e := range expenses {
		summary.Spent[e.Currency] += e.Amount
	}

	return summary, nil
}
