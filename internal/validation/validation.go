// Package validation covers two concerns: field-level checks used by the CLI
// before a mutation, and whole-state integrity checks run by the doctor
// command.
package validation

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/julianstephens/tempo/internal/models"
	"github.com/julianstephens/tempo/internal/utils"
)

// ValidateTime checks an HH:MM clock string. Empty is allowed; callers that
// require a value check for emptiness themselves.
func ValidateTime(timeStr string) error {
	if timeStr == "" {
		return nil
	}
	if !utils.ValidTimeFormat(timeStr) {
		return fmt.Errorf("invalid time %q: expected HH:MM", timeStr)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string. Empty is allowed.
func ValidateDate(dateStr string) error {
	if dateStr == "" {
		return nil
	}
	if !utils.ValidDateFormat(dateStr) {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	return nil
}

// ValidateAmount checks a monetary amount.
func ValidateAmount(amount float64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %v", amount)
	}
	return nil
}

// ValidateCurrency checks a currency code. Any non-empty short uppercase-able
// code is accepted; this is bookkeeping, not an exchange.
func ValidateCurrency(currency string) error {
	c := strings.TrimSpace(currency)
	if c == "" {
		return fmt.Errorf("currency cannot be empty")
	}
	if len(c) > 8 {
		return fmt.Errorf("invalid currency %q", currency)
	}
	return nil
}

// ValidateURL checks that a link resource carries a parseable absolute URL.
func ValidateURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid URL %q", raw)
	}
	return nil
}

// ConflictType classifies a data integrity finding
type ConflictType string

const (
	ConflictDanglingProjectRef ConflictType = "dangling_project_ref"
	ConflictMultipleOpenTimers ConflictType = "multiple_open_timers"
	ConflictDurationMismatch   ConflictType = "duration_mismatch"
	ConflictNegativeDuration   ConflictType = "negative_duration"
	ConflictUnknownEnumValue   ConflictType = "unknown_enum_value"
	ConflictInvalidDateTime    ConflictType = "invalid_datetime"
)

// Conflict describes one integrity finding
type Conflict struct {
	Type        ConflictType
	Description string
	Items       []string // entity titles involved
	IDs         []string // entity ids involved
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No problems detected."
	}

	report := "Problems detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// CheckState inspects the full state tree for integrity problems: dangling
// project references, tasks with more than one open session, session
// duration arithmetic that does not match its endpoints, and enum values
// outside the recognized sets.
func CheckState(state models.State) Result {
	result := Result{Conflicts: []Conflict{}}

	projects := make(map[string]struct{}, len(state.Projects))
	for _, p := range state.Projects {
		projects[p.ID] = struct{}{}
	}

	checkProjectRef := func(kind, title, id, projectID string) {
		if projectID == "" {
			return
		}
		if _, ok := projects[projectID]; !ok {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDanglingProjectRef,
				Description: fmt.Sprintf("%s %q references unknown project %s", kind, title, projectID),
				Items:       []string{title},
				IDs:         []string{id},
			})
		}
	}

	for _, task := range state.Tasks {
		checkProjectRef("Task", task.Title, task.ID, task.ProjectID)

		open := 0
		for _, sess := range task.Sessions {
			if sess.Open() {
				open++
				continue
			}

			if sess.EndedAt != nil && *sess.EndedAt < sess.StartedAt {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictNegativeDuration,
					Description: fmt.Sprintf("Task %q has a session ending before it starts", task.Title),
					Items:       []string{task.Title},
					IDs:         []string{task.ID, sess.ID},
				})
			}
			if sess.EndedAt != nil && sess.DurationMs != nil && *sess.DurationMs != *sess.EndedAt-sess.StartedAt {
				result.Conflicts = append(result.Conflicts, Conflict{
					Type:        ConflictDurationMismatch,
					Description: fmt.Sprintf("Task %q has a session whose duration does not match its endpoints", task.Title),
					Items:       []string{task.Title},
					IDs:         []string{task.ID, sess.ID},
				})
			}
		}
		if open > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictMultipleOpenTimers,
				Description: fmt.Sprintf("Task %q has %d open time sessions, expected at most one", task.Title, open),
				Items:       []string{task.Title},
				IDs:         []string{task.ID},
			})
		}

		if !validTaskStatus(task.Status) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownEnumValue,
				Description: fmt.Sprintf("Task %q has unknown status %q", task.Title, task.Status),
				Items:       []string{task.Title},
				IDs:         []string{task.ID},
			})
		}
		if !validTaskPriority(task.Priority) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownEnumValue,
				Description: fmt.Sprintf("Task %q has unknown priority %q", task.Title, task.Priority),
				Items:       []string{task.Title},
				IDs:         []string{task.ID},
			})
		}
		if task.Date != "" && !utils.ValidDateFormat(task.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Task %q has invalid date %q", task.Title, task.Date),
				Items:       []string{task.Title},
				IDs:         []string{task.ID},
			})
		}
	}

	for _, event := range state.Events {
		if !validEventType(event.Type) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownEnumValue,
				Description: fmt.Sprintf("Event %q has unknown type %q", event.Title, event.Type),
				Items:       []string{event.Title},
				IDs:         []string{event.ID},
			})
		}
		if event.Date != "" && !utils.ValidDateFormat(event.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDateTime,
				Description: fmt.Sprintf("Event %q has invalid date %q", event.Title, event.Date),
				Items:       []string{event.Title},
				IDs:         []string{event.ID},
			})
		}
	}

	for _, payment := range state.Payments {
		checkProjectRef("Payment", payment.Description, payment.ID, payment.ProjectID)
	}
	for _, expense := range state.Expenses {
		checkProjectRef("Expense", expense.Description, expense.ID, expense.ProjectID)
	}
	for _, resource := range state.Resources {
		checkProjectRef("Resource", resource.Title, resource.ID, resource.ProjectID)
		if !validResourceType(resource.Type) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownEnumValue,
				Description: fmt.Sprintf("Resource %q has unknown type %q", resource.Title, resource.Type),
				Items:       []string{resource.Title},
				IDs:         []string{resource.ID},
			})
		}
	}

	return result
}

func validTaskStatus(s models.TaskStatus) bool {
	switch s {
	case models.TaskPlanned, models.TaskInProgress, models.TaskCompleted, models.TaskCancelled:
		return true
	}
	return false
}

func validTaskPriority(p models.TaskPriority) bool {
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}

func validEventType(t models.EventType) bool {
	for _, known := range models.EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

func validResourceType(t models.ResourceType) bool {
	for _, known := range models.ResourceTypes {
		if t == known {
			return true
		}
	}
	return false
}
