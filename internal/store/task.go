package store

import "github.com/julianstephens/tempo/internal/models"

// TaskInput carries the caller-supplied fields for a new task. The store
// fills in the id, creation timestamp, and an empty session list. No
// semantic validation happens here; the CLI layer validates before calling.
type TaskInput struct {
	Title        string
	Date         string
	StartTime    string
	EndTime      string
	Status       models.TaskStatus
	Priority     models.TaskPriority
	Tags         []string
	ProjectID    string
	EstimatedMin int
}

// AddTask appends a new task to the collection and persists it.
func (s *Store) AddTask(input TaskInput) (models.Task, error) {
	task := models.Task{
		ID:           s.newID(),
		Title:        input.Title,
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Status:       input.Status,
		Priority:     input.Priority,
		Tags:         append([]string(nil), input.Tags...),
		ProjectID:    input.ProjectID,
		EstimatedMin: input.EstimatedMin,
		Sessions:     []models.TimeSession{},
		CreatedAt:    s.timestamp(),
	}
	if task.Status == "" {
		task.Status = models.TaskPlanned
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}

	if err := s.provider.AddTask(task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// TaskPatch is a shallow-merge patch for a task. Nil fields keep their prior
// values; setting ProjectID to the empty string clears the project reference.
type TaskPatch struct {
	Title        *string
	Date         *string
	StartTime    *string
	EndTime      *string
	Status       *models.TaskStatus
	Priority     *models.TaskPriority
	Tags         *[]string
	ProjectID    *string
	EstimatedMin *int
}

// UpdateTask merges the patch into the task with the given id. Unknown ids
// are a silent no-op: callers are trusted to hold ids obtained from the
// store, and a stale id is not an error condition.
func (s *Store) UpdateTask(id string, patch TaskPatch) error {
	task, err := s.provider.GetTask(id)
	if err != nil {
		return nil
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Date != nil {
		task.Date = *patch.Date
	}
	if patch.StartTime != nil {
		task.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		task.EndTime = *patch.EndTime
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Tags != nil {
		task.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.ProjectID != nil {
		task.ProjectID = *patch.ProjectID
	}
	if patch.EstimatedMin != nil {
		task.EstimatedMin = *patch.EstimatedMin
	}

	return s.provider.UpdateTask(task)
}

// DeleteTask removes the task with the given id; unknown ids are a no-op.
func (s *Store) DeleteTask(id string) error {
	if _, err := s.provider.GetTask(id); err != nil {
		return nil
	}
	return s.provider.DeleteTask(id)
}

// Task returns the task with the given id.
func (s *Store) Task(id string) (models.Task, error) {
	return s.provider.GetTask(id)
}

// Tasks returns every task in insertion order.
func (s *Store) Tasks() ([]models.Task, error) {
	return s.provider.GetAllTasks()
}
