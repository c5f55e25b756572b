package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/tempo/internal/migration"
	"github.com/julianstephens/tempo/internal/models"
)

// JSONStore persists the full state tree as one pretty-printed JSON blob.
// Every mutation rewrites the whole file; Load reads it once at startup.
type JSONStore struct {
	path  string
	state *models.State
}

func NewJSONStore(dataPath string) *JSONStore {
	return &JSONStore{
		path: dataPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	st := models.NewState()
	s.state = &st
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'tempo init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	var probe struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	switch {
	case probe.Version == models.StateVersion:
		st := models.State{}
		if err := json.Unmarshal(data, &st); err != nil {
			return fmt.Errorf("failed to parse storage: %w", err)
		}
		ensureCollections(&st)
		s.state = &st
	case probe.Version > models.StateVersion:
		return fmt.Errorf("storage version %d is newer than supported version %d, upgrade tempo", probe.Version, models.StateVersion)
	default:
		// Older or unversioned blob: upgrade, then persist the upgraded tree
		st, err := migration.UpgradeJSON(data)
		if err != nil {
			return fmt.Errorf("failed to upgrade storage: %w", err)
		}
		s.state = &st
		return s.save()
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

// ensureCollections replaces nil collection slices so that callers never see
// nil after a load.
func ensureCollections(st *models.State) {
	if st.Tasks == nil {
		st.Tasks = []models.Task{}
	}
	if st.Projects == nil {
		st.Projects = []models.Project{}
	}
	if st.Events == nil {
		st.Events = []models.CalendarEvent{}
	}
	if st.Notes == nil {
		st.Notes = []models.Note{}
	}
	if st.Payments == nil {
		st.Payments = []models.Payment{}
	}
	if st.Expenses == nil {
		st.Expenses = []models.Expense{}
	}
	if st.Resources == nil {
		st.Resources = []models.ProjectResource{}
	}
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.state == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.state.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.Settings = settings
	return s.save()
}

func (s *JSONStore) AddTask(task models.Task) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.Tasks = append(s.state.Tasks, task)
	return s.save()
}

func (s *JSONStore) GetTask(id string) (models.Task, error) {
	if s.state == nil {
		return models.Task{}, fmt.Errorf("storage not loaded")
	}
	for _, t := range s.state.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("task not found: %s", id)
}

func (s *JSONStore) GetAllTasks() ([]models.Task, error) {
	if s.state == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.Task(nil), s.state.Tasks...), nil
}

func (s *JSONStore) UpdateTask(task models.Task) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == task.ID {
			s.state.Tasks[i] = task
			return s.save()
		}
	}
	return fmt.Errorf("task not found: %s", task.ID)
}

func (s *JSONStore) DeleteTask(id string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			s.state.Tasks = append(s.state.Tasks[:i], s.state.Tasks[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("task not found: %s", id)
}

func (s *JSONStore) AddProject(project models.Project) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.Projects = append(s.state.Projects, project)
	return s.save()
}

func (s *JSONStore) GetProject(id string) (models.Project, error) {
	if s.state == nil {
		return models.Project{}, fmt.Errorf("storage not loaded")
	}
	for _, p := range s.state.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("project not found: %s", id)
}

func (s *JSONStore) GetAllProjects() ([]models.Project, error) {
	if s.state == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.Project(nil), s.state.Projects...), nil
}

func (s *JSONStore) UpdateProject(project models.Project) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Projects {
		if s.state.Projects[i].ID == project.ID {
			s.state.Projects[i] = project
			return s.save()
		}
	}
	return fmt.Errorf("project not found: %s", project.ID)
}

func (s *JSONStore) DeleteProject(id string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Projects {
		if s.state.Projects[i].ID == id {
			s.state.Projects = append(s.state.Projects[:i], s.state.Projects[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("project not found: %s", id)
}

func (s *JSONStore) AddEvent(event models.CalendarEvent) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.Events = append(s.state.Events, event)
	return s.save()
}

func (s *JSONStore) GetEvent(id string) (models.CalendarEvent, error) {
	if s.state == nil {
		return models.CalendarEvent{}, fmt.Errorf("storage not loaded")
	}
	for _, e := range s.state.Events {
		if e.ID == id {
			return e, nil
		}
	}
	return models.CalendarEvent{}, fmt.Errorf("event not found: %s", id)
}

func (s *JSONStore) GetAllEvents() ([]models.CalendarEvent, error) {
	if s.state == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.CalendarEvent(nil), s.state.Events...), nil
}

func (s *JSONStore) UpdateEvent(event models.CalendarEvent) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Events {
		if s.state.Events[i].ID == event.ID {
			s.state.Events[i] = event
			return s.save()
		}
	}
	return fmt.Errorf("event not found: %s", event.ID)
}

func (s *JSONStore) DeleteEvent(id string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Events {
		if s.state.Events[i].ID == id {
			s.state.Events = append(s.state.Events[:i], s.state.Events[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("event not found: %s", id)
}

func (s *JSONStore) AddNote(note models.Note) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.Notes = append(s.state.Notes, note)
	return s.save()
}

func (s *JSONStore) GetNote(id string) (models.Note, error) {
	if s.state == nil {
		return models.Note{}, fmt.Errorf("storage not loaded")
	}
	for _, n := range s.state.Notes {
		if n.ID == id {
			return n, nil
		}
	}
	return models.Note{}, fmt.Errorf("note not found: %s", id)
}

func (s *JSONStore) GetAllNotes() ([]models.Note, error) {
	if s.state == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.Note(nil), s.state.Notes...), nil
}

func (s *JSONStore) UpdateNote(note models.Note) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Notes {
		if s.state.Notes[i].ID == note.ID {
			s.state.Notes[i] = note
			return s.save()
		}
	}
	return fmt.Errorf("note not found: %s", note.ID)
}

func (s *JSONStore) DeleteNote(id string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Notes {
		if s.state.Notes[i].ID == id {
			s.state.Notes = append(s.state.Notes[:i], s.state.Notes[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("note not found: %s", id)
}

func (s *JSONStore) AddPayment(payment models.Payment) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.Payments = append(s.state.Payments, payment)
	return s.save()
}

func (s *JSONStore) GetPayment(id string) (models.Payment, error) {
	if s.state == nil {
		return models.Payment{}, fmt.Errorf("storage not loaded")
	}
	for _, p := range s.state.Payments {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Payment{}, fmt.Errorf("payment not found: %s", id)
}

func (s *JSONStore) GetAllPayments() ([]models.Payment, error) {
	if s.state == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.Payment(nil), s.state.Payments...), nil
}

func (s *JSONStore) UpdatePayment(payment models.Payment) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Payments {
		if s.state.Payments[i].ID == payment.ID {
			s.state.Payments[i] = payment
			return s.save()
		}
	}
	return fmt.Errorf("payment not found: %s", payment.ID)
}

func (s *JSONStore) DeletePayment(id string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Payments {
		if s.state.Payments[i].ID == id {
			s.state.Payments = append(s.state.Payments[:i], s.state.Payments[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("payment not found: %s", id)
}

func (s *JSONStore) AddExpense(expense models.Expense) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.Expenses = append(s.state.Expenses, expense)
	return s.save()
}

func (s *JSONStore) GetExpense(id string) (models.Expense, error) {
	if s.state == nil {
		return models.Expense{}, fmt.Errorf("storage not loaded")
	}
	for _, e := range s.state.Expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return models.Expense{}, fmt.Errorf("expense not found: %s", id)
}

func (s *JSONStore) GetAllExpenses() ([]models.Expense, error) {
	if s.state == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.Expense(nil), s.state.Expenses...), nil
}

func (s *JSONStore) UpdateExpense(expense models.Expense) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Expenses {
		if s.state.Expenses[i].ID == expense.ID {
			s.state.Expenses[i] = expense
			return s.save()
		}
	}
	return fmt.Errorf("expense not found: %s", expense.ID)
}

func (s *JSONStore) DeleteExpense(id string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Expenses {
		if s.state.Expenses[i].ID == id {
			s.state.Expenses = append(s.state.Expenses[:i], s.state.Expenses[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("expense not found: %s", id)
}

func (s *JSONStore) AddResource(resource models.ProjectResource) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.state.Resources = append(s.state.Resources, resource)
	return s.save()
}

func (s *JSONStore) GetResource(id string) (models.ProjectResource, error) {
	if s.state == nil {
		return models.ProjectResource{}, fmt.Errorf("storage not loaded")
	}
	for _, r := range s.state.Resources {
		if r.ID == id {
			return r, nil
		}
	}
	return models.ProjectResource{}, fmt.Errorf("resource not found: %s", id)
}

func (s *JSONStore) GetAllResources() ([]models.ProjectResource, error) {
	if s.state == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return append([]models.ProjectResource(nil), s.state.Resources...), nil
}

func (s *JSONStore) UpdateResource(resource models.ProjectResource) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Resources {
		if s.state.Resources[i].ID == resource.ID {
			s.state.Resources[i] = resource
			return s.save()
		}
	}
	return fmt.Errorf("resource not found: %s", resource.ID)
}

func (s *JSONStore) DeleteResource(id string) error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}
	for i := range s.state.Resources {
		if s.state.Resources[i].ID == id {
			s.state.Resources = append(s.state.Resources[:i], s.state.Resources[i+1:]...)
			return s.save()
		}
	}
	return fmt.Errorf("resource not found: %s", id)
}

func (s *JSONStore) Snapshot() (models.State, error) {
	if s.state == nil {
		return models.State{}, fmt.Errorf("storage not loaded")
	}
	return s.state.Clone(), nil
}

func (s *JSONStore) Replace(state models.State) error {
	ensureCollections(&state)
	state.Version = models.StateVersion
	s.state = &state
	return s.save()
}

// GetDataPath returns the path to the underlying storage file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple tempo processes that share the same data path at the
//     same time is not supported and may lead to data loss or corruption.
func (s *JSONStore) GetDataPath() string {
	return s.path
}
