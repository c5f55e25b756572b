package storage

import "github.com/julianstephens/tempo/internal/models"

// Provider is the persistence backend behind the state store. Implementations
// are not safe for concurrent use; tempo is a single-process, single-user
// application and runs one operation at a time.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id string) error

	// Projects
	AddProject(models.Project) error
	GetProject(id string) (models.Project, error)
	GetAllProjects() ([]models.Project, error)
	UpdateProject(models.Project) error
	DeleteProject(id string) error

	// Calendar events
	AddEvent(models.CalendarEvent) error
	GetEvent(id string) (models.CalendarEvent, error)
	GetAllEvents() ([]models.CalendarEvent, error)
	UpdateEvent(models.CalendarEvent) error
	DeleteEvent(id string) error

	// Notes
	AddNote(models.Note) error
	GetNote(id string) (models.Note, error)
	GetAllNotes() ([]models.Note, error)
	UpdateNote(models.Note) error
	DeleteNote(id string) error

	// Payments
	AddPayment(models.Payment) error
	GetPayment(id string) (models.Payment, error)
	GetAllPayments() ([]models.Payment, error)
	UpdatePayment(models.Payment) error
	DeletePayment(id string) error

	// Expenses
	AddExpense(models.Expense) error
	GetExpense(id string) (models.Expense, error)
	GetAllExpenses() ([]models.Expense, error)
	UpdateExpense(models.Expense) error
	DeleteExpense(id string) error

	// Project resources
	AddResource(models.ProjectResource) error
	GetResource(id string) (models.ProjectResource, error)
	GetAllResources() ([]models.ProjectResource, error)
	UpdateResource(models.ProjectResource) error
	DeleteResource(id string) error

	// Bulk state access for export, import, and backup verification.
	// Snapshot returns a deep copy of the full state tree; Replace swaps the
	// whole tree in one operation and persists it.
	Snapshot() (models.State, error)
	Replace(models.State) error

	// Utils
	GetDataPath() string
}
