package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/tempo/internal/migration"
	"github.com/julianstephens/tempo/internal/models"
	"github.com/julianstephens/tempo/migrations"
)

// SQLiteStore persists the state tree in a SQLite database. Collections keep
// their insertion order through a position column.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(nil); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		if err := s.SaveSettings(models.DefaultSettings()); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'tempo init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	runner, err := s.migrationRunner()
	if err != nil {
		return err
	}
	return runner.ValidateVersion()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) migrationRunner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS), nil
}

func (s *SQLiteStore) runMigrations(logFn func(string)) error {
	runner, err := s.migrationRunner()
	if err != nil {
		return err
	}
	_, err = runner.Apply(logFn)
	return err
}

// Migrate applies pending schema migrations, logging progress through logFn.
func (s *SQLiteStore) Migrate(logFn func(string)) (int, error) {
	runner, err := s.migrationRunner()
	if err != nil {
		return 0, err
	}
	return runner.Apply(logFn)
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	row := s.db.QueryRow(`SELECT default_view, theme, notifications, week_start, day_start, day_end FROM settings WHERE id = 1`)

	var st models.Settings
	err := row.Scan(&st.DefaultView, &st.Theme, &st.Notifications, &st.WeekStart, &st.DayStart, &st.DayEnd)
	if err != nil {
		return models.Settings{}, err
	}
	return st, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (id, default_view, theme, notifications, week_start, day_start, day_end)
		VALUES (1, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			default_view = excluded.default_view,
			theme = excluded.theme,
			notifications = excluded.notifications,
			week_start = excluded.week_start,
			day_start = excluded.day_start,
			day_end = excluded.day_end`,
		settings.DefaultView, settings.Theme, settings.Notifications,
		settings.WeekStart, settings.DayStart, settings.DayEnd)
	return err
}

func (s *SQLiteStore) AddTask(task models.Task) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if err := insertTask(tx, task); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func insertTask(tx *sql.Tx, task models.Task) error {
	tags, err := json.Marshal(task.Tags)
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO tasks (id, position, title, date, start_time, end_time, status, priority, tags, project_id, estimated_min, created_at)
		VALUES (?, (SELECT COALESCE(MAX(position)+1, 0) FROM tasks), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, task.Title, task.Date, task.StartTime, task.EndTime,
		string(task.Status), string(task.Priority), string(tags),
		task.ProjectID, task.EstimatedMin, task.CreatedAt)
	if err != nil {
		return err
	}
	return insertSessions(tx, task)
}

func insertSessions(tx *sql.Tx, task models.Task) error {
	for i, sess := range task.Sessions {
		_, err := tx.Exec(`
			INSERT INTO time_sessions (id, task_id, position, started_at, ended_at, duration_ms, start_clock, end_clock)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			sess.ID, task.ID, i, sess.StartedAt, sess.EndedAt, sess.DurationMs,
			sess.StartClock, sess.EndClock)
		if err != nil {
			return err
		}
	}
	return nil
}

const taskColumns = `id, title, date, start_time, end_time, status, priority, tags, project_id, estimated_min, created_at`

func (s *SQLiteStore) scanTask(row interface{ Scan(...any) error }) (models.Task, error) {
	var t models.Task
	var status, priority, tags string

	err := row.Scan(&t.ID, &t.Title, &t.Date, &t.StartTime, &t.EndTime,
		&status, &priority, &tags, &t.ProjectID, &t.EstimatedMin, &t.CreatedAt)
	if err != nil {
		return models.Task{}, err
	}

	t.Status = models.TaskStatus(status)
	t.Priority = models.TaskPriority(priority)
	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return models.Task{}, fmt.Errorf("invalid tags for task %s: %w", t.ID, err)
	}
	return t, nil
}

func (s *SQLiteStore) loadSessions(taskID string) ([]models.TimeSession, error) {
	rows, err := s.db.Query(`
		SELECT id, started_at, ended_at, duration_ms, start_clock, end_clock
		FROM time_sessions WHERE task_id = ? ORDER BY position`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.TimeSession
	for rows.Next() {
		var sess models.TimeSession
		var ended, duration sql.NullInt64
		if err := rows.Scan(&sess.ID, &sess.StartedAt, &ended, &duration, &sess.StartClock, &sess.EndClock); err != nil {
			return nil, err
		}
		if ended.Valid {
			v := ended.Int64
			sess.EndedAt = &v
		}
		if duration.Valid {
			v := duration.Int64
			sess.DurationMs = &v
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *SQLiteStore) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := s.scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Task{}, fmt.Errorf("task not found: %s", id)
		}
		return models.Task{}, err
	}

	t.Sessions, err = s.loadSessions(id)
	if err != nil {
		return models.Task{}, err
	}
	return t, nil
}

func (s *SQLiteStore) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`SELECT ` + taskColumns + ` FROM tasks ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := s.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range tasks {
		tasks[i].Sessions, err = s.loadSessions(tasks[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

func (s *SQLiteStore) UpdateTask(task models.Task) error {
	tags, err := json.Marshal(task.Tags)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	res, err := tx.Exec(`
		UPDATE tasks SET title = ?, date = ?, start_time = ?, end_time = ?, status = ?,
			priority = ?, tags = ?, project_id = ?, estimated_min = ?, created_at = ?
		WHERE id = ?`,
		task.Title, task.Date, task.StartTime, task.EndTime, string(task.Status),
		string(task.Priority), string(tags), task.ProjectID, task.EstimatedMin,
		task.CreatedAt, task.ID)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_ = tx.Rollback()
		return fmt.Errorf("task not found: %s", task.ID)
	}

	// Sessions are replaced wholesale; the session list is small and owned by
	// its task.
	if _, err := tx.Exec(`DELETE FROM time_sessions WHERE task_id = ?`, task.ID); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := insertSessions(tx, task); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) DeleteTask(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM time_sessions WHERE task_id = ?`, id); err != nil {
		_ = tx.Rollback()
		return err
	}
	res, err := tx.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		_ = tx.Rollback()
		return fmt.Errorf("task not found: %s", id)
	}
	return tx.Commit()
}

func (s *SQLiteStore) AddProject(p models.Project) error {
	_, err := s.db.Exec(`
		INSERT INTO projects (id, position, name, description, category, color, notes, created_at, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(position)+1, 0) FROM projects), ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Category, p.Color, p.Notes, p.CreatedAt, p.UpdatedAt)
	return err
}

func (s *SQLiteStore) GetProject(id string) (models.Project, error) {
	row := s.db.QueryRow(`SELECT id, name, description, category, color, notes, created_at, updated_at FROM projects WHERE id = ?`, id)

	var p models.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Color, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Project{}, fmt.Errorf("project not found: %s", id)
		}
		return models.Project{}, err
	}
	return p, nil
}

func (s *SQLiteStore) GetAllProjects() ([]models.Project, error) {
	rows, err := s.db.Query(`SELECT id, name, description, category, color, notes, created_at, updated_at FROM projects ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Color, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (s *SQLiteStore) UpdateProject(p models.Project) error {
	res, err := s.db.Exec(`
		UPDATE projects SET name = ?, description = ?, category = ?, color = ?, notes = ?, created_at = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Description, p.Category, p.Color, p.Notes, p.CreatedAt, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project not found: %s", p.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteProject(id string) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("project not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) AddEvent(e models.CalendarEvent) error {
	_, err := s.db.Exec(`
		INSERT INTO events (id, position, title, date, start_time, end_time, description, type, created_at)
		VALUES (?, (SELECT COALESCE(MAX(position)+1, 0) FROM events), ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.Title, e.Date, e.StartTime, e.EndTime, e.Description, string(e.Type), e.CreatedAt)
	return err
}

func (s *SQLiteStore) GetEvent(id string) (models.CalendarEvent, error) {
	row := s.db.QueryRow(`SELECT id, title, date, start_time, end_time, description, type, created_at FROM events WHERE id = ?`, id)

	var e models.CalendarEvent
	var typ string
	err := row.Scan(&e.ID, &e.Title, &e.Date, &e.StartTime, &e.EndTime, &e.Description, &typ, &e.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.CalendarEvent{}, fmt.Errorf("event not found: %s", id)
		}
		return models.CalendarEvent{}, err
	}
	e.Type = models.EventType(typ)
	return e, nil
}

func (s *SQLiteStore) GetAllEvents() ([]models.CalendarEvent, error) {
	rows, err := s.db.Query(`SELECT id, title, date, start_time, end_time, description, type, created_at FROM events ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.CalendarEvent
	for rows.Next() {
		var e models.CalendarEvent
		var typ string
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.StartTime, &e.EndTime, &e.Description, &typ, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Type = models.EventType(typ)
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) UpdateEvent(e models.CalendarEvent) error {
	res, err := s.db.Exec(`
		UPDATE events SET title = ?, date = ?, start_time = ?, end_time = ?, description = ?, type = ?, created_at = ?
		WHERE id = ?`,
		e.Title, e.Date, e.StartTime, e.EndTime, e.Description, string(e.Type), e.CreatedAt, e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("event not found: %s", e.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteEvent(id string) error {
	res, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("event not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) AddNote(n models.Note) error {
	tags, err := json.Marshal(n.Tags)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO notes (id, position, title, content, tags, created_at, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(position)+1, 0) FROM notes), ?, ?, ?, ?, ?)`,
		n.ID, n.Title, n.Content, string(tags), n.CreatedAt, n.UpdatedAt)
	return err
}

func (s *SQLiteStore) GetNote(id string) (models.Note, error) {
	row := s.db.QueryRow(`SELECT id, title, content, tags, created_at, updated_at FROM notes WHERE id = ?`, id)

	var n models.Note
	var tags string
	err := row.Scan(&n.ID, &n.Title, &n.Content, &tags, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Note{}, fmt.Errorf("note not found: %s", id)
		}
		return models.Note{}, err
	}
	if err := json.Unmarshal([]byte(tags), &n.Tags); err != nil {
		return models.Note{}, fmt.Errorf("invalid tags for note %s: %w", n.ID, err)
	}
	return n, nil
}

func (s *SQLiteStore) GetAllNotes() ([]models.Note, error) {
	rows, err := s.db.Query(`SELECT id, title, content, tags, created_at, updated_at FROM notes ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		var tags string
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &tags, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(tags), &n.Tags); err != nil {
			return nil, fmt.Errorf("invalid tags for note %s: %w", n.ID, err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (s *SQLiteStore) UpdateNote(n models.Note) error {
	tags, err := json.Marshal(n.Tags)
	if err != nil {
		return err
	}
	res, err := s.db.Exec(`
		UPDATE notes SET title = ?, content = ?, tags = ?, created_at = ?, updated_at = ?
		WHERE id = ?`,
		n.Title, n.Content, string(tags), n.CreatedAt, n.UpdatedAt, n.ID)
	if err != nil {
		return err
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return fmt.Errorf("note not found: %s", n.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteNote(id string) error {
	res, err := s.db.Exec(`DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("note not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) AddPayment(p models.Payment) error {
	_, err := s.db.Exec(`
		INSERT INTO payments (id, position, project_id, amount, currency, date, description, document_url, created_at)
		VALUES (?, (SELECT COALESCE(MAX(position)+1, 0) FROM payments), ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ProjectID, p.Amount, p.Currency, p.Date, p.Description, p.DocumentURL, p.CreatedAt)
	return err
}

func (s *SQLiteStore) GetPayment(id string) (models.Payment, error) {
	row := s.db.QueryRow(`SELECT id, project_id, amount, currency, date, description, document_url, created_at FROM payments WHERE id = ?`, id)

	var p models.Payment
	err := row.Scan(&p.ID, &p.ProjectID, &p.Amount, &p.Currency, &p.Date, &p.Description, &p.DocumentURL, &p.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Payment{}, fmt.Errorf("payment not found: %s", id)
		}
		return models.Payment{}, err
	}
	return p, nil
}

func (s *SQLiteStore) GetAllPayments() ([]models.Payment, error) {
	rows, err := s.db.Query(`SELECT id, project_id, amount, currency, date, description, document_url, created_at FROM payments ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.Amount, &p.Currency, &p.Date, &p.Description, &p.DocumentURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (s *SQLiteStore) UpdatePayment(p models.Payment) error {
	res, err := s.db.Exec(`
		UPDATE payments SET project_id = ?, amount = ?, currency = ?, date = ?, description = ?, document_url = ?, created_at = ?
		WHERE id = ?`,
		p.ProjectID, p.Amount, p.Currency, p.Date, p.Description, p.DocumentURL, p.CreatedAt, p.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("payment not found: %s", p.ID)
	}
	return nil
}

func (s *SQLiteStore) DeletePayment(id string) error {
	res, err := s.db.Exec(`DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("payment not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) AddExpense(e models.Expense) error {
	_, err := s.db.Exec(`
		INSERT INTO expenses (id, position, project_id, amount, currency, date, category, description, document_url, created_at)
		VALUES (?, (SELECT COALESCE(MAX(position)+1, 0) FROM expenses), ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.ProjectID, e.Amount, e.Currency, e.Date, e.Category, e.Description, e.DocumentURL, e.CreatedAt)
	return err
}

func (s *SQLiteStore) GetExpense(id string) (models.Expense, error) {
	row := s.db.QueryRow(`SELECT id, project_id, amount, currency, date, category, description, document_url, created_at FROM expenses WHERE id = ?`, id)

	var e models.Expense
	err := row.Scan(&e.ID, &e.ProjectID, &e.Amount, &e.Currency, &e.Date, &e.Category, &e.Description, &e.DocumentURL, &e.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Expense{}, fmt.Errorf("expense not found: %s", id)
		}
		return models.Expense{}, err
	}
	return e, nil
}

func (s *SQLiteStore) GetAllExpenses() ([]models.Expense, error) {
	rows, err := s.db.Query(`SELECT id, project_id, amount, currency, date, category, description, document_url, created_at FROM expenses ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.ProjectID, &e.Amount, &e.Currency, &e.Date, &e.Category, &e.Description, &e.DocumentURL, &e.CreatedAt); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func (s *SQLiteStore) UpdateExpense(e models.Expense) error {
	res, err := s.db.Exec(`
		UPDATE expenses SET project_id = ?, amount = ?, currency = ?, date = ?, category = ?, description = ?, document_url = ?, created_at = ?
		WHERE id = ?`,
		e.ProjectID, e.Amount, e.Currency, e.Date, e.Category, e.Description, e.DocumentURL, e.CreatedAt, e.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("expense not found: %s", e.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteExpense(id string) error {
	res, err := s.db.Exec(`DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("expense not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) AddResource(r models.ProjectResource) error {
	_, err := s.db.Exec(`
		INSERT INTO resources (id, position, project_id, type, title, url, username, password, in_keyring, content, description, created_at, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(position)+1, 0) FROM resources), ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ProjectID, string(r.Type), r.Title, r.URL, r.Username, r.Password,
		r.InKeyring, r.Content, r.Description, r.CreatedAt, r.UpdatedAt)
	return err
}

func (s *SQLiteStore) GetResource(id string) (models.ProjectResource, error) {
	row := s.db.QueryRow(`SELECT id, project_id, type, title, url, username, password, in_keyring, content, description, created_at, updated_at FROM resources WHERE id = ?`, id)

	var r models.ProjectResource
	var typ string
	err := row.Scan(&r.ID, &r.ProjectID, &typ, &r.Title, &r.URL, &r.Username, &r.Password,
		&r.InKeyring, &r.Content, &r.Description, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.ProjectResource{}, fmt.Errorf("resource not found: %s", id)
		}
		return models.ProjectResource{}, err
	}
	r.Type = models.ResourceType(typ)
	return r, nil
}

func (s *SQLiteStore) GetAllResources() ([]models.ProjectResource, error) {
	rows, err := s.db.Query(`SELECT id, project_id, type, title, url, username, password, in_keyring, content, description, created_at, updated_at FROM resources ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []models.ProjectResource
	for rows.Next() {
		var r models.ProjectResource
		var typ string
		if err := rows.Scan(&r.ID, &r.ProjectID, &typ, &r.Title, &r.URL, &r.Username, &r.Password,
			&r.InKeyring, &r.Content, &r.Description, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		r.Type = models.ResourceType(typ)
		resources = append(resources, r)
	}
	return resources, rows.Err()
}

func (s *SQLiteStore) UpdateResource(r models.ProjectResource) error {
	res, err := s.db.Exec(`
		UPDATE resources SET project_id = ?, type = ?, title = ?, url = ?, username = ?, password = ?, in_keyring = ?, content = ?, description = ?, created_at = ?, updated_at = ?
		WHERE id = ?`,
		r.ProjectID, string(r.Type), r.Title, r.URL, r.Username, r.Password,
		r.InKeyring, r.Content, r.Description, r.CreatedAt, r.UpdatedAt, r.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("resource not found: %s", r.ID)
	}
	return nil
}

func (s *SQLiteStore) DeleteResource(id string) error {
	res, err := s.db.Exec(`DELETE FROM resources WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("resource not found: %s", id)
	}
	return nil
}

func (s *SQLiteStore) Snapshot() (models.State, error) {
	st := models.NewState()

	settings, err := s.GetSettings()
	if err != nil {
		return models.State{}, err
	}
	st.Settings = settings

	if st.Tasks, err = s.GetAllTasks(); err != nil {
		return models.State{}, err
	}
	if st.Projects, err = s.GetAllProjects(); err != nil {
		return models.State{}, err
	}
	if st.Events, err = s.GetAllEvents(); err != nil {
		return models.State{}, err
	}
	if st.Notes, err = s.GetAllNotes(); err != nil {
		return models.State{}, err
	}
	if st.Payments, err = s.GetAllPayments(); err != nil {
		return models.State{}, err
	}
	if st.Expenses, err = s.GetAllExpenses(); err != nil {
		return models.State{}, err
	}
	if st.Resources, err = s.GetAllResources(); err != nil {
		return models.State{}, err
	}
	ensureCollections(&st)
	return st, nil
}

func (s *SQLiteStore) Replace(state models.State) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	for _, table := range []string{"time_sessions", "tasks", "projects", "events", "notes", "payments", "expenses", "resources"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, t := range state.Tasks {
		if err := insertTask(tx, t); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	for i, p := range state.Projects {
		if _, err := tx.Exec(`
			INSERT INTO projects (id, position, name, description, category, color, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.Name, p.Description, p.Category, p.Color, p.Notes, p.CreatedAt, p.UpdatedAt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	for i, e := range state.Events {
		if _, err := tx.Exec(`
			INSERT INTO events (id, position, title, date, start_time, end_time, description, type, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, i, e.Title, e.Date, e.StartTime, e.EndTime, e.Description, string(e.Type), e.CreatedAt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	for i, n := range state.Notes {
		tags, err := json.Marshal(n.Tags)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO notes (id, position, title, content, tags, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n.ID, i, n.Title, n.Content, string(tags), n.CreatedAt, n.UpdatedAt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	for i, p := range state.Payments {
		if _, err := tx.Exec(`
			INSERT INTO payments (id, position, project_id, amount, currency, date, description, document_url, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, i, p.ProjectID, p.Amount, p.Currency, p.Date, p.Description, p.DocumentURL, p.CreatedAt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	for i, e := range state.Expenses {
		if _, err := tx.Exec(`
			INSERT INTO expenses (id, position, project_id, amount, currency, date, category, description, document_url, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, i, e.ProjectID, e.Amount, e.Currency, e.Date, e.Category, e.Description, e.DocumentURL, e.CreatedAt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	for i, r := range state.Resources {
		if _, err := tx.Exec(`
			INSERT INTO resources (id, position, project_id, type, title, url, username, password, in_keyring, content, description, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, i, r.ProjectID, string(r.Type), r.Title, r.URL, r.Username, r.Password,
			r.InKeyring, r.Content, r.Description, r.CreatedAt, r.UpdatedAt); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	return s.SaveSettings(state.Settings)
}

func (s *SQLiteStore) GetDataPath() string {
	return s.path
}
