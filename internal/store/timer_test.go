package store

import (
	"testing"
	"time"

	"github.com/julianstephens/tempo/internal/models"
)

func TestStartTimerOpensSession(t *testing.T) {
	s, now := newTestStore(t)

	task, err := s.AddTask(TaskInput{Title: "focus"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if err := s.StartTimer(task.ID); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}

	got, err := s.Task(task.ID)
	if err != nil {
		t.Fatalf("Task failed: %v", err)
	}
	if len(got.Sessions) != 1 {
		t.Fatalf("expected one session, got %d", len(got.Sessions))
	}

	sess := got.Sessions[0]
	if !sess.Open() {
		t.Error("expected the session to be open")
	}
	if sess.StartedAt != now.UnixMilli() {
		t.Errorf("expected start %d, got %d", now.UnixMilli(), sess.StartedAt)
	}
	if got.Status != models.TaskInProgress {
		t.Errorf("expected planned task to advance to in-progress, got %s", got.Status)
	}
	if got.Date != now.Format("2006-01-02") {
		t.Errorf("expected task pulled onto today, got %q", got.Date)
	}
	if got.StartTime != now.Format("15:04") {
		t.Errorf("expected start time stamped, got %q", got.StartTime)
	}
}

func TestStartTimerWithOpenSessionIsNoop(t *testing.T) {
	s, now := newTestStore(t)

	task, err := s.AddTask(TaskInput{Title: "focus"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if err := s.StartTimer(task.ID); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	*now = now.Add(10 * time.Minute)
	if err := s.StartTimer(task.ID); err != nil {
		t.Fatalf("second StartTimer failed: %v", err)
	}

	got, err := s.Task(task.ID)
	if err != nil {
		t.Fatalf("Task failed: %v", err)
	}
	if len(got.Sessions) != 1 {
		t.Errorf("expected at most one open session, got %d sessions", len(got.Sessions))
	}
}

func TestStartTimerUnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.StartTimer("no-such-id"); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}
}

func TestStopTimerRecordsDuration(t *testing.T) {
	s, now := newTestStore(t)

	task, err := s.AddTask(TaskInput{Title: "focus"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if err := s.StartTimer(task.ID); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	start := now.UnixMilli()

	*now = now.Add(25 * time.Minute)
	if err := s.StopTimer(task.ID); err != nil {
		t.Fatalf("StopTimer failed: %v", err)
	}

	got, err := s.Task(task.ID)
	if err != nil {
		t.Fatalf("Task failed: %v", err)
	}
	sess := got.Sessions[0]
	if sess.Open() {
		t.Fatal("expected the session to be closed")
	}
	if *sess.EndedAt != now.UnixMilli() {
		t.Errorf("expected end %d, got %d", now.UnixMilli(), *sess.EndedAt)
	}
	if want := now.UnixMilli() - start; *sess.DurationMs != want {
		t.Errorf("expected duration %d, got %d", want, *sess.DurationMs)
	}
	if got.EndTime != now.Format("15:04") {
		t.Errorf("expected end time stamped, got %q", got.EndTime)
	}
	if got.StartTime != "" {
		t.Errorf("expected start time cleared, got %q", got.StartTime)
	}
}

func TestStopTimerWithoutOpenSessionIsNoop(t *testing.T) {
	s, _ := newTestStore(t)

	task, err := s.AddTask(TaskInput{Title: "idle"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if err := s.StopTimer(task.ID); err != nil {
		t.Fatalf("expected silent no-op, got %v", err)
	}

	got, err := s.Task(task.ID)
	if err != nil {
		t.Fatalf("Task failed: %v", err)
	}
	if len(got.Sessions) != 0 {
		t.Errorf("expected no sessions, got %d", len(got.Sessions))
	}
}

func TestTaskTimeSumsClosedAndOpenSessions(t *testing.T) {
	s, now := newTestStore(t)

	task, err := s.AddTask(TaskInput{Title: "focus"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	// First interval: 30 minutes
	if err := s.StartTimer(task.ID); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	*now = now.Add(30 * time.Minute)
	if err := s.StopTimer(task.ID); err != nil {
		t.Fatalf("StopTimer failed: %v", err)
	}

	total, err := s.TaskTime(task.ID)
	if err != nil {
		t.Fatalf("TaskTime failed: %v", err)
	}
	if total != 30*time.Minute {
		t.Errorf("expected 30m, got %s", total)
	}

	// Second interval still open: elapsed time counts and grows
	if err := s.StartTimer(task.ID); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	*now = now.Add(10 * time.Minute)

	total, err = s.TaskTime(task.ID)
	if err != nil {
		t.Fatalf("TaskTime failed: %v", err)
	}
	if total != 40*time.Minute {
		t.Errorf("expected 40m with open session, got %s", total)
	}

	*now = now.Add(5 * time.Minute)
	grown, err := s.TaskTime(task.ID)
	if err != nil {
		t.Fatalf("TaskTime failed: %v", err)
	}
	if grown <= total {
		t.Errorf("expected tracked time to grow while the session is open, got %s then %s", total, grown)
	}
}

func TestProjectTimeAggregatesTasks(t *testing.T) {
	s, now := newTestStore(t)

	project, err := s.AddProject(ProjectInput{Name: "app"})
	if err != nil {
		t.Fatalf("AddProject failed: %v", err)
	}

	for i, minutes := range []int{20, 40} {
		task, err := s.AddTask(TaskInput{Title: "t", ProjectID: project.ID})
		if err != nil {
			t.Fatalf("AddTask %d failed: %v", i, err)
		}
		if err := s.StartTimer(task.ID); err != nil {
			t.Fatalf("StartTimer failed: %v", err)
		}
		*now = now.Add(time.Duration(minutes) * time.Minute)
		if err := s.StopTimer(task.ID); err != nil {
			t.Fatalf("StopTimer failed: %v", err)
		}
	}

	// A task outside the project does not count
	outside, err := s.AddTask(TaskInput{Title: "other"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if err := s.StartTimer(outside.ID); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}
	*now = now.Add(time.Hour)
	if err := s.StopTimer(outside.ID); err != nil {
		t.Fatalf("StopTimer failed: %v", err)
	}

	total, err := s.ProjectTime(project.ID)
	if err != nil {
		t.Fatalf("ProjectTime failed: %v", err)
	}
	if total != time.Hour {
		t.Errorf("expected 1h, got %s", total)
	}
}

func TestRunningTasks(t *testing.T) {
	s, _ := newTestStore(t)

	running, err := s.AddTask(TaskInput{Title: "running"})
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if _, err := s.AddTask(TaskInput{Title: "idle"}); err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}

	if err := s.StartTimer(running.ID); err != nil {
		t.Fatalf("StartTimer failed: %v", err)
	}

	got, err := s.RunningTasks()
	if err != nil {
		t.Fatalf("RunningTasks failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != running.ID {
		t.Errorf("expected only the running task, got %d", len(got))
	}

	ok, err := s.TimerRunning(running.ID)
	if err != nil {
		t.Fatalf("TimerRunning failed: %v", err)
	}
	if !ok {
		t.Error("expected TimerRunning true for the running task")
	}
}
