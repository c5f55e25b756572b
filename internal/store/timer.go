package store

import (
	"time"

	"github.com/julianstephens/tempo/internal/models"
)

// StartTimer opens a time session on the task. It is a no-op when the task
// already has an open session (a task tracks at most one interval at a time)
// or when the id is unknown. Starting a timer also pulls the task onto
// today's board: the date becomes today, the display start time is stamped,
// and a planned task advances to in-progress. Other statuses are left alone.
func (s *Store) StartTimer(taskID string) error {
	task, err := s.provider.GetTask(taskID)
	if err != nil {
		return nil
	}
	if task.OpenSession() != nil {
		return nil
	}

	now := s.now()
	task.Sessions = append(task.Sessions, models.TimeSession{
		ID:         s.newID(),
		StartedAt:  now.UnixMilli(),
		StartClock: s.clock(),
	})

	task.Date = s.today()
	task.StartTime = s.clock()
	if task.Status == models.TaskPlanned {
		task.Status = models.TaskInProgress
	}

	return s.provider.UpdateTask(task)
}

// StopTimer closes the task's open session, recording the end instant and
// duration (end - start, milliseconds). It is a no-op when there is no open
// session or the id is unknown. The task's display end time is stamped and
// its display start time cleared.
func (s *Store) StopTimer(taskID string) error {
	task, err := s.provider.GetTask(taskID)
	if err != nil {
		return nil
	}
	open := task.OpenSession()
	if open == nil {
		return nil
	}

	end := s.now().UnixMilli()
	duration := end - open.StartedAt
	open.EndedAt = &end
	open.DurationMs = &duration
	open.EndClock = s.clock()

	task.EndTime = s.clock()
	task.StartTime = ""

	return s.provider.UpdateTask(task)
}

// TaskTime returns the total tracked time for the task: the sum of closed
// session durations plus, for an open session, the time elapsed since its
// start. While a session is open the value grows on every call; live
// displays re-poll rather than subscribe.
func (s *Store) TaskTime(taskID string) (time.Duration, error) {
	task, err := s.provider.GetTask(taskID)
	if err != nil {
		return 0, err
	}
	return s.taskTime(task), nil
}

func (s *Store) taskTime(task models.Task) time.Duration {
	var totalMs int64
	for _, sess := range task.Sessions {
		if sess.DurationMs != nil {
			totalMs += *sess.DurationMs
		} else if sess.Open() {
			totalMs += s.now().UnixMilli() - sess.StartedAt
		}
	}
	return time.Duration(totalMs) * time.Millisecond
}

// ProjectTime returns the total tracked time across every task of the
// project. Recomputed on each call; linear in tasks and sessions.
func (s *Store) ProjectTime(projectID string) (time.Duration, error) {
	tasks, err := s.provider.GetAllTasks()
	if err != nil {
		return 0, err
	}

	var total time.Duration
	for _, t := range tasks {
		if t.ProjectID == projectID {
			total += s.taskTime(t)
		}
	}
	return total, nil
}

// TimerRunning reports whether the task currently has an open session.
func (s *Store) TimerRunning(taskID string) (bool, error) {
	task, err := s.provider.GetTask(taskID)
	if err != nil {
		return false, err
	}
	return task.OpenSession() != nil, nil
}

// RunningTasks returns every task with an open session.
func (s *Store) RunningTasks() ([]models.Task, error) {
	tasks, err := s.provider.GetAllTasks()
	if err != nil {
		return nil, err
	}

	var running []models.Task
	for _, t := range tasks {
		if t.OpenSession() != nil {
			running = append(running, t)
		}
	}
	return running, nil
}
