package validation

import (
	"testing"

	"github.com/julianstephens/tempo/internal/models"
)

func TestFieldValidators(t *testing.T) {
	t.Run("time", func(t *testing.T) {
		for _, ok := range []string{"", "00:00", "09:30", "23:59"} {
			if err := ValidateTime(ok); err != nil {
				t.Errorf("expected %q valid, got %v", ok, err)
			}
		}
		for _, bad := range []string{"24:00", "9:3", "noon", "09:30:00"} {
			if err := ValidateTime(bad); err == nil {
				t.Errorf("expected %q invalid", bad)
			}
		}
	})

	t.Run("date", func(t *testing.T) {
		if err := ValidateDate("2025-03-10"); err != nil {
			t.Errorf("expected valid date, got %v", err)
		}
		for _, bad := range []string{"2025-13-01", "10/03/2025", "today"} {
			if err := ValidateDate(bad); err == nil {
				t.Errorf("expected %q invalid", bad)
			}
		}
	})

	t.Run("amount", func(t *testing.T) {
		if err := ValidateAmount(0.01); err != nil {
			t.Errorf("expected valid amount, got %v", err)
		}
		for _, bad := range []float64{0, -5} {
			if err := ValidateAmount(bad); err == nil {
				t.Errorf("expected %v invalid", bad)
			}
		}
	})

	t.Run("currency", func(t *testing.T) {
		if err := ValidateCurrency("EUR"); err != nil {
			t.Errorf("expected valid currency, got %v", err)
		}
		for _, bad := range []string{"", "   ", "much-too-long-code"} {
			if err := ValidateCurrency(bad); err == nil {
				t.Errorf("expected %q invalid", bad)
			}
		}
	})

	t.Run("url", func(t *testing.T) {
		for _, ok := range []string{"", "https://example.com/x", "http://host:8080"} {
			if err := ValidateURL(ok); err != nil {
				t.Errorf("expected %q valid, got %v", ok, err)
			}
		}
		for _, bad := range []string{"example.com", "not a url"} {
			if err := ValidateURL(bad); err == nil {
				t.Errorf("expected %q invalid", bad)
			}
		}
	})
}

func TestCheckStateCleanState(t *testing.T) {
	st := models.NewState()
	st.Projects = []models.Project{{ID: "p1", Name: "site"}}
	end := int64(2000)
	duration := int64(1000)
	st.Tasks = []models.Task{{
		ID: "t1", Title: "good", Status: models.TaskPlanned, Priority: models.PriorityLow,
		Date: "2025-03-10", ProjectID: "p1",
		Sessions: []models.TimeSession{{ID: "s1", StartedAt: 1000, EndedAt: &end, DurationMs: &duration}},
	}}

	result := CheckState(st)
	if result.HasConflicts() {
		t.Errorf("expected a clean state, got %s", result.FormatReport())
	}
	if result.FormatReport() != "No problems detected." {
		t.Errorf("unexpected report: %q", result.FormatReport())
	}
}

func TestCheckStateDanglingProjectRefs(t *testing.T) {
	st := models.NewState()
	st.Tasks = []models.Task{{ID: "t1", Title: "orphan", Status: models.TaskPlanned, Priority: models.PriorityLow, ProjectID: "gone"}}
	st.Payments = []models.Payment{{ID: "m1", ProjectID: "gone", Amount: 1, Currency: "EUR"}}
	st.Resources = []models.ProjectResource{{ID: "r1", ProjectID: "gone", Type: models.ResourceLink, Title: "repo"}}

	result := CheckState(st)
	count := 0
	for _, c := range result.Conflicts {
		if c.Type == ConflictDanglingProjectRef {
			count++
		}
	}
	if count != 3 {
		t.Errorf("expected 3 dangling references, got %d: %s", count, result.FormatReport())
	}
}

func TestCheckStateMultipleOpenSessions(t *testing.T) {
	st := models.NewState()
	st.Tasks = []models.Task{{
		ID: "t1", Title: "double", Status: models.TaskInProgress, Priority: models.PriorityLow,
		Sessions: []models.TimeSession{
			{ID: "s1", StartedAt: 1000},
			{ID: "s2", StartedAt: 2000},
		},
	}}

	result := CheckState(st)
	found := false
	for _, c := range result.Conflicts {
		if c.Type == ConflictMultipleOpenTimers {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a multiple-open-timers conflict, got %s", result.FormatReport())
	}
}

func TestCheckStateSessionArithmetic(t *testing.T) {
	badEnd := int64(500)
	goodEnd := int64(2000)
	wrongDuration := int64(42)

	st := models.NewState()
	st.Tasks = []models.Task{
		{
			ID: "t1", Title: "ends before start", Status: models.TaskPlanned, Priority: models.PriorityLow,
			Sessions: []models.TimeSession{{ID: "s1", StartedAt: 1000, EndedAt: &badEnd}},
		},
		{
			ID: "t2", Title: "wrong duration", Status: models.TaskPlanned, Priority: models.PriorityLow,
			Sessions: []models.TimeSession{{ID: "s2", StartedAt: 1000, EndedAt: &goodEnd, DurationMs: &wrongDuration}},
		},
	}

	result := CheckState(st)
	var negative, mismatch bool
	for _, c := range result.Conflicts {
		switch c.Type {
		case ConflictNegativeDuration:
			negative = true
		case ConflictDurationMismatch:
			mismatch = true
		}
	}
	if !negative {
		t.Error("expected a negative-duration conflict")
	}
	if !mismatch {
		t.Error("expected a duration-mismatch conflict")
	}
}

func TestCheckStateUnknownEnums(t *testing.T) {
	st := models.NewState()
	st.Tasks = []models.Task{{ID: "t1", Title: "weird", Status: "someday", Priority: "urgent-ish"}}
	st.Events = []models.CalendarEvent{{ID: "e1", Title: "party", Date: "2025-03-10", Type: "festival"}}
	st.Resources = []models.ProjectResource{{ID: "r1", Title: "thing", Type: "blob"}}

	result := CheckState(st)
	count := 0
	for _, c := range result.Conflicts {
		if c.Type == ConflictUnknownEnumValue {
			count++
		}
	}
	if count != 4 {
		t.Errorf("expected 4 unknown-enum conflicts, got %d: %s", count, result.FormatReport())
	}
}
