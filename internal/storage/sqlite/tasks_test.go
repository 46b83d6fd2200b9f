package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Deepak6204/schedular-server/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

func meetingTask() NewTask {
	return NewTask{
		Title:            "Team Meeting",
		Date:             "2023-05-15",
		StartTime:        "09:00",
		EndTime:          "10:00",
		Category:         "Meeting",
		IsStaticSchedule: false,
	}
}

func TestCreateTask_DerivedFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, meetingTask())
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if task.ID == "" {
		t.Error("expected a generated id")
	}
	if task.Duration != 60 {
		t.Errorf("duration = %d, want 60", task.Duration)
	}
	if task.Status != models.StatusPending {
		t.Errorf("status = %q, want pending", task.Status)
	}
	if task.Priority != models.PriorityMedium {
		t.Errorf("priority = %q, want medium", task.Priority)
	}
}

func TestCreateTask_RejectsNonPositiveDuration(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name       string
		start, end string
	}{
		{"zero", "09:00", "09:00"},
		{"negative", "10:00", "09:00"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			n := meetingTask()
			n.StartTime = tc.start
			n.EndTime = tc.end
			if _, err := store.CreateTask(ctx, n); !errors.Is(err, ErrInvalidTimeRange) {
				t.Fatalf("err = %v, want ErrInvalidTimeRange", err)
			}
		})
	}

	tasks, err := store.ListTasks(ctx, TaskFilters{})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected no persisted rows, got %d", len(tasks))
	}
}

func seedScheduleFixture(t *testing.T, store *Store) map[string]models.Task {
	t.Helper()
	ctx := context.Background()

	seeds := map[string]NewTask{
		"earlyMeeting": {Title: "Standup", Date: "2023-05-15", StartTime: "09:00", EndTime: "09:15", Category: "Meeting"},
		"lateMeeting":  {Title: "Retro", Date: "2023-05-15", StartTime: "16:00", EndTime: "17:00", Category: "Meeting"},
		"gym":          {Title: "Gym", Date: "2023-05-14", StartTime: "07:00", EndTime: "08:00", Category: "Fitness", IsStaticSchedule: true},
		"review":       {Title: "Code Review", Date: "2023-05-16", StartTime: "11:00", EndTime: "12:00", Category: "Work"},
	}

	created := map[string]models.Task{}
	for name, n := range seeds {
		task, err := store.CreateTask(ctx, n)
		if err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
		created[name] = task
	}

	// Complete one meeting so status filters have something to separate.
	done, err := store.UpdateTask(ctx, created["lateMeeting"].ID, TaskUpdate{Status: strPtr(models.StatusCompleted)})
	if err != nil {
		t.Fatalf("complete seed: %v", err)
	}
	created["lateMeeting"] = done
	return created
}

func TestListTasks_Ordering(t *testing.T) {
	store := newTestStore(t)
	seedScheduleFixture(t, store)

	tasks, err := store.ListTasks(context.Background(), TaskFilters{})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 4 {
		t.Fatalf("expected 4 tasks, got %d", len(tasks))
	}

	for i := 1; i < len(tasks); i++ {
		prev, cur := tasks[i-1], tasks[i]
		if prev.Date > cur.Date || (prev.Date == cur.Date && prev.StartTime > cur.StartTime) {
			t.Fatalf("tasks out of (date, startTime) order: %v before %v", prev, cur)
		}
	}
}

func TestListTasks_FilterComposition(t *testing.T) {
	store := newTestStore(t)
	fixture := seedScheduleFixture(t, store)
	ctx := context.Background()

	tasks, err := store.ListTasks(ctx, TaskFilters{Status: models.StatusCompleted, Category: "Meeting"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != fixture["lateMeeting"].ID {
		t.Fatalf("expected exactly the completed meeting, got %v", tasks)
	}

	tasks, err = store.ListTasks(ctx, TaskFilters{StartDate: "2023-05-15", EndDate: "2023-05-16"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks in date range, got %d", len(tasks))
	}

	static := true
	tasks, err = store.ListTasks(ctx, TaskFilters{IsStaticSchedule: &static})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 1 || tasks[0].ID != fixture["gym"].ID {
		t.Fatalf("expected only the static task, got %v", tasks)
	}
}

func TestListTasks_StatusAllMeansNoFilter(t *testing.T) {
	store := newTestStore(t)
	seedScheduleFixture(t, store)
	ctx := context.Background()

	all, err := store.ListTasks(ctx, TaskFilters{Status: "all"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	unfiltered, err := store.ListTasks(ctx, TaskFilters{})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(all) != len(unfiltered) {
		t.Fatalf("status=all returned %d rows, unfiltered returned %d", len(all), len(unfiltered))
	}
}

func TestListTasks_NoMatchIsEmptyNotError(t *testing.T) {
	store := newTestStore(t)

	tasks, err := store.ListTasks(context.Background(), TaskFilters{Category: "Nonexistent"})
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if tasks == nil || len(tasks) != 0 {
		t.Fatalf("expected empty slice, got %v", tasks)
	}
}

func TestUpdateTask_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UpdateTask(context.Background(), "550e8400-e29b-41d4-a716-446655440000",
		TaskUpdate{Title: strPtr("x")})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdateTask_EmptyUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, meetingTask())
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if _, err := store.UpdateTask(ctx, task.ID, TaskUpdate{}); !errors.Is(err, ErrNoFieldsToUpdate) {
		t.Fatalf("err = %v, want ErrNoFieldsToUpdate", err)
	}

	unchanged, err := store.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if unchanged != task {
		t.Fatalf("row modified by rejected update: %v != %v", unchanged, task)
	}
}

func TestUpdateTask_RecomputesDurationFromEffectiveTimes(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, meetingTask())
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	// Only endTime changes; the stored startTime must anchor the recompute.
	updated, err := store.UpdateTask(ctx, task.ID, TaskUpdate{EndTime: strPtr("11:30")})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if updated.Duration != 150 {
		t.Errorf("duration = %d, want 150", updated.Duration)
	}
	if updated.StartTime != "09:00" {
		t.Errorf("startTime = %q, want unchanged 09:00", updated.StartTime)
	}

	updated, err = store.UpdateTask(ctx, task.ID, TaskUpdate{StartTime: strPtr("11:00")})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}
	if updated.Duration != 30 {
		t.Errorf("duration = %d, want 30", updated.Duration)
	}
}

func TestUpdateTask_RejectsInvertedWindow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, meetingTask())
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	if _, err := store.UpdateTask(ctx, task.ID, TaskUpdate{EndTime: strPtr("08:00")}); !errors.Is(err, ErrInvalidTimeRange) {
		t.Fatalf("err = %v, want ErrInvalidTimeRange", err)
	}
}

func TestUpdateTask_ReturnsFullRow(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, meetingTask())
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	updated, err := store.UpdateTask(ctx, task.ID, TaskUpdate{
		Priority: strPtr(models.PriorityHigh),
		Location: strPtr("Conference Room A"),
	})
	if err != nil {
		t.Fatalf("update task: %v", err)
	}

	// Untouched fields still present alongside the changed ones.
	if updated.Title != task.Title || updated.Date != task.Date || updated.Duration != task.Duration {
		t.Errorf("unchanged fields lost: %v", updated)
	}
	if updated.Priority != models.PriorityHigh || updated.Location != "Conference Room A" {
		t.Errorf("changed fields not applied: %v", updated)
	}
}

func TestUpdateTask_StatusTransitionsBothWays(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, meetingTask())
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	done, err := store.UpdateTask(ctx, task.ID, TaskUpdate{Status: strPtr(models.StatusCompleted)})
	if err != nil || done.Status != models.StatusCompleted {
		t.Fatalf("complete: status=%q err=%v", done.Status, err)
	}
	reopened, err := store.UpdateTask(ctx, task.ID, TaskUpdate{Status: strPtr(models.StatusPending)})
	if err != nil || reopened.Status != models.StatusPending {
		t.Fatalf("reopen: status=%q err=%v", reopened.Status, err)
	}
}

func TestDeleteTask_Idempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	task, err := store.CreateTask(ctx, meetingTask())
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	deleted, err := store.DeleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if !deleted {
		t.Fatal("first delete should report true")
	}

	deleted, err = store.DeleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("second delete must not error: %v", err)
	}
	if deleted {
		t.Fatal("second delete should report false")
	}
}
