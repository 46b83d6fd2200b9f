package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Deepak6204/schedular-server/internal/models"
)

// TaskFilters is the sparse filter set for ListTasks. Zero values mean the
// corresponding predicate is absent; the status value "all" also means no
// status predicate.
type TaskFilters struct {
	Status           string
	StartDate        string
	EndDate          string
	Category         string
	IsStaticSchedule *bool
}

// NewTask carries the previously validated fields of a task creation.
type NewTask struct {
	Title            string
	Date             string
	StartTime        string
	EndTime          string
	Location         string
	Category         string
	IsStaticSchedule bool
}

// TaskUpdate is the whitelisted sparse field set of a partial update. Nil
// pointers leave the stored value unchanged.
type TaskUpdate struct {
	Title            *string
	Date             *string
	StartTime        *string
	EndTime          *string
	Location         *string
	Category         *string
	IsStaticSchedule *bool
	Status           *string
	Priority         *string
}

// Empty reports whether the update carries no field at all.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.Date == nil && u.StartTime == nil && u.EndTime == nil &&
		u.Location == nil && u.Category == nil && u.IsStaticSchedule == nil &&
		u.Status == nil && u.Priority == nil
}

const taskColumns = `id, title, date, startTime, endTime, location, category, isStaticSchedule, status, priority, duration`

// ListTasks composes a conjunctive predicate from the supplied filters and
// returns matching tasks ordered by date, then start time, then id. No match
// yields an empty slice, not an error.
func (s *Store) ListTasks(ctx context.Context, f TaskFilters) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	var params []any

	if f.Status != "" && f.Status != "all" {
		query += ` AND status = ?`
		params = append(params, f.Status)
	}
	if f.StartDate != "" {
		query += ` AND date >= ?`
		params = append(params, f.StartDate)
	}
	if f.EndDate != "" {
		query += ` AND date <= ?`
		params = append(params, f.EndDate)
	}
	if f.Category != "" {
		query += ` AND category = ?`
		params = append(params, f.Category)
	}
	if f.IsStaticSchedule != nil {
		query += ` AND isStaticSchedule = ?`
		params = append(params, *f.IsStaticSchedule)
	}
	query += ` ORDER BY date, startTime, id`

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// CreateTask inserts a validated task with status pending, priority medium
// and a duration derived from its time window, then returns the full row.
func (s *Store) CreateTask(ctx context.Context, n NewTask) (models.Task, error) {
	duration := minutesOf(n.EndTime) - minutesOf(n.StartTime)
	if duration <= 0 {
		return models.Task{}, ErrInvalidTimeRange
	}

	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks(`+taskColumns+`) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, strings.TrimSpace(n.Title), n.Date, n.StartTime, n.EndTime,
		strings.TrimSpace(n.Location), strings.TrimSpace(n.Category), n.IsStaticSchedule,
		models.StatusPending, models.PriorityMedium, duration,
	)
	if err != nil {
		return models.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return s.GetTask(ctx, id)
}

// GetTask retrieves a task by id.
func (s *Store) GetTask(ctx context.Context, id string) (models.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}
	return t, nil
}

// UpdateTask applies a partial update on top of the current row. When either
// end of the time window changes the duration is recomputed against the
// resulting effective start and end time, never against a stale value.
// Returns the full post-update row.
func (s *Store) UpdateTask(ctx context.Context, id string, u TaskUpdate) (models.Task, error) {
	if u.Empty() {
		return models.Task{}, ErrNoFieldsToUpdate
	}

	current, err := s.GetTask(ctx, id)
	if err != nil {
		return models.Task{}, err
	}

	next := current
	if u.Title != nil {
		next.Title = strings.TrimSpace(*u.Title)
	}
	if u.Date != nil {
		next.Date = *u.Date
	}
	if u.StartTime != nil {
		next.StartTime = *u.StartTime
	}
	if u.EndTime != nil {
		next.EndTime = *u.EndTime
	}
	if u.Location != nil {
		next.Location = strings.TrimSpace(*u.Location)
	}
	if u.Category != nil {
		next.Category = strings.TrimSpace(*u.Category)
	}
	if u.IsStaticSchedule != nil {
		next.IsStaticSchedule = *u.IsStaticSchedule
	}
	if u.Status != nil {
		next.Status = *u.Status
	}
	if u.Priority != nil {
		next.Priority = *u.Priority
	}

	if u.StartTime != nil || u.EndTime != nil {
		duration := minutesOf(next.EndTime) - minutesOf(next.StartTime)
		if duration <= 0 {
			return models.Task{}, ErrInvalidTimeRange
		}
		next.Duration = duration
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, date = ?, startTime = ?, endTime = ?, location = ?,
            category = ?, isStaticSchedule = ?, status = ?, priority = ?, duration = ?
            WHERE id = ?`,
		next.Title, next.Date, next.StartTime, next.EndTime, next.Location,
		next.Category, next.IsStaticSchedule, next.Status, next.Priority, next.Duration, id,
	)
	if err != nil {
		return models.Task{}, fmt.Errorf("update task: %w", err)
	}
	return s.GetTask(ctx, id)
}

// DeleteTask removes a task by id. Absence is a normal outcome reported by
// the boolean, never an error.
func (s *Store) DeleteTask(ctx context.Context, id string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.Title, &t.Date, &t.StartTime, &t.EndTime, &t.Location,
		&t.Category, &t.IsStaticSchedule, &t.Status, &t.Priority, &t.Duration)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, err
	}
	if err != nil {
		return models.Task{}, fmt.Errorf("scan task: %w", err)
	}
	return t, nil
}

// minutesOf converts a zero-padded HH:MM wall-clock time to minutes since
// midnight. Inputs are validated upstream; malformed values count as zero.
func minutesOf(hhmm string) int {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	mins, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return hours*60 + mins
}
