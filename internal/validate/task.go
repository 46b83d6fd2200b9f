package validate

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Deepak6204/schedular-server/internal/models"
)

// ListTasksQuery holds the raw query string filters for GET /api/tasks.
type ListTasksQuery struct {
	Status           string
	StartDate        string
	EndDate          string
	Category         string
	IsStaticSchedule string
}

// CreateTaskPayload is the request body for POST /api/tasks. Pointer fields
// distinguish an absent value from an empty one.
type CreateTaskPayload struct {
	Title            *string `json:"title"`
	Date             *string `json:"date"`
	StartTime        *string `json:"startTime"`
	EndTime          *string `json:"endTime"`
	Location         *string `json:"location"`
	Category         *string `json:"category"`
	IsStaticSchedule *bool   `json:"isStaticSchedule"`
}

// UpdateTaskPayload is the request body for PUT /api/tasks/:taskId. Every
// field is optional; keys outside this set are dropped during JSON decoding,
// which realizes the update whitelist.
type UpdateTaskPayload struct {
	Title            *string `json:"title"`
	Date             *string `json:"date"`
	StartTime        *string `json:"startTime"`
	EndTime          *string `json:"endTime"`
	Location         *string `json:"location"`
	Category         *string `json:"category"`
	IsStaticSchedule *bool   `json:"isStaticSchedule"`
	Status           *string `json:"status"`
	Priority         *string `json:"priority"`
}

// Empty reports whether the payload carries no whitelisted field at all.
func (p UpdateTaskPayload) Empty() bool {
	return p.Title == nil && p.Date == nil && p.StartTime == nil && p.EndTime == nil &&
		p.Location == nil && p.Category == nil && p.IsStaticSchedule == nil &&
		p.Status == nil && p.Priority == nil
}

// ListTasks validates the query filters for the task list endpoint.
func ListTasks(q ListTasksQuery) error {
	return run(
		func(errs *Errors) {
			if q.Status == "" {
				return
			}
			if q.Status != models.StatusPending && q.Status != models.StatusCompleted && q.Status != "all" {
				errs.add(LocationQuery, "status", "must be one of pending, completed, all")
			}
		},
		func(errs *Errors) {
			if q.StartDate != "" && !isDate(q.StartDate) {
				errs.add(LocationQuery, "startDate", "must be a date in YYYY-MM-DD format")
			}
		},
		func(errs *Errors) {
			if q.EndDate != "" && !isDate(q.EndDate) {
				errs.add(LocationQuery, "endDate", "must be a date in YYYY-MM-DD format")
			}
		},
		func(errs *Errors) {
			if q.StartDate == "" || q.EndDate == "" || !isDate(q.StartDate) || !isDate(q.EndDate) {
				return
			}
			if q.EndDate < q.StartDate {
				errs.add(LocationQuery, "endDate", "must not be before startDate")
			}
		},
		func(errs *Errors) {
			if q.Category == "" {
				return
			}
			if n := len(strings.TrimSpace(q.Category)); n < 1 || n > 50 {
				errs.add(LocationQuery, "category", "must be between 1 and 50 characters")
			}
		},
		func(errs *Errors) {
			if q.IsStaticSchedule != "" && q.IsStaticSchedule != "true" && q.IsStaticSchedule != "false" {
				errs.add(LocationQuery, "isStaticSchedule", "must be true or false")
			}
		},
	)
}

// CreateTask validates the body of a task creation request.
func CreateTask(p CreateTaskPayload) error {
	return run(
		func(errs *Errors) {
			if p.Title == nil || strings.TrimSpace(*p.Title) == "" {
				errs.add(LocationBody, "title", "is required")
				return
			}
			if len(strings.TrimSpace(*p.Title)) > 100 {
				errs.add(LocationBody, "title", "must be at most 100 characters")
			}
		},
		func(errs *Errors) {
			if p.Date == nil || *p.Date == "" {
				errs.add(LocationBody, "date", "is required")
				return
			}
			if !isDate(*p.Date) {
				errs.add(LocationBody, "date", "must be a date in YYYY-MM-DD format")
				return
			}
			if *p.Date < today() {
				errs.add(LocationBody, "date", "must not be in the past")
			}
		},
		requireClockTime(p.StartTime, "startTime"),
		requireClockTime(p.EndTime, "endTime"),
		endAfterStart(p.StartTime, p.EndTime),
		func(errs *Errors) {
			if p.Category == nil || strings.TrimSpace(*p.Category) == "" {
				errs.add(LocationBody, "category", "is required")
				return
			}
			if len(strings.TrimSpace(*p.Category)) > 50 {
				errs.add(LocationBody, "category", "must be at most 50 characters")
			}
		},
		func(errs *Errors) {
			if p.IsStaticSchedule == nil {
				errs.add(LocationBody, "isStaticSchedule", "is required and must be a boolean")
			}
		},
		func(errs *Errors) {
			if p.Location != nil && len(strings.TrimSpace(*p.Location)) > 100 {
				errs.add(LocationBody, "location", "must be at most 100 characters")
			}
		},
	)
}

// UpdateTask validates the task identifier and any present body fields of a
// partial update. An empty payload is itself a violation.
func UpdateTask(taskID string, p UpdateTaskPayload) error {
	return run(
		taskIDRule(taskID),
		func(errs *Errors) {
			if p.Empty() {
				errs.add(LocationBody, "body", "no valid fields to update")
			}
		},
		optionalTrimmedLength(p.Title, "title", 1, 100),
		func(errs *Errors) {
			if p.Date != nil && !isDate(*p.Date) {
				errs.add(LocationBody, "date", "must be a date in YYYY-MM-DD format")
			}
		},
		optionalClockTime(p.StartTime, "startTime"),
		optionalClockTime(p.EndTime, "endTime"),
		func(errs *Errors) {
			if p.StartTime == nil || p.EndTime == nil {
				return
			}
			endAfterStart(p.StartTime, p.EndTime)(errs)
		},
		func(errs *Errors) {
			if p.Location != nil && len(strings.TrimSpace(*p.Location)) > 100 {
				errs.add(LocationBody, "location", "must be at most 100 characters")
			}
		},
		optionalTrimmedLength(p.Category, "category", 1, 50),
		func(errs *Errors) {
			if p.Status == nil {
				return
			}
			if _, ok := models.ValidStatuses[*p.Status]; !ok {
				errs.add(LocationBody, "status", "must be one of pending, completed")
			}
		},
		func(errs *Errors) {
			if p.Priority == nil {
				return
			}
			if _, ok := models.ValidPriorities[*p.Priority]; !ok {
				errs.add(LocationBody, "priority", "must be one of low, medium, high")
			}
		},
	)
}

// DeleteTask validates the task identifier of a delete request.
func DeleteTask(taskID string) error {
	return run(taskIDRule(taskID))
}

func taskIDRule(taskID string) Rule {
	return func(errs *Errors) {
		if _, err := uuid.Parse(taskID); err != nil {
			errs.add(LocationParams, "taskId", "invalid task ID")
		}
	}
}

func requireClockTime(v *string, param string) Rule {
	return func(errs *Errors) {
		if v == nil || *v == "" {
			errs.add(LocationBody, param, "is required")
			return
		}
		if !isClockTime(*v) {
			errs.add(LocationBody, param, "must be a time in HH:MM format")
		}
	}
}

func optionalClockTime(v *string, param string) Rule {
	return func(errs *Errors) {
		if v != nil && !isClockTime(*v) {
			errs.add(LocationBody, param, "must be a time in HH:MM format")
		}
	}
}

// endAfterStart enforces the same-day window ordering. Zero-padded HH:MM
// strings order lexicographically, so a plain string comparison suffices.
func endAfterStart(start, end *string) Rule {
	return func(errs *Errors) {
		if start == nil || end == nil || !isClockTime(*start) || !isClockTime(*end) {
			return
		}
		if *end <= *start {
			errs.add(LocationBody, "endTime", "must be after startTime")
		}
	}
}

func optionalTrimmedLength(v *string, param string, min, max int) Rule {
	return func(errs *Errors) {
		if v == nil {
			return
		}
		n := len(strings.TrimSpace(*v))
		if n < min || n > max {
			errs.add(LocationBody, param, fmt.Sprintf("must be between %d and %d characters", min, max))
		}
	}
}
