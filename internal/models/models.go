package models

// Task statuses stored in the tasks table.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Subscription plans offered at signup.
const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
)

// Task represents a schedulable work item with a same-day time window.
type Task struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	Location         string `json:"location,omitempty"`
	Category         string `json:"category"`
	IsStaticSchedule bool   `json:"isStaticSchedule"`
	Status           string `json:"status"`
	Priority         string `json:"priority"`
	// Duration is derived: minutes between StartTime and EndTime.
	Duration int `json:"duration"`
}

// ValidStatuses enumerates the statuses a task may hold.
var ValidStatuses = map[string]struct{}{
	StatusPending:   {},
	StatusCompleted: {},
}

// ValidPriorities enumerates the priorities a task may hold.
var ValidPriorities = map[string]struct{}{
	PriorityLow:    {},
	PriorityMedium: {},
	PriorityHigh:   {},
}

// User is an account in the authentication subsystem.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`
	Plan         string `json:"plan"`
}
