package models

import "time"

type TaskStatus string

const (
	StatusTodo       TaskStatus = "todo"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) Valid() bool {
	return p.Rank() >= 0
}

// Rank orders priorities from low to urgent; unknown values rank -1.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityLow:
		return 0
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	case PriorityUrgent:
		return 3
	}
	return -1
}

const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 1000
)

type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     time.Time    `json:"dueDate"`
	Assignee    UserRef      `json:"assignee"`
	CreatedBy   UserRef      `json:"createdBy"`
	Tags        []string     `json:"tags"`
	IsOverdue   bool         `json:"isOverdue"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// IsOverdue is evaluated at write time only; stored flags are not refreshed on read.
func IsOverdue(due time.Time, status TaskStatus, now time.Time) bool {
	return status != StatusCompleted && due.Before(now)
}

// TaskPatch is a validated partial update. createdBy is immutable, so it has no field here.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	DueDate     *time.Time
	AssigneeID  *string
	Tags        *[]string
}

// TaskFilter drives list queries. AssigneeID is the policy scope; empty means unscoped.
type TaskFilter struct {
	AssigneeID string
	Search     string
	Status     TaskStatus
	Priority   TaskPriority
	Sort       string
	Page       int
	Limit      int
}

type TaskStats struct {
	TotalTasks     int `json:"totalTasks"`
	CompletedTasks int `json:"completedTasks"`
	PendingTasks   int `json:"pendingTasks"`
	OverdueTasks   int `json:"overdueTasks"`
}

// TaskInput is the request body for create and update. Values are checked by the task service
// so that every failing field can be reported at once. Unknown keys such as createdBy are ignored.
type TaskInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Status      *string   `json:"status"`
	Priority    *string   `json:"priority"`
	DueDate     *string   `json:"dueDate"`
	Assignee    *string   `json:"assignee"`
	Tags        *[]string `json:"tags"`
}
