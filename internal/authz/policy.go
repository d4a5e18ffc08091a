package authz

import (
	"taskboard/internal/apperrors"
	"taskboard/internal/models"
)

// Actor is the authenticated caller.
type Actor struct {
	ID   string
	Role models.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

type TaskOp string

const (
	TaskList   TaskOp = "list"
	TaskCreate TaskOp = "create"
	TaskRead   TaskOp = "read"
	TaskUpdate TaskOp = "update"
	TaskDelete TaskOp = "delete"
)

type UserOp string

const (
	UserList       UserOp = "list"
	UserRead       UserOp = "read"
	UserUpdateRole UserOp = "update-role"
	UserActivate   UserOp = "activate"
	UserDeactivate UserOp = "deactivate"
	UserDelete     UserOp = "delete"
)

// TaskListScope returns the assignee every listed task must match, or "" for an unscoped list.
func TaskListScope(actor Actor) string {
	if actor.IsAdmin() {
		return ""
	}
	return actor.ID
}

// CanTask decides a single-task operation. assigneeID is the task's current assignee
// and is ignored for list and create.
func CanTask(actor Actor, op TaskOp, assigneeID string) error {
	if actor.ID == "" {
		return apperrors.Auth("Not authorized, no token")
	}
	switch op {
	case TaskList, TaskCreate:
		return nil
	case TaskRead, TaskUpdate, TaskDelete:
		if actor.IsAdmin() || assigneeID == actor.ID {
			return nil
		}
		return apperrors.Forbidden("Not authorized to " + string(op) + " this task")
	}
	return apperrors.Forbidden("unknown task operation")
}

// CanUser decides an operation on the admin-only user surface.
func CanUser(actor Actor, op UserOp, targetID string) error {
	if actor.ID == "" {
		return apperrors.Auth("Not authorized, no token")
	}
	if !actor.IsAdmin() {
		return apperrors.Forbidden("Access denied. Admin only.")
	}
	if targetID != actor.ID {
		return nil
	}
	switch op {
	case UserUpdateRole:
		return apperrors.InvalidOperation("Cannot change your own role")
	case UserDeactivate:
		return apperrors.InvalidOperation("Cannot deactivate your own account")
	case UserDelete:
		return apperrors.InvalidOperation("Cannot delete your own account")
	}
	return nil
}
