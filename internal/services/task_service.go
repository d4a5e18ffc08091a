package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"taskboard/internal/apperrors"
	"taskboard/internal/authz"
	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

// TaskService applies the task policy around the task repository.
type TaskService interface {
	ListTasks(ctx context.Context, actor authz.Actor, filter models.TaskFilter) (models.PageResult[models.Task], error)
	CreateTask(ctx context.Context, actor authz.Actor, input models.TaskInput) (*models.Task, error)
	GetTask(ctx context.Context, actor authz.Actor, id string) (*models.Task, error)
	UpdateTask(ctx context.Context, actor authz.Actor, id string, input models.TaskInput) (*models.Task, error)
	DeleteTask(ctx context.Context, actor authz.Actor, id string) error
}

type taskService struct {
	tasks repositories.TaskRepository
	users repositories.UserRepository
	now   func() time.Time
}

func NewTaskService(tasks repositories.TaskRepository, users repositories.UserRepository) TaskService {
	return &taskService{tasks: tasks, users: users, now: time.Now}
}

func (s *taskService) ListTasks(ctx context.Context, actor authz.Actor, filter models.TaskFilter) (models.PageResult[models.Task], error) {
	if err := authz.CanTask(actor, authz.TaskList, ""); err != nil {
		return models.PageResult[models.Task]{}, err
	}

	var fields apperrors.FieldSet
	if filter.Status != "" && !filter.Status.Valid() {
		fields.Add("status", "Status must be one of todo, in-progress, completed")
	}
	if filter.Priority != "" && !filter.Priority.Valid() {
		fields.Add("priority", "Priority must be one of low, medium, high, urgent")
	}
	if _, ok := models.ParseTaskSort(filter.Sort); !ok {
		fields.Add("sort", "Unknown sort key")
	}
	if err := fields.Err(); err != nil {
		return models.PageResult[models.Task]{}, err
	}

	page := models.Page{Page: filter.Page, Limit: filter.Limit}.Normalize()
	filter.Page, filter.Limit = page.Page, page.Limit
	filter.AssigneeID = authz.TaskListScope(actor)

	items, total, err := s.tasks.List(ctx, filter)
	if err != nil {
		return models.PageResult[models.Task]{}, err
	}
	return models.NewPageResult(items, total, page), nil
}

func (s *taskService) CreateTask(ctx context.Context, actor authz.Actor, input models.TaskInput) (*models.Task, error) {
	if err := authz.CanTask(actor, authz.TaskCreate, ""); err != nil {
		return nil, err
	}

	patch, fields := parseTaskInput(input, true)
	if patch.AssigneeID != nil {
		if err := s.checkAssignee(ctx, *patch.AssigneeID, &fields); err != nil {
			return nil, err
		}
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	now := s.now()
	task := &models.Task{
		Title:       *patch.Title,
		Description: *patch.Description,
		Status:      models.StatusTodo,
		Priority:    models.PriorityMedium,
		DueDate:     *patch.DueDate,
		Assignee:    models.UserRef{ID: *patch.AssigneeID},
		CreatedBy:   models.UserRef{ID: actor.ID},
		Tags:        []string{},
		CreatedAt:   now,
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.Tags != nil {
		task.Tags = *patch.Tags
	}
	task.IsOverdue = models.IsOverdue(task.DueDate, task.Status, now)

	return s.tasks.Create(ctx, task)
}

func (s *taskService) GetTask(ctx context.Context, actor authz.Actor, id string) (*models.Task, error) {
	task, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanTask(actor, authz.TaskRead, task.Assignee.ID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, actor authz.Actor, id string, input models.TaskInput) (*models.Task, error) {
	task, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := authz.CanTask(actor, authz.TaskUpdate, task.Assignee.ID); err != nil {
		return nil, err
	}

	patch, fields := parseTaskInput(input, false)
	if patch.AssigneeID != nil {
		if err := s.checkAssignee(ctx, *patch.AssigneeID, &fields); err != nil {
			return nil, err
		}
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	updated, err := s.tasks.Update(ctx, id, authz.TaskListScope(actor), patch, s.now())
	if apperrors.Is(err, apperrors.KindNotFound) {
		// The task was deleted or reassigned between the check and the write.
		return nil, s.explainMiss(ctx, actor, authz.TaskUpdate, id, err)
	}
	return updated, err
}

func (s *taskService) DeleteTask(ctx context.Context, actor authz.Actor, id string) error {
	task, err := s.resolve(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.CanTask(actor, authz.TaskDelete, task.Assignee.ID); err != nil {
		return err
	}

	err = s.tasks.Delete(ctx, id, authz.TaskListScope(actor))
	if apperrors.Is(err, apperrors.KindNotFound) {
		return s.explainMiss(ctx, actor, authz.TaskDelete, id, err)
	}
	return err
}

func (s *taskService) resolve(ctx context.Context, id string) (*models.Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperrors.NotFound("Task not found")
	}
	return s.tasks.GetByID(ctx, id)
}

// explainMiss turns a scoped write that matched no row into NotFound or Forbidden.
func (s *taskService) explainMiss(ctx context.Context, actor authz.Actor, op authz.TaskOp, id string, miss error) error {
	current, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.CanTask(actor, op, current.Assignee.ID); err != nil {
		return err
	}
	return miss
}

func (s *taskService) checkAssignee(ctx context.Context, id string, fields *apperrors.FieldSet) error {
	_, err := s.users.GetByID(ctx, id)
	switch {
	case err == nil:
		return nil
	case apperrors.Is(err, apperrors.KindNotFound):
		fields.Add("assignee", "Assignee not found")
		return nil
	default:
		return err
	}
}

// parseTaskInput checks every present field and, when creating, the required ones.
// A malformed assignee id is reported here and left out of the patch.
func parseTaskInput(in models.TaskInput, creating bool) (models.TaskPatch, apperrors.FieldSet) {
	var (
		patch  models.TaskPatch
		fields apperrors.FieldSet
	)

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		switch {
		case title == "":
			fields.Add("title", "Please add a task title")
		case utf8.RuneCountInString(title) > models.MaxTitleLength:
			fields.Add("title", "Title cannot be more than 100 characters")
		default:
			patch.Title = &title
		}
	} else if creating {
		fields.Add("title", "Please add a task title")
	}

	if in.Description != nil {
		desc := strings.TrimSpace(*in.Description)
		switch {
		case desc == "":
			fields.Add("description", "Please add a task description")
		case utf8.RuneCountInString(desc) > models.MaxDescriptionLength:
			fields.Add("description", "Description cannot be more than 1000 characters")
		default:
			patch.Description = &desc
		}
	} else if creating {
		fields.Add("description", "Please add a task description")
	}

	if in.Status != nil {
		status := models.TaskStatus(strings.TrimSpace(*in.Status))
		if status.Valid() {
			patch.Status = &status
		} else {
			fields.Add("status", "Status must be one of todo, in-progress, completed")
		}
	}

	if in.Priority != nil {
		priority := models.TaskPriority(strings.TrimSpace(*in.Priority))
		if priority.Valid() {
			patch.Priority = &priority
		} else {
			fields.Add("priority", "Priority must be one of low, medium, high, urgent")
		}
	}

	if in.DueDate != nil {
		if due, ok := parseDueDate(*in.DueDate); ok {
			patch.DueDate = &due
		} else {
			fields.Add("dueDate", "Due date must be a valid date")
		}
	} else if creating {
		fields.Add("dueDate", "Please add a due date")
	}

	if in.Assignee != nil {
		assignee := strings.TrimSpace(*in.Assignee)
		if _, err := uuid.Parse(assignee); err != nil {
			fields.Add("assignee", "Assignee must be a valid user id")
		} else {
			patch.AssigneeID = &assignee
		}
	} else if creating {
		fields.Add("assignee", "Please assign the task to a user")
	}

	if in.Tags != nil {
		tags := make([]string, 0, len(*in.Tags))
		for _, tag := range *in.Tags {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
		patch.Tags = &tags
	}

	return patch, fields
}

var dueDateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"}

func parseDueDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dueDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
