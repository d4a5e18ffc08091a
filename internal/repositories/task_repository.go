package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"taskboard/internal/apperrors"
	"taskboard/internal/models"
)

const errTaskNotFound = "Task not found"

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	List(ctx context.Context, filter models.TaskFilter) ([]models.Task, int, error)

	// Update applies patch in one statement and recomputes is_overdue against now.
	// A non-empty scope restricts the write to tasks assigned to that user; a miss
	// (absent or out of scope) is reported as NotFound.
	Update(ctx context.Context, id, scope string, patch models.TaskPatch, now time.Time) (*models.Task, error)
	Delete(ctx context.Context, id, scope string) error
	Stats(ctx context.Context, scope string) (models.TaskStats, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	const query = `
		INSERT INTO tasks (
			title, description, status, priority, due_date,
			assignee_id, created_by, tags, is_overdue, created_at, updated_at
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$10)
		RETURNING id`
	var id string
	err := r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Status, task.Priority, task.DueDate,
		task.Assignee.ID, task.CreatedBy.ID, pq.Array(task.Tags), task.IsOverdue, task.CreatedAt,
	).Scan(&id)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return nil, apperrors.Validation("Validation error", apperrors.FieldError{Field: "assignee", Message: "Assignee not found"})
		}
		return nil, apperrors.Storage("insert task", err)
	}
	return r.GetByID(ctx, id)
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT` + taskColumns + taskFrom + ` WHERE t.id = $1`
	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, classify("get task", err, errTaskNotFound)
	}
	return task, nil
}

func (r *taskRepository) List(ctx context.Context, filter models.TaskFilter) ([]models.Task, int, error) {
	where, args := buildTaskWhere(filter)
	page := models.Page{Page: filter.Page, Limit: filter.Limit}.Normalize()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks t`+where, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.Storage("count tasks", err)
	}

	query := `SELECT` + taskColumns + taskFrom + where + taskOrderBy(filter.Sort) +
		limitOffset(len(args))
	args = append(args, page.Limit, page.Offset())

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, apperrors.Storage("list tasks", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, apperrors.Storage("scan task", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.Storage("list tasks", err)
	}
	return tasks, total, nil
}

func (r *taskRepository) Update(ctx context.Context, id, scope string, patch models.TaskPatch, now time.Time) (*models.Task, error) {
	const query = `
		UPDATE tasks SET
			title       = COALESCE($2, title),
			description = COALESCE($3, description),
			status      = COALESCE($4, status),
			priority    = COALESCE($5, priority),
			due_date    = COALESCE($6, due_date),
			assignee_id = COALESCE($7::uuid, assignee_id),
			tags        = COALESCE($8, tags),
			is_overdue  = (COALESCE($4, status) <> 'completed' AND COALESCE($6, due_date) < $9),
			updated_at  = $9
		WHERE id = $1 AND ($10::uuid IS NULL OR assignee_id = $10::uuid)
		RETURNING id`

	var tags interface{}
	if patch.Tags != nil {
		tags = pq.Array(*patch.Tags)
	}
	var updatedID string
	err := r.db.QueryRowContext(ctx, query,
		id,
		nullString(patch.Title),
		nullString(patch.Description),
		nullEnum(patch.Status),
		nullEnum(patch.Priority),
		nullTime(patch.DueDate),
		nullString(patch.AssigneeID),
		tags,
		now,
		nullIfEmpty(scope),
	).Scan(&updatedID)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return nil, apperrors.Validation("Validation error", apperrors.FieldError{Field: "assignee", Message: "Assignee not found"})
		}
		return nil, classify("update task", err, errTaskNotFound)
	}
	return r.GetByID(ctx, updatedID)
}

func (r *taskRepository) Delete(ctx context.Context, id, scope string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE id = $1 AND ($2::uuid IS NULL OR assignee_id = $2::uuid)`,
		id, nullIfEmpty(scope))
	if err != nil {
		return apperrors.Storage("delete task", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete task", err)
	}
	if n == 0 {
		return apperrors.NotFound(errTaskNotFound)
	}
	return nil
}

func (r *taskRepository) Stats(ctx context.Context, scope string) (models.TaskStats, error) {
	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'completed'),
			COUNT(*) FILTER (WHERE status <> 'completed'),
			COUNT(*) FILTER (WHERE is_overdue)
		FROM tasks
		WHERE ($1::uuid IS NULL OR assignee_id = $1::uuid)`
	var s models.TaskStats
	err := r.db.QueryRowContext(ctx, query, nullIfEmpty(scope)).Scan(
		&s.TotalTasks, &s.CompletedTasks, &s.PendingTasks, &s.OverdueTasks,
	)
	if err != nil {
		return models.TaskStats{}, apperrors.Storage("task stats", err)
	}
	return s, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		t    models.Task
		tags pq.StringArray
	)
	if err := row.Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &tags, &t.IsOverdue,
		&t.CreatedAt, &t.UpdatedAt,
		&t.Assignee.ID, &t.Assignee.Name, &t.Assignee.Email,
		&t.CreatedBy.ID, &t.CreatedBy.Name, &t.CreatedBy.Email,
	); err != nil {
		return nil, err
	}
	t.Tags = []string(tags)
	if t.Tags == nil {
		t.Tags = []string{}
	}
	return &t, nil
}
