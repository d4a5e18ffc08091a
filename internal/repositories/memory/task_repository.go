package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/apperrors"
	"taskboard/internal/models"
)

type taskRepository struct {
	store *Store
}

func assigneeMissing() error {
	return apperrors.Validation("Validation error", apperrors.FieldError{Field: "assignee", Message: "Assignee not found"})
}

func (r *taskRepository) Create(_ context.Context, task *models.Task) (*models.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[task.Assignee.ID]; !ok {
		return nil, assigneeMissing()
	}
	if _, ok := s.users[task.CreatedBy.ID]; !ok {
		return nil, apperrors.Validation("Validation error", apperrors.FieldError{Field: "createdBy", Message: "Creator not found"})
	}

	rec := &taskRecord{
		Task:       *task,
		assigneeID: task.Assignee.ID,
		creatorID:  task.CreatedBy.ID,
	}
	rec.ID = uuid.NewString()
	rec.Tags = append([]string{}, task.Tags...)
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	rec.UpdatedAt = rec.CreatedAt
	s.tasks[rec.ID] = rec
	return s.view(rec), nil
}

func (r *taskRepository) GetByID(_ context.Context, id string) (*models.Task, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.tasks[id]
	if !ok {
		return nil, apperrors.NotFound("Task not found")
	}
	return s.view(rec), nil
}

func (r *taskRepository) List(_ context.Context, filter models.TaskFilter) ([]models.Task, int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := strings.Fields(strings.ToLower(filter.Search))
	matched := make([]models.Task, 0)
	for _, rec := range s.tasks {
		if filter.AssigneeID != "" && rec.assigneeID != filter.AssigneeID {
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && rec.Priority != filter.Priority {
			continue
		}
		if !matchesSearch(rec, words) {
			continue
		}
		matched = append(matched, *s.view(rec))
	}

	sortTasks(matched, filter.Sort)
	page := models.Page{Page: filter.Page, Limit: filter.Limit}.Normalize()
	return paginate(matched, page), len(matched), nil
}

func (r *taskRepository) Update(_ context.Context, id, scope string, patch models.TaskPatch, now time.Time) (*models.Task, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tasks[id]
	if !ok || (scope != "" && rec.assigneeID != scope) {
		return nil, apperrors.NotFound("Task not found")
	}
	if patch.AssigneeID != nil {
		if _, ok := s.users[*patch.AssigneeID]; !ok {
			return nil, assigneeMissing()
		}
		rec.assigneeID = *patch.AssigneeID
	}
	if patch.Title != nil {
		rec.Title = *patch.Title
	}
	if patch.Description != nil {
		rec.Description = *patch.Description
	}
	if patch.Status != nil {
		rec.Status = *patch.Status
	}
	if patch.Priority != nil {
		rec.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		rec.DueDate = *patch.DueDate
	}
	if patch.Tags != nil {
		rec.Tags = append([]string{}, (*patch.Tags)...)
	}
	rec.IsOverdue = models.IsOverdue(rec.DueDate, rec.Status, now)
	rec.UpdatedAt = now
	return s.view(rec), nil
}

func (r *taskRepository) Delete(_ context.Context, id, scope string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.tasks[id]
	if !ok || (scope != "" && rec.assigneeID != scope) {
		return apperrors.NotFound("Task not found")
	}
	delete(s.tasks, id)
	return nil
}

func (r *taskRepository) Stats(_ context.Context, scope string) (models.TaskStats, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var st models.TaskStats
	for _, rec := range s.tasks {
		if scope != "" && rec.assigneeID != scope {
			continue
		}
		st.TotalTasks++
		if rec.Status == models.StatusCompleted {
			st.CompletedTasks++
		} else {
			st.PendingTasks++
		}
		if rec.IsOverdue {
			st.OverdueTasks++
		}
	}
	return st, nil
}

// view copies rec and resolves its user references. Callers hold the lock.
func (s *Store) view(rec *taskRecord) *models.Task {
	t := rec.Task
	t.Tags = append([]string{}, rec.Tags...)
	t.Assignee = models.UserRef{ID: rec.assigneeID}
	if u, ok := s.users[rec.assigneeID]; ok {
		t.Assignee = u.Ref()
	}
	t.CreatedBy = models.UserRef{ID: rec.creatorID}
	if u, ok := s.users[rec.creatorID]; ok {
		t.CreatedBy = u.Ref()
	}
	return &t
}

// matchesSearch requires every word to appear in the title or description.
func matchesSearch(rec *taskRecord, words []string) bool {
	if len(words) == 0 {
		return true
	}
	text := strings.ToLower(rec.Title + " " + rec.Description)
	for _, w := range words {
		if !strings.Contains(text, w) {
			return false
		}
	}
	return true
}

func sortTasks(tasks []models.Task, raw string) {
	key, ok := models.ParseTaskSort(raw)
	if !ok {
		key, _ = models.ParseTaskSort("")
	}
	compare := func(a, b *models.Task) int {
		switch key.Key {
		case models.SortUpdatedAt:
			return a.UpdatedAt.Compare(b.UpdatedAt)
		case models.SortDueDate:
			return a.DueDate.Compare(b.DueDate)
		case models.SortTitle:
			return strings.Compare(a.Title, b.Title)
		case models.SortPriority:
			return a.Priority.Rank() - b.Priority.Rank()
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		c := compare(&tasks[i], &tasks[j])
		if c == 0 {
			c = strings.Compare(tasks[i].ID, tasks[j].ID)
		}
		if key.Desc {
			return c > 0
		}
		return c < 0
	})
}
