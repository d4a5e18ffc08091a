package memory

import (
	"context"
	"testing"
	"time"

	"taskboard/internal/apperrors"
	"taskboard/internal/models"
)

func seedUser(t *testing.T, s *Store, name, email string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: email, Role: models.RoleMember, IsActive: true}
	if err := s.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("Create(%s) error: %v", email, err)
	}
	return u
}

func seedTask(t *testing.T, s *Store, title string, assignee, creator *models.User, created time.Time) *models.Task {
	t.Helper()
	task, err := s.Tasks().Create(context.Background(), &models.Task{
		Title:       title,
		Description: "description of " + title,
		Status:      models.StatusTodo,
		Priority:    models.PriorityMedium,
		DueDate:     created.Add(24 * time.Hour),
		Assignee:    models.UserRef{ID: assignee.ID},
		CreatedBy:   models.UserRef{ID: creator.ID},
		CreatedAt:   created,
	})
	if err != nil {
		t.Fatalf("Create task %q error: %v", title, err)
	}
	return task
}

func TestUserRepository_EmailUniqueCaseInsensitive(t *testing.T) {
	s := NewStore()
	seedUser(t, s, "Ann", "ann@example.com")

	err := s.Users().Create(context.Background(), &models.User{Name: "Other", Email: "ANN@example.com"})
	if !apperrors.Is(err, apperrors.KindValidation) {
		t.Fatalf("duplicate Create() error = %v, want validation", err)
	}

	got, err := s.Users().GetByEmail(context.Background(), " Ann@Example.com ")
	if err != nil {
		t.Fatalf("GetByEmail() error: %v", err)
	}
	if got.Name != "Ann" {
		t.Errorf("Name = %q, want Ann", got.Name)
	}
}

func TestUserRepository_DeleteRestrictedByTasks(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	owner := seedUser(t, s, "Owner", "owner@example.com")
	idle := seedUser(t, s, "Idle", "idle@example.com")
	seedTask(t, s, "keep", owner, owner, time.Now())

	if err := s.Users().Delete(ctx, owner.ID); !apperrors.Is(err, apperrors.KindInvalidOperation) {
		t.Fatalf("Delete(owner) error = %v, want invalid operation", err)
	}
	if err := s.Users().Delete(ctx, idle.ID); err != nil {
		t.Fatalf("Delete(idle) error: %v", err)
	}
	if err := s.Users().Delete(ctx, idle.ID); !apperrors.Is(err, apperrors.KindNotFound) {
		t.Fatalf("second Delete() error = %v, want not found", err)
	}
}

func TestTaskRepository_ScopedWritesReportNotFound(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	x := seedUser(t, s, "X", "x@example.com")
	y := seedUser(t, s, "Y", "y@example.com")
	task := seedTask(t, s, "scoped", x, x, time.Now())

	title := "stolen"
	if _, err := s.Tasks().Update(ctx, task.ID, y.ID, models.TaskPatch{Title: &title}, time.Now()); !apperrors.Is(err, apperrors.KindNotFound) {
		t.Fatalf("Update() out of scope error = %v, want not found", err)
	}
	if err := s.Tasks().Delete(ctx, task.ID, y.ID); !apperrors.Is(err, apperrors.KindNotFound) {
		t.Fatalf("Delete() out of scope error = %v, want not found", err)
	}

	got, err := s.Tasks().GetByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if got.Title != "scoped" {
		t.Errorf("Title = %q, want unchanged", got.Title)
	}
}

func TestTaskRepository_UpdateRecomputesOverdue(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	x := seedUser(t, s, "X", "x@example.com")
	past := time.Now().Add(-72 * time.Hour)
	task := seedTask(t, s, "late", x, x, past)

	now := time.Now()
	got, err := s.Tasks().Update(ctx, task.ID, "", models.TaskPatch{}, now)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if !got.IsOverdue {
		t.Errorf("IsOverdue = false, want true for past due date")
	}

	done := models.StatusCompleted
	got, err = s.Tasks().Update(ctx, task.ID, x.ID, models.TaskPatch{Status: &done}, now)
	if err != nil {
		t.Fatalf("Update(completed) error: %v", err)
	}
	if got.IsOverdue {
		t.Errorf("IsOverdue = true, want false once completed")
	}
	if got.CreatedBy.ID != x.ID || got.CreatedBy.Name != "X" {
		t.Errorf("CreatedBy = %+v, want resolved creator", got.CreatedBy)
	}
}

func TestTaskRepository_ListFiltersSortsAndPages(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	x := seedUser(t, s, "X", "x@example.com")
	y := seedUser(t, s, "Y", "y@example.com")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seedTask(t, s, "Write report", x, x, base)
	seedTask(t, s, "Review report", y, x, base.Add(time.Hour))
	seedTask(t, s, "Plan sprint", x, y, base.Add(2*time.Hour))

	tests := []struct {
		name   string
		filter models.TaskFilter
		want   []string
		total  int
	}{
		{"default newest first", models.TaskFilter{}, []string{"Plan sprint", "Review report", "Write report"}, 3},
		{"scoped", models.TaskFilter{AssigneeID: x.ID}, []string{"Plan sprint", "Write report"}, 2},
		{"search all words", models.TaskFilter{Search: "REPORT review"}, []string{"Review report"}, 1},
		{"title ascending", models.TaskFilter{Sort: "title"}, []string{"Plan sprint", "Review report", "Write report"}, 3},
		{"second page", models.TaskFilter{Sort: "createdAt", Page: 2, Limit: 2}, []string{"Plan sprint"}, 3},
		{"status miss", models.TaskFilter{Status: models.StatusCompleted}, []string{}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tasks, total, err := s.Tasks().List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List() error: %v", err)
			}
			if total != tc.total {
				t.Errorf("total = %d, want %d", total, tc.total)
			}
			if len(tasks) != len(tc.want) {
				t.Fatalf("len = %d, want %d", len(tasks), len(tc.want))
			}
			for i, title := range tc.want {
				if tasks[i].Title != title {
					t.Errorf("tasks[%d] = %q, want %q", i, tasks[i].Title, title)
				}
			}
		})
	}
}

func TestTaskRepository_Stats(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	x := seedUser(t, s, "X", "x@example.com")
	y := seedUser(t, s, "Y", "y@example.com")
	now := time.Now()
	late := seedTask(t, s, "late", x, x, now.Add(-72*time.Hour))
	seedTask(t, s, "other", y, x, now)

	if _, err := s.Tasks().Update(ctx, late.ID, "", models.TaskPatch{}, now); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	all, err := s.Tasks().Stats(ctx, "")
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if all.TotalTasks != 2 || all.PendingTasks != 2 || all.OverdueTasks != 1 {
		t.Errorf("Stats(all) = %+v", all)
	}
	mine, err := s.Tasks().Stats(ctx, y.ID)
	if err != nil {
		t.Fatalf("Stats(y) error: %v", err)
	}
	if mine.TotalTasks != 1 || mine.OverdueTasks != 0 {
		t.Errorf("Stats(y) = %+v", mine)
	}
}

func TestList_HugePageIsEmpty(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	x := seedUser(t, s, "X", "x@example.com")
	seedTask(t, s, "only", x, x, time.Now())

	tasks, total, err := s.Tasks().List(ctx, models.TaskFilter{Page: 922337203685477580, Limit: 100})
	if err != nil {
		t.Fatalf("Tasks().List() error: %v", err)
	}
	if len(tasks) != 0 || total != 1 {
		t.Errorf("len=%d total=%d, want 0 and 1", len(tasks), total)
	}

	users, total, err := s.Users().List(ctx, models.Page{Page: 922337203685477580, Limit: 100})
	if err != nil {
		t.Fatalf("Users().List() error: %v", err)
	}
	if len(users) != 0 || total != 1 {
		t.Errorf("len=%d total=%d, want 0 and 1", len(users), total)
	}
}
