package services

import (
	"context"
	"testing"

	"taskboard/internal/apperrors"
	"taskboard/internal/authz"
	"taskboard/internal/models"
)

func taskInput(title, assignee, due string) models.TaskInput {
	return models.TaskInput{
		Title:       strPtr(title),
		Description: strPtr("Q3 summary"),
		DueDate:     strPtr(due),
		Assignee:    strPtr(assignee),
	}
}

func TestCreateTask_DefaultsAndOverdue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.user(t, "admin", models.RoleAdmin)
	x := f.user(t, "memberx", models.RoleMember)

	yesterday := f.now.AddDate(0, 0, -1).Format("2006-01-02")
	task, err := f.tasks.CreateTask(ctx, admin, taskInput("  Write report  ", x.ID, yesterday))
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}
	if task.Title != "Write report" {
		t.Errorf("Title = %q, want trimmed", task.Title)
	}
	if task.Status != models.StatusTodo || task.Priority != models.PriorityMedium {
		t.Errorf("status/priority = %s/%s, want todo/medium", task.Status, task.Priority)
	}
	if !task.IsOverdue {
		t.Error("IsOverdue = false, want true for yesterday's due date")
	}
	if task.Tags == nil || len(task.Tags) != 0 {
		t.Errorf("Tags = %#v, want empty non-nil", task.Tags)
	}
	if task.CreatedBy.ID != admin.ID {
		t.Errorf("CreatedBy = %q, want %q", task.CreatedBy.ID, admin.ID)
	}

	got, err := f.tasks.GetTask(ctx, x, task.ID)
	if err != nil {
		t.Fatalf("GetTask() error: %v", err)
	}
	if got.Assignee.Name != "memberx" || got.Assignee.Email != "memberx@example.com" {
		t.Errorf("Assignee = %+v, want resolved public fields", got.Assignee)
	}
}

func TestCreateTask_ReportsEveryField(t *testing.T) {
	f := newFixture(t)
	x := f.user(t, "memberx", models.RoleMember)

	long := make([]byte, models.MaxTitleLength+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := f.tasks.CreateTask(context.Background(), x, models.TaskInput{
		Title:    strPtr(string(long)),
		Status:   strPtr("blocked"),
		DueDate:  strPtr("next tuesday"),
		Assignee: strPtr("6f1c7c1e-2a54-4c1b-9d5e-000000000000"),
	})
	var appErr *apperrors.Error
	if !asAppError(err, &appErr) || appErr.Kind != apperrors.KindValidation {
		t.Fatalf("CreateTask() error = %v, want validation", err)
	}

	want := map[string]bool{"title": true, "description": true, "status": true, "dueDate": true, "assignee": true}
	for _, fe := range appErr.Fields {
		delete(want, fe.Field)
	}
	if len(want) != 0 {
		t.Errorf("missing field errors for %v (got %+v)", want, appErr.Fields)
	}
}

func TestTaskPolicy_MemberScope(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.user(t, "admin", models.RoleAdmin)
	x := f.user(t, "memberx", models.RoleMember)
	y := f.user(t, "membery", models.RoleMember)

	due := f.now.AddDate(0, 0, 3).Format("2006-01-02")
	mine, err := f.tasks.CreateTask(ctx, admin, taskInput("for x", x.ID, due))
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}
	if _, err := f.tasks.CreateTask(ctx, x, taskInput("for y", y.ID, due)); err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}

	tests := []struct {
		name  string
		actor authz.Actor
		total int
	}{
		{"admin sees all", admin, 2},
		{"member x sees own", x, 1},
		{"member y sees own", y, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, err := f.tasks.ListTasks(ctx, tc.actor, models.TaskFilter{})
			if err != nil {
				t.Fatalf("ListTasks() error: %v", err)
			}
			if page.Total != tc.total {
				t.Errorf("Total = %d, want %d", page.Total, tc.total)
			}
			for _, task := range page.Items {
				if !tc.actor.IsAdmin() && task.Assignee.ID != tc.actor.ID {
					t.Errorf("task %q assigned to %s leaked to %s", task.Title, task.Assignee.ID, tc.actor.ID)
				}
			}
		})
	}

	if _, err := f.tasks.GetTask(ctx, y, mine.ID); !apperrors.Is(err, apperrors.KindForbidden) {
		t.Errorf("GetTask(y) error = %v, want forbidden", err)
	}
	if _, err := f.tasks.UpdateTask(ctx, y, mine.ID, models.TaskInput{Title: strPtr("x")}); !apperrors.Is(err, apperrors.KindForbidden) {
		t.Errorf("UpdateTask(y) error = %v, want forbidden", err)
	}
	if err := f.tasks.DeleteTask(ctx, y, mine.ID); !apperrors.Is(err, apperrors.KindForbidden) {
		t.Errorf("DeleteTask(y) error = %v, want forbidden", err)
	}
	if err := f.tasks.DeleteTask(ctx, x, mine.ID); err != nil {
		t.Errorf("DeleteTask(x) error: %v", err)
	}
	if _, err := f.tasks.GetTask(ctx, admin, mine.ID); !apperrors.Is(err, apperrors.KindNotFound) {
		t.Errorf("GetTask after delete error = %v, want not found", err)
	}
}

func TestUpdateTask_CompletingClearsOverdue(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.user(t, "admin", models.RoleAdmin)
	x := f.user(t, "memberx", models.RoleMember)

	task, err := f.tasks.CreateTask(ctx, admin, taskInput("Write report", x.ID, f.now.AddDate(0, 0, -1).Format("2006-01-02")))
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}

	updated, err := f.tasks.UpdateTask(ctx, x, task.ID, models.TaskInput{Status: strPtr("completed")})
	if err != nil {
		t.Fatalf("UpdateTask() error: %v", err)
	}
	if updated.IsOverdue {
		t.Error("IsOverdue = true, want false after completion")
	}
	if updated.CreatedBy.ID != admin.ID {
		t.Errorf("CreatedBy = %q, want %q", updated.CreatedBy.ID, admin.ID)
	}
	if updated.Title != "Write report" {
		t.Errorf("Title = %q, want unchanged", updated.Title)
	}
}

func TestUpdateTask_ReassignValidatesAssignee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.user(t, "admin", models.RoleAdmin)
	x := f.user(t, "memberx", models.RoleMember)
	y := f.user(t, "membery", models.RoleMember)

	task, err := f.tasks.CreateTask(ctx, admin, taskInput("t", x.ID, "2030-01-01"))
	if err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}

	tests := []struct {
		name     string
		assignee string
		kind     apperrors.Kind
	}{
		{"malformed", "not-a-uuid", apperrors.KindValidation},
		{"unknown", "6f1c7c1e-2a54-4c1b-9d5e-000000000000", apperrors.KindValidation},
		{"existing", y.ID, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.tasks.UpdateTask(ctx, admin, task.ID, models.TaskInput{Assignee: strPtr(tc.assignee)})
			if got := apperrors.KindOf(err); got != tc.kind {
				t.Errorf("UpdateTask() kind = %q, want %q (err %v)", got, tc.kind, err)
			}
		})
	}

	// x lost access once the task moved to y.
	if _, err := f.tasks.GetTask(ctx, x, task.ID); !apperrors.Is(err, apperrors.KindForbidden) {
		t.Errorf("GetTask(x) error = %v, want forbidden", err)
	}
}

func TestTaskService_MalformedIDIsNotFound(t *testing.T) {
	f := newFixture(t)
	admin := f.user(t, "admin", models.RoleAdmin)
	if _, err := f.tasks.GetTask(context.Background(), admin, "123"); !apperrors.Is(err, apperrors.KindNotFound) {
		t.Errorf("GetTask() error = %v, want not found", err)
	}
}

func TestListTasks_RejectsBadFilters(t *testing.T) {
	f := newFixture(t)
	x := f.user(t, "memberx", models.RoleMember)

	filters := []models.TaskFilter{
		{Status: "done"},
		{Priority: "critical"},
		{Sort: "assignee"},
	}
	for _, filter := range filters {
		if _, err := f.tasks.ListTasks(context.Background(), x, filter); !apperrors.Is(err, apperrors.KindValidation) {
			t.Errorf("ListTasks(%+v) error = %v, want validation", filter, err)
		}
	}
}

func TestStatsOverview_Scoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.user(t, "admin", models.RoleAdmin)
	x := f.user(t, "memberx", models.RoleMember)

	past := f.now.AddDate(0, 0, -2).Format("2006-01-02")
	future := f.now.AddDate(0, 0, 2).Format("2006-01-02")
	if _, err := f.tasks.CreateTask(ctx, admin, taskInput("late", x.ID, past)); err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}
	if _, err := f.tasks.CreateTask(ctx, admin, taskInput("admin's", admin.ID, future)); err != nil {
		t.Fatalf("CreateTask() error: %v", err)
	}

	all, err := f.stats.Overview(ctx, admin)
	if err != nil {
		t.Fatalf("Overview(admin) error: %v", err)
	}
	if all.TotalTasks != 2 || all.OverdueTasks != 1 {
		t.Errorf("Overview(admin) = %+v", all)
	}
	mine, err := f.stats.Overview(ctx, x)
	if err != nil {
		t.Fatalf("Overview(x) error: %v", err)
	}
	if mine.TotalTasks != 1 || mine.PendingTasks != 1 || mine.OverdueTasks != 1 {
		t.Errorf("Overview(x) = %+v", mine)
	}
}
