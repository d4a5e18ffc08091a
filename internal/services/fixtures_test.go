package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/apperrors"
	"taskboard/internal/authz"
	"taskboard/internal/models"
	"taskboard/internal/repositories/memory"
)

type fixture struct {
	store *memory.Store
	auth  AuthService
	tasks TaskService
	users UserService
	stats StatsService
	acct  AccountService
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	auth := NewAuthService("test-secret", "taskboard", time.Hour, bcrypt.MinCost)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tasks := NewTaskService(store.Tasks(), store.Users())
	tasks.(*taskService).now = func() time.Time { return now }
	acct := NewAccountService(store.Users(), auth, nil, nil)

	return &fixture{
		store: store,
		auth:  auth,
		tasks: tasks,
		users: NewUserService(store.Users()),
		stats: NewStatsService(store.Tasks()),
		acct:  acct,
		now:   now,
	}
}

func (f *fixture) user(t *testing.T, name string, role models.Role) authz.Actor {
	t.Helper()
	u := &models.User{Name: name, Email: name + "@example.com", Role: role, IsActive: true}
	if err := f.store.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("create user %s: %v", name, err)
	}
	return authz.Actor{ID: u.ID, Role: role}
}

func strPtr(s string) *string { return &s }

func asAppError(err error, target **apperrors.Error) bool {
	return errors.As(err, target)
}
