// Package memory keeps users and tasks in process memory. It honors the same contracts as
// the Postgres repositories and backs the "memory" store setting and the service tests.
package memory

import (
	"sync"

	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

// Store is the shared state behind the user and task repositories, so that
// referential checks (assignee exists, user still has tasks) see one snapshot.
type Store struct {
	mu    sync.RWMutex
	users map[string]*models.User
	tasks map[string]*taskRecord
}

type taskRecord struct {
	models.Task
	assigneeID string
	creatorID  string
}

func NewStore() *Store {
	return &Store{
		users: make(map[string]*models.User),
		tasks: make(map[string]*taskRecord),
	}
}

func (s *Store) Users() repositories.UserRepository {
	return &userRepository{store: s}
}

func (s *Store) Tasks() repositories.TaskRepository {
	return &taskRepository{store: s}
}
