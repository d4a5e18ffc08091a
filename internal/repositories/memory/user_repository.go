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

type userRepository struct {
	store *Store
}

func (r *userRepository) Create(_ context.Context, user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return apperrors.Validation("Validation error", apperrors.FieldError{Field: "email", Message: "User already exists with this email"})
		}
	}
	user.ID = uuid.NewString()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.UpdatedAt = user.CreatedAt
	cp := *user
	s.users[user.ID] = &cp
	return nil
}

func (r *userRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	cp := *u
	return &cp, nil
}

func (r *userRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.NotFound("User not found")
}

func (r *userRepository) List(_ context.Context, page models.Page) ([]models.User, int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	page = page.Normalize()
	all := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		cp.PasswordHash = ""
		all = append(all, cp)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	return paginate(all, page), len(all), nil
}

func (r *userRepository) UpdateRole(_ context.Context, id string, role models.Role) (*models.User, error) {
	return r.mutate(id, func(u *models.User) { u.Role = role })
}

func (r *userRepository) SetActive(_ context.Context, id string, active bool) (*models.User, error) {
	return r.mutate(id, func(u *models.User) { u.IsActive = active })
}

func (r *userRepository) UpdateProfile(_ context.Context, id string, patch models.ProfilePatch) (*models.User, error) {
	return r.mutate(id, func(u *models.User) {
		set := func(dst *string, src *string) {
			if src != nil {
				*dst = *src
			}
		}
		set(&u.Name, patch.Name)
		set(&u.Bio, patch.Bio)
		set(&u.Location, patch.Location)
		set(&u.Phone, patch.Phone)
		set(&u.Website, patch.Website)
		set(&u.Avatar, patch.Avatar)
	})
}

func (r *userRepository) UpdatePassword(_ context.Context, id, passwordHash string) error {
	_, err := r.mutate(id, func(u *models.User) { u.PasswordHash = passwordHash })
	return err
}

func (r *userRepository) TouchLastLogin(_ context.Context, id string, at time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[id]; ok {
		t := at
		u.LastLogin = &t
	}
	return nil
}

func (r *userRepository) Delete(_ context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return apperrors.NotFound("User not found")
	}
	for _, t := range s.tasks {
		if t.assigneeID == id || t.creatorID == id {
			return apperrors.InvalidOperation("Cannot delete a user who still has tasks; deactivate the account instead")
		}
	}
	delete(s.users, id)
	return nil
}

// mutate applies fn under the write lock, the in-memory analogue of UPDATE ... RETURNING.
func (r *userRepository) mutate(id string, fn func(u *models.User)) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, apperrors.NotFound("User not found")
	}
	fn(u)
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	return &cp, nil
}

func paginate[T any](items []T, page models.Page) []T {
	start := page.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := start + page.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
