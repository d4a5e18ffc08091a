package services

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"taskboard/internal/apperrors"
	"taskboard/internal/authz"
	"taskboard/internal/logger"
	"taskboard/internal/models"
	"taskboard/internal/repositories"
)

// AccountService covers the self-service side of a user account: registration, login,
// the bearer-token lookup and profile maintenance.
type AccountService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
	Me(ctx context.Context, actor authz.Actor) (*models.User, error)
	UpdateProfile(ctx context.Context, actor authz.Actor, patch models.ProfilePatch) (*models.User, error)
	ChangePassword(ctx context.Context, actor authz.Actor, current, next string) error
}

type accountService struct {
	users repositories.UserRepository
	auth  AuthService
	email EmailService
	log   *zap.Logger
	now   func() time.Time

	decoyOnce sync.Once
	decoy     string
}

func NewAccountService(users repositories.UserRepository, auth AuthService, email EmailService, log *zap.Logger) AccountService {
	if log == nil {
		log = zap.NewNop()
	}
	return &accountService{users: users, auth: auth, email: email, log: log, now: time.Now}
}

func (s *accountService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, string, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var fields apperrors.FieldSet
	if name == "" {
		fields.Add("name", "Please add a name")
	} else if utf8.RuneCountInString(name) > models.MaxNameLength {
		fields.Add("name", "Name cannot be more than 50 characters")
	}
	if email == "" {
		fields.Add("email", "Please add an email")
	}
	if msg := passwordProblem(req.Password); msg != "" {
		fields.Add("password", msg)
	}
	if err := fields.Err(); err != nil {
		return nil, "", err
	}

	hash, err := s.auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}
	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleMember,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, _, err := s.auth.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	if s.email != nil {
		if err := s.email.SendWelcomeEmail(user.Email, user.Name); err != nil {
			logger.WithRequestID(ctx, s.log).Warn("[auth][register] welcome email failed",
				zap.String("user_id", user.ID), zap.Error(err))
		}
	}
	return user, token, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			// Match the cost of a wrong-password attempt.
			s.auth.CheckPassword(password, s.decoyHash())
			return nil, "", apperrors.Auth("Invalid credentials")
		}
		return nil, "", err
	}
	if !s.auth.CheckPassword(password, user.PasswordHash) {
		return nil, "", apperrors.Auth("Invalid credentials")
	}
	if !user.IsActive {
		return nil, "", apperrors.Auth("Account is deactivated")
	}

	at := s.now().UTC()
	if err := s.users.TouchLastLogin(ctx, user.ID, at); err != nil {
		return nil, "", err
	}
	user.LastLogin = &at

	token, _, err := s.auth.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *accountService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.auth.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, apperrors.Auth("Not authorized, user not found")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.Auth("Account is deactivated")
	}
	return user, nil
}

func (s *accountService) Me(ctx context.Context, actor authz.Actor) (*models.User, error) {
	if actor.ID == "" {
		return nil, apperrors.Auth("Not authorized, no token")
	}
	return s.users.GetByID(ctx, actor.ID)
}

func (s *accountService) UpdateProfile(ctx context.Context, actor authz.Actor, patch models.ProfilePatch) (*models.User, error) {
	if actor.ID == "" {
		return nil, apperrors.Auth("Not authorized, no token")
	}

	var fields apperrors.FieldSet
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			fields.Add("name", "Please add a name")
		}
		patch.Name = &name
	}
	limits := []struct {
		field string
		value *string
		max   int
		msg   string
	}{
		{"name", patch.Name, models.MaxNameLength, "Name cannot be more than 50 characters"},
		{"bio", patch.Bio, models.MaxBioLength, "Bio cannot be more than 500 characters"},
		{"location", patch.Location, models.MaxLocationLength, "Location cannot be more than 100 characters"},
		{"phone", patch.Phone, models.MaxPhoneLength, "Phone number cannot be longer than 20 characters"},
		{"website", patch.Website, models.MaxWebsiteLength, "Website cannot be more than 200 characters"},
	}
	for _, l := range limits {
		if l.value != nil && utf8.RuneCountInString(*l.value) > l.max {
			fields.Add(l.field, l.msg)
		}
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	return s.users.UpdateProfile(ctx, actor.ID, patch)
}

func (s *accountService) ChangePassword(ctx context.Context, actor authz.Actor, current, next string) error {
	if actor.ID == "" {
		return apperrors.Auth("Not authorized, no token")
	}
	if msg := passwordProblem(next); msg != "" {
		return apperrors.Validation("Validation error", apperrors.FieldError{Field: "newPassword", Message: msg})
	}

	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return err
	}
	if !s.auth.CheckPassword(current, user.PasswordHash) {
		return apperrors.Validation("Validation error", apperrors.FieldError{Field: "currentPassword", Message: "Current password is incorrect"})
	}

	hash, err := s.auth.HashPassword(next)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, actor.ID, hash)
}

func passwordProblem(password string) string {
	switch {
	case len(password) < models.MinPasswordLength:
		return "Password must be at least 6 characters"
	case len(password) > models.MaxPasswordBytes:
		return "Password cannot be longer than 72 bytes"
	}
	return ""
}

// decoyHash lazily hashes a fixed string with the configured cost.
func (s *accountService) decoyHash() string {
	s.decoyOnce.Do(func() {
		hash, err := s.auth.HashPassword("taskboard-login-decoy")
		if err != nil {
			s.log.Warn("[auth][login] decoy hash failed", zap.Error(err))
			return
		}
		s.decoy = hash
	})
	return s.decoy
}
