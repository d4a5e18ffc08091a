package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"taskboard/internal/apperrors"
	"taskboard/internal/models"
)

const errUserNotFound = "User not found"

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, page models.Page) ([]models.User, int, error)

	UpdateRole(ctx context.Context, id string, role models.Role) (*models.User, error)
	SetActive(ctx context.Context, id string, active bool) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, patch models.ProfilePatch) (*models.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error

	// Delete fails with InvalidOperation while any task still references the user.
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `
	id, name, email, password_hash, role, is_active,
	bio, location, phone, website, avatar, last_login_at, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	const q = `
		INSERT INTO users (name, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$6)
		RETURNING id, created_at, updated_at`
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	err := r.db.QueryRowContext(ctx, q,
		user.Name, user.Email, user.PasswordHash, user.Role, user.IsActive, user.CreatedAt,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return apperrors.Validation("Validation error", apperrors.FieldError{Field: "email", Message: "User already exists with this email"})
		}
		return apperrors.Storage("insert user", err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, `SELECT`+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, classify("get user", err, errUserNotFound)
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx,
		`SELECT`+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, strings.TrimSpace(email)))
	if err != nil {
		return nil, classify("get user by email", err, errUserNotFound)
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context, page models.Page) ([]models.User, int, error) {
	page = page.Normalize()

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, apperrors.Storage("count users", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT`+userColumns+` FROM users ORDER BY created_at DESC, id DESC`+limitOffset(0),
		page.Limit, page.Offset())
	if err != nil {
		return nil, 0, apperrors.Storage("list users", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, apperrors.Storage("scan user", err)
		}
		u.PasswordHash = ""
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.Storage("list users", err)
	}
	return users, total, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id string, role models.Role) (*models.User, error) {
	return r.updateReturning(ctx, "update user role",
		`UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1 RETURNING`+userColumns,
		id, role)
}

func (r *userRepository) SetActive(ctx context.Context, id string, active bool) (*models.User, error) {
	return r.updateReturning(ctx, "update user status",
		`UPDATE users SET is_active = $2, updated_at = NOW() WHERE id = $1 RETURNING`+userColumns,
		id, active)
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, patch models.ProfilePatch) (*models.User, error) {
	const q = `
		UPDATE users SET
			name       = COALESCE($2, name),
			bio        = COALESCE($3, bio),
			location   = COALESCE($4, location),
			phone      = COALESCE($5, phone),
			website    = COALESCE($6, website),
			avatar     = COALESCE($7, avatar),
			updated_at = NOW()
		WHERE id = $1
		RETURNING` + userColumns
	return r.updateReturning(ctx, "update profile", q,
		id,
		nullString(patch.Name),
		nullString(patch.Bio),
		nullString(patch.Location),
		nullString(patch.Phone),
		nullString(patch.Website),
		nullString(patch.Avatar),
	)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	_, err := r.updateReturning(ctx, "update password",
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1 RETURNING`+userColumns,
		id, passwordHash)
	return err
}

func (r *userRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	return apperrors.Storage("touch last login", err)
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return apperrors.InvalidOperation("Cannot delete a user who still has tasks; deactivate the account instead")
		}
		return apperrors.Storage("delete user", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return apperrors.Storage("delete user", err)
	}
	if n == 0 {
		return apperrors.NotFound(errUserNotFound)
	}
	return nil
}

func (r *userRepository) updateReturning(ctx context.Context, op, query string, args ...interface{}) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, classify(op, err, errUserNotFound)
	}
	return u, nil
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var lastLogin sql.NullTime
	if err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive,
		&u.Bio, &u.Location, &u.Phone, &u.Website, &u.Avatar, &lastLogin, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}
