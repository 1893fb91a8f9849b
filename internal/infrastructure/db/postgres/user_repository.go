package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/salesdesk/sales-api/internal/core/domain"
)

const selectUser = `
	select id, coalesce(first_name, ''), coalesce(last_name, ''), email, password, created_at, updated_at
	from users
	where deleted_at is null and `

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail loads a live user and its roles. Email matching is case-sensitive.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, selectUser+`email = $1`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, selectUser+`id = $1`, id)
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	roles, err := r.rolesOf(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Roles = roles
	return &u, nil
}

func (r *UserRepository) rolesOf(ctx context.Context, userID int64) ([]domain.Role, error) {
	rows, err := r.db.QueryContext(ctx, `
		select r.id, r.name
		from roles r
		join users_roles ur on ur.role_id = r.id
		where ur.user_id = $1
		order by r.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("load roles: %w", err)
	}
	defer rows.Close()

	roles := []domain.Role{}
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

// Create inserts the user and its role links in one transaction.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	out := *user
	err = tx.QueryRowContext(ctx, `
		insert into users (first_name, last_name, email, password, created_at, updated_at)
		values ($1, $2, $3, $4, $5, $6)
		returning id
	`, nullIfEmpty(user.FirstName), nullIfEmpty(user.LastName), user.Email, user.PasswordHash,
		user.CreatedAt, user.UpdatedAt).Scan(&out.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	if err := linkRoles(ctx, tx, out.ID, user.Roles); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit user: %w", err)
	}
	return &out, nil
}

// Save overwrites the user's role links with user.Roles.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`update users set updated_at = $2 where id = $1 and deleted_at is null`,
		user.ID, user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, domain.ErrUserNotFound
	}

	if _, err := tx.ExecContext(ctx, `delete from users_roles where user_id = $1`, user.ID); err != nil {
		return nil, fmt.Errorf("clear roles: %w", err)
	}
	if err := linkRoles(ctx, tx, user.ID, user.Roles); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit roles: %w", err)
	}

	out := *user
	return &out, nil
}

func linkRoles(ctx context.Context, tx *sql.Tx, userID int64, roles []domain.Role) error {
	for _, role := range roles {
		if _, err := tx.ExecContext(ctx,
			`insert into users_roles (user_id, role_id) values ($1, $2)`,
			userID, role.ID); err != nil {
			return fmt.Errorf("link role %s: %w", role.Name, err)
		}
	}
	return nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
