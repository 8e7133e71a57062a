package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

const uniqueViolation = "23505"

const userColumns = "id, email, username, full_name, hashed_password, is_admin, is_active, created_at"

// UserRepository implements ports.UserRepository on PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `INSERT INTO users (email, username, full_name, hashed_password, is_admin, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`

	created := *user
	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Username, user.FullName, user.HashedPassword, user.IsAdmin, user.IsActive,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE email = $1", userColumns)
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users WHERE id = $1", userColumns)
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	query := fmt.Sprintf("SELECT %s FROM users ORDER BY id OFFSET $1 LIMIT $2", userColumns)
	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.FullName, &u.HashedPassword, &u.IsAdmin, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, id int64, patch ports.UserPatch) (*domain.User, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Username != nil {
		add("username", *patch.Username)
	}
	if patch.FullName != nil {
		add("full_name", *patch.FullName)
	}
	if patch.IsActive != nil {
		add("is_active", *patch.IsActive)
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), userColumns)

	user, err := r.scanOne(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.FullName, &u.HashedPassword, &u.IsAdmin, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
