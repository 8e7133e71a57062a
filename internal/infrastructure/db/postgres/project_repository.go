package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/domain"
	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

const projectColumns = "id, name, description, status, priority, owner_id, created_at, updated_at"

// ProjectRepository implements ports.ProjectRepository on PostgreSQL.
type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	query := `INSERT INTO projects (name, description, status, priority, owner_id)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id, created_at`

	created := *p
	err := r.db.QueryRowContext(ctx, query,
		p.Name, nullString(p.Description), string(p.Status), string(p.Priority), p.OwnerID,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert project: %w", err)
	}

	return &created, nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id int64) (*domain.Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects WHERE id = $1", projectColumns)
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *ProjectRepository) List(ctx context.Context, skip, limit int) ([]*domain.Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects ORDER BY id OFFSET $1 LIMIT $2", projectColumns)
	rows, err := r.db.QueryContext(ctx, query, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// Update applies the non-nil patch fields and sets updated_at server-side.
func (r *ProjectRepository) Update(ctx context.Context, id int64, patch ports.ProjectPatch) (*domain.Project, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.Priority != nil {
		add("priority", string(*patch.Priority))
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE projects SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), projectColumns)

	return r.scanOne(r.db.QueryRowContext(ctx, query, args...))
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM projects WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepository) CountByStatus(ctx context.Context, status domain.ProjectStatus) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM projects WHERE status = $1", string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count projects: %w", err)
	}
	return n, nil
}

func (r *ProjectRepository) scanOne(row *sql.Row) (*domain.Project, error) {
	p, err := scanProject(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

// scanProject reads one project row; description and owner_id are nullable
// columns mapped to their zero values.
func scanProject(scan func(dest ...any) error) (*domain.Project, error) {
	var (
		p         domain.Project
		desc      sql.NullString
		ownerID   sql.NullInt64
		updatedAt sql.NullTime
	)
	err := scan(&p.ID, &p.Name, &desc, &p.Status, &p.Priority, &ownerID, &p.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	p.Description = desc.String
	p.OwnerID = ownerID.Int64
	if updatedAt.Valid {
		t := updatedAt.Time
		p.UpdatedAt = &t
	}
	return &p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
