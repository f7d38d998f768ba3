package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ticket-management/internal/domain"
)

// EngineerRepository defines persistence access for engineers.
type EngineerRepository interface {
	Create(ctx context.Context, engineer *domain.Engineer) error
	Update(ctx context.Context, engineer *domain.Engineer) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Engineer, error)
	GetByUsername(ctx context.Context, username string) (*domain.Engineer, error)
	List(ctx context.Context) ([]domain.Engineer, error)
}

type engineerRepository struct {
	pool *pgxpool.Pool
}

// NewEngineerRepository returns a Postgres-backed implementation.
func NewEngineerRepository(pool *pgxpool.Pool) EngineerRepository {
	return &engineerRepository{pool: pool}
}

func (r *engineerRepository) Create(ctx context.Context, engineer *domain.Engineer) error {
	const query = `
        INSERT INTO engineers (username, password_hash, role)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		engineer.Username,
		engineer.PasswordHash,
		engineer.Role,
	).Scan(&engineer.ID, &engineer.CreatedAt, &engineer.UpdatedAt)
}

func (r *engineerRepository) Update(ctx context.Context, engineer *domain.Engineer) error {
	const query = `
        UPDATE engineers SET username=$1, password_hash=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query,
		engineer.Username,
		engineer.PasswordHash,
		engineer.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *engineerRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM engineers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *engineerRepository) GetByID(ctx context.Context, id string) (*domain.Engineer, error) {
	const query = `
        SELECT id, username, password_hash, role, created_at, updated_at
        FROM engineers WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *engineerRepository) GetByUsername(ctx context.Context, username string) (*domain.Engineer, error) {
	const query = `
        SELECT id, username, password_hash, role, created_at, updated_at
        FROM engineers WHERE username=$1`
	return r.fetchSingle(ctx, query, username)
}

func (r *engineerRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Engineer, error) {
	var engineer domain.Engineer
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&engineer.ID,
		&engineer.Username,
		&engineer.PasswordHash,
		&engineer.Role,
		&engineer.CreatedAt,
		&engineer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &engineer, nil
}

func (r *engineerRepository) List(ctx context.Context) ([]domain.Engineer, error) {
	const query = `
        SELECT id, username, password_hash, role, created_at, updated_at
        FROM engineers ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Engineer
	for rows.Next() {
		var engineer domain.Engineer
		if err := rows.Scan(
			&engineer.ID,
			&engineer.Username,
			&engineer.PasswordHash,
			&engineer.Role,
			&engineer.CreatedAt,
			&engineer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, engineer)
	}
	return result, rows.Err()
}
