package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/goods-service/internal/domain"
)

// SystemUserRepository defines persistence access for the administrative
// credential record. Absence is reported as pgx.ErrNoRows by every
// implementation.
type SystemUserRepository interface {
	Create(ctx context.Context, user *domain.SystemUser) error
	GetByID(ctx context.Context, id string) (*domain.SystemUser, error)
}

type systemUserRepository struct {
	pool *pgxpool.Pool
}

// NewSystemUserRepository returns a Postgres-backed implementation.
func NewSystemUserRepository(pool *pgxpool.Pool) SystemUserRepository {
	return &systemUserRepository{pool: pool}
}

func (r *systemUserRepository) Create(ctx context.Context, user *domain.SystemUser) error {
	const query = `
        INSERT INTO system_user (id, account, password)
        VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, query, user.ID, user.Account, user.PasswordHash)
	return err
}

func (r *systemUserRepository) GetByID(ctx context.Context, id string) (*domain.SystemUser, error) {
	const query = `
        SELECT id, account, password
        FROM system_user WHERE id=$1`

	var user domain.SystemUser
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Account,
		&user.PasswordHash,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
