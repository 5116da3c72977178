package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/goods-service/internal/domain"
)

// GoodsRepository defines persistence access for goods records. Missing
// records are reported as pgx.ErrNoRows.
type GoodsRepository interface {
	Create(ctx context.Context, name string) (*domain.Goods, error)
	GetByID(ctx context.Context, id string) (*domain.Goods, error)
	List(ctx context.Context) ([]domain.Goods, error)
	UpdateName(ctx context.Context, id, name string) error
	Delete(ctx context.Context, id string) error
}

type goodsRepository struct {
	pool *pgxpool.Pool
}

// NewGoodsRepository returns a Postgres-backed implementation.
func NewGoodsRepository(pool *pgxpool.Pool) GoodsRepository {
	return &goodsRepository{pool: pool}
}

func (r *goodsRepository) Create(ctx context.Context, name string) (*domain.Goods, error) {
	const query = `
        INSERT INTO goods (id, name)
        VALUES ($1, $2)`

	goods := &domain.Goods{ID: uuid.NewString(), Name: name}
	if _, err := r.pool.Exec(ctx, query, goods.ID, goods.Name); err != nil {
		return nil, err
	}
	return goods, nil
}

func (r *goodsRepository) GetByID(ctx context.Context, id string) (*domain.Goods, error) {
	const query = `
        SELECT id, name
        FROM goods WHERE id=$1`

	var goods domain.Goods
	if err := r.pool.QueryRow(ctx, query, id).Scan(&goods.ID, &goods.Name); err != nil {
		return nil, err
	}
	return &goods, nil
}

func (r *goodsRepository) List(ctx context.Context) ([]domain.Goods, error) {
	const query = `SELECT id, name FROM goods`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Goods, 0)
	for rows.Next() {
		var goods domain.Goods
		if err := rows.Scan(&goods.ID, &goods.Name); err != nil {
			return nil, err
		}
		items = append(items, goods)
	}
	return items, rows.Err()
}

func (r *goodsRepository) UpdateName(ctx context.Context, id, name string) error {
	const query = `UPDATE goods SET name=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, name, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *goodsRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM goods WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
