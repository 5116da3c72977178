package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/goods-service/internal/domain"
)

// In-memory implementations, used when no POSTGRES_DSN is configured and
// by tests. They share the pgx.ErrNoRows absence sentinel so callers stay
// storage-agnostic.

type memorySystemUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.SystemUser
}

// NewMemorySystemUserRepository returns an in-memory implementation.
func NewMemorySystemUserRepository() SystemUserRepository {
	return &memorySystemUserRepository{users: make(map[string]domain.SystemUser)}
}

func (r *memorySystemUserRepository) Create(_ context.Context, user *domain.SystemUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *memorySystemUserRepository) GetByID(_ context.Context, id string) (*domain.SystemUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

type memoryGoodsRepository struct {
	mu    sync.RWMutex
	goods map[string]domain.Goods
	order []string
}

// NewMemoryGoodsRepository returns an in-memory implementation.
func NewMemoryGoodsRepository() GoodsRepository {
	return &memoryGoodsRepository{goods: make(map[string]domain.Goods)}
}

func (r *memoryGoodsRepository) Create(_ context.Context, name string) (*domain.Goods, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	goods := domain.Goods{ID: uuid.NewString(), Name: name}
	r.goods[goods.ID] = goods
	r.order = append(r.order, goods.ID)
	return &goods, nil
}

func (r *memoryGoodsRepository) GetByID(_ context.Context, id string) (*domain.Goods, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	goods, ok := r.goods[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &goods, nil
}

func (r *memoryGoodsRepository) List(_ context.Context) ([]domain.Goods, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]domain.Goods, 0, len(r.goods))
	for _, id := range r.order {
		if goods, ok := r.goods[id]; ok {
			items = append(items, goods)
		}
	}
	return items, nil
}

func (r *memoryGoodsRepository) UpdateName(_ context.Context, id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	goods, ok := r.goods[id]
	if !ok {
		return pgx.ErrNoRows
	}
	goods.Name = name
	r.goods[id] = goods
	return nil
}

func (r *memoryGoodsRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goods[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.goods, id)
	return nil
}
