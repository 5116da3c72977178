package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/goods-service/internal/domain"
	"github.com/spec-kit/goods-service/internal/events"
	"github.com/spec-kit/goods-service/internal/persistence"
	"github.com/spec-kit/goods-service/internal/repository"
)

// Goods failure kinds.
var (
	ErrGoodsNotFound = errors.New("goods not found")
	ErrNameRequired  = errors.New("goods name required")
)

// GoodsService implements the goods CRUD operations.
type GoodsService struct {
	goods      repository.GoodsRepository
	cache      *persistence.GoodsCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewGoodsService builds the service. Cache and dispatcher are optional.
func NewGoodsService(goods repository.GoodsRepository, cache *persistence.GoodsCache, dispatcher events.Dispatcher, logger *zap.Logger) *GoodsService {
	return &GoodsService{goods: goods, cache: cache, dispatcher: dispatcher, logger: logger}
}

// Create inserts a new goods record with a generated identifier.
func (s *GoodsService) Create(ctx context.Context, name string) (*domain.Goods, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	goods, err := s.goods.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.publish(ctx, events.EventGoodsCreated, goods.ID, events.GoodsCreatedPayload{Name: goods.Name})
	return goods, nil
}

// List returns all goods records in store order.
func (s *GoodsService) List(ctx context.Context) ([]domain.Goods, error) {
	var cached []domain.Goods
	if s.cache.GetList(ctx, &cached) {
		return cached, nil
	}

	items, err := s.goods.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(ctx, items)
	return items, nil
}

// Get returns the goods record with the given id.
func (s *GoodsService) Get(ctx context.Context, id string) (*domain.Goods, error) {
	goods, err := s.goods.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoodsNotFound
	}
	if err != nil {
		return nil, err
	}
	return goods, nil
}

// Update overwrites the name of an existing goods record.
func (s *GoodsService) Update(ctx context.Context, id, name string) (*domain.Goods, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	existing, err := s.goods.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoodsNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.goods.UpdateName(ctx, id, name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoodsNotFound
		}
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.publish(ctx, events.EventGoodsUpdated, id, events.GoodsUpdatedPayload{OldName: existing.Name, NewName: name})
	return &domain.Goods{ID: id, Name: name}, nil
}

// Delete removes the goods record with the given id.
func (s *GoodsService) Delete(ctx context.Context, id string) error {
	existing, err := s.goods.GetByID(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrGoodsNotFound
	}
	if err != nil {
		return err
	}

	if err := s.goods.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrGoodsNotFound
		}
		return err
	}

	s.cache.Invalidate(ctx)
	s.publish(ctx, events.EventGoodsDeleted, id, events.GoodsDeletedPayload{Name: existing.Name})
	return nil
}

func (s *GoodsService) publish(ctx context.Context, eventType events.EventType, goodsID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		GoodsID:   goodsID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
