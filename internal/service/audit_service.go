package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/goods-service/internal/config"
	"github.com/spec-kit/goods-service/internal/events"
)

// AuditService records goods mutations emitted as domain events.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.AuditConfig
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.AuditConfig) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventGoodsCreated, a.handleGoodsCreated)
	a.dispatcher.Subscribe(events.EventGoodsUpdated, a.handleGoodsUpdated)
	a.dispatcher.Subscribe(events.EventGoodsDeleted, a.handleGoodsDeleted)
}

func (a *AuditService) handleGoodsCreated(ctx context.Context, event events.Event) error {
	a.logger.Info("GoodsCreated", zap.String("goods_id", event.GoodsID), zap.Any("payload", event.Payload))
	a.sendWebhookStub(ctx, event)
	return nil
}

func (a *AuditService) handleGoodsUpdated(ctx context.Context, event events.Event) error {
	a.logger.Info("GoodsUpdated", zap.String("goods_id", event.GoodsID), zap.Any("payload", event.Payload))
	a.sendWebhookStub(ctx, event)
	return nil
}

func (a *AuditService) handleGoodsDeleted(ctx context.Context, event events.Event) error {
	a.logger.Info("GoodsDeleted", zap.String("goods_id", event.GoodsID), zap.Any("payload", event.Payload))
	a.sendWebhookStub(ctx, event)
	return nil
}

func (a *AuditService) sendWebhookStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(a.cfg.WebhookURL) == "" {
		return
	}
	a.logger.Debug("sendWebhookStub",
		zap.String("url", a.cfg.WebhookURL),
		zap.String("goods_id", event.GoodsID),
		zap.String("event_type", string(event.Type)))
}
