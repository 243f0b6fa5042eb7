package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/castilloConsultoresuy/turnolistov2/internal/config"
	"github.com/castilloConsultoresuy/turnolistov2/internal/events"
)

// NotifierService pushes queue events to an external display endpoint. The
// public screens poll the state endpoint; the webhook is the complementary
// push channel for integrations that want to react without polling.
type NotifierService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotifyConfig
	client     *http.Client
}

// NewNotifierService creates the service.
func NewNotifierService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotifyConfig) *NotifierService {
	return &NotifierService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
		client:     &http.Client{Timeout: cfg.WebhookTimeout()},
	}
}

// RegisterHandlers subscribes to queue events.
func (n *NotifierService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleEvent)
	n.dispatcher.Subscribe(events.EventTicketCalled, n.handleEvent)
	n.dispatcher.Subscribe(events.EventQueueReset, n.handleEvent)
}

func (n *NotifierService) handleEvent(ctx context.Context, event events.Event) error {
	n.logger.Info("queue event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Any("payload", event.Payload))
	n.sendWebhook(ctx, event)
	return nil
}

func (n *NotifierService) sendWebhook(ctx context.Context, event events.Event) {
	url := strings.TrimSpace(n.cfg.WebhookURL)
	if url == "" {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("encode webhook payload", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		n.logger.Error("build webhook request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Warn("webhook delivery failed",
			zap.String("url", url),
			zap.String("event_type", string(event.Type)),
			zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.logger.Warn("webhook rejected",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode))
	}
}
