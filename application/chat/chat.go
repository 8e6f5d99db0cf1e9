package chat

import (
	"context"
	"sync"
	"time"

	"github.com/pmyge/humo-tezkor-frontend/model"
	"github.com/pmyge/humo-tezkor-frontend/thirdparty/storeapi"
	"github.com/pmyge/humo-tezkor-frontend/utils/logger"
	"go.uber.org/zap"
)

// Poller refreshes the support-chat history on a fixed interval while the
// chat view is open and stops when it is left. One poller per session. A
// failed poll keeps the previous messages and keeps polling; there is no
// backoff or retry policy beyond the next tick.
type Poller struct {
	api            storeapi.Client
	telegramUserID int64
	interval       time.Duration

	mu       sync.Mutex
	messages []model.ChatMessage
	cancel   context.CancelFunc
}

func NewPoller(api storeapi.Client, telegramUserID int64, interval time.Duration) *Poller {
	return &Poller{
		api:            api,
		telegramUserID: telegramUserID,
		interval:       interval,
	}
}

// Start begins polling. Idempotent: a running poller is left alone.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	go p.run(ctx)
}

// Stop cancels polling. Safe to call on a stopped poller.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// Messages returns the most recently fetched history.
func (p *Poller) Messages() []model.ChatMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.ChatMessage, len(p.messages))
	copy(out, p.messages)
	return out
}

// Send posts a message and appends the server echo to the local history; the
// next poll reconciles ordering.
func (p *Poller) Send(ctx context.Context, message string) (*model.ChatMessage, error) {
	sent, err := p.api.SendChatMessage(ctx, p.telegramUserID, message)
	if err != nil {
		logger.Error("[Chat] send", zap.String("error", err.Error()),
			zap.Int64("telegram_user_id", p.telegramUserID))
		return nil, err
	}
	p.mu.Lock()
	p.messages = append(p.messages, *sent)
	p.mu.Unlock()
	return sent, nil
}

func (p *Poller) run(ctx context.Context) {
	p.fetch(ctx)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.fetch(ctx)
		}
	}
}

func (p *Poller) fetch(ctx context.Context) {
	history, err := p.api.GetChatMessages(ctx, p.telegramUserID)
	if err != nil {
		logger.Warn("[Chat] poll", zap.String("error", err.Error()),
			zap.Int64("telegram_user_id", p.telegramUserID))
		return
	}
	p.mu.Lock()
	p.messages = history.Messages
	p.mu.Unlock()
}
