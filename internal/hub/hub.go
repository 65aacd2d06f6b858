package hub

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pathakanu/rewardsHub/internal/assistant"
	"github.com/pathakanu/rewardsHub/internal/config"
	myopenai "github.com/pathakanu/rewardsHub/internal/openai"
	"github.com/pathakanu/rewardsHub/internal/store"
	"github.com/pathakanu/rewardsHub/internal/twilio"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// sessionIdleTimeout is how long an untouched chat session is kept.
const sessionIdleTimeout = time.Hour

// Hub coordinates the reward stores, the assistant sessions and the scheduler
// behind the HTTP API and the WhatsApp webhook.
type Hub struct {
	cfg       *config.Config
	reminders *store.Reminders
	offers    *store.Offers
	settings  *store.Settings
	sessions  *assistant.Store
	openAI    *myopenai.Client
	webhook   *twilio.Webhook
	cron      *cron.Cron
	logger    *log.Logger
	engine    *gin.Engine
}

// New creates a fully configured Hub instance.
func New(cfg *config.Config, db *gorm.DB, openAI *myopenai.Client, webhook *twilio.Webhook, logger *log.Logger) *Hub {
	selector := assistant.NewSelector(assistant.DefaultRules(), assistant.FallbackReply())
	h := &Hub{
		cfg:       cfg,
		reminders: store.NewReminders(db, cfg.SnoozePeriod, cfg.LocalTimezone),
		offers:    store.NewOffers(db),
		settings:  store.NewSettings(db),
		sessions:  assistant.NewStore(selector, cfg.AssistantDelay),
		openAI:    openAI,
		webhook:   webhook,
		cron:      cron.New(cron.WithLocation(cfg.LocalTimezone)),
		logger:    logger,
	}
	h.engine = h.routes()
	return h
}

// StartScheduler registers cron jobs and starts the scheduler loop.
func (h *Hub) StartScheduler() error {
	if _, err := h.cron.AddFunc("@hourly", h.releaseSnoozed); err != nil {
		return err
	}
	if _, err := h.cron.AddFunc("@every 15m", h.pruneSessions); err != nil {
		return err
	}
	h.cron.Start()
	return nil
}

// StopScheduler stops the cron scheduler gracefully.
func (h *Hub) StopScheduler() {
	ctx := h.cron.Stop()
	<-ctx.Done()
}

// Handler returns the HTTP handler serving the API and the webhook.
func (h *Hub) Handler() http.Handler {
	return h.engine
}

func (h *Hub) releaseSnoozed() {
	released, err := h.reminders.ReleaseSnoozed(context.Background(), time.Now())
	if err != nil {
		h.logger.Printf("scheduler: release snoozed reminders: %v", err)
		return
	}
	if released > 0 {
		h.logger.Printf("scheduler: released %d snoozed reminder(s)", released)
	}
}

func (h *Hub) pruneSessions() {
	if removed := h.sessions.Prune(time.Now().Add(-sessionIdleTimeout)); removed > 0 {
		h.logger.Printf("scheduler: pruned %d idle chat session(s)", removed)
	}
}
