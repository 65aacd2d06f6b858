package hub

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pathakanu/rewardsHub/internal/analytics"
	"github.com/pathakanu/rewardsHub/internal/assistant"
	"github.com/pathakanu/rewardsHub/internal/model"
	"github.com/pathakanu/rewardsHub/internal/seed"
	"github.com/pathakanu/rewardsHub/internal/store"
	"github.com/shopspring/decimal"
)

type dashboard struct {
	Cards            []model.Card    `json:"cards"`
	TotalPoints      int             `json:"totalPoints"`
	TotalCashback    decimal.Decimal `json:"totalCashback"`
	ExpiringPoints   int             `json:"expiringPoints"`
	ExpiringCashback decimal.Decimal `json:"expiringCashback"`
	ActiveReminders  int             `json:"activeReminders"`
	ActiveOffers     int             `json:"activeOffers"`
}

func summarizeCards(cards []model.Card) dashboard {
	d := dashboard{Cards: cards, TotalCashback: decimal.Zero, ExpiringCashback: decimal.Zero}
	for _, card := range cards {
		d.TotalPoints += card.Points
		d.ExpiringPoints += card.PointsExpiring
		d.TotalCashback = d.TotalCashback.Add(card.Cashback)
		d.ExpiringCashback = d.ExpiringCashback.Add(card.CashbackExpiring)
	}
	return d
}

func (h *Hub) getDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	d := summarizeCards(seed.Cards())

	reminders, err := h.reminders.Active(ctx, "")
	if err != nil {
		h.fail(c, err, "Failed to load reminders")
		return
	}
	offers, err := h.offers.List(ctx, "")
	if err != nil {
		h.fail(c, err, "Failed to load offers")
		return
	}
	d.ActiveReminders = len(reminders)
	d.ActiveOffers = len(offers)
	c.JSON(http.StatusOK, d)
}

func (h *Hub) listCards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cards": seed.Cards()})
}

func (h *Hub) getCard(c *gin.Context) {
	id := c.Param("id")
	for _, card := range seed.Cards() {
		if card.ID != id {
			continue
		}
		offers, err := h.offers.ForCard(c.Request.Context(), card.Name)
		if err != nil {
			h.fail(c, err, "Failed to load card offers")
			return
		}
		c.JSON(http.StatusOK, gin.H{"card": card, "offers": offers})
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
}

func (h *Hub) listOffers(c *gin.Context) {
	offers, err := h.offers.List(c.Request.Context(), c.Query("filter"))
	if err != nil {
		h.fail(c, err, "Failed to load offers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers, "count": len(offers)})
}

func (h *Hub) listOfferCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": seed.OfferCategories()})
}

func (h *Hub) toggleSavedOffer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	offer, err := h.offers.ToggleSaved(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to update offer")
		return
	}
	message := "Offer removed from saved"
	if offer.Saved {
		message = "Offer saved!"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "offer": offer})
}

func (h *Hub) createOfferReminder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	offer, err := h.offers.Get(ctx, id)
	if err != nil {
		h.fail(c, err, "Failed to load offer")
		return
	}

	description, err := h.openAI.DescribeOfferReminder(ctx, offer)
	if err != nil {
		h.logger.Printf("openai describe offer %d: %v", offer.ID, err)
		description = offer.Description
	}

	reminder, err := h.reminders.CreateFromOffer(ctx, offer, description)
	if err != nil {
		h.fail(c, err, "Failed to create reminder")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Reminder set for " + offer.Merchant + " offer",
		"reminder": reminder,
	})
}

func (h *Hub) listReminders(c *gin.Context) {
	reminders, err := h.reminders.Active(c.Request.Context(), c.Query("filter"))
	if err != nil {
		h.fail(c, err, "Failed to load reminders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"reminders": reminders, "count": len(reminders)})
}

func (h *Hub) deleteReminder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.reminders.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Failed to delete reminder")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
}

func (h *Hub) snoozeReminder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	reminder, err := h.reminders.Snooze(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to snooze reminder")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder snoozed", "reminder": reminder})
}

func (h *Hub) listSettings(c *gin.Context) {
	settings, err := h.settings.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

func (h *Hub) updateSetting(c *gin.Context) {
	var body struct {
		Enabled *bool `json:"enabled" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "enabled is required"})
		return
	}
	setting, err := h.settings.Set(c.Request.Context(), c.Param("key"), *body.Enabled)
	if err != nil {
		h.fail(c, err, "Failed to update setting")
		return
	}
	c.JSON(http.StatusOK, setting)
}

func (h *Hub) listSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"suggestions": assistant.Suggestions()})
}

func (h *Hub) createSession(c *gin.Context) {
	s := h.sessions.Create()
	c.JSON(http.StatusCreated, gin.H{"id": s.ID, "messages": s.Messages()})
}

func (h *Hub) getSession(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err, "Chat session not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": s.ID, "messages": s.Messages(), "pending": s.Pending()})
}

func (h *Hub) endSession(c *gin.Context) {
	h.sessions.End(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Chat session ended"})
}

func (h *Hub) sendMessage(c *gin.Context) {
	var body struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid message payload"})
		return
	}

	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		h.fail(c, err, "Chat session not found")
		return
	}

	reply, err := s.Send(c.Request.Context(), body.Text)
	switch {
	case errors.Is(err, assistant.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message cannot be empty"})
		return
	case errors.Is(err, assistant.ErrReplyPending):
		c.JSON(http.StatusConflict, gin.H{"error": "The assistant is still replying"})
		return
	case err != nil:
		h.logger.Printf("assistant session %s: %v", s.ID, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

func (h *Hub) getAnalytics(c *gin.Context) {
	c.JSON(http.StatusOK, analytics.Default())
}

func (h *Hub) exportAnalytics(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="rewards-analytics.csv"`)
	c.Status(http.StatusOK)
	if err := analytics.WriteCSV(c.Writer, analytics.CategorySpendData()); err != nil {
		h.logger.Printf("analytics export: %v", err)
	}
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid identifier"})
		return 0, false
	}
	return uint(id), true
}

func (h *Hub) fail(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, assistant.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": message})
	default:
		h.logger.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
