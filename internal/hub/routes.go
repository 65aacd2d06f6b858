package hub

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

func (h *Hub) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(h.logger.Writer()), gin.Recovery())
	r.Use(corsMiddleware(h.cfg.AllowedOrigins))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/dashboard", h.getDashboard)
	r.GET("/cards", h.listCards)
	r.GET("/cards/:id", h.getCard)

	r.GET("/offers", h.listOffers)
	r.GET("/offers/categories", h.listOfferCategories)
	r.POST("/offers/:id/save", h.toggleSavedOffer)
	r.POST("/offers/:id/reminders", h.createOfferReminder)

	r.GET("/reminders", h.listReminders)
	r.DELETE("/reminders/:id", h.deleteReminder)
	r.POST("/reminders/:id/snooze", h.snoozeReminder)

	r.GET("/settings/notifications", h.listSettings)
	r.PUT("/settings/notifications/:key", h.updateSetting)

	r.GET("/assistant/suggestions", h.listSuggestions)
	r.POST("/assistant/sessions", h.createSession)
	r.GET("/assistant/sessions/:id", h.getSession)
	r.DELETE("/assistant/sessions/:id", h.endSession)
	r.POST("/assistant/sessions/:id/messages", h.sendMessage)

	r.GET("/analytics", h.getAnalytics)
	r.GET("/analytics/export.csv", h.exportAnalytics)

	r.POST("/twilio/webhook", h.handleWhatsApp)

	return r
}

func corsMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && slices.Contains(allowed, origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
