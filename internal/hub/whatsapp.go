package hub

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pathakanu/rewardsHub/internal/assistant"
	"github.com/pathakanu/rewardsHub/internal/model"
	"github.com/pathakanu/rewardsHub/internal/twilio"
)

// handleWhatsApp answers Twilio WhatsApp webhooks with the assistant reply.
// Each sender number gets its own chat session.
func (h *Hub) handleWhatsApp(c *gin.Context) {
	r := c.Request
	if err := r.ParseForm(); err != nil {
		h.logger.Printf("webhook: parse error: %v", err)
		h.writeTwilioResponse(c, "Sorry, I couldn't understand that request.")
		return
	}
	if !h.webhook.Verify(r) {
		h.logger.Printf("webhook: rejected request with invalid signature")
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	from := twilio.SanitizeWhatsAppNumber(r.FormValue("From"))
	body := strings.TrimSpace(r.FormValue("Body"))
	if from == "" || body == "" {
		h.writeTwilioResponse(c, "I need a message to work with. Please try again.")
		return
	}

	session := h.sessions.GetOrCreate("whatsapp:" + from)
	reply, err := session.Send(r.Context(), body)
	switch {
	case errors.Is(err, assistant.ErrReplyPending):
		h.writeTwilioResponse(c, "I'm still thinking about your last question. One moment!")
		return
	case err != nil:
		h.logger.Printf("webhook: session %s: %v", session.ID, err)
		return
	}
	h.writeTwilioResponse(c, formatWhatsAppReply(reply, h.cfg.PublicBaseURL))
}

func (h *Hub) writeTwilioResponse(c *gin.Context, message string) {
	if err := twilio.WriteResponse(c.Writer, message); err != nil {
		h.logger.Printf("twilio response encode: %v", err)
	}
}

// formatWhatsAppReply renders quick actions as links below the reply text.
func formatWhatsAppReply(msg model.ChatMessage, baseURL string) string {
	if len(msg.QuickActions) == 0 {
		return msg.Text
	}
	var sb strings.Builder
	sb.WriteString(msg.Text)
	sb.WriteString("\n")
	for _, action := range msg.QuickActions {
		sb.WriteString("\n")
		sb.WriteString(action.Label)
		sb.WriteString(": ")
		sb.WriteString(baseURL)
		sb.WriteString(action.Route)
	}
	return sb.String()
}
