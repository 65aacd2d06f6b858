package twilio

import (
	"encoding/xml"
	"net/http"
	"net/url"
	"strings"

	"github.com/twilio/twilio-go/client"
)

// SignatureHeader carries Twilio's request signature.
const SignatureHeader = "X-Twilio-Signature"

// Webhook verifies and answers incoming Twilio WhatsApp webhooks.
type Webhook struct {
	validator *client.RequestValidator
	baseURL   string
}

// NewWebhook returns a webhook helper. With an empty authToken signatures are
// not checked, which is only meant for local development.
func NewWebhook(authToken, baseURL string) *Webhook {
	w := &Webhook{baseURL: strings.TrimRight(baseURL, "/")}
	if authToken != "" {
		v := client.NewRequestValidator(authToken)
		w.validator = &v
	}
	return w
}

// Verifying reports whether signatures are checked.
func (w *Webhook) Verifying() bool {
	return w.validator != nil
}

// Verify checks the request signature against the public URL of the request.
// The form must already be parsed.
func (w *Webhook) Verify(r *http.Request) bool {
	if w.validator == nil {
		return true
	}
	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		return false
	}
	return w.validator.Validate(w.baseURL+r.URL.RequestURI(), FormValues(r.PostForm), signature)
}

// WriteResponse answers the webhook with a single TwiML message.
func WriteResponse(rw http.ResponseWriter, message string) error {
	twiml := struct {
		XMLName xml.Name `xml:"Response"`
		Message string   `xml:"Message"`
	}{
		Message: message,
	}

	rw.Header().Set("Content-Type", "application/xml")
	return xml.NewEncoder(rw).Encode(twiml)
}

// SanitizeWhatsAppNumber strips the channel prefix Twilio adds to senders.
func SanitizeWhatsAppNumber(from string) string {
	return strings.TrimPrefix(strings.TrimSpace(from), "whatsapp:")
}

// FormValues flattens POST form data into the map shape the validator expects.
func FormValues(values url.Values) map[string]string {
	result := make(map[string]string, len(values))
	for key, value := range values {
		if len(value) > 0 {
			result[key] = value[0]
		}
	}
	return result
}
