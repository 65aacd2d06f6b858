package twilio

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func newFormRequest(t *testing.T, form url.Values) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/twilio/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if err := req.ParseForm(); err != nil {
		t.Fatalf("parse form: %v", err)
	}
	return req
}

func TestVerifyWithoutToken(t *testing.T) {
	t.Parallel()
	w := NewWebhook("", "http://localhost:8080")
	if w.Verifying() {
		t.Fatalf("webhook without token should not verify")
	}
	if !w.Verify(newFormRequest(t, url.Values{"Body": {"hi"}})) {
		t.Fatalf("unverified webhook should accept requests")
	}
}

func TestVerifyRejectsBadSignature(t *testing.T) {
	t.Parallel()
	w := NewWebhook("secret-token", "https://rewards.example.com/")

	req := newFormRequest(t, url.Values{"Body": {"hi"}, "From": {"whatsapp:+15550001111"}})
	if w.Verify(req) {
		t.Fatalf("request without signature should be rejected")
	}
	req.Header.Set(SignatureHeader, "bm90LWEtc2lnbmF0dXJl")
	if w.Verify(req) {
		t.Fatalf("request with wrong signature should be rejected")
	}
}

func TestWriteResponse(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	if err := WriteResponse(rec, "Hello & welcome"); err != nil {
		t.Fatalf("WriteResponse: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/xml" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if body := rec.Body.String(); body != "<Response><Message>Hello &amp; welcome</Message></Response>" {
		t.Fatalf("unexpected TwiML: %q", body)
	}
}

func TestSanitizeWhatsAppNumber(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"whatsapp:+15550001111": "+15550001111",
		" +15550001111 ":        "+15550001111",
		"":                      "",
	}
	for input, want := range cases {
		if got := SanitizeWhatsAppNumber(input); got != want {
			t.Fatalf("SanitizeWhatsAppNumber(%q) = %q, want %q", input, got, want)
		}
	}
}
