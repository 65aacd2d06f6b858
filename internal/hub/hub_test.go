package hub

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pathakanu/rewardsHub/internal/config"
	"github.com/pathakanu/rewardsHub/internal/database"
	"github.com/pathakanu/rewardsHub/internal/model"
	myopenai "github.com/pathakanu/rewardsHub/internal/openai"
	"github.com/pathakanu/rewardsHub/internal/twilio"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestHub(t *testing.T, delay time.Duration, authToken string) *Hub {
	t.Helper()

	name := fmt.Sprintf("%s_%d", strings.ReplaceAll(t.Name(), "/", "_"), time.Now().UnixNano())
	db, err := database.NewMemory(name)
	if err != nil {
		t.Fatalf("open sqlite memory: %v", err)
	}
	if err := database.Reset(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg := &config.Config{
		PublicBaseURL:  "http://localhost:8080",
		LocalTimezone:  time.UTC,
		AssistantDelay: delay,
		SnoozePeriod:   7 * 24 * time.Hour,
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	logger := log.New(io.Discard, "", 0)
	return New(cfg, db, myopenai.New(""), twilio.NewWebhook(authToken, cfg.PublicBaseURL), logger)
}

func do(t *testing.T, h *Hub, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d, body %s", rec.Code, want, rec.Body.String())
	}
}

func reminderIDs(t *testing.T, h *Hub, query string) []uint {
	t.Helper()
	rec := do(t, h, http.MethodGet, "/reminders"+query, "")
	expectStatus(t, rec, http.StatusOK)
	var resp struct {
		Reminders []model.Reminder `json:"reminders"`
	}
	decode(t, rec, &resp)
	ids := make([]uint, 0, len(resp.Reminders))
	for _, r := range resp.Reminders {
		ids = append(ids, r.ID)
	}
	return ids
}

func offerIDs(t *testing.T, rec *httptest.ResponseRecorder) []uint {
	t.Helper()
	var resp struct {
		Offers []model.Offer `json:"offers"`
	}
	decode(t, rec, &resp)
	ids := make([]uint, 0, len(resp.Offers))
	for _, o := range resp.Offers {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestDashboard(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "")

	rec := do(t, h, http.MethodGet, "/dashboard", "")
	expectStatus(t, rec, http.StatusOK)

	var resp map[string]any
	decode(t, rec, &resp)
	if resp["totalPoints"] != float64(58390) || resp["totalCashback"] != "362.3" {
		t.Fatalf("unexpected totals: %v / %v", resp["totalPoints"], resp["totalCashback"])
	}
	if resp["expiringPoints"] != float64(150) || resp["expiringCashback"] != "25" {
		t.Fatalf("unexpected expiring amounts: %v / %v", resp["expiringPoints"], resp["expiringCashback"])
	}
	if resp["activeReminders"] != float64(5) || resp["activeOffers"] != float64(6) {
		t.Fatalf("unexpected counts: %v / %v", resp["activeReminders"], resp["activeOffers"])
	}
}

func TestCardDetails(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "")

	rec := do(t, h, http.MethodGet, "/cards/amex-gold", "")
	expectStatus(t, rec, http.StatusOK)
	if got := offerIDs(t, rec); !reflect.DeepEqual(got, []uint{3, 4}) {
		t.Fatalf("amex offers = %v, want [3 4]", got)
	}

	expectStatus(t, do(t, h, http.MethodGet, "/cards/unknown", ""), http.StatusNotFound)
}

func TestOffersFilter(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "")

	cases := []struct {
		query string
		want  []uint
	}{
		{query: "", want: []uint{3, 1, 4, 2, 5, 6}},
		{query: "?filter=" + url.QueryEscape("Expiring Soon"), want: []uint{3, 1}},
		{query: "?filter=New", want: []uint{3, 1, 2}},
		{query: "?filter=Travel", want: []uint{2}},
		{query: "?filter=travel", want: []uint{}},
	}
	for _, tc := range cases {
		rec := do(t, h, http.MethodGet, "/offers"+tc.query, "")
		expectStatus(t, rec, http.StatusOK)
		if got := offerIDs(t, rec); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("GET /offers%s = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestToggleSavedOffer(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "")

	rec := do(t, h, http.MethodPost, "/offers/2/save", "")
	expectStatus(t, rec, http.StatusOK)
	var resp struct {
		Message string      `json:"message"`
		Offer   model.Offer `json:"offer"`
	}
	decode(t, rec, &resp)
	if !resp.Offer.Saved || resp.Message != "Offer saved!" {
		t.Fatalf("unexpected save response: %+v", resp)
	}

	expectStatus(t, do(t, h, http.MethodPost, "/offers/99/save", ""), http.StatusNotFound)
	expectStatus(t, do(t, h, http.MethodPost, "/offers/abc/save", ""), http.StatusBadRequest)
}

func TestRemindersDeleteAndSnooze(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "")

	if got := reminderIDs(t, h, ""); !reflect.DeepEqual(got, []uint{4, 2, 5, 1, 3}) {
		t.Fatalf("initial order = %v", got)
	}

	for i := 0; i < 2; i++ {
		expectStatus(t, do(t, h, http.MethodDelete, "/reminders/2", ""), http.StatusOK)
	}
	if got := reminderIDs(t, h, ""); !reflect.DeepEqual(got, []uint{4, 5, 1, 3}) {
		t.Fatalf("after delete = %v", got)
	}

	expectStatus(t, do(t, h, http.MethodPost, "/reminders/4/snooze", ""), http.StatusOK)
	if got := reminderIDs(t, h, ""); !reflect.DeepEqual(got, []uint{5, 1, 3}) {
		t.Fatalf("after snooze = %v", got)
	}
	expectStatus(t, do(t, h, http.MethodPost, "/reminders/404/snooze", ""), http.StatusNotFound)
	expectStatus(t, do(t, h, http.MethodDelete, "/reminders/-1", ""), http.StatusBadRequest)
}

func TestCreateOfferReminder(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "")

	rec := do(t, h, http.MethodPost, "/offers/1/reminders", "")
	expectStatus(t, rec, http.StatusCreated)
	var resp struct {
		Message  string         `json:"message"`
		Reminder model.Reminder `json:"reminder"`
	}
	decode(t, rec, &resp)
	if resp.Message != "Reminder set for Uber Eats offer" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Reminder.Title != "Uber Eats Offer Expiring" || resp.Reminder.Description != "10% cashback: Get 10% cashback on all orders" {
		t.Fatalf("unexpected reminder: %+v", resp.Reminder)
	}
	if got := reminderIDs(t, h, "?filter=offer"); len(got) != 2 {
		t.Fatalf("expected two offer reminders, got %v", got)
	}

	expectStatus(t, do(t, h, http.MethodPost, "/offers/42/reminders", ""), http.StatusNotFound)
}

func TestNotificationSettings(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "")

	rec := do(t, h, http.MethodPut, "/settings/notifications/offers", `{"enabled": false}`)
	expectStatus(t, rec, http.StatusOK)
	var setting model.NotificationSetting
	decode(t, rec, &setting)
	if setting.Key != "offers" || setting.Enabled {
		t.Fatalf("unexpected setting: %+v", setting)
	}

	expectStatus(t, do(t, h, http.MethodPut, "/settings/notifications/offers", `{}`), http.StatusBadRequest)
	expectStatus(t, do(t, h, http.MethodPut, "/settings/notifications/sms", `{"enabled": true}`), http.StatusNotFound)

	rec = do(t, h, http.MethodGet, "/settings/notifications", "")
	expectStatus(t, rec, http.StatusOK)
	var list struct {
		Settings []model.NotificationSetting `json:"settings"`
	}
	decode(t, rec, &list)
	if len(list.Settings) != 5 || list.Settings[3].Key != "offers" || list.Settings[3].Enabled {
		t.Fatalf("unexpected settings: %+v", list.Settings)
	}
}

func createSession(t *testing.T, h *Hub) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/assistant/sessions", "")
	expectStatus(t, rec, http.StatusCreated)
	var resp struct {
		ID       string              `json:"id"`
		Messages []model.ChatMessage `json:"messages"`
	}
	decode(t, rec, &resp)
	if resp.ID == "" || len(resp.Messages) != 1 {
		t.Fatalf("unexpected session: %+v", resp)
	}
	return resp.ID
}

func TestAssistantConversation(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 5*time.Millisecond, "")
	id := createSession(t, h)
	path := "/assistant/sessions/" + id

	rec := do(t, h, http.MethodPost, path+"/messages", `{"text": "Best card for travel and dining?"}`)
	expectStatus(t, rec, http.StatusOK)
	var resp struct {
		Reply model.ChatMessage `json:"reply"`
	}
	decode(t, rec, &resp)
	if !strings.HasPrefix(resp.Reply.Text, "For travel") || resp.Reply.QuickActions[0].Route != "/card/chase-sapphire" {
		t.Fatalf("unexpected reply: %+v", resp.Reply)
	}

	expectStatus(t, do(t, h, http.MethodPost, path+"/messages", `{"text": "   "}`), http.StatusBadRequest)
	expectStatus(t, do(t, h, http.MethodPost, "/assistant/sessions/nope/messages", `{"text": "hi"}`), http.StatusNotFound)

	rec = do(t, h, http.MethodGet, path, "")
	expectStatus(t, rec, http.StatusOK)
	var history struct {
		Messages []model.ChatMessage `json:"messages"`
	}
	decode(t, rec, &history)
	if len(history.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(history.Messages))
	}

	expectStatus(t, do(t, h, http.MethodDelete, path, ""), http.StatusOK)
	expectStatus(t, do(t, h, http.MethodGet, path, ""), http.StatusNotFound)
}

func TestAssistantRejectsOverlappingSend(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 300*time.Millisecond, "")
	id := createSession(t, h)
	path := "/assistant/sessions/" + id + "/messages"

	done := make(chan int, 1)
	go func() {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{"text": "any deals?"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.Handler().ServeHTTP(rec, req)
		done <- rec.Code
	}()

	session, err := h.sessions.Get(id)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for !session.Pending() {
		if time.Now().After(deadline) {
			t.Fatalf("first message never became pending")
		}
		time.Sleep(5 * time.Millisecond)
	}

	expectStatus(t, do(t, h, http.MethodPost, path, `{"text": "hello?"}`), http.StatusConflict)
	if code := <-done; code != http.StatusOK {
		t.Fatalf("first send status = %d", code)
	}
}

func TestSuggestions(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "")
	rec := do(t, h, http.MethodGet, "/assistant/suggestions", "")
	expectStatus(t, rec, http.StatusOK)
	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	decode(t, rec, &resp)
	if len(resp.Suggestions) != 5 {
		t.Fatalf("expected 5 suggestions, got %v", resp.Suggestions)
	}
}

func TestAnalytics(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "")

	rec := do(t, h, http.MethodGet, "/analytics", "")
	expectStatus(t, rec, http.StatusOK)
	var resp map[string]any
	decode(t, rec, &resp)
	if resp["avgRewardRate"] != "9.05" || resp["totalSpend"] != "3620" {
		t.Fatalf("unexpected analytics totals: %v / %v", resp["avgRewardRate"], resp["totalSpend"])
	}

	rec = do(t, h, http.MethodGet, "/analytics/export.csv", "")
	expectStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "Category,Spend,Rewards,Rate\nDining,$850,$102,4%\n") {
		t.Fatalf("unexpected CSV: %q", rec.Body.String())
	}
}

func postForm(t *testing.T, h *Hub, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/twilio/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Handler().ServeHTTP(rec, req)
	return rec
}

func TestWhatsAppWebhook(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "")

	rec := postForm(t, h, url.Values{"From": {"whatsapp:+15550001111"}, "Body": {"Show me travel offers"}})
	expectStatus(t, rec, http.StatusOK)
	body := rec.Body.String()
	if !strings.Contains(body, "<Response><Message>You have 12 active offers") || !strings.Contains(body, "View All Offers: http://localhost:8080/offers") {
		t.Fatalf("unexpected TwiML: %s", body)
	}
	if _, err := h.sessions.Get("whatsapp:+15550001111"); err != nil {
		t.Fatalf("expected a session for the sender: %v", err)
	}

	rec = postForm(t, h, url.Values{"From": {"whatsapp:+15550001111"}, "Body": {"  "}})
	expectStatus(t, rec, http.StatusOK)
	if !strings.Contains(rec.Body.String(), "I need a message to work with") {
		t.Fatalf("unexpected blank reply: %s", rec.Body.String())
	}
}

func TestWhatsAppWebhookRejectsUnsigned(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "secret-token")

	rec := postForm(t, h, url.Values{"From": {"whatsapp:+15550001111"}, "Body": {"hello"}})
	expectStatus(t, rec, http.StatusForbidden)
	if h.sessions.Len() != 0 {
		t.Fatalf("rejected webhook should not create sessions")
	}
}

func TestCORSPreflight(t *testing.T) {
	t.Parallel()
	h := newTestHub(t, 0, "")

	req := httptest.NewRequest(http.MethodOptions, "/reminders/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.Handler().ServeHTTP(rec, req)
	expectStatus(t, rec, http.StatusNoContent)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Fatalf("Access-Control-Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec = httptest.NewRecorder()
	h.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unexpected allow origin %q", got)
	}
}

func TestFormatWhatsAppReply(t *testing.T) {
	t.Parallel()
	plain := model.ChatMessage{Text: "Hello"}
	if got := formatWhatsAppReply(plain, "https://x"); got != "Hello" {
		t.Fatalf("plain reply = %q", got)
	}
	withActions := model.ChatMessage{
		Text:         "Pick one",
		QuickActions: []model.QuickAction{{Label: "A", Route: "/a"}, {Label: "B", Route: "/b"}},
	}
	if got, want := formatWhatsAppReply(withActions, "https://x"), "Pick one\n\nA: https://x/a\nB: https://x/b"; got != want {
		t.Fatalf("reply = %q, want %q", got, want)
	}
}
