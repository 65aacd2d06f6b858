package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pathakanu/rewardsHub/internal/model"
)

var (
	// ErrEmptyMessage is returned when the user sends blank text.
	ErrEmptyMessage = errors.New("message is empty")
	// ErrReplyPending is returned when a message is sent while the previous reply is still being prepared.
	ErrReplyPending = errors.New("assistant is still replying")
	// ErrSessionNotFound is returned for unknown or ended sessions.
	ErrSessionNotFound = errors.New("chat session not found")
)

// Session is one conversation. At most one reply is pending at a time; the
// thinking delay cannot be cancelled once a message is accepted.
type Session struct {
	ID string

	selector *Selector
	delay    time.Duration
	now      func() time.Time

	mu       sync.Mutex
	messages []model.ChatMessage
	pending  bool
	lastID   int64
	lastSeen time.Time
}

func newSession(id string, selector *Selector, delay time.Duration, now func() time.Time) *Session {
	s := &Session{
		ID:       id,
		selector: selector,
		delay:    delay,
		now:      now,
	}
	s.mu.Lock()
	s.appendLocked(Greeting, model.SenderAssistant, nil)
	s.mu.Unlock()
	return s
}

// Messages returns a copy of the conversation so far.
func (s *Session) Messages() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Pending reports whether a reply is being prepared.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Send records the user message and waits for the assistant reply. When ctx
// ends first, Send returns ctx.Err() and the reply still lands in the history.
func (s *Session) Send(ctx context.Context, text string) (model.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return model.ChatMessage{}, ErrEmptyMessage
	}

	s.mu.Lock()
	if s.pending {
		s.mu.Unlock()
		return model.ChatMessage{}, ErrReplyPending
	}
	s.pending = true
	s.appendLocked(text, model.SenderUser, nil)
	s.mu.Unlock()

	done := make(chan model.ChatMessage, 1)
	time.AfterFunc(s.delay, func() {
		reply := s.selector.Select(text)
		s.mu.Lock()
		msg := s.appendLocked(reply.Text, model.SenderAssistant, reply.QuickActions)
		s.pending = false
		s.mu.Unlock()
		done <- msg
	})

	select {
	case msg := <-done:
		return msg, nil
	case <-ctx.Done():
		return model.ChatMessage{}, ctx.Err()
	}
}

func (s *Session) appendLocked(text string, sender model.Sender, actions []model.QuickAction) model.ChatMessage {
	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	s.lastSeen = now

	if actions == nil {
		actions = []model.QuickAction{}
	}
	msg := model.ChatMessage{
		ID:           id,
		Text:         text,
		Sender:       sender,
		Timestamp:    now,
		QuickActions: actions,
	}
	s.messages = append(s.messages, msg)
	return msg
}

func (s *Session) idleSince() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen, s.pending
}

// Store keeps the live sessions keyed by id.
type Store struct {
	selector *Selector
	delay    time.Duration
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty session store answering with selector after delay.
func NewStore(selector *Selector, delay time.Duration) *Store {
	return &Store{
		selector: selector,
		delay:    delay,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Create starts a new session with a random id.
func (st *Store) Create() *Session {
	return st.GetOrCreate(uuid.NewString())
}

// GetOrCreate returns the session for key, starting one when absent.
func (st *Store) GetOrCreate(key string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	if s, ok := st.sessions[key]; ok {
		return s
	}
	s := newSession(key, st.selector, st.delay, st.now)
	st.sessions[key] = s
	return s
}

// Get returns an existing session.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// End discards a session. Ending an unknown session is not an error.
func (st *Store) End(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Prune ends sessions idle since before cutoff and returns how many were removed.
// Sessions waiting on a reply are kept.
func (st *Store) Prune(cutoff time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()
	removed := 0
	for id, s := range st.sessions {
		lastSeen, pending := s.idleSince()
		if !pending && lastSeen.Before(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}
