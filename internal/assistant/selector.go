// Package assistant answers chat messages with canned replies chosen by an
// ordered keyword rule table, and keeps per-session conversation history.
package assistant

import (
	"slices"
	"strings"

	"github.com/pathakanu/rewardsHub/internal/model"
)

// Reply is the canned answer produced for one user message.
type Reply struct {
	Topic        string              `json:"topic"`
	Text         string              `json:"text"`
	QuickActions []model.QuickAction `json:"quickActions"`
}

// Rule is one row of the decision table. A rule with Branches never answers
// itself: it only guards its branches, and fails when none of them match.
type Rule struct {
	Topic    string
	Match    func(message string) bool
	Reply    Reply
	Branches []Rule
}

func (r Rule) resolve(message string) (Reply, bool) {
	if !r.Match(message) {
		return Reply{}, false
	}
	if len(r.Branches) == 0 {
		return r.Reply, true
	}
	for _, branch := range r.Branches {
		if reply, ok := branch.resolve(message); ok {
			return reply, true
		}
	}
	return Reply{}, false
}

// Selector evaluates rules in order; the first match wins.
type Selector struct {
	rules    []Rule
	fallback Reply
}

// NewSelector builds a selector over rules with the given fallback reply.
func NewSelector(rules []Rule, fallback Reply) *Selector {
	return &Selector{rules: rules, fallback: fallback}
}

// Select returns the reply for input. Matching is case-insensitive.
func (s *Selector) Select(input string) Reply {
	message := strings.ToLower(input)
	for _, rule := range s.rules {
		if reply, ok := rule.resolve(message); ok {
			return clone(reply)
		}
	}
	return clone(s.fallback)
}

func clone(r Reply) Reply {
	r.QuickActions = slices.Clone(r.QuickActions)
	if r.QuickActions == nil {
		r.QuickActions = []model.QuickAction{}
	}
	return r
}

// containsAny returns a predicate matching messages containing any keyword.
func containsAny(keywords ...string) func(string) bool {
	return func(message string) bool {
		for _, keyword := range keywords {
			if strings.Contains(message, keyword) {
				return true
			}
		}
		return false
	}
}

var defaultSelector = NewSelector(DefaultRules(), FallbackReply())

// SelectResponse answers input with the default rule table.
func SelectResponse(input string) Reply {
	return defaultSelector.Select(input)
}
