package model

import "time"

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// QuickAction is a labelled shortcut to a client route attached to an assistant reply.
type QuickAction struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

// ChatMessage is one entry of an assistant conversation. Messages are never mutated.
type ChatMessage struct {
	ID           int64         `json:"id"`
	Text         string        `json:"text"`
	Sender       Sender        `json:"sender"`
	Timestamp    time.Time     `json:"timestamp"`
	QuickActions []QuickAction `json:"quickActions"`
}
