package model

import "time"

// ReminderKind tells what a reminder is about.
type ReminderKind string

const (
	ReminderExpiry   ReminderKind = "expiry"
	ReminderCategory ReminderKind = "category"
	ReminderOffer    ReminderKind = "offer"
)

// Reminder represents an upcoming deadline tied to one of the user's cards.
// DaysUntilDue and Urgency are fixed when the reminder is created.
type Reminder struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Kind         ReminderKind `gorm:"type:text;not null" json:"kind"`
	Title        string       `gorm:"type:text;not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	CardName     string       `gorm:"index" json:"card"`
	DueDate      time.Time    `json:"dueDate"`
	DaysUntilDue int          `gorm:"not null" json:"daysUntil"`
	Urgency      Urgency      `gorm:"type:text;not null" json:"urgency"`
	SnoozedUntil *time.Time   `json:"snoozedUntil,omitempty"`
	CreatedAt    time.Time    `gorm:"autoCreateTime" json:"createdAt"`
}

func (r Reminder) UrgencyTier() Urgency { return r.Urgency }
func (r Reminder) DaysRemaining() int { return r.DaysUntilDue }
func (r Reminder) Identifier() uint { return r.ID }
func (r Reminder) CategoryName() string { return string(r.Kind) }
