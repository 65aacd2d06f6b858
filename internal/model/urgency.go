package model

import "fmt"

// Urgency is the coarse priority label shared by reminders, offers and cards.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Rank returns the sort rank of the tier, high first. It panics on a value
// outside the three known tiers.
func (u Urgency) Rank() int {
	switch u {
	case UrgencyHigh:
		return 0
	case UrgencyMedium:
		return 1
	case UrgencyLow:
		return 2
	default:
		panic(fmt.Sprintf("model: unknown urgency tier %q", string(u)))
	}
}

// Valid reports whether u is one of the known tiers.
func (u Urgency) Valid() bool {
	return u == UrgencyHigh || u == UrgencyMedium || u == UrgencyLow
}
