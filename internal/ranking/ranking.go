// Package ranking orders reminders and offers by urgency and narrows them by
// the filter chips shown on the offers screen.
package ranking

import (
	"cmp"
	"slices"

	"github.com/pathakanu/rewardsHub/internal/model"
)

// Filter chip values with special meaning. Any other value is matched
// against the record category exactly.
const (
	FilterAll          = "All Offers"
	FilterExpiringSoon = "Expiring Soon"
	FilterNew          = "New"
)

// NewThreshold is the identifier below which a record counts as new. There is
// no creation time on seed records so the identifier stands in for recency.
const NewThreshold = 4

// Ranked is anything with an urgency tier and a deadline in days.
type Ranked interface {
	UrgencyTier() model.Urgency
	DaysRemaining() int
}

// Filterable is a Ranked record that can be selected by a filter chip.
type Filterable interface {
	Ranked
	Identifier() uint
	CategoryName() string
}

// Rank returns a new slice ordered by urgency tier, high first, then by
// ascending days remaining. Equal records keep their input order.
func Rank[T Ranked](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	slices.SortStableFunc(out, compare[T])
	return out
}

func compare[T Ranked](a, b T) int {
	if c := cmp.Compare(a.UrgencyTier().Rank(), b.UrgencyTier().Rank()); c != 0 {
		return c
	}
	return cmp.Compare(a.DaysRemaining(), b.DaysRemaining())
}

// Filter returns the records passing selector, in input order. An empty
// selector passes everything.
func Filter[T Filterable](items []T, selector string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, selector) {
			out = append(out, item)
		}
	}
	return out
}

func matches[T Filterable](item T, selector string) bool {
	switch selector {
	case "", FilterAll:
		return true
	case FilterExpiringSoon:
		return item.UrgencyTier() == model.UrgencyHigh
	case FilterNew:
		return item.Identifier() < NewThreshold
	default:
		return item.CategoryName() == selector
	}
}

// RankReminders filters then ranks reminders.
func RankReminders(records []model.Reminder, selector string) []model.Reminder {
	return Rank(Filter(records, selector))
}

// RankOffers filters then ranks offers.
func RankOffers(offers []model.Offer, selector string) []model.Offer {
	return Rank(Filter(offers, selector))
}

// DeleteReminder returns a copy of records without the reminder id. Deleting
// an absent id returns an unchanged copy.
func DeleteReminder(records []model.Reminder, id uint) []model.Reminder {
	out := make([]model.Reminder, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
