// Package seed holds the hardcoded records that stand in for a backend.
// Every accessor returns a fresh copy so callers may mutate the result.
package seed

import (
	"time"

	"github.com/pathakanu/rewardsHub/internal/model"
	"github.com/shopspring/decimal"
)

// Cards returns the linked cards in display order.
func Cards() []model.Card {
	return []model.Card{
		{
			ID:             "chase-sapphire",
			Name:           "Chase Sapphire Reserve",
			Issuer:         "Chase",
			Logo:           "🏦",
			Points:         12500,
			PointsExpiring: 150,
			ExpiryDate:     "Dec 31, 2025",
			Urgency:        model.UrgencyMedium,
			Recommendation: "Best for dining & travel",
			Categories:     []string{"Dining", "Travel", "Hotels"},
			RecentActivity: []model.Activity{
				{When: "2 days ago", Merchant: "Starbucks", Amount: decimal.RequireFromString("8.50"), Points: 26},
				{When: "5 days ago", Merchant: "United Airlines", Amount: decimal.NewFromInt(450), Points: 1350},
				{When: "1 week ago", Merchant: "Hilton", Amount: decimal.NewFromInt(280), Points: 840},
			},
			Stats: model.CardStats{
				MonthlySpend:  decimal.NewFromInt(1850),
				PointsEarned:  5550,
				AvgRewardRate: decimal.RequireFromString("3.0"),
			},
		},
		{
			ID:             "amex-gold",
			Name:           "American Express Gold",
			Issuer:         "Amex",
			Logo:           "💳",
			Points:         45890,
			Urgency:        model.UrgencyLow,
			Recommendation: "Best for groceries & dining",
			Categories:     []string{"Dining", "Groceries", "Supermarkets"},
			RecentActivity: []model.Activity{
				{When: "1 day ago", Merchant: "Trader Joes", Amount: decimal.RequireFromString("85.20"), Points: 341},
				{When: "3 days ago", Merchant: "The Cheesecake Factory", Amount: decimal.NewFromInt(120), Points: 480},
				{When: "6 days ago", Merchant: "Safeway", Amount: decimal.RequireFromString("62.40"), Points: 250},
			},
			Stats: model.CardStats{
				MonthlySpend:  decimal.NewFromInt(2240),
				PointsEarned:  8960,
				AvgRewardRate: decimal.RequireFromString("4.0"),
			},
		},
		{
			ID:               "discover-it",
			Name:             "Discover it",
			Issuer:           "Discover",
			Logo:             "🔍",
			Cashback:         decimal.RequireFromString("127.50"),
			CashbackExpiring: decimal.NewFromInt(25),
			ExpiryDate:       "Nov 30, 2025",
			Urgency:          model.UrgencyHigh,
			Recommendation:   "5% category: Amazon this quarter",
			Categories:       []string{"Online Shopping"},
		},
		{
			ID:             "citi-custom",
			Name:           "Citi Custom Cash",
			Issuer:         "Citi",
			Logo:           "🏛️",
			Cashback:       decimal.RequireFromString("234.80"),
			Urgency:        model.UrgencyLow,
			Recommendation: "Activate Q4 categories",
			Categories:     []string{"Gas"},
		},
	}
}

// Offers returns the merchant offers. IDs are explicit so the "New" filter
// sees the same records on every start.
func Offers() []model.Offer {
	return []model.Offer{
		{ID: 1, Merchant: "Uber Eats", Reward: "10% cashback", CardName: "Chase Sapphire Reserve", Category: "Dining", DaysUntilExpiry: 15, Urgency: model.UrgencyHigh, Description: "Get 10% cashback on all orders", Terms: "Valid on orders over $15"},
		{ID: 2, Merchant: "Hotels.com", Reward: "$50 off", CardName: "Chase Sapphire Reserve", Category: "Travel", DaysUntilExpiry: 45, Urgency: model.UrgencyLow, Description: "Book your next stay and save", Terms: "Minimum booking of $200"},
		{ID: 3, Merchant: "Grubhub", Reward: "$10 off", CardName: "American Express Gold", Category: "Dining", DaysUntilExpiry: 8, Urgency: model.UrgencyHigh, Description: "Order delivery and save", Terms: "Valid on orders over $30"},
		{ID: 4, Merchant: "Whole Foods", Reward: "5x points", CardName: "American Express Gold", Category: "Groceries", DaysUntilExpiry: 22, Urgency: model.UrgencyMedium, Description: "Earn bonus points on groceries", Terms: "In-store and online purchases"},
		{ID: 5, Merchant: "Amazon", Reward: "5% cashback", CardName: "Discover it", Category: "Online Shopping", DaysUntilExpiry: 60, Urgency: model.UrgencyLow, Description: "Q4 rotating category bonus", Terms: "Activate category bonus"},
		{ID: 6, Merchant: "Gas Stations", Reward: "3% cashback", CardName: "Citi Custom Cash", Category: "Gas", DaysUntilExpiry: 90, Urgency: model.UrgencyLow, Description: "Top spending category this month", Terms: "Up to $500/month"},
	}
}

// OfferCategories lists the filter chips of the offers screen in display order.
func OfferCategories() []string {
	return []string{"All Offers", "Expiring Soon", "New", "Dining", "Travel", "Groceries", "Online Shopping", "Gas"}
}

// Reminders returns the upcoming reminders.
func Reminders() []model.Reminder {
	return []model.Reminder{
		{ID: 1, Kind: model.ReminderExpiry, Title: "Points Expiring", Description: "150 Chase points expire", CardName: "Chase Sapphire Reserve", DueDate: date(2025, time.December, 31), DaysUntilDue: 56, Urgency: model.UrgencyMedium},
		{ID: 2, Kind: model.ReminderExpiry, Title: "Cashback Expiring", Description: "$25 Discover cashback expires", CardName: "Discover it", DueDate: date(2025, time.November, 30), DaysUntilDue: 24, Urgency: model.UrgencyHigh},
		{ID: 3, Kind: model.ReminderCategory, Title: "Activate Q1 Categories", Description: "New rotating categories available", CardName: "Discover it", DueDate: date(2026, time.January, 1), DaysUntilDue: 86, Urgency: model.UrgencyLow},
		{ID: 4, Kind: model.ReminderOffer, Title: "Uber Eats Offer Expiring", Description: "10% cashback ends soon", CardName: "Chase Sapphire Reserve", DueDate: date(2025, time.November, 21), DaysUntilDue: 15, Urgency: model.UrgencyHigh},
		{ID: 5, Kind: model.ReminderCategory, Title: "Activate Gas Category", Description: "Remember to activate bonus", CardName: "Citi Custom Cash", DueDate: date(2025, time.December, 1), DaysUntilDue: 25, Urgency: model.UrgencyMedium},
	}
}

// NotificationSettings returns the preference toggles, all enabled.
func NotificationSettings() []model.NotificationSetting {
	return []model.NotificationSetting{
		{Key: "push", Label: "Push Notifications", Description: "Get alerts on your device", Enabled: true, Position: 1},
		{Key: "email", Label: "Email Notifications", Description: "Receive updates via email", Enabled: true, Position: 2},
		{Key: "expiry", Label: "Expiration Alerts", Description: "Notify before points/cashback expire", Enabled: true, Position: 3},
		{Key: "offers", Label: "New Offers", Description: "Get notified about new deals", Enabled: true, Position: 4},
		{Key: "categories", Label: "Category Activation", Description: "Remind me to activate rotating categories", Enabled: true, Position: 5},
	}
}

// CardByName returns the card with the given display name.
func CardByName(name string) (model.Card, bool) {
	for _, card := range Cards() {
		if card.Name == name {
			return card, true
		}
	}
	return model.Card{}, false
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
