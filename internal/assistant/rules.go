package assistant

import "github.com/pathakanu/rewardsHub/internal/model"

// Topics reported on replies.
const (
	TopicBestCardGrocery = "best_card_grocery"
	TopicBestCardTravel  = "best_card_travel"
	TopicBestCardDining  = "best_card_dining"
	TopicExpiring        = "expiring"
	TopicEarnings        = "earnings"
	TopicOffers          = "offers"
	TopicCategories      = "categories"
	TopicHelp            = "help"
)

// Greeting opens every conversation.
const Greeting = "Hi! I'm your RewardsHub AI assistant. I can help you maximize your credit card rewards, find the best offers, and answer questions about your cards. How can I help you today?"

// Suggestions are the prompts offered before the user has written anything.
func Suggestions() []string {
	return []string{
		"Best card for groceries",
		"What's expiring soon?",
		"How much have I earned?",
		"Show me travel offers",
		"When should I activate categories?",
	}
}

// DefaultRules returns the rule table in evaluation order. Order matters:
// "best card for travel and dining" is a travel question because travel is
// checked first.
func DefaultRules() []Rule {
	return []Rule{
		{
			Topic: "best_card",
			Match: containsAny("best card", "which card"),
			Branches: []Rule{
				{
					Topic: TopicBestCardGrocery,
					Match: containsAny("grocery", "groceries"),
					Reply: Reply{
						Topic: TopicBestCardGrocery,
						Text:  "For groceries, I recommend using your American Express Gold card. It offers 4x points on supermarket purchases (up to $25,000 per year, then 1x). This is one of the best rewards rates for grocery shopping!",
						QuickActions: []model.QuickAction{
							{Label: "View Amex Gold Details", Route: "/card/amex-gold"},
							{Label: "See Grocery Offers", Route: "/offers"},
						},
					},
				},
				{
					Topic: TopicBestCardTravel,
					Match: containsAny("travel"),
					Reply: Reply{
						Topic: TopicBestCardTravel,
						Text:  "For travel, your Chase Sapphire Reserve is the best choice! It offers 3x points on travel and dining, plus you get valuable travel protections and lounge access. You currently have 12,500 points.",
						QuickActions: []model.QuickAction{
							{Label: "View Chase Sapphire Details", Route: "/card/chase-sapphire"},
							{Label: "See Travel Offers", Route: "/offers"},
						},
					},
				},
				{
					Topic: TopicBestCardDining,
					Match: containsAny("dining", "restaurant"),
					Reply: Reply{
						Topic: TopicBestCardDining,
						Text:  "Both your Chase Sapphire Reserve and Amex Gold are excellent for dining! Chase offers 3x points while Amex offers 4x points. I'd recommend using the Amex Gold for maximum rewards.",
						QuickActions: []model.QuickAction{
							{Label: "Compare Cards", Route: "/analytics"},
						},
					},
				},
			},
		},
		{
			Topic: TopicExpiring,
			Match: containsAny("expir"),
			Reply: Reply{
				Topic: TopicExpiring,
				Text:  "You have a few things expiring soon:\n\n• 150 Chase points expiring on Dec 31, 2025\n• $25 Discover cashback expiring on Nov 30, 2025\n• Uber Eats 10% offer expiring in 15 days\n\nWould you like me to set reminders for these?",
				QuickActions: []model.QuickAction{
					{Label: "View All Reminders", Route: "/reminders"},
					{Label: "Set Reminder", Route: "/reminders"},
				},
			},
		},
		{
			Topic: TopicEarnings,
			Match: containsAny("earn", "saved", "total"),
			Reply: Reply{
				Topic: TopicEarnings,
				Text:  "Great question! Here's your rewards summary:\n\n💰 Total rewards value: $1,247\n📈 This month's earnings: $156\n🎯 Average reward rate: 3.5%\n\nYou're doing amazing! Keep using the right cards for each purchase to maximize your rewards.",
				QuickActions: []model.QuickAction{
					{Label: "View Detailed Analytics", Route: "/analytics"},
				},
			},
		},
		{
			Topic: TopicOffers,
			Match: containsAny("offer", "deal"),
			Reply: Reply{
				Topic: TopicOffers,
				Text:  "You have 12 active offers available! Here are some highlights:\n\n🍔 Uber Eats: 10% cashback\n🏨 Hotels.com: $50 off\n🛒 Whole Foods: 5x points\n🛍️ Amazon: 5% cashback\n\nCheck out the offers page to see all available deals!",
				QuickActions: []model.QuickAction{
					{Label: "View All Offers", Route: "/offers"},
				},
			},
		},
		{
			Topic: TopicCategories,
			Match: containsAny("activate", "category", "categories"),
			Reply: Reply{
				Topic: TopicCategories,
				Text:  "Good reminder! You have rotating categories that need activation:\n\n🔄 Discover it Q4: Amazon (5% cashback) - Already active ✓\n🔄 Citi Custom Cash: Gas stations (3% cashback) - Activate by Dec 1\n\nI'll set a reminder for you to activate the Gas category!",
				QuickActions: []model.QuickAction{
					{Label: "Manage Categories", Route: "/reminders"},
				},
			},
		},
	}
}

// FallbackReply is returned when no rule matches.
func FallbackReply() Reply {
	return Reply{
		Topic: TopicHelp,
		Text:  "I can help you with:\n\n• Finding the best card for different purchases\n• Tracking expiring rewards and offers\n• Viewing your rewards earnings\n• Managing rotating categories\n• Discovering new offers\n\nWhat would you like to know?",
	}
}
