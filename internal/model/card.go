package model

import "github.com/shopspring/decimal"

// Card is a static lookup entry for a linked credit card. Points-based cards
// leave Cashback zero and cashback cards leave Points zero.
type Card struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Issuer           string          `json:"issuer"`
	Logo             string          `json:"logo"`
	Points           int             `json:"points"`
	PointsExpiring   int             `json:"pointsExpiring"`
	Cashback         decimal.Decimal `json:"cashback"`
	CashbackExpiring decimal.Decimal `json:"cashbackExpiring"`
	ExpiryDate       string          `json:"expiryDate,omitempty"`
	Urgency          Urgency         `json:"urgency"`
	Recommendation   string          `json:"recommendation"`
	Categories       []string        `json:"categories"`
	RecentActivity   []Activity      `json:"recentActivity"`
	Stats            CardStats       `json:"stats"`
}

// Activity is one recent purchase on a card.
type Activity struct {
	When     string          `json:"date"`
	Merchant string          `json:"merchant"`
	Amount   decimal.Decimal `json:"amount"`
	Points   int             `json:"points"`
}

// CardStats holds the month-to-date figures shown on the card details screen.
type CardStats struct {
	MonthlySpend  decimal.Decimal `json:"monthlySpend"`
	PointsEarned  int             `json:"pointsEarned"`
	AvgRewardRate decimal.Decimal `json:"avgRewardRate"`
}
