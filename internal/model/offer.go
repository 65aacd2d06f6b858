package model

// Offer is a merchant promotion available on one of the user's cards.
type Offer struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	Merchant        string  `gorm:"not null" json:"merchant"`
	Reward          string  `json:"reward"`
	CardName        string  `gorm:"index" json:"card"`
	Category        string  `gorm:"index" json:"category"`
	DaysUntilExpiry int     `gorm:"not null" json:"daysUntilExpiry"`
	Urgency         Urgency `gorm:"type:text;not null" json:"urgency"`
	Description     string  `gorm:"type:text" json:"description"`
	Terms           string  `gorm:"type:text" json:"terms"`
	Saved           bool    `gorm:"not null;default:false" json:"saved"`
}

func (o Offer) UrgencyTier() Urgency { return o.Urgency }
func (o Offer) DaysRemaining() int { return o.DaysUntilExpiry }
func (o Offer) Identifier() uint { return o.ID }
func (o Offer) CategoryName() string { return o.Category }
