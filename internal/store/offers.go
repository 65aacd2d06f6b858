package store

import (
	"context"
	"fmt"

	"github.com/pathakanu/rewardsHub/internal/model"
	"github.com/pathakanu/rewardsHub/internal/ranking"
	"gorm.io/gorm"
)

// Offers manages merchant offers and their saved flag.
type Offers struct {
	db *gorm.DB
}

// NewOffers returns an offer store.
func NewOffers(db *gorm.DB) *Offers {
	return &Offers{db: db}
}

// List returns offers passing selector, ranked by urgency.
func (s *Offers) List(ctx context.Context, selector string) ([]model.Offer, error) {
	var offers []model.Offer
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&offers).Error; err != nil {
		return nil, wrap("list offers", err)
	}
	return ranking.RankOffers(offers, selector), nil
}

// ForCard returns the offers of one card in ranked order.
func (s *Offers) ForCard(ctx context.Context, cardName string) ([]model.Offer, error) {
	var offers []model.Offer
	if err := s.db.WithContext(ctx).Where("card_name = ?", cardName).Order("id ASC").Find(&offers).Error; err != nil {
		return nil, wrap("list card offers", err)
	}
	return ranking.Rank(offers), nil
}

// Get returns one offer.
func (s *Offers) Get(ctx context.Context, id uint) (model.Offer, error) {
	var offer model.Offer
	if err := s.db.WithContext(ctx).First(&offer, id).Error; err != nil {
		return model.Offer{}, wrap(fmt.Sprintf("get offer %d", id), err)
	}
	return offer, nil
}

// ToggleSaved flips the saved flag and returns the updated offer.
func (s *Offers) ToggleSaved(ctx context.Context, id uint) (model.Offer, error) {
	var offer model.Offer
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&offer, id).Error; err != nil {
			return err
		}
		offer.Saved = !offer.Saved
		return tx.Model(&offer).Update("saved", offer.Saved).Error
	})
	if err != nil {
		return model.Offer{}, wrap(fmt.Sprintf("toggle saved offer %d", id), err)
	}
	return offer, nil
}
