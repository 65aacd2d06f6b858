package store

import (
	"context"
	"fmt"
	"time"

	"github.com/pathakanu/rewardsHub/internal/model"
	"github.com/pathakanu/rewardsHub/internal/ranking"
	"gorm.io/gorm"
)

// Reminders manages the active reminder set.
type Reminders struct {
	db       *gorm.DB
	snooze   time.Duration
	location *time.Location
	now      func() time.Time
}

// NewReminders returns a reminder store snoozing for the given period.
func NewReminders(db *gorm.DB, snooze time.Duration, location *time.Location) *Reminders {
	if location == nil {
		location = time.UTC
	}
	return &Reminders{db: db, snooze: snooze, location: location, now: time.Now}
}

// Active returns the reminders that are not snoozed, filtered by selector and ranked.
func (s *Reminders) Active(ctx context.Context, selector string) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := s.db.WithContext(ctx).
		Where("snoozed_until IS NULL").
		Order("id ASC").
		Find(&reminders).Error; err != nil {
		return nil, wrap("list reminders", err)
	}
	return ranking.RankReminders(reminders, selector), nil
}

// Delete removes a reminder. Deleting a missing reminder is not an error.
func (s *Reminders) Delete(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Delete(&model.Reminder{}, id).Error; err != nil {
		return wrap(fmt.Sprintf("delete reminder %d", id), err)
	}
	return nil
}

// Snooze hides a reminder until the snooze period has elapsed.
func (s *Reminders) Snooze(ctx context.Context, id uint) (model.Reminder, error) {
	var reminder model.Reminder
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reminder, id).Error; err != nil {
			return err
		}
		until := s.now().UTC().Add(s.snooze)
		reminder.SnoozedUntil = &until
		return tx.Model(&reminder).Update("snoozed_until", until).Error
	})
	if err != nil {
		return model.Reminder{}, wrap(fmt.Sprintf("snooze reminder %d", id), err)
	}
	return reminder, nil
}

// ReleaseSnoozed returns reminders whose snooze ended at or before now to the active set.
func (s *Reminders) ReleaseSnoozed(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).
		Model(&model.Reminder{}).
		Where("snoozed_until IS NOT NULL AND snoozed_until <= ?", now.UTC()).
		Update("snoozed_until", nil)
	if res.Error != nil {
		return 0, wrap("release snoozed reminders", res.Error)
	}
	return res.RowsAffected, nil
}

// CreateFromOffer adds an offer reminder due when the offer expires.
func (s *Reminders) CreateFromOffer(ctx context.Context, offer model.Offer, description string) (model.Reminder, error) {
	now := s.now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	reminder := model.Reminder{
		Kind:         model.ReminderOffer,
		Title:        offer.Merchant + " Offer Expiring",
		Description:  description,
		CardName:     offer.CardName,
		DueDate:      today.AddDate(0, 0, offer.DaysUntilExpiry),
		DaysUntilDue: offer.DaysUntilExpiry,
		Urgency:      offer.Urgency,
	}
	if err := s.db.WithContext(ctx).Create(&reminder).Error; err != nil {
		return model.Reminder{}, wrap("create offer reminder", err)
	}
	return reminder, nil
}
