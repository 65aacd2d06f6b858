package model

// NotificationSetting is a user preference toggle. Nothing is delivered based on it.
type NotificationSetting struct {
	Key         string `gorm:"primaryKey" json:"id"`
	Label       string `gorm:"not null" json:"label"`
	Description string `json:"description"`
	Enabled     bool   `gorm:"not null" json:"enabled"`
	Position    int    `gorm:"not null" json:"-"`
}
