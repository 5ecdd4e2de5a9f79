package schema

import (
	"time"
)

const (
	SubscriptionTypeDistrict = "district"
	SubscriptionTypeState    = "state"
)

// Subscription - an alert subscription stored in postgres. One row per
// (email, location, type) triple.
type Subscription struct {
	ID        string    `json:"id" gorm:"primary_key"`
	Email     string    `json:"email" gorm:"not null"`
	Location  string    `json:"location" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
