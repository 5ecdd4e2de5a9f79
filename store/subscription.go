package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/openaquifer/groundwater-api/schema"
)

var (
	ErrAlreadySubscribed       = fmt.Errorf("already subscribed")
	ErrInvalidSubscriptionType = fmt.Errorf("subscription type must be district or state")
)

// SubscriptionRecord aliases the schema type for store callers.
type SubscriptionRecord = schema.Subscription

// CreateSubscription inserts a subscription after normalization. Duplicate
// (email, location, type) triples are rejected.
func (s *GroundwaterStore) CreateSubscription(email, location, subscriptionType string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	location = strings.TrimSpace(location)
	subscriptionType = strings.ToLower(strings.TrimSpace(subscriptionType))

	if subscriptionType != schema.SubscriptionTypeDistrict &&
		subscriptionType != schema.SubscriptionTypeState {
		return ErrInvalidSubscriptionType
	}

	var existing schema.Subscription
	err := s.ormDB.
		Where("email = ? AND lower(location) = lower(?) AND type = ?", email, location, subscriptionType).
		First(&existing).Error
	if err == nil {
		return ErrAlreadySubscribed
	}
	if !gorm.IsRecordNotFoundError(err) {
		return err
	}

	subscription := schema.Subscription{
		ID:       uuid.New().String(),
		Email:    email,
		Location: location,
		Type:     subscriptionType,
	}
	return s.ormDB.Create(&subscription).Error
}

// ListSubscriptions returns every subscription, oldest first.
func (s *GroundwaterStore) ListSubscriptions() ([]SubscriptionRecord, error) {
	var subscriptions []SubscriptionRecord
	if err := s.ormDB.Order("created_at asc").Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}

// SubscribersFor returns the subscriptions matching one location and type.
func (s *GroundwaterStore) SubscribersFor(location, subscriptionType string) ([]SubscriptionRecord, error) {
	var subscriptions []SubscriptionRecord
	err := s.ormDB.
		Where("lower(location) = lower(?) AND type = ?", strings.TrimSpace(location), strings.ToLower(subscriptionType)).
		Find(&subscriptions).Error
	if err != nil {
		return nil, err
	}
	return subscriptions, nil
}
