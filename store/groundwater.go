package store

import (
	"github.com/jinzhu/gorm"
)

// GroundwaterCore - relational datastore operations (subscriptions)
type GroundwaterCore interface {
	Ping() error

	// Subscription
	CreateSubscription(email, location, subscriptionType string) error
	ListSubscriptions() ([]SubscriptionRecord, error)
	SubscribersFor(location, subscriptionType string) ([]SubscriptionRecord, error)
}

// GroundwaterStore is an implementation of GroundwaterCore
type GroundwaterStore struct {
	ormDB *gorm.DB
}

func NewGroundwaterStore(ormDB *gorm.DB) *GroundwaterStore {
	return &GroundwaterStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *GroundwaterStore) Ping() error {
	return s.ormDB.DB().Ping()
}
