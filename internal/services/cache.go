package services

import "time"

// Cache is the subset of the redis client the services use. A nil Cache
// disables caching; Get methods return a non-nil error on a miss.
type Cache interface {
	SetBranchesByState(stateID string, payload interface{}, ttl time.Duration) error
	GetBranchesByState(stateID string, dest interface{}) error
	InvalidateBranchesByState(stateID string) error
	SetProductInfo(productID string, payload interface{}, ttl time.Duration) error
	GetProductInfo(productID string, dest interface{}) error
	InvalidateProductInfo(productID string) error
}
