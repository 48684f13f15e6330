// Package caches holds the in-memory stores shared by the route handlers.
package caches

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Fix is the last accepted position report for a vehicle.
type Fix struct {
	Lat       float64
	Lon       float64
	Timestamp int64 // unix seconds
}

// LastFixStore keeps the most recent accepted fix per vehicle so incoming
// reports can be scored against it. It is a bounded LRU; vehicles that stop
// reporting simply age out, nothing is persisted.
type LastFixStore struct {
	fixes *lru.Cache[string, Fix]
}

// NewLastFixStore creates a store holding up to size vehicles.
func NewLastFixStore(size int) (*LastFixStore, error) {
	fixes, err := lru.New[string, Fix](size)
	if err != nil {
		return nil, err
	}
	return &LastFixStore{fixes: fixes}, nil
}

// Last returns the previous fix for the vehicle, if one is known.
func (s *LastFixStore) Last(vehicleID string) (Fix, bool) {
	return s.fixes.Get(vehicleID)
}

// Record stores the fix as the vehicle's latest.
func (s *LastFixStore) Record(vehicleID string, fix Fix) {
	s.fixes.Add(vehicleID, fix)
}

// Len returns the number of vehicles currently tracked.
func (s *LastFixStore) Len() int {
	return s.fixes.Len()
}
