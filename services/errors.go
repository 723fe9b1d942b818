package services

import "errors"

var (
	// ErrNotFound is returned when no row matches an (id, owner) lookup.
	ErrNotFound = errors.New("not found")

	// ErrInvalidAmount is returned for negative transaction amounts; the sign
	// of a transaction is carried by its type, never by the amount.
	ErrInvalidAmount = errors.New("amount must be non-negative")

	// ErrAggregationFailed marks a single budget whose spend query failed
	// inside a progress batch. The batch itself still succeeds.
	ErrAggregationFailed = errors.New("aggregation_failed")
)
