package event

import "errors"

var (
	// ErrNilHandler is returned when subscribing with a nil handler.
	ErrNilHandler = errors.New("event: nil handler")

	// ErrInvalidTopic is returned when subscribing to an empty or
	// malformed topic pattern.
	ErrInvalidTopic = errors.New("event: invalid topic")

	// ErrInvalidEvent is returned when publishing an event whose topic
	// cannot be determined.
	ErrInvalidEvent = errors.New("event: cannot determine event topic")

	// ErrInvalidSubscription is returned when unsubscribing a nil
	// subscription.
	ErrInvalidSubscription = errors.New("event: invalid subscription")

	// ErrSubscriptionNotFound is returned when unsubscribing a
	// subscription the bus does not know about.
	ErrSubscriptionNotFound = errors.New("event: subscription not found")
)
