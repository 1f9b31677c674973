package billing

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrPlanNotFound         = errors.New("plan not found")
	ErrPlanInactive         = errors.New("plan is no longer offered")
	ErrNotCancellable       = errors.New("subscription can no longer be cancelled")
)
