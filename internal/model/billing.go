package model

import (
	"time"

	"github.com/aarondl/null/v8"
)

// SubscriptionStatus is the state of an organization's dashboard subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusTrialing  SubscriptionStatus = "TRIALING"
	SubscriptionStatusActive    SubscriptionStatus = "ACTIVE"
	SubscriptionStatusPastDue   SubscriptionStatus = "PAST_DUE"
	SubscriptionStatusCancelled SubscriptionStatus = "CANCELLED"
	SubscriptionStatusExpired   SubscriptionStatus = "EXPIRED"
)

// Plan is a purchasable dashboard plan.
type Plan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency"`
	Interval    string   `json:"interval"`
	Features    []string `json:"features"`
	IsActive    bool     `json:"isActive"`
}

// Subscription binds an organization to a plan for a period.
type Subscription struct {
	ID          string             `json:"id"`
	PlanID      string             `json:"planId"`
	Plan        *Plan              `json:"plan,omitempty"`
	Status      SubscriptionStatus `json:"status"`
	StartDate   time.Time          `json:"startDate"`
	EndDate     null.Time          `json:"endDate"`
	CancelledAt null.Time          `json:"cancelledAt"`
	CreatedAt   time.Time          `json:"createdAt"`
}

// IsCancellable reports whether the subscription can still be cancelled.
func (s Subscription) IsCancellable() bool {
	switch s.Status {
	case SubscriptionStatusTrialing, SubscriptionStatusActive, SubscriptionStatusPastDue:
		return true
	}
	return false
}
