package alert

import "time"

// UrgentTicketInput describes a ticket that needs immediate attention.
type UrgentTicketInput struct {
	OrganizationID string
	TicketID       string
	Title          string
	Description    string
	Priority       string
	Status         string
	Category       string
	CustomerName   string
	ReportedBy     string
	CreatedAt      time.Time
}

// SubscriptionChangeInput is a plan subscription being created or cancelled.
type SubscriptionChangeInput struct {
	OrganizationID string
	SubscriptionID string
	PlanName       string
	Event          string // "created", "cancelled"
	User           string
	Timestamp      time.Time
}
