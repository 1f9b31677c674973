package model

import "time"

// ChangeAction is the kind of mutation that produced a ChangeEvent.
type ChangeAction string

const (
	ChangeCreated ChangeAction = "created"
	ChangeUpdated ChangeAction = "updated"
	ChangeDeleted ChangeAction = "deleted"
)

// ChangeEvent tells connected dashboards that an entity of an organization changed.
type ChangeEvent struct {
	OrganizationID string       `json:"organization_id"`
	Typename       string       `json:"typename"`
	ID             string       `json:"id"`
	Action         ChangeAction `json:"action"`
	At             time.Time    `json:"at"`
}
