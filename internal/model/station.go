package model

import "time"

// StationStatus is the operational state of a station.
type StationStatus string

const (
	StationStatusOnline      StationStatus = "ONLINE"
	StationStatusOffline     StationStatus = "OFFLINE"
	StationStatusMaintenance StationStatus = "MAINTENANCE"
)

// Station is a network access point customers are attached to.
type Station struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Location    string        `json:"location"`
	Type        string        `json:"type"`
	IPAddress   string        `json:"ipAddress"`
	Status      StationStatus `json:"status"`
	Description string        `json:"description,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}
