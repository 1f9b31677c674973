package model

import (
	"time"

	"github.com/aarondl/null/v8"
)

// CustomerStatus is the service state of a customer account.
type CustomerStatus string

const (
	CustomerStatusActive    CustomerStatus = "ACTIVE"
	CustomerStatusInactive  CustomerStatus = "INACTIVE"
	CustomerStatusSuspended CustomerStatus = "SUSPENDED"
	CustomerStatusExpired   CustomerStatus = "EXPIRED"
)

// Customer is an ISP subscriber.
// Password is never returned populated by the API; it is null on reads.
type Customer struct {
	ID                  string         `json:"id"`
	FullName            string         `json:"fullName"`
	Email               string         `json:"email"`
	Phone               string         `json:"phone"`
	Username            string         `json:"username"`
	Password            null.String    `json:"password"`
	PackageID           string         `json:"packageId"`
	Package             *Package       `json:"package,omitempty"`
	StationID           string         `json:"stationId"`
	Station             *Station       `json:"station,omitempty"`
	InstallationAddress string         `json:"installationAddress"`
	Latitude            null.Float64   `json:"latitude"`
	Longitude           null.Float64   `json:"longitude"`
	Status              CustomerStatus `json:"status"`
	ExpiresAt           null.Time      `json:"expiresAt"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// DateLayout is the wire format of date-only fields.
const DateLayout = "2006-01-02"
