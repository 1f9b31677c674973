package model

import (
	"time"

	"github.com/aarondl/null/v8"
)

// ServiceType is how a package is delivered to the customer router.
type ServiceType string

const (
	ServiceTypePPPoE   ServiceType = "PPPOE"
	ServiceTypeHotspot ServiceType = "HOTSPOT"
	ServiceTypeStatic  ServiceType = "STATIC"
)

// ServiceTypes lists every valid ServiceType.
var ServiceTypes = []ServiceType{ServiceTypePPPoE, ServiceTypeHotspot, ServiceTypeStatic}

// Package is an internet service package. Speeds are in Mbps, DataLimit in GB.
type Package struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description,omitempty"`
	DownloadSpeed float64      `json:"downloadSpeed"`
	UploadSpeed   float64      `json:"uploadSpeed"`
	Price         float64      `json:"price"`
	ServiceType   ServiceType  `json:"serviceType"`
	BurstDownload null.Float64 `json:"burstDownload"`
	BurstUpload   null.Float64 `json:"burstUpload"`
	DataLimit     null.Float64 `json:"dataLimit"`
	ValidityDays  null.Float64 `json:"validityDays"`
	IsActive      bool         `json:"isActive"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

// DefaultCurrency is used for package and customer amounts.
const DefaultCurrency = "KES"
