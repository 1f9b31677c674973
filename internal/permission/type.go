package permission

import "isp-dashboard/internal/model"

// Access is what a user may do on one feature.
type Access string

const (
	AccessFull     Access = "full"
	AccessReadOnly Access = "read_only"
	AccessDenied   Access = "denied"
)

// CanView reports whether the feature's screens may be shown.
func (a Access) CanView() bool {
	return a == AccessFull || a == AccessReadOnly
}

// CanManage reports whether mutating controls may be shown and used.
func (a Access) CanManage() bool {
	return a == AccessFull
}

// Feature pairs the permission that shows a screen with the one that allows changes.
type Feature struct {
	Name   string
	View   string
	Manage string
}

var (
	FeatureCustomers     = Feature{Name: "customers", View: model.PermViewCustomers, Manage: model.PermManageCustomers}
	FeaturePackages      = Feature{Name: "packages", View: model.PermViewPackages, Manage: model.PermManagePackages}
	FeatureStations      = Feature{Name: "stations", View: model.PermViewStations, Manage: model.PermManageStations}
	FeatureTickets       = Feature{Name: "tickets", View: model.PermViewTickets, Manage: model.PermManageTickets}
	FeatureInventory     = Feature{Name: "inventory", View: model.PermViewInventory, Manage: model.PermManageInventory}
	FeatureOrganization  = Feature{Name: "organization", View: model.PermViewOrganization, Manage: model.PermManageOrganization}
	FeatureMembers       = Feature{Name: "members", View: model.PermViewMembers, Manage: model.PermManageMembers}
	FeatureRoles         = Feature{Name: "roles", View: model.PermViewRoles, Manage: model.PermManageRoles}
	FeatureSms           = Feature{Name: "sms", View: model.PermViewSmsConfig, Manage: model.PermManageSmsConfig}
	FeaturePayments      = Feature{Name: "payments", View: model.PermViewPaymentConfig, Manage: model.PermManagePaymentConfig}
	FeatureSubscriptions = Feature{Name: "subscriptions", View: model.PermViewSubscriptions, Manage: model.PermManageSubscriptions}

	// FeatureMembership names the placeholder shown to non-members.
	FeatureMembership = Feature{Name: "membership"}
)

// Placeholder replaces a screen the user may not see.
type Placeholder struct {
	Feature string `json:"feature"`
	Title   string `json:"title"`
	Hint    string `json:"hint"`
}
