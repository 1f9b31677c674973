package model

// Permission names as stored in a role's permission list.
const (
	PermViewCustomers   = "VIEW_ISP_MANAGER_CUSTOMERS"
	PermManageCustomers = "MANAGE_ISP_MANAGER_CUSTOMERS"
	PermViewPackages    = "VIEW_ISP_MANAGER_PACKAGES"
	PermManagePackages  = "MANAGE_ISP_MANAGER_PACKAGES"
	PermViewStations    = "VIEW_ISP_MANAGER_STATIONS"
	PermManageStations  = "MANAGE_ISP_MANAGER_STATIONS"
	PermViewTickets     = "VIEW_ISP_MANAGER_TICKETS"
	PermManageTickets   = "MANAGE_ISP_MANAGER_TICKETS"
	PermViewInventory   = "VIEW_ISP_MANAGER_INVENTORY"
	PermManageInventory = "MANAGE_ISP_MANAGER_INVENTORY"

	PermViewOrganization   = "VIEW_ORGANIZATION"
	PermManageOrganization = "MANAGE_ORGANIZATION"
	PermViewMembers        = "VIEW_ORGANIZATION_MEMBERS"
	PermManageMembers      = "MANAGE_ORGANIZATION_MEMBERS"
	PermViewRoles          = "VIEW_ORGANIZATION_ROLES"
	PermManageRoles        = "MANAGE_ORGANIZATION_ROLES"

	PermViewSmsConfig       = "VIEW_SMS_CONFIG"
	PermManageSmsConfig     = "MANAGE_SMS_CONFIG"
	PermViewPaymentConfig   = "VIEW_PAYMENT_CONFIG"
	PermManagePaymentConfig = "MANAGE_PAYMENT_CONFIG"
	PermViewSubscriptions   = "VIEW_SUBSCRIPTIONS"
	PermManageSubscriptions = "MANAGE_SUBSCRIPTIONS"
)

// Permissions is every permission a role may hold.
var Permissions = []string{
	PermViewCustomers, PermManageCustomers,
	PermViewPackages, PermManagePackages,
	PermViewStations, PermManageStations,
	PermViewTickets, PermManageTickets,
	PermViewInventory, PermManageInventory,
	PermViewOrganization, PermManageOrganization,
	PermViewMembers, PermManageMembers,
	PermViewRoles, PermManageRoles,
	PermViewSmsConfig, PermManageSmsConfig,
	PermViewPaymentConfig, PermManagePaymentConfig,
	PermViewSubscriptions, PermManageSubscriptions,
}

// IsKnownPermission reports whether name is one of Permissions.
func IsKnownPermission(name string) bool {
	for _, p := range Permissions {
		if p == name {
			return true
		}
	}
	return false
}
