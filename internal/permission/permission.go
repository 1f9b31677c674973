package permission

import "isp-dashboard/internal/model"

// HasPermission reports whether userID holds perm in org: the user needs an
// active membership whose role lists perm. There is no inheritance between
// permissions.
func HasPermission(org model.Organization, userID, perm string) bool {
	member, ok := org.FindMember(userID)
	if !ok || !member.IsActive() {
		return false
	}
	role, ok := org.FindRole(member.RoleID)
	if !ok {
		return false
	}
	return role.HasPermission(perm)
}

// Resolve maps the user's permissions on feature to an Access.
func Resolve(org model.Organization, userID string, feature Feature) Access {
	switch {
	case HasPermission(org, userID, feature.Manage) && HasPermission(org, userID, feature.View):
		return AccessFull
	case HasPermission(org, userID, feature.View):
		return AccessReadOnly
	default:
		return AccessDenied
	}
}

// Granted returns every permission userID holds in org.
func Granted(org model.Organization, userID string) []string {
	member, ok := org.FindMember(userID)
	if !ok || !member.IsActive() {
		return []string{}
	}
	role, ok := org.FindRole(member.RoleID)
	if !ok {
		return []string{}
	}
	return append([]string{}, role.Permissions...)
}
