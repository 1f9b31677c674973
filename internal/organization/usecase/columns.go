package usecase

import (
	"cmp"
	"strconv"
	"strings"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/datatable"
)

var memberColumns = []datatable.Column[model.Member]{
	{
		Accessor: "name",
		Header:   "Name",
		Value:    func(m model.Member) any { return memberName(m) },
		Sortable: true,
	},
	{
		Accessor: "email",
		Header:   "Email",
		Value:    func(m model.Member) any { return memberEmail(m) },
		Sortable: true,
	},
	{
		Accessor: "role",
		Header:   "Role",
		Value:    func(m model.Member) any { return roleName(m) },
		Sortable: true,
	},
	{
		Accessor: "status",
		Header:   "Status",
		Value:    func(m model.Member) any { return m.Status },
		Cell:     func(m model.Member) string { return datatable.Enum(m.Status) },
		Sortable: true,
	},
	{
		Accessor: "createdAt",
		Header:   "Joined",
		Value:    func(m model.Member) any { return m.CreatedAt },
		Cell:     func(m model.Member) string { return datatable.Date(m.CreatedAt) },
		Sortable: true,
	},
	{
		Accessor: listing.ActionsAccessor,
		Header:   "Actions",
		Value:    func(m model.Member) any { return m.ID },
		Cell:     func(model.Member) string { return "" },
	},
}

var memberOrder = map[string]func(a, b model.Member) int{
	"name":      func(a, b model.Member) int { return compareFold(memberName(a), memberName(b)) },
	"email":     func(a, b model.Member) int { return compareFold(memberEmail(a), memberEmail(b)) },
	"role":      func(a, b model.Member) int { return compareFold(roleName(a), roleName(b)) },
	"status":    func(a, b model.Member) int { return cmp.Compare(a.Status, b.Status) },
	"createdAt": func(a, b model.Member) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

var roleColumns = []datatable.Column[model.Role]{
	{
		Accessor: "name",
		Header:   "Name",
		Value:    func(r model.Role) any { return r.Name },
		Sortable: true,
	},
	{
		Accessor: "description",
		Header:   "Description",
		Value:    func(r model.Role) any { return r.Description },
	},
	{
		Accessor: "permissions",
		Header:   "Permissions",
		Value:    func(r model.Role) any { return len(r.Permissions) },
		Cell:     func(r model.Role) string { return strconv.Itoa(len(r.Permissions)) },
		Sortable: true,
	},
	{
		Accessor: listing.ActionsAccessor,
		Header:   "Actions",
		Value:    func(r model.Role) any { return r.ID },
		Cell:     func(model.Role) string { return "" },
	},
}

var roleOrder = map[string]func(a, b model.Role) int{
	"name":        func(a, b model.Role) int { return compareFold(a.Name, b.Name) },
	"permissions": func(a, b model.Role) int { return cmp.Compare(len(a.Permissions), len(b.Permissions)) },
}

func memberName(m model.Member) string {
	if m.User == nil {
		return ""
	}
	return m.User.Name
}

func memberEmail(m model.Member) string {
	if m.User == nil {
		return ""
	}
	return m.User.Email
}

func roleName(m model.Member) string {
	if m.Role == nil {
		return ""
	}
	return m.Role.Name
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
