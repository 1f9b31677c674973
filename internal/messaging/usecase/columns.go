package usecase

import (
	"strings"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/datatable"
)

var columns = []datatable.Column[model.SmsTemplate]{
	{
		Accessor: "name",
		Header:   "Name",
		Value:    func(t model.SmsTemplate) any { return t.Name },
		Sortable: true,
	},
	{
		Accessor: "category",
		Header:   "Category",
		Value:    func(t model.SmsTemplate) any { return t.Category },
		Cell:     func(t model.SmsTemplate) string { return datatable.Enum(t.Category) },
		Sortable: true,
	},
	{
		Accessor: "variables",
		Header:   "Variables",
		Value:    func(t model.SmsTemplate) any { return t.Variables },
		Cell:     func(t model.SmsTemplate) string { return strings.Join(t.Variables, ", ") },
	},
	{
		Accessor: "parts",
		Header:   "SMS parts",
		Value:    func(t model.SmsTemplate) any { return smsParts(t.Content) },
	},
	{
		Accessor: "isActive",
		Header:   "Active",
		Value:    func(t model.SmsTemplate) any { return t.IsActive },
		Cell:     func(t model.SmsTemplate) string { return datatable.Bool(t.IsActive, "Active", "Inactive") },
	},
	{
		Accessor: listing.ActionsAccessor,
		Header:   "Actions",
		Value:    func(t model.SmsTemplate) any { return t.ID },
		Cell:     func(model.SmsTemplate) string { return "" },
	},
}
