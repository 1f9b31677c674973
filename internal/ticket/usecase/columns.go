package usecase

import (
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/datatable"
)

var columns = []datatable.Column[model.Ticket]{
	{
		Accessor: "title",
		Header:   "Title",
		Value:    func(t model.Ticket) any { return t.Title },
		Sortable: true,
	},
	{
		Accessor: "customer",
		Header:   "Customer",
		Value: func(t model.Ticket) any {
			if t.Customer == nil {
				return ""
			}
			return t.Customer.FullName
		},
	},
	{
		Accessor: "priority",
		Header:   "Priority",
		Value:    func(t model.Ticket) any { return t.Priority },
		Cell:     func(t model.Ticket) string { return datatable.Enum(t.Priority) },
		Sortable: true,
	},
	{
		Accessor: "status",
		Header:   "Status",
		Value:    func(t model.Ticket) any { return t.Status },
		Cell:     func(t model.Ticket) string { return datatable.Enum(t.Status) },
		Sortable: true,
	},
	{
		Accessor: "category",
		Header:   "Category",
		Value:    func(t model.Ticket) any { return t.Category },
	},
	{
		Accessor: "dueDate",
		Header:   "Due",
		Value:    func(t model.Ticket) any { return t.DueDate },
		Cell:     func(t model.Ticket) string { return datatable.NullDate(t.DueDate) },
		Sortable: true,
	},
	{
		Accessor: "createdAt",
		Header:   "Created",
		Value:    func(t model.Ticket) any { return t.CreatedAt },
		Cell:     func(t model.Ticket) string { return datatable.Date(t.CreatedAt) },
		Sortable: true,
	},
	{
		Accessor: listing.ActionsAccessor,
		Header:   "Actions",
		Value:    func(t model.Ticket) any { return t.ID },
		Cell:     func(model.Ticket) string { return "" },
	},
}
