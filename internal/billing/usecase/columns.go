package usecase

import (
	"cmp"
	"strconv"
	"strings"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/datatable"
)

var subscriptionColumns = []datatable.Column[model.Subscription]{
	{
		Accessor: "plan",
		Header:   "Plan",
		Value:    func(s model.Subscription) any { return planName(s) },
	},
	{
		Accessor: "status",
		Header:   "Status",
		Value:    func(s model.Subscription) any { return s.Status },
		Cell:     func(s model.Subscription) string { return datatable.Enum(s.Status) },
		Sortable: true,
	},
	{
		Accessor: "startDate",
		Header:   "Started",
		Value:    func(s model.Subscription) any { return s.StartDate },
		Cell:     func(s model.Subscription) string { return datatable.Date(s.StartDate) },
		Sortable: true,
	},
	{
		Accessor: "endDate",
		Header:   "Ends",
		Value:    func(s model.Subscription) any { return s.EndDate },
		Cell:     func(s model.Subscription) string { return datatable.NullDate(s.EndDate) },
		Sortable: true,
	},
	{
		Accessor: listing.ActionsAccessor,
		Header:   "Actions",
		Value:    func(s model.Subscription) any { return s.ID },
		Cell:     func(model.Subscription) string { return "" },
	},
}

var planColumns = []datatable.Column[model.Plan]{
	{
		Accessor: "name",
		Header:   "Plan",
		Value:    func(p model.Plan) any { return p.Name },
		Sortable: true,
	},
	{
		Accessor: "price",
		Header:   "Price",
		Value:    func(p model.Plan) any { return p.Price },
		Cell:     func(p model.Plan) string { return datatable.Money(p.Currency, p.Price) },
		Sortable: true,
	},
	{
		Accessor: "interval",
		Header:   "Billed",
		Value:    func(p model.Plan) any { return p.Interval },
		Cell:     func(p model.Plan) string { return datatable.Enum(p.Interval) },
		Sortable: true,
	},
	{
		Accessor: "features",
		Header:   "Features",
		Value:    func(p model.Plan) any { return len(p.Features) },
		Cell:     func(p model.Plan) string { return strconv.Itoa(len(p.Features)) },
	},
	{
		Accessor: "isActive",
		Header:   "Available",
		Value:    func(p model.Plan) any { return p.IsActive },
		Cell:     func(p model.Plan) string { return datatable.Bool(p.IsActive, "Yes", "No") },
	},
	{
		Accessor: listing.ActionsAccessor,
		Header:   "Actions",
		Value:    func(p model.Plan) any { return p.ID },
		Cell:     func(model.Plan) string { return "" },
	},
}

var planOrder = map[string]func(a, b model.Plan) int{
	"name":     func(a, b model.Plan) int { return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) },
	"price":    func(a, b model.Plan) int { return cmp.Compare(a.Price, b.Price) },
	"interval": func(a, b model.Plan) int { return cmp.Compare(a.Interval, b.Interval) },
}

func planName(s model.Subscription) string {
	if s.Plan == nil {
		return s.PlanID
	}
	return s.Plan.Name
}
