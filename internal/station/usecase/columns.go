package usecase

import (
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/datatable"
)

var columns = []datatable.Column[model.Station]{
	{
		Accessor: "name",
		Header:   "Name",
		Value:    func(s model.Station) any { return s.Name },
		Sortable: true,
	},
	{
		Accessor: "location",
		Header:   "Location",
		Value:    func(s model.Station) any { return s.Location },
		Sortable: true,
	},
	{
		Accessor: "type",
		Header:   "Type",
		Value:    func(s model.Station) any { return s.Type },
	},
	{
		Accessor: "ipAddress",
		Header:   "IP Address",
		Value:    func(s model.Station) any { return s.IPAddress },
	},
	{
		Accessor: "status",
		Header:   "Status",
		Value:    func(s model.Station) any { return s.Status },
		Cell:     func(s model.Station) string { return datatable.Enum(s.Status) },
		Sortable: true,
	},
	{
		Accessor: listing.ActionsAccessor,
		Header:   "Actions",
		Value:    func(s model.Station) any { return s.ID },
		Cell:     func(model.Station) string { return "" },
	},
}
