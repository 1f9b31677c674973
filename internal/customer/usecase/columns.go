package usecase

import (
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/datatable"
)

var columns = []datatable.Column[model.Customer]{
	{
		Accessor: "fullName",
		Header:   "Name",
		Value:    func(c model.Customer) any { return c.FullName },
		Sortable: true,
	},
	{
		Accessor: "username",
		Header:   "Username",
		Value:    func(c model.Customer) any { return c.Username },
		Sortable: true,
	},
	{
		Accessor: "phone",
		Header:   "Phone",
		Value:    func(c model.Customer) any { return c.Phone },
	},
	{
		Accessor: "package",
		Header:   "Package",
		Value:    func(c model.Customer) any { return c.PackageID },
		Cell: func(c model.Customer) string {
			if c.Package == nil {
				return ""
			}
			return c.Package.Name
		},
	},
	{
		Accessor: "station",
		Header:   "Station",
		Value:    func(c model.Customer) any { return c.StationID },
		Cell: func(c model.Customer) string {
			if c.Station == nil {
				return ""
			}
			return c.Station.Name
		},
	},
	{
		Accessor: "status",
		Header:   "Status",
		Value:    func(c model.Customer) any { return c.Status },
		Cell:     func(c model.Customer) string { return datatable.Enum(c.Status) },
		Sortable: true,
	},
	{
		Accessor: "expiresAt",
		Header:   "Expires",
		Value:    func(c model.Customer) any { return c.ExpiresAt },
		Cell:     func(c model.Customer) string { return datatable.NullDate(c.ExpiresAt) },
		Sortable: true,
	},
	{
		Accessor: listing.ActionsAccessor,
		Header:   "Actions",
		Value:    func(c model.Customer) any { return c.ID },
		Cell:     func(model.Customer) string { return "" },
	},
}
