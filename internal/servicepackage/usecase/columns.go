package usecase

import (
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/datatable"
)

var columns = []datatable.Column[model.Package]{
	{
		Accessor: "name",
		Header:   "Name",
		Value:    func(p model.Package) any { return p.Name },
		Sortable: true,
	},
	{
		Accessor: "serviceType",
		Header:   "Service Type",
		Value:    func(p model.Package) any { return p.ServiceType },
		Cell:     func(p model.Package) string { return string(p.ServiceType) },
		Sortable: true,
	},
	{
		Accessor: "downloadSpeed",
		Header:   "Download",
		Value:    func(p model.Package) any { return p.DownloadSpeed },
		Cell:     func(p model.Package) string { return datatable.Speed(p.DownloadSpeed) },
		Sortable: true,
	},
	{
		Accessor: "uploadSpeed",
		Header:   "Upload",
		Value:    func(p model.Package) any { return p.UploadSpeed },
		Cell:     func(p model.Package) string { return datatable.Speed(p.UploadSpeed) },
		Sortable: true,
	},
	{
		Accessor: "price",
		Header:   "Price",
		Value:    func(p model.Package) any { return p.Price },
		Cell:     func(p model.Package) string { return datatable.Money(model.DefaultCurrency, p.Price) },
		Sortable: true,
	},
	{
		Accessor: "isActive",
		Header:   "Status",
		Value:    func(p model.Package) any { return p.IsActive },
		Cell:     func(p model.Package) string { return datatable.Bool(p.IsActive, "Active", "Inactive") },
	},
	{
		Accessor: listing.ActionsAccessor,
		Header:   "Actions",
		Value:    func(p model.Package) any { return p.ID },
		Cell:     func(model.Package) string { return "" },
	},
}
