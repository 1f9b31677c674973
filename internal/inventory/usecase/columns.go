package usecase

import (
	"strconv"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/datatable"
)

var columns = []datatable.Column[model.InventoryItem]{
	{
		Accessor: "name",
		Header:   "Item",
		Value:    func(i model.InventoryItem) any { return i.Name },
		Sortable: true,
	},
	{
		Accessor: "sku",
		Header:   "SKU",
		Value:    func(i model.InventoryItem) any { return i.SKU },
		Sortable: true,
	},
	{
		Accessor: "category",
		Header:   "Category",
		Value:    func(i model.InventoryItem) any { return i.Category },
		Sortable: true,
	},
	{
		Accessor: "quantity",
		Header:   "Qty",
		Value:    func(i model.InventoryItem) any { return i.Quantity },
		Cell:     func(i model.InventoryItem) string { return strconv.FormatInt(i.Quantity, 10) },
		Sortable: true,
	},
	{
		Accessor: "unitPrice",
		Header:   "Unit Price",
		Value:    func(i model.InventoryItem) any { return i.UnitPrice },
		Cell:     func(i model.InventoryItem) string { return datatable.Money(model.DefaultCurrency, i.UnitPrice) },
		Sortable: true,
	},
	{
		Accessor: "totalValue",
		Header:   "Total Value",
		Value:    func(i model.InventoryItem) any { return i.TotalValue() },
		Cell:     func(i model.InventoryItem) string { return datatable.Money(model.DefaultCurrency, i.TotalValue()) },
	},
	{
		Accessor: "location",
		Header:   "Location",
		Value:    func(i model.InventoryItem) any { return i.Location },
	},
	{
		Accessor: listing.ActionsAccessor,
		Header:   "Actions",
		Value:    func(i model.InventoryItem) any { return i.ID },
		Cell:     func(model.InventoryItem) string { return "" },
	},
}
