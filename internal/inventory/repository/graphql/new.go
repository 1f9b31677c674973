package graphql

import (
	"isp-dashboard/internal/inventory/repository"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	pkgLog "isp-dashboard/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	gw *resource.Gateway[model.InventoryItem]
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, deps resource.Deps) *implRepository {
	return &implRepository{
		l: l,
		gw: resource.New(deps, resource.Descriptor[model.InventoryItem]{
			Typename: "ISPInventory",
			List:     resource.Document{Operation: "GetISPInventories", Query: listQuery, Field: "ispInventories"},
			Detail:   resource.Document{Operation: "GetISPInventory", Query: detailQuery, Field: "ispInventory"},
			Create:   resource.Document{Operation: "CreateISPInventory", Query: createMutation, Field: "createISPInventory"},
			Update:   resource.Document{Operation: "UpdateISPInventory", Query: updateMutation, Field: "updateISPInventory"},
			Delete:   resource.Document{Operation: "DeleteISPInventory", Query: deleteMutation, Field: "deleteISPInventory"},
			ID:       func(i model.InventoryItem) string { return i.ID },
		}),
	}
}
