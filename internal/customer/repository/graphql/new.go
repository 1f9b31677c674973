package graphql

import (
	"isp-dashboard/internal/customer/repository"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	pkgLog "isp-dashboard/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	gw *resource.Gateway[model.Customer]
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, deps resource.Deps) *implRepository {
	return &implRepository{
		l: l,
		gw: resource.New(deps, resource.Descriptor[model.Customer]{
			Typename: "ISPCustomer",
			List:     resource.Document{Operation: "GetISPCustomers", Query: listQuery, Field: "ispCustomers"},
			Detail:   resource.Document{Operation: "GetISPCustomer", Query: detailQuery, Field: "ispCustomer"},
			Create:   resource.Document{Operation: "CreateISPCustomer", Query: createMutation, Field: "createISPCustomer"},
			Update:   resource.Document{Operation: "UpdateISPCustomer", Query: updateMutation, Field: "updateISPCustomer"},
			Delete:   resource.Document{Operation: "DeleteISPCustomer", Query: deleteMutation, Field: "deleteISPCustomer"},
			ID:       func(c model.Customer) string { return c.ID },
		}),
	}
}
