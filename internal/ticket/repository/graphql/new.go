package graphql

import (
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	"isp-dashboard/internal/ticket/repository"
	pkgLog "isp-dashboard/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	gw *resource.Gateway[model.Ticket]
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, deps resource.Deps) *implRepository {
	return &implRepository{
		l: l,
		gw: resource.New(deps, resource.Descriptor[model.Ticket]{
			Typename: "ISPTicket",
			List:     resource.Document{Operation: "GetISPTickets", Query: listQuery, Field: "ispTickets"},
			Detail:   resource.Document{Operation: "GetISPTicket", Query: detailQuery, Field: "ispTicket"},
			Create:   resource.Document{Operation: "CreateISPTicket", Query: createMutation, Field: "createISPTicket"},
			Update:   resource.Document{Operation: "UpdateISPTicket", Query: updateMutation, Field: "updateISPTicket"},
			Delete:   resource.Document{Operation: "DeleteISPTicket", Query: deleteMutation, Field: "deleteISPTicket"},
			ID:       func(t model.Ticket) string { return t.ID },
		}),
	}
}
