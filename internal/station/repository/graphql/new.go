package graphql

import (
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	"isp-dashboard/internal/station/repository"
	pkgLog "isp-dashboard/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	gw *resource.Gateway[model.Station]
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, deps resource.Deps) *implRepository {
	return &implRepository{
		l: l,
		gw: resource.New(deps, resource.Descriptor[model.Station]{
			Typename: "ISPStation",
			List:     resource.Document{Operation: "GetISPStations", Query: listQuery, Field: "ispStations"},
			Detail:   resource.Document{Operation: "GetISPStation", Query: detailQuery, Field: "ispStation"},
			Create:   resource.Document{Operation: "CreateISPStation", Query: createMutation, Field: "createISPStation"},
			Update:   resource.Document{Operation: "UpdateISPStation", Query: updateMutation, Field: "updateISPStation"},
			Delete:   resource.Document{Operation: "DeleteISPStation", Query: deleteMutation, Field: "deleteISPStation"},
			ID:       func(s model.Station) string { return s.ID },
		}),
	}
}
