package graphql

import (
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	"isp-dashboard/internal/servicepackage/repository"
	pkgLog "isp-dashboard/pkg/log"
)

const typename = "ISPPackage"

type implRepository struct {
	l  pkgLog.Logger
	gw *resource.Gateway[model.Package]
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, deps resource.Deps) *implRepository {
	return &implRepository{
		l: l,
		gw: resource.New(deps, resource.Descriptor[model.Package]{
			Typename: typename,
			List:     resource.Document{Operation: "GetISPPackages", Query: listQuery, Field: "ispPackages"},
			Detail:   resource.Document{Operation: "GetISPPackage", Query: detailQuery, Field: "ispPackage"},
			Create:   resource.Document{Operation: "CreateISPPackage", Query: createMutation, Field: "createISPPackage"},
			Update:   resource.Document{Operation: "UpdateISPPackage", Query: updateMutation, Field: "updateISPPackage"},
			Delete:   resource.Document{Operation: "DeleteISPPackage", Query: deleteMutation, Field: "deleteISPPackage"},
			ID:       func(p model.Package) string { return p.ID },
		}),
	}
}
