package graphql

import (
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/organization/repository"
	"isp-dashboard/internal/resource"
	pkgGraphql "isp-dashboard/pkg/graphql"
	pkgLog "isp-dashboard/pkg/log"
)

var (
	inviteDoc     = resource.Document{Operation: "InviteOrganizationMember", Query: inviteMutation, Field: "inviteOrganizationMember"}
	memberRoleDoc = resource.Document{Operation: "UpdateOrganizationMemberRole", Query: updateMemberRoleMutation, Field: "updateOrganizationMemberRole"}
	removeDoc     = resource.Document{Operation: "RemoveOrganizationMember", Query: removeMemberMutation, Field: "removeOrganizationMember"}
)

type implRepository struct {
	l      pkgLog.Logger
	client pkgGraphql.Client
	orgs   *resource.Gateway[model.Organization]
	roles  *resource.Gateway[model.Role]
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, deps resource.Deps) *implRepository {
	return &implRepository{
		l:      l,
		client: deps.Client,
		orgs: resource.New(deps, resource.Descriptor[model.Organization]{
			Typename: "Organization",
			Detail:   resource.Document{Operation: "GetOrganization", Query: detailQuery, Field: "organization"},
			Update:   resource.Document{Operation: "UpdateOrganization", Query: updateMutation, Field: "updateOrganization"},
			ID:       func(o model.Organization) string { return o.ID },
			NoCache:  true,
		}),
		roles: resource.New(deps, resource.Descriptor[model.Role]{
			Typename: "Role",
			Create:   resource.Document{Operation: "CreateRole", Query: createRoleMutation, Field: "createRole"},
			Update:   resource.Document{Operation: "UpdateRole", Query: updateRoleMutation, Field: "updateRole"},
			Delete:   resource.Document{Operation: "DeleteRole", Query: deleteRoleMutation, Field: "deleteRole"},
			ID:       func(r model.Role) string { return r.ID },
		}),
	}
}
