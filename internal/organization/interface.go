package organization

import (
	"context"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/form"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Organization loads the organization with its members and roles. It backs the permission gate.
	Organization(ctx context.Context, sc model.Scope, id string) (model.Organization, error)
	EditForm(ctx context.Context, sc model.Scope, id string) (form.View[Input], error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Organization, error)

	Members(ctx context.Context, sc model.Scope, ip ListInput) (listing.Screen, error)
	InviteMember(ctx context.Context, sc model.Scope, ip InviteInput) (model.Invitation, error)
	UpdateMemberRole(ctx context.Context, sc model.Scope, ip MemberRoleInput) (model.Member, error)
	RemoveMember(ctx context.Context, sc model.Scope, ip MemberInput) error

	Roles(ctx context.Context, sc model.Scope, ip ListInput) (listing.Screen, error)
	RoleForm(ctx context.Context, sc model.Scope, ip RoleDetailInput) (RoleForm, error)
	CreateRole(ctx context.Context, sc model.Scope, ip RoleWriteInput) (model.Role, error)
	UpdateRole(ctx context.Context, sc model.Scope, ip RoleWriteInput) (model.Role, error)
	DeleteRole(ctx context.Context, sc model.Scope, ip RoleDetailInput) error
}
