package repository

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/graphql"
)

//go:generate mockery --name Repository
type Repository interface {
	Detail(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[model.Organization]
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) graphql.Result[model.Organization]

	InviteMember(ctx context.Context, sc model.Scope, opts InviteOptions) graphql.Result[model.Invitation]
	UpdateMemberRole(ctx context.Context, sc model.Scope, opts MemberRoleOptions) graphql.Result[model.Member]
	RemoveMember(ctx context.Context, sc model.Scope, opts MemberOptions) graphql.Result[bool]

	CreateRole(ctx context.Context, sc model.Scope, opts RoleOptions) graphql.Result[model.Role]
	UpdateRole(ctx context.Context, sc model.Scope, opts RoleOptions) graphql.Result[model.Role]
	DeleteRole(ctx context.Context, sc model.Scope, opts RoleOptions) graphql.Result[bool]
}
