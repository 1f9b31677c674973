package usecase

import (
	"context"
	"strings"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/organization"
	"isp-dashboard/internal/organization/repository"
	"isp-dashboard/pkg/form"
	pkgGraphql "isp-dashboard/pkg/graphql"
	pkgLog "isp-dashboard/pkg/log"
	"isp-dashboard/pkg/paginator"
	"isp-dashboard/pkg/scope"
)

type usecase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	validator *form.Validator
	members   *listing.Container[model.Member]
	roles     *listing.Container[model.Role]
}

func New(l pkgLog.Logger, repo repository.Repository, validator *form.Validator) organization.UseCase {
	uc := &usecase{
		l:         l,
		repo:      repo,
		validator: validator,
	}
	uc.members = listing.New(memberColumns, uc.fetchMembers)
	uc.roles = listing.New(roleColumns, uc.fetchRoles)
	return uc
}

// Members and roles come embedded in the organization, so their tables are paged here.
func (uc *usecase) fetchMembers(ctx context.Context, orgID string, filter paginator.FilterOptions) pkgGraphql.Result[paginator.Page[model.Member]] {
	res := uc.repo.Detail(ctx, scope.GetScopeFromContext(ctx), repository.DetailOptions{ID: orgID})
	return pkgGraphql.Map(res, func(org model.Organization) paginator.Page[model.Member] {
		return paginator.LocalPage(org.Members, filter, matchMember, memberOrder)
	})
}

func (uc *usecase) fetchRoles(ctx context.Context, orgID string, filter paginator.FilterOptions) pkgGraphql.Result[paginator.Page[model.Role]] {
	res := uc.repo.Detail(ctx, scope.GetScopeFromContext(ctx), repository.DetailOptions{ID: orgID})
	return pkgGraphql.Map(res, func(org model.Organization) paginator.Page[model.Role] {
		return paginator.LocalPage(org.Roles, filter, matchRole, roleOrder)
	})
}

func matchMember(m model.Member, search string) bool {
	if m.User == nil {
		return false
	}
	return strings.Contains(strings.ToLower(m.User.Name), search) ||
		strings.Contains(strings.ToLower(m.User.Email), search)
}

func matchRole(r model.Role, search string) bool {
	return strings.Contains(strings.ToLower(r.Name), search)
}
