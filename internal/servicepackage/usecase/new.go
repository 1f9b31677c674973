package usecase

import (
	"context"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/servicepackage"
	"isp-dashboard/internal/servicepackage/repository"
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
	table     *listing.Container[model.Package]
}

func New(l pkgLog.Logger, repo repository.Repository, validator *form.Validator) servicepackage.UseCase {
	uc := &usecase{
		l:         l,
		repo:      repo,
		validator: validator,
	}
	uc.table = listing.New(columns, uc.fetch)
	return uc
}

func (uc *usecase) fetch(ctx context.Context, orgID string, filter paginator.FilterOptions) pkgGraphql.Result[paginator.Page[model.Package]] {
	return uc.repo.List(ctx, scope.GetScopeFromContext(ctx), repository.ListOptions{
		OrganizationID: orgID,
		Filter:         filter,
	})
}
