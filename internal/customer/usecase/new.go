package usecase

import (
	"context"

	"isp-dashboard/internal/customer"
	"isp-dashboard/internal/customer/repository"
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/form"
	pkgGraphql "isp-dashboard/pkg/graphql"
	pkgLog "isp-dashboard/pkg/log"
	"isp-dashboard/pkg/paginator"
	"isp-dashboard/pkg/scope"
)

// PackageOptions lists the packages a customer can be put on.
type PackageOptions interface {
	Options(ctx context.Context, sc model.Scope, organizationID string) ([]model.Package, error)
}

// StationOptions lists the stations a customer can be attached to.
type StationOptions interface {
	Options(ctx context.Context, sc model.Scope, organizationID string) ([]model.Station, error)
}

type usecase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	validator *form.Validator
	packages  PackageOptions
	stations  StationOptions
	table     *listing.Container[model.Customer]
}

func New(l pkgLog.Logger, repo repository.Repository, validator *form.Validator, packages PackageOptions, stations StationOptions) customer.UseCase {
	uc := &usecase{
		l:         l,
		repo:      repo,
		validator: validator,
		packages:  packages,
		stations:  stations,
	}
	uc.table = listing.New(columns, uc.fetch)
	return uc
}

func (uc *usecase) fetch(ctx context.Context, orgID string, filter paginator.FilterOptions) pkgGraphql.Result[paginator.Page[model.Customer]] {
	return uc.repo.List(ctx, scope.GetScopeFromContext(ctx), repository.ListOptions{
		OrganizationID: orgID,
		Filter:         filter,
	})
}
