package usecase

import (
	"context"
	"time"

	"isp-dashboard/internal/alert"
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/ticket"
	"isp-dashboard/internal/ticket/repository"
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
	storage   ticket.Storage
	alerts    alert.UseCase
	urlExpiry time.Duration
	table     *listing.Container[model.Ticket]
}

// New builds the ticket usecase. A nil storage disables attachment upload and download links.
func New(l pkgLog.Logger, repo repository.Repository, validator *form.Validator, storage ticket.Storage, alerts alert.UseCase, urlExpiry time.Duration) ticket.UseCase {
	uc := &usecase{
		l:         l,
		repo:      repo,
		validator: validator,
		storage:   storage,
		alerts:    alerts,
		urlExpiry: urlExpiry,
	}
	uc.table = listing.New(columns, uc.fetch)
	return uc
}

func (uc *usecase) fetch(ctx context.Context, orgID string, filter paginator.FilterOptions) pkgGraphql.Result[paginator.Page[model.Ticket]] {
	return uc.repo.List(ctx, scope.GetScopeFromContext(ctx), repository.ListOptions{
		OrganizationID: orgID,
		Filter:         filter,
	})
}
