package usecase

import (
	"context"

	"isp-dashboard/internal/customer"
	"isp-dashboard/internal/model"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"

	"golang.org/x/sync/errgroup"
)

// options loads packages and stations in parallel. The result is only
// available once both have loaded; either failing fails the whole load.
func (uc *usecase) options(ctx context.Context, sc model.Scope, orgID string) (customer.Options, error) {
	var opts customer.Options

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		pkgs, err := uc.packages.Options(gctx, sc, orgID)
		if err != nil {
			return err
		}
		opts.Packages = pkgs
		return nil
	})
	g.Go(func() error {
		stations, err := uc.stations.Options(gctx, sc, orgID)
		if err != nil {
			return err
		}
		opts.Stations = stations
		return nil
	})

	if err := g.Wait(); err != nil {
		return customer.Options{}, err
	}
	return opts, nil
}

// NewForm returns an empty customer form with its package and station options.
func (uc *usecase) NewForm(ctx context.Context, sc model.Scope, organizationID string) (customer.Form, error) {
	opts, err := uc.options(ctx, sc, organizationID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.customer.usecase.NewForm.options: %v", err)
		return customer.Form{}, err
	}

	st := form.State[model.Customer, customer.Input]{
		Status: form.StatusLoaded,
		Values: customer.Input{Status: model.CustomerStatusActive},
	}
	return customer.Form{
		Options: opts,
		View:    form.NewPristineView(st, uc.validateCreate(st.Values)),
	}, nil
}

// EditForm loads the customer and the form options in parallel and derives
// the form values from the customer once.
func (uc *usecase) EditForm(ctx context.Context, sc model.Scope, ip customer.DetailInput) (customer.Form, error) {
	st := form.Loading[model.Customer, customer.Input]()

	var (
		cus  model.Customer
		opts customer.Options
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cus, err = uc.Detail(gctx, sc, ip)
		return err
	})
	g.Go(func() error {
		var err error
		opts, err = uc.options(gctx, sc, ip.OrganizationID)
		return err
	})

	if err := g.Wait(); err != nil {
		if err == customer.ErrCustomerNotFound {
			return customer.Form{}, err
		}
		uc.l.Errorf(ctx, "internal.customer.usecase.EditForm.Wait: %v", err)
		st = form.Reduce(st, form.Event[model.Customer]{Kind: form.EventFailed, Err: err}, toInput)
		return customer.Form{View: form.NewView(st, nil, false)}, nil
	}

	st = form.Reduce(st, form.Event[model.Customer]{Kind: form.EventFetched, Data: cus}, toInput)
	return customer.Form{
		Options: opts,
		View:    form.NewView(st, uc.validator.Validate(st.Values), false),
	}, nil
}

// validateCreate also requires a password, which is optional on edit.
func (uc *usecase) validateCreate(ip customer.Input) *pkgErrors.ValidationErrorCollector {
	return form.RequireSecret(uc.validator.Validate(ip), "password", ip.Password, msgPasswordRequired)
}

const msgPasswordRequired = "Password is required"

func toInput(c model.Customer) customer.Input {
	ip := customer.Input{
		FullName:            c.FullName,
		Email:               c.Email,
		Phone:               c.Phone,
		Username:            c.Username,
		PackageID:           c.PackageID,
		StationID:           c.StationID,
		InstallationAddress: c.InstallationAddress,
		Latitude:            form.Number{Float64: c.Latitude},
		Longitude:           form.Number{Float64: c.Longitude},
		Status:              c.Status,
	}
	if c.PackageID == "" && c.Package != nil {
		ip.PackageID = c.Package.ID
	}
	if c.StationID == "" && c.Station != nil {
		ip.StationID = c.Station.ID
	}
	if c.ExpiresAt.Valid {
		ip.ExpiresAt = c.ExpiresAt.Time.Format(model.DateLayout)
	}
	return ip
}
