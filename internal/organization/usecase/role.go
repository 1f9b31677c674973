package usecase

import (
	"context"
	"slices"
	"strings"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/organization"
	"isp-dashboard/internal/organization/repository"
	"isp-dashboard/pkg/datatable"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
)

func (uc *usecase) Roles(ctx context.Context, sc model.Scope, ip organization.ListInput) (listing.Screen, error) {
	screen, err := uc.roles.Load(ctx, ip.OrganizationID, ip.Filter, ip.Access)
	if err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.organization.usecase.Roles: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

// RoleForm returns the role form. An empty ID gives a blank form for a new role.
func (uc *usecase) RoleForm(ctx context.Context, sc model.Scope, ip organization.RoleDetailInput) (organization.RoleForm, error) {
	f := organization.RoleForm{Permissions: permissionOptions()}

	if ip.ID == "" {
		st := form.State[model.Role, organization.RoleInput]{Status: form.StatusLoaded}
		f.View = form.NewView(st, uc.validateRole(st.Values), false)
		return f, nil
	}

	st := form.Loading[model.Role, organization.RoleInput]()
	org, err := uc.Organization(ctx, sc, ip.OrganizationID)
	if err != nil {
		if err == organization.ErrOrganizationNotFound {
			return organization.RoleForm{}, err
		}
		st = form.Reduce(st, form.Event[model.Role]{Kind: form.EventFailed, Err: err}, toRoleInput)
		f.View = form.NewView(st, nil, false)
		return f, nil
	}

	role, ok := org.FindRole(ip.ID)
	if !ok {
		return organization.RoleForm{}, organization.ErrRoleNotFound
	}
	st = form.Reduce(st, form.Event[model.Role]{Kind: form.EventFetched, Data: role}, toRoleInput)
	f.View = form.NewView(st, uc.validateRole(st.Values), false)
	return f, nil
}

func (uc *usecase) CreateRole(ctx context.Context, sc model.Scope, ip organization.RoleWriteInput) (model.Role, error) {
	ip.Input.Permissions = normalizePermissions(ip.Input.Permissions)
	if errs := uc.validateRole(ip.Input); errs != nil {
		return model.Role{}, errs
	}

	role, err := uc.repo.CreateRole(ctx, sc, repository.RoleOptions{
		OrganizationID: ip.OrganizationID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.organization.usecase.CreateRole: %v", err)
		return model.Role{}, err
	}
	return role, nil
}

func (uc *usecase) UpdateRole(ctx context.Context, sc model.Scope, ip organization.RoleWriteInput) (model.Role, error) {
	ip.Input.Permissions = normalizePermissions(ip.Input.Permissions)
	if errs := uc.validateRole(ip.Input); errs != nil {
		return model.Role{}, errs
	}

	role, err := uc.repo.UpdateRole(ctx, sc, repository.RoleOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Role{}, organization.ErrRoleNotFound
		}
		uc.l.Errorf(ctx, "internal.organization.usecase.UpdateRole: %v", err)
		return model.Role{}, err
	}
	return role, nil
}

func (uc *usecase) DeleteRole(ctx context.Context, sc model.Scope, ip organization.RoleDetailInput) error {
	org, err := uc.Organization(ctx, sc, ip.OrganizationID)
	if err != nil {
		return err
	}
	if _, ok := org.FindRole(ip.ID); !ok {
		return organization.ErrRoleNotFound
	}
	for _, m := range org.Members {
		if m.RoleID == ip.ID {
			return organization.ErrRoleInUse
		}
	}

	_, err = uc.repo.DeleteRole(ctx, sc, repository.RoleOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return organization.ErrRoleNotFound
		}
		uc.l.Errorf(ctx, "internal.organization.usecase.DeleteRole: %v", err)
		return err
	}
	return nil
}

// validateRole checks the schema and that every permission is one a role may hold.
func (uc *usecase) validateRole(ip organization.RoleInput) *pkgErrors.ValidationErrorCollector {
	errs := uc.validator.Validate(ip)
	if errs != nil && errs.HasError() {
		return errs
	}
	for _, p := range ip.Permissions {
		if !model.IsKnownPermission(p) {
			return pkgErrors.NewValidationErrorCollector().
				Add(pkgErrors.NewValidationError(form.ValidationErrorCode, "permissions", "Unknown permission: "+p))
		}
	}
	return nil
}

func normalizePermissions(perms []string) []string {
	out := make([]string, 0, len(perms))
	for _, p := range perms {
		p = strings.ToUpper(strings.TrimSpace(p))
		if p != "" && !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}

func permissionOptions() []organization.PermissionOption {
	opts := make([]organization.PermissionOption, len(model.Permissions))
	for i, p := range model.Permissions {
		opts[i] = organization.PermissionOption{
			Name:  p,
			Label: datatable.Enum(p),
		}
	}
	return opts
}

func toRoleInput(r model.Role) organization.RoleInput {
	return organization.RoleInput{
		Name:        r.Name,
		Description: r.Description,
		Permissions: slices.Clone(r.Permissions),
	}
}
