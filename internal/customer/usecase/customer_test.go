package usecase

import (
	"context"
	"errors"
	"sort"
	"testing"

	"isp-dashboard/internal/customer"
	repoGraphql "isp-dashboard/internal/customer/repository/graphql"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/graphql/graphqltest"
	"isp-dashboard/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customerJSON = `{"id":"c1","fullName":"Amina Otieno","email":"amina@example.com","phone":"0712345678","username":"amina","password":null,"packageId":"p1","stationId":"s1","installationAddress":"Kilimani, Nairobi","latitude":-1.29,"longitude":null,"status":"ACTIVE","expiresAt":"2026-12-31T00:00:00Z"}`

type fakePackages struct {
	items []model.Package
	err   error
	calls int
}

func (f *fakePackages) Options(context.Context, model.Scope, string) ([]model.Package, error) {
	f.calls++
	return f.items, f.err
}

type fakeStations struct {
	items   []model.Station
	err     error
	release chan struct{}
}

func (f *fakeStations) Options(ctx context.Context, _ model.Scope, _ string) ([]model.Station, error) {
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.items, f.err
}

func newTestUseCase(client *graphqltest.Client, pkgs *fakePackages, stations *fakeStations) customer.UseCase {
	l := log.NewNop()
	repo := repoGraphql.New(l, resource.Deps{Logger: l, Client: client})
	return New(l, repo, form.NewValidator(), pkgs, stations)
}

func validInput() customer.Input {
	return customer.Input{
		FullName:            "Amina Otieno",
		Email:               "amina@example.com",
		Phone:               "0712345678",
		Username:            "amina",
		Password:            form.SecretFrom("s3cret!"),
		PackageID:           "p1",
		StationID:           "s1",
		InstallationAddress: "Kilimani, Nairobi",
		Status:              model.CustomerStatusActive,
	}
}

func sentKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestCreateRequiresPassword(t *testing.T) {
	client := graphqltest.New().Respond("CreateISPCustomer", `{"createISPCustomer":`+customerJSON+`}`)
	uc := newTestUseCase(client, &fakePackages{}, &fakeStations{})

	ip := validInput()
	ip.Password = form.SecretFrom("   ")
	_, err := uc.Create(context.Background(), model.Scope{}, customer.CreateInput{OrganizationID: "org-1", Input: ip})

	var errs *pkgErrors.ValidationErrorCollector
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, map[string]string{"password": "Password is required"}, errs.Fields())
	assert.Empty(t, client.Calls())
}

func TestUpdateOmitsBlankPassword(t *testing.T) {
	tests := []struct {
		name         string
		password     form.Secret
		wantPassword bool
	}{
		{name: "blank keeps current", password: form.SecretFrom(""), wantPassword: false},
		{name: "new password is sent", password: form.SecretFrom("n3w-pass"), wantPassword: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.New().Respond("UpdateISPCustomer", `{"updateISPCustomer":`+customerJSON+`}`)
			uc := newTestUseCase(client, &fakePackages{}, &fakeStations{})

			ip := validInput()
			ip.Password = tt.password
			_, err := uc.Update(context.Background(), model.Scope{}, customer.UpdateInput{OrganizationID: "org-1", ID: "c1", Input: ip})
			require.NoError(t, err)

			sent := graphqltest.Input(client.CallsTo("UpdateISPCustomer")[0])
			_, ok := sent["password"]
			assert.Equal(t, tt.wantPassword, ok)
			assert.NotContains(t, sentKeys(sent), "latitude")
		})
	}
}

func TestCreateValidation(t *testing.T) {
	client := graphqltest.New()
	uc := newTestUseCase(client, &fakePackages{}, &fakeStations{})

	ip := validInput()
	ip.Email = "not-an-email"
	ip.PackageID = ""
	ip.Latitude = form.NumberFrom(120)
	ip.Password = form.SecretFrom("abc")

	_, err := uc.Create(context.Background(), model.Scope{}, customer.CreateInput{OrganizationID: "org-1", Input: ip})
	var errs *pkgErrors.ValidationErrorCollector
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, map[string]string{
		"email":     "Invalid email address",
		"packageId": "Please select a package",
		"latitude":  "Latitude must be between -90 and 90",
		"password":  "Password must be at least 6 characters",
	}, errs.Fields())
	assert.Empty(t, client.Calls())
}

func TestEditFormWaitsForAllQueries(t *testing.T) {
	client := graphqltest.New().Respond("GetISPCustomer", `{"ispCustomer":`+customerJSON+`}`)
	pkgs := &fakePackages{items: []model.Package{{ID: "p1", Name: "Home 10"}}}
	stations := &fakeStations{items: []model.Station{{ID: "s1", Name: "Kilimani Tower"}}, release: make(chan struct{})}
	uc := newTestUseCase(client, pkgs, stations)

	done := make(chan customer.Form)
	go func() {
		f, err := uc.EditForm(context.Background(), model.Scope{}, customer.DetailInput{OrganizationID: "org-1", ID: "c1"})
		assert.NoError(t, err)
		done <- f
	}()

	select {
	case <-done:
		t.Fatal("form resolved before stations loaded")
	default:
	}
	close(stations.release)

	f := <-done
	assert.Equal(t, form.StatusLoaded, f.View.Status)
	assert.Len(t, f.Options.Packages, 1)
	assert.Len(t, f.Options.Stations, 1)
	assert.Equal(t, "amina", f.View.Values.Username)
	assert.False(t, f.View.Values.Password.Valid)
	assert.Equal(t, form.NumberFrom(-1.29), f.View.Values.Latitude)
	assert.False(t, f.View.Values.Longitude.Valid)
	assert.Equal(t, "2026-12-31", f.View.Values.ExpiresAt)
	assert.False(t, f.View.SubmitDisabled)
}

func TestEditFormOptionFailure(t *testing.T) {
	client := graphqltest.New().Respond("GetISPCustomer", `{"ispCustomer":`+customerJSON+`}`)
	uc := newTestUseCase(client, &fakePackages{err: errors.New("packages unavailable")}, &fakeStations{})

	f, err := uc.EditForm(context.Background(), model.Scope{}, customer.DetailInput{OrganizationID: "org-1", ID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, form.StatusError, f.View.Status)
	assert.True(t, f.View.SubmitDisabled)
	assert.Equal(t, "packages unavailable", f.View.Reason)
}

func TestEditFormNotFound(t *testing.T) {
	client := graphqltest.New().Respond("GetISPCustomer", `{"ispCustomer":null}`)
	uc := newTestUseCase(client, &fakePackages{}, &fakeStations{})

	_, err := uc.EditForm(context.Background(), model.Scope{}, customer.DetailInput{OrganizationID: "org-1", ID: "nope"})
	assert.ErrorIs(t, err, customer.ErrCustomerNotFound)
}

func TestNewForm(t *testing.T) {
	pkgs := &fakePackages{items: []model.Package{{ID: "p1"}}}
	uc := newTestUseCase(graphqltest.New(), pkgs, &fakeStations{})

	f, err := uc.NewForm(context.Background(), model.Scope{}, "org-1")
	require.NoError(t, err)
	assert.Equal(t, 1, pkgs.calls)
	assert.Equal(t, model.CustomerStatusActive, f.View.Values.Status)
	assert.Empty(t, f.View.Errors)
	assert.True(t, f.View.SubmitDisabled)
}
