package usecase

import (
	"context"
	"testing"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/permission"
	"isp-dashboard/internal/resource"
	"isp-dashboard/internal/servicepackage"
	repoGraphql "isp-dashboard/internal/servicepackage/repository/graphql"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/graphql/graphqltest"
	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orgID = "org-1"

const packageJSON = `{"id":"p1","name":"Home 10","downloadSpeed":10,"uploadSpeed":5,"price":1500,"serviceType":"PPPOE","burstDownload":null,"burstUpload":null,"dataLimit":0,"validityDays":30,"isActive":true}`

func newTestUseCase(client *graphqltest.Client) servicepackage.UseCase {
	l := log.NewNop()
	repo := repoGraphql.New(l, resource.Deps{Logger: l, Client: client})
	return New(l, repo, form.NewValidator())
}

func validInput() servicepackage.Input {
	return servicepackage.Input{
		Name:          "Home 10",
		DownloadSpeed: form.NumberFrom(10),
		UploadSpeed:   form.NumberFrom(5),
		Price:         form.NumberFrom(1500),
		ServiceType:   model.ServiceTypePPPoE,
	}
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*servicepackage.Input)
		wantKeys []string
		wantErrs map[string]string
	}{
		{
			name:     "required fields only",
			mutate:   func(*servicepackage.Input) {},
			wantKeys: []string{"name", "downloadSpeed", "uploadSpeed", "price", "serviceType", "organizationId"},
		},
		{
			name: "provided zero burst is sent",
			mutate: func(ip *servicepackage.Input) {
				ip.BurstDownload = form.NumberFrom(0)
			},
			wantKeys: []string{"name", "downloadSpeed", "uploadSpeed", "price", "serviceType", "organizationId", "burstDownload"},
		},
		{
			name: "negative download speed",
			mutate: func(ip *servicepackage.Input) {
				ip.DownloadSpeed = form.NumberFrom(-1)
			},
			wantErrs: map[string]string{"downloadSpeed": "Download speed must be positive"},
		},
		{
			name: "missing name and price",
			mutate: func(ip *servicepackage.Input) {
				ip.Name = ""
				ip.Price = form.Number{}
			},
			wantErrs: map[string]string{
				"name":  "Package name is required",
				"price": "Price is required",
			},
		},
		{
			name: "unknown service type",
			mutate: func(ip *servicepackage.Input) {
				ip.ServiceType = "DIALUP"
			},
			wantErrs: map[string]string{"serviceType": "Service type must be PPPOE, HOTSPOT or STATIC"},
		},
		{
			name: "validity below one day",
			mutate: func(ip *servicepackage.Input) {
				ip.ValidityDays = form.NumberFrom(0)
			},
			wantErrs: map[string]string{"validityDays": "Validity must be at least 1 day"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.New().Respond("CreateISPPackage", `{"createISPPackage":`+packageJSON+`}`)
			uc := newTestUseCase(client)

			ip := validInput()
			tt.mutate(&ip)
			_, err := uc.Create(context.Background(), model.Scope{}, servicepackage.CreateInput{OrganizationID: orgID, Input: ip})

			if tt.wantErrs != nil {
				var errs *pkgErrors.ValidationErrorCollector
				require.ErrorAs(t, err, &errs)
				assert.Equal(t, tt.wantErrs, errs.Fields())
				assert.Empty(t, client.Calls())
				return
			}

			require.NoError(t, err)
			calls := client.CallsTo("CreateISPPackage")
			require.Len(t, calls, 1)
			sent := graphqltest.Input(calls[0])
			keys := make([]string, 0, len(sent))
			for k := range sent {
				keys = append(keys, k)
			}
			assert.ElementsMatch(t, tt.wantKeys, keys)
			assert.Equal(t, orgID, sent["organizationId"])
		})
	}
}

func TestEditFormDerivesValues(t *testing.T) {
	client := graphqltest.New().Respond("GetISPPackage", `{"ispPackage":`+packageJSON+`}`)
	uc := newTestUseCase(client)

	view, err := uc.EditForm(context.Background(), model.Scope{}, servicepackage.DetailInput{OrganizationID: orgID, ID: "p1"})
	require.NoError(t, err)

	assert.Equal(t, form.StatusLoaded, view.Status)
	assert.False(t, view.SubmitDisabled)
	assert.Equal(t, "Home 10", view.Values.Name)
	assert.Equal(t, form.NumberFrom(1500), view.Values.Price)
	assert.False(t, view.Values.BurstDownload.Valid)
	assert.Equal(t, form.NumberFrom(0), view.Values.DataLimit)
	assert.Equal(t, form.NumberFrom(30), view.Values.ValidityDays)
}

func TestEditFormRemoteFailure(t *testing.T) {
	client := graphqltest.New().Fail("GetISPPackage", assert.AnError)
	uc := newTestUseCase(client)

	view, err := uc.EditForm(context.Background(), model.Scope{}, servicepackage.DetailInput{OrganizationID: orgID, ID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, form.StatusError, view.Status)
	assert.True(t, view.SubmitDisabled)
	assert.NotEmpty(t, view.Reason)
}

func TestListHidesActionsWithoutManage(t *testing.T) {
	client := graphqltest.New().Respond("GetISPPackages", `{"ispPackages":{"items":[`+packageJSON+`],"totalCount":1}}`)
	uc := newTestUseCase(client)

	screen, err := uc.List(context.Background(), model.Scope{}, servicepackage.ListInput{
		OrganizationID: orgID,
		Filter:         paginator.DefaultFilter(),
		Access:         permission.AccessReadOnly,
	})
	require.NoError(t, err)

	for _, h := range screen.Table.Headers {
		assert.NotEqual(t, listing.ActionsAccessor, h.Accessor)
	}
	require.Len(t, screen.Table.Rows, 1)
	assert.Equal(t, "KES 1,500.00", screen.Table.Rows[0].Cells[4].Text)

	_, err = uc.List(context.Background(), model.Scope{}, servicepackage.ListInput{
		OrganizationID: orgID,
		Filter:         paginator.DefaultFilter(),
		Access:         permission.AccessDenied,
	})
	assert.ErrorIs(t, err, listing.ErrDenied)
	assert.Len(t, client.CallsTo("GetISPPackages"), 1)
}

func TestDeleteNotFound(t *testing.T) {
	client := graphqltest.New().Respond("DeleteISPPackage", `{"deleteISPPackage":null}`)
	uc := newTestUseCase(client)

	err := uc.Delete(context.Background(), model.Scope{}, servicepackage.DetailInput{OrganizationID: orgID, ID: "nope"})
	assert.ErrorIs(t, err, servicepackage.ErrPackageNotFound)
}
