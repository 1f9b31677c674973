package usecase

import (
	"context"
	"testing"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/permission"
	"isp-dashboard/internal/resource"
	"isp-dashboard/internal/station"
	repoGraphql "isp-dashboard/internal/station/repository/graphql"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/graphql/graphqltest"
	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationJSON = `{"id":"s1","name":"Kilimani Tower","location":"Kilimani","type":"TOWER","ipAddress":"10.0.0.1","status":"ONLINE"}`

func newTestUseCase(client *graphqltest.Client) station.UseCase {
	l := log.NewNop()
	return New(l, repoGraphql.New(l, resource.Deps{Logger: l, Client: client}), form.NewValidator())
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name     string
		input    station.Input
		wantErrs map[string]string
	}{
		{
			name: "valid",
			input: station.Input{
				Name: "Kilimani Tower", Location: "Kilimani", Type: "TOWER",
				IPAddress: "10.0.0.1", Status: model.StationStatusOnline,
			},
		},
		{
			name: "bad ip and status",
			input: station.Input{
				Name: "Kilimani Tower", Location: "Kilimani", Type: "TOWER",
				IPAddress: "10.0.0", Status: "BROKEN",
			},
			wantErrs: map[string]string{
				"ipAddress": "IP address is invalid",
				"status":    "Status must be ONLINE, OFFLINE or MAINTENANCE",
			},
		},
		{
			name:  "empty",
			input: station.Input{},
			wantErrs: map[string]string{
				"name":      "Station name is required",
				"location":  "Location is required",
				"type":      "Station type is required",
				"ipAddress": "IP address is required",
				"status":    "Status is required",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.New().Respond("CreateISPStation", `{"createISPStation":`+stationJSON+`}`)
			uc := newTestUseCase(client)

			got, err := uc.Create(context.Background(), model.Scope{}, station.CreateInput{OrganizationID: "org-1", Input: tt.input})
			if tt.wantErrs != nil {
				var errs *pkgErrors.ValidationErrorCollector
				require.ErrorAs(t, err, &errs)
				assert.Equal(t, tt.wantErrs, errs.Fields())
				assert.Empty(t, client.Calls())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "s1", got.ID)
			assert.Equal(t, "org-1", graphqltest.Input(client.CallsTo("CreateISPStation")[0])["organizationId"])
		})
	}
}

func TestListClampsPastLastPage(t *testing.T) {
	client := graphqltest.New().Respond("GetISPStations", `{"ispStations":{"items":[`+stationJSON+`],"totalCount":11}}`)
	uc := newTestUseCase(client)

	filter := paginator.DefaultFilter()
	filter.Page = 5
	screen, err := uc.List(context.Background(), model.Scope{}, station.ListInput{
		OrganizationID: "org-1",
		Filter:         filter,
		Access:         permission.AccessFull,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, screen.Filter.Page)

	calls := client.CallsTo("GetISPStations")
	require.Len(t, calls, 2)
	assert.Equal(t, 2, calls[1].Variables["page"])
}

func TestOptionsSortedByName(t *testing.T) {
	client := graphqltest.New().Respond("GetISPStations", `{"ispStations":{"items":[`+stationJSON+`],"totalCount":1}}`)
	uc := newTestUseCase(client)

	items, err := uc.Options(context.Background(), model.Scope{}, "org-1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	vars := client.CallsTo("GetISPStations")[0].Variables
	assert.Equal(t, "name", vars["sortBy"])
	assert.Equal(t, 50, vars["pageSize"])
}
