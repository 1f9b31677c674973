package usecase

import (
	"bytes"
	"context"
	"testing"

	"isp-dashboard/internal/inventory"
	repoGraphql "isp-dashboard/internal/inventory/repository/graphql"
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/permission"
	"isp-dashboard/internal/resource"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/graphql/graphqltest"
	"isp-dashboard/pkg/log"
	"isp-dashboard/pkg/paginator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemJSON = `{"id":"i1","name":"TP-Link CPE510","sku":"CPE510","category":"CPE","quantity":12,"unitPrice":6500,"location":"Store A"}`

func newTestUseCase(client *graphqltest.Client) inventory.UseCase {
	l := log.NewNop()
	return New(l, repoGraphql.New(l, resource.Deps{Logger: l, Client: client}), form.NewValidator())
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name     string
		quantity form.Number
		wantErrs map[string]string
	}{
		{name: "zero quantity is allowed", quantity: form.NumberFrom(0)},
		{name: "negative quantity", quantity: form.NumberFrom(-3), wantErrs: map[string]string{"quantity": "Quantity must be positive"}},
		{name: "missing quantity", quantity: form.Number{}, wantErrs: map[string]string{"quantity": "Quantity is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.New().Respond("UpdateISPInventory", `{"updateISPInventory":`+itemJSON+`}`)
			uc := newTestUseCase(client)

			_, err := uc.Update(context.Background(), model.Scope{}, inventory.UpdateInput{
				OrganizationID: "org-1",
				ID:             "i1",
				Input: inventory.Input{
					Name: "TP-Link CPE510", SKU: "CPE510", Category: "CPE",
					Quantity: tt.quantity, UnitPrice: form.NumberFrom(6500),
				},
			})

			if tt.wantErrs != nil {
				var errs *pkgErrors.ValidationErrorCollector
				require.ErrorAs(t, err, &errs)
				assert.Equal(t, tt.wantErrs, errs.Fields())
				assert.Empty(t, client.Calls())
				return
			}

			require.NoError(t, err)
			calls := client.CallsTo("UpdateISPInventory")
			require.Len(t, calls, 1)
			assert.Equal(t, "i1", calls[0].Variables["id"])
			assert.Equal(t, float64(0), graphqltest.Input(calls[0])["quantity"])
		})
	}
}

func TestExport(t *testing.T) {
	client := graphqltest.New().Respond("GetISPInventories", `{"ispInventories":{"items":[`+itemJSON+`],"totalCount":1}}`)
	uc := newTestUseCase(client)

	ip := inventory.ListInput{OrganizationID: "org-1", Filter: paginator.DefaultFilter(), Access: permission.AccessReadOnly}

	var buf bytes.Buffer
	require.NoError(t, uc.Export(context.Background(), model.Scope{}, ip, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	ip.Access = permission.AccessDenied
	err := uc.Export(context.Background(), model.Scope{}, ip, &bytes.Buffer{})
	assert.ErrorIs(t, err, listing.ErrDenied)
}
