package usecase

import (
	"context"
	"testing"

	"isp-dashboard/internal/alert"
	"isp-dashboard/internal/billing"
	repoGraphql "isp-dashboard/internal/billing/repository/graphql"
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

const (
	plansJSON = `{"plans":[
		{"id":"p1","name":"Starter","description":"Up to 200 customers","price":1500,"currency":"KES","interval":"MONTHLY","features":["customers"],"isActive":true},
		{"id":"p2","name":"Business","description":"Up to 2000 customers","price":5000,"currency":"KES","interval":"MONTHLY","features":["customers","sms","payments"],"isActive":true},
		{"id":"p3","name":"Legacy","description":"Retired plan","price":900,"currency":"KES","interval":"MONTHLY","features":[],"isActive":false}
	]}`
	activeSubJSON    = `{"id":"s1","planId":"p2","plan":{"id":"p2","name":"Business","price":5000,"currency":"KES","interval":"MONTHLY","features":[],"isActive":true},"status":"ACTIVE","startDate":"2026-09-01T00:00:00Z","endDate":null,"cancelledAt":null,"createdAt":"2026-09-01T00:00:00Z"}`
	cancelledSubJSON = `{"id":"s1","planId":"p2","plan":{"id":"p2","name":"Business","price":5000,"currency":"KES","interval":"MONTHLY","features":[],"isActive":true},"status":"CANCELLED","startDate":"2026-09-01T00:00:00Z","endDate":"2026-10-31T00:00:00Z","cancelledAt":"2026-10-19T00:00:00Z","createdAt":"2026-09-01T00:00:00Z"}`
)

type fakeAlerts struct {
	alert.UseCase
	changes []alert.SubscriptionChangeInput
}

func (f *fakeAlerts) DispatchSubscriptionChange(_ context.Context, ip alert.SubscriptionChangeInput) error {
	f.changes = append(f.changes, ip)
	return nil
}

func (f *fakeAlerts) Go(ctx context.Context, _ string, fn func(ctx context.Context) error) {
	_ = fn(ctx)
}

func newTestUseCase(client *graphqltest.Client, alerts *fakeAlerts) billing.UseCase {
	l := log.NewNop()
	repo := repoGraphql.New(l, resource.Deps{Logger: l, Client: client})
	return New(l, repo, form.NewValidator(), alerts)
}

func TestPlansPagedLocally(t *testing.T) {
	client := graphqltest.New().Respond("GetPlans", plansJSON)
	uc := newTestUseCase(client, &fakeAlerts{})

	screen, err := uc.Plans(context.Background(), model.Scope{}, billing.ListInput{
		OrganizationID: "org-1",
		Filter:         paginator.FilterOptions{Page: 1, PageSize: 10, SortBy: "price", SortDirection: paginator.SortDesc},
		Access:         permission.AccessFull,
	})
	require.NoError(t, err)
	require.Len(t, screen.Table.Rows, 3)
	assert.Equal(t, "Business", screen.Table.Rows[0].Cells[0].Text)
	assert.Equal(t, "KES 5,000.00", screen.Table.Rows[0].Cells[1].Text)
	assert.Equal(t, "Legacy", screen.Table.Rows[2].Cells[0].Text)

	screen, err = uc.Plans(context.Background(), model.Scope{}, billing.ListInput{
		OrganizationID: "org-1",
		Filter:         paginator.FilterOptions{Page: 1, PageSize: 10, Search: "retired"},
		Access:         permission.AccessFull,
	})
	require.NoError(t, err)
	require.Len(t, screen.Table.Rows, 1)
	assert.Equal(t, "Legacy", screen.Table.Rows[0].Cells[0].Text)
}

func TestSubscribe(t *testing.T) {
	tests := []struct {
		name      string
		planID    string
		wantErr   error
		wantField string
	}{
		{name: "active plan", planID: "p2"},
		{name: "unknown plan", planID: "p9", wantErr: billing.ErrPlanNotFound},
		{name: "retired plan", planID: "p3", wantErr: billing.ErrPlanInactive},
		{name: "no plan", planID: "", wantField: "planId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.New().
				Respond("GetPlans", plansJSON).
				Respond("CreateSubscription", `{"createSubscription":`+activeSubJSON+`}`)
			alerts := &fakeAlerts{}
			uc := newTestUseCase(client, alerts)

			sub, err := uc.Subscribe(context.Background(), model.Scope{Username: "wanjiru"}, billing.SubscribeInput{
				OrganizationID: "org-1",
				Input:          billing.Input{PlanID: tt.planID},
			})
			switch {
			case tt.wantField != "":
				var errs *pkgErrors.ValidationErrorCollector
				require.ErrorAs(t, err, &errs)
				assert.Contains(t, errs.Fields(), tt.wantField)
				assert.Empty(t, client.CallsTo("CreateSubscription"))
				return
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, client.CallsTo("CreateSubscription"))
				assert.Empty(t, alerts.changes)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "s1", sub.ID)

			sent := graphqltest.Input(client.CallsTo("CreateSubscription")[0])
			assert.Equal(t, "org-1", sent["organizationId"])
			assert.Equal(t, "p2", sent["planId"])

			require.Len(t, alerts.changes, 1)
			assert.Equal(t, "created", alerts.changes[0].Event)
			assert.Equal(t, "Business", alerts.changes[0].PlanName)
			assert.Equal(t, "wanjiru", alerts.changes[0].User)
		})
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name       string
		stored     string
		wantErr    error
		wantCancel bool
	}{
		{name: "active subscription", stored: activeSubJSON, wantCancel: true},
		{name: "already cancelled", stored: cancelledSubJSON, wantErr: billing.ErrNotCancellable},
		{name: "missing", stored: "null", wantErr: billing.ErrSubscriptionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.New().
				Respond("GetSubscription", `{"subscription":`+tt.stored+`}`).
				Respond("CancelSubscription", `{"cancelSubscription":`+cancelledSubJSON+`}`)
			alerts := &fakeAlerts{}
			uc := newTestUseCase(client, alerts)

			sub, err := uc.Cancel(context.Background(), model.Scope{}, billing.DetailInput{OrganizationID: "org-1", ID: "s1"})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, client.CallsTo("CancelSubscription"))
				assert.Empty(t, alerts.changes)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.SubscriptionStatusCancelled, sub.Status)
			require.Len(t, alerts.changes, 1)
			assert.Equal(t, "cancelled", alerts.changes[0].Event)
		})
	}
}
