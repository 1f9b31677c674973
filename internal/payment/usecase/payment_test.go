package usecase

import (
	"context"
	"errors"
	"slices"
	"testing"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/payment"
	repoGraphql "isp-dashboard/internal/payment/repository/graphql"
	"isp-dashboard/internal/resource"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/graphql/graphqltest"
	"isp-dashboard/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mpesaJSON    = `{"id":"mp1","shortCode":"174379","shortCodeType":"PAYBILL","consumerKey":"ck_live","consumerSecret":null,"passkey":null,"callbackUrl":"https://pay.kilifibre.co.ke/mpesa","environment":"PRODUCTION","isActive":true,"updatedAt":"2026-10-01T00:00:00Z"}`
	kopokopoJSON = `{"id":"kk1","clientId":"client","clientSecret":null,"apiKey":null,"tillNumber":"555123","callbackUrl":"https://pay.kilifibre.co.ke/k2","environment":"SANDBOX","isActive":false,"updatedAt":"2026-10-01T00:00:00Z"}`
)

func newTestUseCase(client *graphqltest.Client) payment.UseCase {
	l := log.NewNop()
	repo := repoGraphql.New(l, resource.Deps{Logger: l, Client: client})
	return New(l, repo, form.NewValidator())
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "both providers", data: `{"paymentConfig":{"mpesa":` + mpesaJSON + `,"kopokopo":` + kopokopoJSON + `}}`},
		{name: "missing", data: `{"paymentConfig":null}`, wantErr: payment.ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(graphqltest.New().Respond("GetPaymentConfig", tt.data))

			cfg, err := uc.Config(context.Background(), model.Scope{}, "org-1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg.Mpesa)
			require.NotNil(t, cfg.KopoKopo)
			assert.Equal(t, "174379", cfg.Mpesa.ShortCode)
			assert.False(t, cfg.Mpesa.ConsumerSecret.Valid)
			assert.Equal(t, "555123", cfg.KopoKopo.TillNumber)
		})
	}
}

func TestMpesaForm(t *testing.T) {
	t.Run("stored config prefills without secrets", func(t *testing.T) {
		uc := newTestUseCase(graphqltest.New().Respond("GetPaymentConfig", `{"paymentConfig":{"mpesa":`+mpesaJSON+`,"kopokopo":null}}`))

		view, err := uc.MpesaForm(context.Background(), model.Scope{}, "org-1")
		require.NoError(t, err)
		assert.Equal(t, form.StatusLoaded, view.Status)
		assert.Equal(t, "174379", view.Values.ShortCode)
		assert.False(t, view.Values.ConsumerSecret.Valid)
		assert.Empty(t, view.Errors)
	})

	t.Run("first setup requires secrets", func(t *testing.T) {
		uc := newTestUseCase(graphqltest.New().Respond("GetPaymentConfig", `{"paymentConfig":null}`))

		view, err := uc.MpesaForm(context.Background(), model.Scope{}, "org-1")
		require.NoError(t, err)
		assert.Equal(t, form.StatusLoaded, view.Status)
		assert.Equal(t, model.PaymentEnvironmentSandbox, view.Values.Environment)
		assert.Equal(t, "Consumer secret is required", view.Errors["consumerSecret"])
		assert.Equal(t, "Passkey is required", view.Errors["passkey"])
		assert.True(t, view.SubmitDisabled)
	})

	t.Run("load failure", func(t *testing.T) {
		uc := newTestUseCase(graphqltest.New().Fail("GetPaymentConfig", errors.New("boom")))

		view, err := uc.MpesaForm(context.Background(), model.Scope{}, "org-1")
		require.NoError(t, err)
		assert.Equal(t, form.StatusError, view.Status)
	})
}

func TestUpdateMpesa(t *testing.T) {
	valid := payment.MpesaInput{
		ShortCode:     "174379",
		ShortCodeType: "PAYBILL",
		ConsumerKey:   "ck_live",
		CallbackURL:   "https://pay.kilifibre.co.ke/mpesa",
		Environment:   model.PaymentEnvironmentProduction,
		IsActive:      true,
	}

	tests := []struct {
		name     string
		stored   string
		mutate   func(*payment.MpesaInput)
		wantErr  map[string]string
		wantSent []string
	}{
		{name: "blank secrets keep stored ones", stored: `{"mpesa":` + mpesaJSON + `,"kopokopo":null}`, mutate: func(*payment.MpesaInput) {}},
		{
			name:   "new secrets are sent",
			stored: "null",
			mutate: func(ip *payment.MpesaInput) {
				ip.ConsumerSecret = form.SecretFrom("cs_0123456789")
				ip.Passkey = form.SecretFrom("bfb279f9aa9bdbcf")
			},
			wantSent: []string{"consumerSecret", "passkey"},
		},
		{
			name:    "first setup needs secrets",
			stored:  `{"mpesa":null,"kopokopo":` + kopokopoJSON + `}`,
			mutate:  func(*payment.MpesaInput) {},
			wantErr: map[string]string{"consumerSecret": "Consumer secret is required", "passkey": "Passkey is required"},
		},
		{
			name:   "plain http callback",
			stored: `{"mpesa":` + mpesaJSON + `,"kopokopo":null}`,
			mutate: func(ip *payment.MpesaInput) {
				ip.CallbackURL = "http://pay.kilifibre.co.ke/mpesa"
			},
			wantErr: map[string]string{"callbackUrl": "Callback URL must use https"},
		},
		{
			name:   "short code too short",
			stored: `{"mpesa":` + mpesaJSON + `,"kopokopo":null}`,
			mutate: func(ip *payment.MpesaInput) {
				ip.ShortCode = "1234"
			},
			wantErr: map[string]string{"shortCode": "Short code must be 5 to 7 digits"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.New().
				Respond("GetPaymentConfig", `{"paymentConfig":`+tt.stored+`}`).
				Respond("UpdateMpesaConfig", `{"updateMpesaConfig":`+mpesaJSON+`}`)
			uc := newTestUseCase(client)

			ip := valid
			tt.mutate(&ip)
			_, err := uc.UpdateMpesa(context.Background(), model.Scope{}, payment.UpdateMpesaInput{OrganizationID: "org-1", Input: ip})
			if tt.wantErr != nil {
				var errs *pkgErrors.ValidationErrorCollector
				require.ErrorAs(t, err, &errs)
				assert.Equal(t, tt.wantErr, errs.Fields())
				assert.Empty(t, client.CallsTo("UpdateMpesaConfig"))
				return
			}
			require.NoError(t, err)

			sent := graphqltest.Input(client.CallsTo("UpdateMpesaConfig")[0])
			for _, f := range []string{"consumerSecret", "passkey"} {
				_, ok := sent[f]
				assert.Equal(t, slices.Contains(tt.wantSent, f), ok, f)
			}
		})
	}
}

func TestUpdateKopoKopoFirstSetup(t *testing.T) {
	client := graphqltest.New().
		Respond("GetPaymentConfig", `{"paymentConfig":null}`).
		Respond("UpdateKopoKopoConfig", `{"updateKopoKopoConfig":`+kopokopoJSON+`}`)
	uc := newTestUseCase(client)

	ip := payment.KopoKopoInput{
		ClientID:    "client",
		TillNumber:  "555123",
		CallbackURL: "https://pay.kilifibre.co.ke/k2",
		Environment: model.PaymentEnvironmentSandbox,
	}
	_, err := uc.UpdateKopoKopo(context.Background(), model.Scope{}, payment.UpdateKopoKopoInput{OrganizationID: "org-1", Input: ip})
	var errs *pkgErrors.ValidationErrorCollector
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, map[string]string{"clientSecret": "Client secret is required", "apiKey": "API key is required"}, errs.Fields())

	ip.ClientSecret = form.SecretFrom("k2_secret_0123")
	ip.APIKey = form.SecretFrom("k2_api_0123456")
	cfg, err := uc.UpdateKopoKopo(context.Background(), model.Scope{}, payment.UpdateKopoKopoInput{OrganizationID: "org-1", Input: ip})
	require.NoError(t, err)
	assert.Equal(t, "kk1", cfg.ID)
	require.Len(t, client.CallsTo("UpdateKopoKopoConfig"), 1)
}
