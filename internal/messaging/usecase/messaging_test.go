package usecase

import (
	"context"
	"strings"
	"testing"

	"isp-dashboard/internal/messaging"
	repoGraphql "isp-dashboard/internal/messaging/repository/graphql"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/graphql/graphqltest"
	"isp-dashboard/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	configJSON   = `{"id":"cfg1","provider":"AFRICASTALKING","senderId":"KILIFIBRE","username":"kilimani","apiKey":null,"isActive":true,"updatedAt":"2026-10-01T00:00:00Z"}`
	templateJSON = `{"id":"tpl1","name":"Payment reminder","content":"Hi {{name}}, KES {{amount}} is due on {{due_date}}.","category":"REMINDER","variables":["name","amount","due_date"],"isActive":true,"createdAt":"2026-10-01T00:00:00Z","updatedAt":"2026-10-01T00:00:00Z"}`
)

func newTestUseCase(client *graphqltest.Client) messaging.UseCase {
	l := log.NewNop()
	repo := repoGraphql.New(l, resource.Deps{Logger: l, Client: client})
	return New(l, repo, form.NewValidator())
}

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		content string
		want    []string
		wantErr bool
	}{
		{content: "Hello", want: []string{}},
		{content: "Hi {{ name }}, {{amount}} due. Thanks {{name}}", want: []string{"name", "amount"}},
		{content: "Hi {{name}", wantErr: true},
		{content: "Hi {{first name}}", wantErr: true},
		{content: "Hi {{}}", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			got, err := placeholders(tt.content)
			if tt.wantErr {
				assert.ErrorIs(t, err, messaging.ErrInvalidPlaceholder)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSmsParts(t *testing.T) {
	assert.Equal(t, 0, smsParts(""))
	assert.Equal(t, 1, smsParts(strings.Repeat("a", 160)))
	assert.Equal(t, 2, smsParts(strings.Repeat("a", 161)))
	assert.Equal(t, 1, smsParts(strings.Repeat("é", 70)))
	assert.Equal(t, 2, smsParts(strings.Repeat("é", 71)))
}

func TestCreateTemplateDerivesVariables(t *testing.T) {
	client := graphqltest.New().Respond("CreateSmsTemplate", `{"createSmsTemplate":`+templateJSON+`}`)
	uc := newTestUseCase(client)

	_, err := uc.Create(context.Background(), model.Scope{}, messaging.CreateInput{
		OrganizationID: "org-1",
		Input: messaging.Input{
			Name:      "Payment reminder",
			Content:   "Hi {{name}}, KES {{amount}} is due on {{due_date}}.",
			Category:  "REMINDER",
			Variables: []string{"ignored"},
			IsActive:  true,
		},
	})
	require.NoError(t, err)

	sent := graphqltest.Input(client.CallsTo("CreateSmsTemplate")[0])
	assert.Equal(t, []any{"name", "amount", "due_date"}, sent["variables"])
	assert.Equal(t, "org-1", sent["organizationId"])
}

func TestCreateTemplateValidation(t *testing.T) {
	tests := []struct {
		name  string
		input messaging.Input
		want  map[string]string
	}{
		{
			name:  "required",
			input: messaging.Input{},
			want:  map[string]string{"name": "Template name is required", "content": "Message content is required"},
		},
		{
			name:  "bad placeholder",
			input: messaging.Input{Name: "Welcome", Content: "Karibu {{first name}}"},
			want:  map[string]string{"content": "Placeholders must look like {{customer_name}}"},
		},
		{
			name:  "too long",
			input: messaging.Input{Name: "Long", Content: strings.Repeat("a", 919)},
			want:  map[string]string{"content": "Message cannot exceed 6 SMS parts (918 characters)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.New()
			_, err := newTestUseCase(client).Create(context.Background(), model.Scope{}, messaging.CreateInput{OrganizationID: "org-1", Input: tt.input})

			var errs *pkgErrors.ValidationErrorCollector
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, tt.want, errs.Fields())
			assert.Empty(t, client.Calls())
		})
	}
}

func TestPreview(t *testing.T) {
	uc := newTestUseCase(graphqltest.New())

	p, err := uc.Preview(context.Background(), model.Scope{}, messaging.PreviewInput{
		Content: "Hi {{name}}, KES {{amount}} is due.",
		Values:  map[string]string{"name": "Amina"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi Amina, KES {{amount}} is due.", p.Text)
	assert.Equal(t, []string{"amount"}, p.Missing)
	assert.Equal(t, 1, p.Parts)
}

func TestConfigFormWithoutConfig(t *testing.T) {
	uc := newTestUseCase(graphqltest.New().Respond("GetSmsConfig", `{"smsConfig":null}`))

	view, err := uc.ConfigForm(context.Background(), model.Scope{}, "org-1")
	require.NoError(t, err)
	assert.Equal(t, form.StatusLoaded, view.Status)
	assert.Equal(t, "AFRICASTALKING", view.Values.Provider)
	assert.Equal(t, "API key is required", view.Errors["apiKey"])
	assert.True(t, view.SubmitDisabled)
}

func TestUpdateConfigAPIKey(t *testing.T) {
	valid := messaging.ConfigInput{Provider: "AFRICASTALKING", SenderID: "KILIFIBRE", Username: "kilimani", IsActive: true}

	tests := []struct {
		name       string
		stored     string
		apiKey     form.Secret
		wantErr    map[string]string
		wantAPIKey bool
	}{
		{name: "blank keeps stored key", stored: configJSON, apiKey: form.SecretFrom(""), wantAPIKey: false},
		{name: "new key is sent", stored: configJSON, apiKey: form.SecretFrom("atsk_0123456789"), wantAPIKey: true},
		{name: "first setup needs a key", stored: "null", apiKey: form.SecretFrom(""), wantErr: map[string]string{"apiKey": "API key is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := graphqltest.New().
				Respond("GetSmsConfig", `{"smsConfig":`+tt.stored+`}`).
				Respond("UpdateSmsConfig", `{"updateSmsConfig":`+configJSON+`}`)
			uc := newTestUseCase(client)

			ip := valid
			ip.APIKey = tt.apiKey
			_, err := uc.UpdateConfig(context.Background(), model.Scope{}, messaging.UpdateConfigInput{OrganizationID: "org-1", Input: ip})
			if tt.wantErr != nil {
				var errs *pkgErrors.ValidationErrorCollector
				require.ErrorAs(t, err, &errs)
				assert.Equal(t, tt.wantErr, errs.Fields())
				assert.Empty(t, client.CallsTo("UpdateSmsConfig"))
				return
			}
			require.NoError(t, err)

			sent := graphqltest.Input(client.CallsTo("UpdateSmsConfig")[0])
			_, ok := sent["apiKey"]
			assert.Equal(t, tt.wantAPIKey, ok)
			assert.NotContains(t, sent, "organizationId")
		})
	}
}
