package graphql

import (
	"isp-dashboard/internal/messaging/repository"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	pkgGraphql "isp-dashboard/pkg/graphql"
	pkgLog "isp-dashboard/pkg/log"
)

var (
	configDoc       = resource.Document{Operation: "GetSmsConfig", Query: configQuery, Field: "smsConfig"}
	updateConfigDoc = resource.Document{Operation: "UpdateSmsConfig", Query: updateConfigMutation, Field: "updateSmsConfig"}
)

type implRepository struct {
	l      pkgLog.Logger
	client pkgGraphql.Client
	gw     *resource.Gateway[model.SmsTemplate]
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, deps resource.Deps) *implRepository {
	return &implRepository{
		l:      l,
		client: deps.Client,
		gw: resource.New(deps, resource.Descriptor[model.SmsTemplate]{
			Typename: "SmsTemplate",
			List:     resource.Document{Operation: "GetSmsTemplates", Query: listQuery, Field: "smsTemplates"},
			Detail:   resource.Document{Operation: "GetSmsTemplate", Query: detailQuery, Field: "smsTemplate"},
			Create:   resource.Document{Operation: "CreateSmsTemplate", Query: createMutation, Field: "createSmsTemplate"},
			Update:   resource.Document{Operation: "UpdateSmsTemplate", Query: updateMutation, Field: "updateSmsTemplate"},
			Delete:   resource.Document{Operation: "DeleteSmsTemplate", Query: deleteMutation, Field: "deleteSmsTemplate"},
			ID:       func(t model.SmsTemplate) string { return t.ID },
		}),
	}
}
