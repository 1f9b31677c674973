package graphql

import (
	"isp-dashboard/internal/payment/repository"
	"isp-dashboard/internal/resource"
	pkgGraphql "isp-dashboard/pkg/graphql"
	pkgLog "isp-dashboard/pkg/log"
)

var (
	configDoc         = resource.Document{Operation: "GetPaymentConfig", Query: configQuery, Field: "paymentConfig"}
	updateMpesaDoc    = resource.Document{Operation: "UpdateMpesaConfig", Query: updateMpesaMutation, Field: "updateMpesaConfig"}
	updateKopoKopoDoc = resource.Document{Operation: "UpdateKopoKopoConfig", Query: updateKopoKopoMutation, Field: "updateKopoKopoConfig"}
)

type implRepository struct {
	l      pkgLog.Logger
	client pkgGraphql.Client
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, deps resource.Deps) *implRepository {
	return &implRepository{
		l:      l,
		client: deps.Client,
	}
}
