package repository

import "isp-dashboard/internal/payment"

type ConfigOptions struct {
	OrganizationID string
}

type UpdateMpesaOptions struct {
	OrganizationID string
	Input          payment.MpesaInput
}

type UpdateKopoKopoOptions struct {
	OrganizationID string
	Input          payment.KopoKopoInput
}
