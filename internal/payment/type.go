package payment

import (
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/form"
)

// MpesaInput is the Daraja form. Secrets are only sent when entered.
type MpesaInput struct {
	ShortCode      string                   `json:"shortCode" validate:"required,numeric,min=5,max=7" msg:"required=Short code is required;numeric=Short code must be digits;min=Short code must be 5 to 7 digits;max=Short code must be 5 to 7 digits"`
	ShortCodeType  string                   `json:"shortCodeType" validate:"required,oneof=PAYBILL TILL" msg:"required=Short code type is required;oneof=Short code type must be PAYBILL or TILL"`
	ConsumerKey    string                   `json:"consumerKey" validate:"required" msg:"required=Consumer key is required"`
	ConsumerSecret form.Secret              `json:"consumerSecret,omitzero" validate:"omitempty,min=8" msg:"min=Consumer secret must be at least 8 characters"`
	Passkey        form.Secret              `json:"passkey,omitzero" validate:"omitempty,min=8" msg:"min=Passkey must be at least 8 characters"`
	CallbackURL    string                   `json:"callbackUrl" validate:"required,url,startswith=https://" msg:"required=Callback URL is required;url=Callback URL must be a valid URL;startswith=Callback URL must use https"`
	Environment    model.PaymentEnvironment `json:"environment" validate:"required,oneof=SANDBOX PRODUCTION" msg:"required=Environment is required;oneof=Environment must be SANDBOX or PRODUCTION"`
	IsActive       bool                     `json:"isActive"`
}

type UpdateMpesaInput struct {
	OrganizationID string
	Input          MpesaInput
}

// KopoKopoInput is the KopoKopo form. Secrets are only sent when entered.
type KopoKopoInput struct {
	ClientID     string                   `json:"clientId" validate:"required" msg:"required=Client ID is required"`
	ClientSecret form.Secret              `json:"clientSecret,omitzero" validate:"omitempty,min=8" msg:"min=Client secret must be at least 8 characters"`
	APIKey       form.Secret              `json:"apiKey,omitzero" validate:"omitempty,min=8" msg:"min=API key must be at least 8 characters"`
	TillNumber   string                   `json:"tillNumber" validate:"required,numeric" msg:"required=Till number is required;numeric=Till number must be digits"`
	CallbackURL  string                   `json:"callbackUrl" validate:"required,url,startswith=https://" msg:"required=Callback URL is required;url=Callback URL must be a valid URL;startswith=Callback URL must use https"`
	Environment  model.PaymentEnvironment `json:"environment" validate:"required,oneof=SANDBOX PRODUCTION" msg:"required=Environment is required;oneof=Environment must be SANDBOX or PRODUCTION"`
	IsActive     bool                     `json:"isActive"`
}

type UpdateKopoKopoInput struct {
	OrganizationID string
	Input          KopoKopoInput
}
