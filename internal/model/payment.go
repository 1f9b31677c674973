package model

import (
	"time"

	"github.com/aarondl/null/v8"
)

// PaymentEnvironment selects the provider's sandbox or live API.
type PaymentEnvironment string

const (
	PaymentEnvironmentSandbox    PaymentEnvironment = "SANDBOX"
	PaymentEnvironmentProduction PaymentEnvironment = "PRODUCTION"
)

// MpesaConfig holds Daraja credentials. Secrets are write-only and come back null.
type MpesaConfig struct {
	ID             string             `json:"id"`
	ShortCode      string             `json:"shortCode"`
	ShortCodeType  string             `json:"shortCodeType"`
	ConsumerKey    string             `json:"consumerKey"`
	ConsumerSecret null.String        `json:"consumerSecret"`
	Passkey        null.String        `json:"passkey"`
	CallbackURL    string             `json:"callbackUrl"`
	Environment    PaymentEnvironment `json:"environment"`
	IsActive       bool               `json:"isActive"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// KopoKopoConfig holds KopoKopo credentials. Secrets are write-only and come back null.
type KopoKopoConfig struct {
	ID           string             `json:"id"`
	ClientID     string             `json:"clientId"`
	ClientSecret null.String        `json:"clientSecret"`
	APIKey       null.String        `json:"apiKey"`
	TillNumber   string             `json:"tillNumber"`
	CallbackURL  string             `json:"callbackUrl"`
	Environment  PaymentEnvironment `json:"environment"`
	IsActive     bool               `json:"isActive"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// PaymentConfig is every payment provider configuration of an organization.
type PaymentConfig struct {
	Mpesa    *MpesaConfig    `json:"mpesa"`
	KopoKopo *KopoKopoConfig `json:"kopokopo"`
}
