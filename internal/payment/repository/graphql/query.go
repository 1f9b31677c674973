package graphql

const mpesaFields = `
fragment MpesaConfigFields on MpesaConfig {
  id
  shortCode
  shortCodeType
  consumerKey
  callbackUrl
  environment
  isActive
  updatedAt
}`

const kopoKopoFields = `
fragment KopoKopoConfigFields on KopoKopoConfig {
  id
  clientId
  tillNumber
  callbackUrl
  environment
  isActive
  updatedAt
}`

const configQuery = `
query GetPaymentConfig($organizationId: ID!) {
  paymentConfig(organizationId: $organizationId) {
    mpesa { ...MpesaConfigFields }
    kopokopo { ...KopoKopoConfigFields }
  }
}` + mpesaFields + kopoKopoFields

const updateMpesaMutation = `
mutation UpdateMpesaConfig($organizationId: ID!, $input: MpesaConfigInput!) {
  updateMpesaConfig(organizationId: $organizationId, input: $input) { ...MpesaConfigFields }
}` + mpesaFields

const updateKopoKopoMutation = `
mutation UpdateKopoKopoConfig($organizationId: ID!, $input: KopoKopoConfigInput!) {
  updateKopoKopoConfig(organizationId: $organizationId, input: $input) { ...KopoKopoConfigFields }
}` + kopoKopoFields
