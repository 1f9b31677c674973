package graphql

const templateFields = `
fragment SmsTemplateFields on SmsTemplate {
  id
  name
  content
  category
  variables
  isActive
  createdAt
  updatedAt
}`

const listQuery = `
query GetSmsTemplates($organizationId: ID!, $page: Int, $pageSize: Int, $sortBy: String, $sortDirection: String, $search: String) {
  smsTemplates(organizationId: $organizationId, page: $page, pageSize: $pageSize, sortBy: $sortBy, sortDirection: $sortDirection, search: $search) {
    items { ...SmsTemplateFields }
    totalCount
  }
}` + templateFields

const detailQuery = `
query GetSmsTemplate($organizationId: ID!, $id: ID!) {
  smsTemplate(organizationId: $organizationId, id: $id) { ...SmsTemplateFields }
}` + templateFields

const createMutation = `
mutation CreateSmsTemplate($input: CreateSmsTemplateInput!) {
  createSmsTemplate(input: $input) { ...SmsTemplateFields }
}` + templateFields

const updateMutation = `
mutation UpdateSmsTemplate($id: ID!, $input: UpdateSmsTemplateInput!) {
  updateSmsTemplate(id: $id, input: $input) { ...SmsTemplateFields }
}` + templateFields

const deleteMutation = `
mutation DeleteSmsTemplate($organizationId: ID!, $id: ID!) {
  deleteSmsTemplate(organizationId: $organizationId, id: $id)
}`

const configFields = `
fragment SmsConfigFields on SmsConfig {
  id
  provider
  senderId
  username
  isActive
  updatedAt
}`

const configQuery = `
query GetSmsConfig($organizationId: ID!) {
  smsConfig(organizationId: $organizationId) { ...SmsConfigFields }
}` + configFields

const updateConfigMutation = `
mutation UpdateSmsConfig($organizationId: ID!, $input: SmsConfigInput!) {
  updateSmsConfig(organizationId: $organizationId, input: $input) { ...SmsConfigFields }
}` + configFields
