package graphql

const customerFields = `
fragment ISPCustomerFields on ISPCustomer {
  id
  fullName
  email
  phone
  username
  packageId
  package { id name price downloadSpeed uploadSpeed }
  stationId
  station { id name location }
  installationAddress
  latitude
  longitude
  status
  expiresAt
  createdAt
  updatedAt
}`

const listQuery = `
query GetISPCustomers($organizationId: ID!, $page: Int, $pageSize: Int, $sortBy: String, $sortDirection: String, $search: String) {
  ispCustomers(organizationId: $organizationId, page: $page, pageSize: $pageSize, sortBy: $sortBy, sortDirection: $sortDirection, search: $search) {
    items { ...ISPCustomerFields }
    totalCount
  }
}` + customerFields

const detailQuery = `
query GetISPCustomer($organizationId: ID!, $id: ID!) {
  ispCustomer(organizationId: $organizationId, id: $id) { ...ISPCustomerFields }
}` + customerFields

const createMutation = `
mutation CreateISPCustomer($input: CreateISPCustomerInput!) {
  createISPCustomer(input: $input) { ...ISPCustomerFields }
}` + customerFields

const updateMutation = `
mutation UpdateISPCustomer($id: ID!, $input: UpdateISPCustomerInput!) {
  updateISPCustomer(id: $id, input: $input) { ...ISPCustomerFields }
}` + customerFields

const deleteMutation = `
mutation DeleteISPCustomer($organizationId: ID!, $id: ID!) {
  deleteISPCustomer(organizationId: $organizationId, id: $id)
}`
