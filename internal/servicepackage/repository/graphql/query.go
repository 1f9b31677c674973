package graphql

const packageFields = `
fragment ISPPackageFields on ISPPackage {
  id
  name
  description
  downloadSpeed
  uploadSpeed
  price
  serviceType
  burstDownload
  burstUpload
  dataLimit
  validityDays
  isActive
  createdAt
  updatedAt
}`

const listQuery = `
query GetISPPackages($organizationId: ID!, $page: Int, $pageSize: Int, $sortBy: String, $sortDirection: String, $search: String, $activeOnly: Boolean) {
  ispPackages(organizationId: $organizationId, page: $page, pageSize: $pageSize, sortBy: $sortBy, sortDirection: $sortDirection, search: $search, activeOnly: $activeOnly) {
    items { ...ISPPackageFields }
    totalCount
  }
}` + packageFields

const detailQuery = `
query GetISPPackage($organizationId: ID!, $id: ID!) {
  ispPackage(organizationId: $organizationId, id: $id) { ...ISPPackageFields }
}` + packageFields

const createMutation = `
mutation CreateISPPackage($input: CreateISPPackageInput!) {
  createISPPackage(input: $input) { ...ISPPackageFields }
}` + packageFields

const updateMutation = `
mutation UpdateISPPackage($id: ID!, $input: UpdateISPPackageInput!) {
  updateISPPackage(id: $id, input: $input) { ...ISPPackageFields }
}` + packageFields

const deleteMutation = `
mutation DeleteISPPackage($organizationId: ID!, $id: ID!) {
  deleteISPPackage(organizationId: $organizationId, id: $id)
}`
